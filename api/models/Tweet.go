package models

import (
	"time"
)

// Tweet is immutable once stored. (created_at, id) is the timeline sort key.
type Tweet struct {
	ID        uint      `gorm:"primary_key;autoIncrement;index:idx_tweets_created_id,priority:2" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"not null;index:idx_tweets_created_id,priority:1" json:"created_at"`
}

// Prepare stamps the row the way the store would: UTC with microsecond
// resolution, so the value read back from Postgres equals the one we hold.
func (t *Tweet) Prepare() {
	t.ID = 0
	t.CreatedAt = StoreTime(time.Now())
}

// StoreTime normalizes a timestamp to what a timestamptz column keeps.
func StoreTime(ts time.Time) time.Time {
	return ts.UTC().Truncate(time.Microsecond)
}
