package models

import "time"

// Follow is a directed edge: FollowerID follows FollowingID.
type Follow struct {
	ID          uint      `gorm:"primary_key;autoIncrement" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follows_unique,priority:1;index:idx_follows_follower_created,priority:1;check:follows_no_self_follow,follower_id <> following_id" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follows_unique,priority:2;index:idx_follows_following_created,priority:1" json:"following_id"`
	CreatedAt   time.Time `gorm:"not null;index:idx_follows_following_created,priority:2;index:idx_follows_follower_created,priority:2" json:"created_at"`
}

func (f *Follow) Prepare() {
	f.ID = 0
	f.CreatedAt = StoreTime(time.Now())
}

// FollowEntry is one row of a followers/following listing: the user on the
// other end of the edge plus the edge's own sort key.
type FollowEntry struct {
	User
	FollowID        uint      `gorm:"column:follow_id"`
	FollowCreatedAt time.Time `gorm:"column:follow_created_at"`
}
