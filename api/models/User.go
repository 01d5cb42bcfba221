package models

import (
	"time"
)

type User struct {
	ID             uint      `gorm:"primary_key;autoIncrement" json:"id"`
	Username       string    `gorm:"size:255;not null;index:idx_users_username" json:"username"`
	FollowersCount int64     `gorm:"not null;default:0" json:"followers_count"`
	FollowingCount int64     `gorm:"not null;default:0" json:"following_count"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
}

func (u *User) Prepare() {
	u.ID = 0
	u.FollowersCount = 0
	u.FollowingCount = 0
	u.CreatedAt = StoreTime(time.Now())
}
