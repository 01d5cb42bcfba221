package controllers

import "time"

type TweetDTO struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
}

type TimelineDTO struct {
	Items      []TweetDTO `json:"items"`
	NextCursor *string    `json:"next_cursor"`
}

type UserSummaryDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type UserDTO struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	FollowersCount int64     `json:"followers_count"`
	FollowingCount int64     `json:"following_count"`
	CreatedAt      time.Time `json:"created_at"`
}

type FollowUserDTO struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	FollowedAt time.Time `json:"followed_at"`
}

type FollowListDTO struct {
	Items      []FollowUserDTO `json:"items"`
	NextCursor *string         `json:"next_cursor"`
}

type RelationshipDTO struct {
	Following  bool `json:"following"`
	FollowedBy bool `json:"followed_by"`
	Mutual     bool `json:"mutual"`
}
