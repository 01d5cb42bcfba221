package controllers

import (
	"Chirp/api/feed"
	"Chirp/api/models"
)

func tweetToResponse(tweet *models.Tweet) TweetDTO {
	return TweetDTO{ID: tweet.ID, Content: tweet.Content}
}

func tweetsToResponse(tweets []models.Tweet) []TweetDTO {
	out := make([]TweetDTO, len(tweets))
	for i := range tweets {
		out[i] = tweetToResponse(&tweets[i])
	}
	return out
}

func timelineToResponse(page *feed.TimelinePage) TimelineDTO {
	return TimelineDTO{
		Items:      tweetsToResponse(page.Items),
		NextCursor: feed.EncodeCursor(page.NextCursor),
	}
}

func userToResponse(user *models.User) UserDTO {
	return UserDTO{
		ID:             user.ID,
		Username:       user.Username,
		FollowersCount: user.FollowersCount,
		FollowingCount: user.FollowingCount,
		CreatedAt:      user.CreatedAt,
	}
}

func followPageToResponse(page *feed.FollowPage) FollowListDTO {
	items := make([]FollowUserDTO, len(page.Items))
	for i, entry := range page.Items {
		items[i] = FollowUserDTO{
			ID:         entry.User.ID,
			Username:   entry.User.Username,
			FollowedAt: entry.FollowCreatedAt,
		}
	}
	return FollowListDTO{
		Items:      items,
		NextCursor: feed.EncodeCursor(page.NextCursor),
	}
}
