package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"Chirp/api/feed"
	"Chirp/api/models"
)

// Tweets is the Content Store backed by the tweets table.
type Tweets struct {
	db *gorm.DB
}

func NewTweets(db *gorm.DB) *Tweets {
	return &Tweets{db: db}
}

func (s *Tweets) Create(ctx context.Context, content string) (*models.Tweet, error) {
	tweet := models.Tweet{Content: content}
	tweet.Prepare()
	if err := s.db.WithContext(ctx).Create(&tweet).Error; err != nil {
		return nil, failure("tweetStore.Create", err)
	}
	return &tweet, nil
}

func (s *Tweets) FindByID(ctx context.Context, id uint) (*models.Tweet, error) {
	var tweet models.Tweet
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&tweet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, feed.ErrNotFound
		}
		return nil, failure("tweetStore.FindByID", err)
	}
	return &tweet, nil
}

// ListBefore runs the keyset query. The row-value comparison is a single
// lexicographic predicate that idx_tweets_created_id can serve as a range
// scan, so the cost does not grow with how deep the caller has paged.
func (s *Tweets) ListBefore(ctx context.Context, limit int, before *feed.Cursor) ([]models.Tweet, error) {
	query := s.db.WithContext(ctx).Model(&models.Tweet{})
	if before != nil {
		query = query.Where("(created_at, id) < (?, ?)", before.CreatedAt, before.ID)
	}

	tweets := []models.Tweet{}
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&tweets).Error
	if err != nil {
		return nil, failure("tweetStore.ListBefore", err)
	}
	return tweets, nil
}

func (s *Tweets) ListOffset(ctx context.Context, limit, offset int) ([]models.Tweet, error) {
	tweets := []models.Tweet{}
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&tweets).Error
	if err != nil {
		return nil, failure("tweetStore.ListOffset", err)
	}
	return tweets, nil
}
