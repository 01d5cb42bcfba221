package feed

import (
	"context"

	"go.uber.org/zap"

	"Chirp/api/models"
)

// TweetCache is a read-through cache for tweets. Tweets never change, so
// entries never need invalidation.
type TweetCache interface {
	GetTweet(ctx context.Context, id uint) (*models.Tweet, bool)
	SetTweet(ctx context.Context, tweet *models.Tweet)
}

type TweetService struct {
	store TweetStore
	pager *Pager
	cache TweetCache
	log   *zap.Logger
}

// NewTweetService wires the content store. cache may be nil.
func NewTweetService(store TweetStore, cache TweetCache, log *zap.Logger) *TweetService {
	if log == nil {
		log = zap.NewNop()
	}
	return &TweetService{
		store: store,
		pager: NewPager(store),
		cache: cache,
		log:   log.Named("tweets"),
	}
}

// Create validates and stores a tweet. The trimmed content is persisted.
func (s *TweetService) Create(ctx context.Context, content string) (*models.Tweet, error) {
	trimmed, err := ValidateTweetContent(content)
	if err != nil {
		return nil, err
	}
	tweet, err := s.store.Create(ctx, trimmed)
	if err != nil {
		return nil, storageFailure("tweetService.Create", err)
	}
	s.log.Debug("tweet created", zap.Uint("tweet_id", tweet.ID))
	if s.cache != nil {
		s.cache.SetTweet(ctx, tweet)
	}
	return tweet, nil
}

func (s *TweetService) Get(ctx context.Context, id uint) (*models.Tweet, error) {
	if s.cache != nil {
		if tweet, ok := s.cache.GetTweet(ctx, id); ok {
			return tweet, nil
		}
	}
	tweet, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, storageFailure("tweetService.Get", err)
	}
	if s.cache != nil {
		s.cache.SetTweet(ctx, tweet)
	}
	return tweet, nil
}

// Timeline is the offset-paginated timeline. See Pager for its caveats.
func (s *TweetService) Timeline(ctx context.Context, limit, offset int) ([]models.Tweet, error) {
	return s.pager.Offset(ctx, limit, offset)
}

// TimelineCursor is the keyset-paginated timeline. A malformed before value
// is ignored and the first page is returned.
func (s *TweetService) TimelineCursor(ctx context.Context, limit int, before string) (*TimelinePage, error) {
	cursor := ParseCursor(before)
	if cursor == nil && before != "" {
		s.log.Debug("ignoring malformed cursor", zap.String("before", before))
	}
	return s.pager.Page(ctx, limit, cursor)
}
