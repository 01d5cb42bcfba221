package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"Chirp/api/config"
	"Chirp/api/metrics"
	"Chirp/api/models"
)

const tweetKeyPrefix = "tweet:"

// Connect initializes Redis using either:
// - REDIS_URL (hosted Redis/Valkey, rediss:// enables TLS)
// - or REDIS_ADDR with optional credentials (local fallback)
func Connect(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	var client *redis.Client
	if cfg.URL != "" {
		opt, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, errors.Wrap(err, "parse REDIS_URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Username: cfg.Username,
			Password: cfg.Password,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "connect to redis")
	}
	return client, nil
}

// TweetCache caches tweets by id. A nil *TweetCache or one without a client
// always misses, so the service keeps working when Redis is down.
type TweetCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewTweetCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *TweetCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &TweetCache{client: client, ttl: ttl, log: log.Named("tweet_cache")}
}

func tweetKey(id uint) string {
	return fmt.Sprintf("%s%d", tweetKeyPrefix, id)
}

func (c *TweetCache) enabled() bool {
	return c != nil && c.client != nil
}

func (c *TweetCache) GetTweet(ctx context.Context, id uint) (*models.Tweet, bool) {
	if !c.enabled() {
		return nil, false
	}
	val, err := c.client.Get(ctx, tweetKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("tweet cache get", zap.Uint("tweet_id", id), zap.Error(err))
		}
		metrics.TweetCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}

	var tweet models.Tweet
	if err := json.Unmarshal(val, &tweet); err != nil {
		c.log.Warn("tweet cache decode", zap.Uint("tweet_id", id), zap.Error(err))
		metrics.TweetCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.TweetCacheLookups.WithLabelValues("hit").Inc()
	return &tweet, true
}

func (c *TweetCache) SetTweet(ctx context.Context, tweet *models.Tweet) {
	if !c.enabled() || tweet == nil {
		return
	}
	payload, err := json.Marshal(tweet)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, tweetKey(tweet.ID), payload, c.ttl).Err(); err != nil {
		c.log.Warn("tweet cache set", zap.Uint("tweet_id", tweet.ID), zap.Error(err))
	}
}

// Flush drops every cached tweet. Ids restart after the seeder resets the
// database, so stale entries would shadow new rows.
func (c *TweetCache) Flush(ctx context.Context) error {
	if !c.enabled() {
		return nil
	}
	return deleteByPrefix(ctx, c.client, tweetKeyPrefix)
}

func deleteByPrefix(ctx context.Context, client *redis.Client, prefix string) error {
	var cursor uint64
	for {
		keys, next, err := client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return errors.Wrap(err, "scan "+prefix)
		}
		if len(keys) > 0 {
			if err := client.Del(ctx, keys...).Err(); err != nil {
				return errors.Wrap(err, "delete "+prefix)
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return nil
}
