package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Chirp/api/config"
	"Chirp/api/models"
)

// unreachable points at a port nothing listens on.
func unreachable(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestTweetKey(t *testing.T) {
	assert.Equal(t, "tweet:42", tweetKey(42))
}

func TestNilCacheAlwaysMisses(t *testing.T) {
	ctx := context.Background()
	var c *TweetCache

	_, ok := c.GetTweet(ctx, 1)
	assert.False(t, ok)
	c.SetTweet(ctx, &models.Tweet{ID: 1})
	assert.NoError(t, c.Flush(ctx))

	withoutClient := NewTweetCache(nil, time.Minute, nil)
	_, ok = withoutClient.GetTweet(ctx, 1)
	assert.False(t, ok)
	withoutClient.SetTweet(ctx, &models.Tweet{ID: 1})
	assert.NoError(t, withoutClient.Flush(ctx))
}

func TestCacheDegradesWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	c := NewTweetCache(unreachable(t), time.Minute, nil)

	c.SetTweet(ctx, &models.Tweet{ID: 7, Content: "hi"})
	_, ok := c.GetTweet(ctx, 7)
	assert.False(t, ok)
	assert.Error(t, c.Flush(ctx))
}

func TestConnectFailsFast(t *testing.T) {
	_, err := Connect(context.Background(), config.Redis{Addr: "127.0.0.1:1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to redis")

	_, err = Connect(context.Background(), config.Redis{URL: "not a url"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse REDIS_URL")
}
