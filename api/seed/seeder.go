package seed

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"Chirp/api/feed"
	"Chirp/api/store"
)

var usernames = []string{"steven", "martin", "ada", "grace"}

var tweets = []string{
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
	"Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.",
	"Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris.",
	"Duis aute irure dolor in reprehenderit in voluptate velit esse.",
	"Excepteur sint occaecat cupidatat non proident.",
}

// follows are index pairs into usernames.
var follows = [][2]int{
	{0, 1},
	{1, 0},
	{2, 0},
	{3, 0},
	{3, 2},
}

// Load drops every table, migrates, and writes the demo data through the
// same services the API uses.
func Load(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	if err := store.Reset(db); err != nil {
		return err
	}

	followStore := store.NewFollows(db)
	userSvc := feed.NewUserService(store.NewUsers(db), followStore, log)
	followSvc := feed.NewFollowService(followStore, log)
	tweetSvc := feed.NewTweetService(store.NewTweets(db), nil, log)

	ids := make([]uint, len(usernames))
	for i, name := range usernames {
		user, err := userSvc.Create(ctx, name)
		if err != nil {
			return errors.Wrapf(err, "cannot seed user %q", name)
		}
		ids[i] = user.ID
	}

	for _, content := range tweets {
		if _, err := tweetSvc.Create(ctx, content); err != nil {
			return errors.Wrap(err, "cannot seed tweets")
		}
	}

	for _, pair := range follows {
		if err := followSvc.Follow(ctx, ids[pair[0]], ids[pair[1]]); err != nil {
			return errors.Wrapf(err, "cannot seed follow %d -> %d", ids[pair[0]], ids[pair[1]])
		}
	}

	log.Info("seeded demo data",
		zap.Int("users", len(usernames)),
		zap.Int("tweets", len(tweets)),
		zap.Int("follows", len(follows)))
	return nil
}
