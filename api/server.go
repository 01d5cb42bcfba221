package api

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"Chirp/api/cache"
	"Chirp/api/config"
	"Chirp/api/controllers"
	"Chirp/api/logger"
	"Chirp/api/seed"
	"Chirp/api/store"
)

var server = controllers.Server{}

func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg := config.Load()
	log, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// Run starts the HTTP server and blocks until it is shut down.
func Run() error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := server.Initialize(context.Background(), cfg, log); err != nil {
		return errors.Wrap(err, "initialize server")
	}
	return server.Run(cfg.Addr())
}

// Migrate applies the schema and exits.
func Migrate() error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := controllers.OpenDB(cfg, log)
	if err != nil {
		return err
	}
	if err := store.Migrate(db); err != nil {
		return err
	}
	log.Info("schema migrated")
	return nil
}

// Seed wipes the database and loads demo data.
func Seed() error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	db, err := controllers.OpenDB(cfg, log)
	if err != nil {
		return err
	}

	redisClient, err := cache.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Warn("tweet cache unavailable, skipping flush", zap.Error(err))
	}
	tweetCache := cache.NewTweetCache(redisClient, cfg.TweetCacheTTL, log)
	if err := tweetCache.Flush(ctx); err != nil {
		return err
	}

	return seed.Load(ctx, db, log)
}
