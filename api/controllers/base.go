package controllers

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"Chirp/api/cache"
	"Chirp/api/config"
	"Chirp/api/feed"
	"Chirp/api/logger"
	"Chirp/api/middlewares"
	"Chirp/api/store"
)

type Server struct {
	DB      *gorm.DB
	Router  *gin.Engine
	Log     *zap.Logger
	Tweets  *feed.TweetService
	Users   *feed.UserService
	Follows *feed.FollowService
}

// OpenDB connects to Postgres with SQL logging routed through zap.
func OpenDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	level := gormLogger.Warn
	if !cfg.IsProduction() {
		level = gormLogger.Info
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.NewGorm(log, level),
	})
	if err != nil {
		return nil, errors.Wrap(err, "connect to postgres")
	}
	return db, nil
}

// ===============================
// SERVER INITIALIZATION
// ===============================
func (server *Server) Initialize(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	db, err := OpenDB(cfg, log)
	if err != nil {
		return err
	}
	if err := store.Migrate(db); err != nil {
		return err
	}

	// Redis is optional: without it every tweet read goes to Postgres.
	redisClient, err := cache.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Warn("tweet cache disabled", zap.Error(err))
	}
	tweetCache := cache.NewTweetCache(redisClient, cfg.TweetCacheTTL, log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	server.Setup(db, tweetCache, log, cfg.CORSAllowedOrigins)
	return nil
}

// Setup wires stores, services and routes around an open database. cache
// may be nil.
func (server *Server) Setup(db *gorm.DB, tweetCache feed.TweetCache, log *zap.Logger, allowedOrigins []string) {
	if log == nil {
		log = zap.NewNop()
	}
	follows := store.NewFollows(db)

	server.DB = db
	server.Log = log
	server.Tweets = feed.NewTweetService(store.NewTweets(db), tweetCache, log)
	server.Users = feed.NewUserService(store.NewUsers(db), follows, log)
	server.Follows = feed.NewFollowService(follows, log)

	server.Router = gin.New()
	server.Router.Use(gin.Recovery())
	server.Router.Use(middlewares.RequestID())
	server.Router.Use(middlewares.AccessLog(log))
	server.Router.Use(middlewares.CORSMiddleware(allowedOrigins))
	server.initializeRoutes()
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests.
func (server *Server) Run(addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		server.Log.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	server.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Healthz pings the database.
func (server *Server) Healthz(c *gin.Context) {
	sqlDB, err := server.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		server.Log.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
