// Package config reads settings from the environment, optionally seeded
// from a .env file outside production.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort          = "8888"
	defaultRedisAddr     = "localhost:6379"
	defaultTweetCacheTTL = 10 * time.Minute
)

type Config struct {
	Env                string
	Port               string
	LogLevel           string
	DatabaseURL        string
	DB                 DB
	Redis              Redis
	TweetCacheTTL      time.Duration
	CORSAllowedOrigins []string
}

type DB struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Redis struct {
	URL      string
	Addr     string
	Username string
	Password string
}

// Load builds a Config from the environment. On Heroku-style deployments
// config comes from the process environment; locally a .env file is read
// first without overriding variables already set.
func Load() *Config {
	if !strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		_ = godotenv.Load()
	}

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = strings.TrimSpace(os.Getenv("API_PORT"))
	}
	if port == "" {
		port = defaultPort
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = defaultRedisAddr
	}

	ttl := defaultTweetCacheTTL
	if raw := strings.TrimSpace(os.Getenv("TWEET_CACHE_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			ttl = parsed
		}
	}

	return &Config{
		Env:         strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV"))),
		Port:        port,
		LogLevel:    os.Getenv("LOG_LEVEL"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DB: DB{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
		Redis: Redis{
			URL:      strings.TrimSpace(os.Getenv("REDIS_URL")),
			Addr:     redisAddr,
			Username: os.Getenv("REDIS_USERNAME"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		TweetCacheTTL:      ttl,
		CORSAllowedOrigins: splitCSV(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// DSN prefers DATABASE_URL, forcing TLS in production, and otherwise
// assembles a DSN from the DB_* pieces.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		dsn := c.DatabaseURL
		if c.IsProduction() && !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}
		return dsn
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DB.Host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port,
	)
}

func splitCSV(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
