// Package metrics holds the process-wide prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests counts requests by method, matched route and status code.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	// HTTPDuration tracks handler latency per route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chirp_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
	}, []string{"method", "route"})

	// FollowOperations counts follow/unfollow attempts by outcome reason.
	FollowOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_follow_operations_total",
		Help: "Follow and unfollow operations by outcome",
	}, []string{"operation", "outcome"})

	// TimelinePages counts served timeline pages by pagination mode.
	TimelinePages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_timeline_pages_total",
		Help: "Timeline pages served by pagination mode",
	}, []string{"mode"})

	// TweetCacheLookups counts tweet cache hits and misses.
	TweetCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_tweet_cache_lookups_total",
		Help: "Tweet cache lookups by result",
	}, []string{"result"})
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
