package controllers

import (
	"github.com/gin-gonic/gin"

	"Chirp/api/metrics"
)

func (s *Server) initializeRoutes() {
	s.Router.GET("/healthz", s.Healthz)
	s.Router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := s.Router.Group("/api/v1")
	{
		// Tweet routes
		v1.POST("/tweets", s.CreateTweet)
		v1.GET("/tweets/:id", s.GetTweet)
		v1.GET("/timeline", s.GetTimeline)
		v1.GET("/timeline/cursor", s.GetTimelineCursor)

		// Users routes
		v1.POST("/users", s.CreateUser)
		v1.GET("/users/:id", s.GetUser)
		v1.GET("/users/:id/followers", s.GetFollowers)
		v1.GET("/users/:id/following", s.GetFollowing)
		v1.GET("/users/:id/relationship/:target", s.GetRelationship)

		// Follow routes
		v1.POST("/follow", s.FollowUser)
		v1.DELETE("/follow", s.UnfollowUser)
	}
}
