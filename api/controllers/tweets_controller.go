package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Chirp/api/feed"
)

type CreateTweetRequest struct {
	Content string `json:"content"`
}

// CreateTweet godoc
// @Summary      Create a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Param        body  body      CreateTweetRequest  true  "Tweet content"
// @Success      201   {object}  TweetDTO
// @Failure      400   {object}  ErrorResponse
// @Router       /tweets [post]
func (server *Server) CreateTweet(c *gin.Context) {
	var req CreateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.respondError(c, feed.ErrInvalidRequest)
		return
	}

	tweet, err := server.Tweets.Create(c.Request.Context(), req.Content)
	if err != nil {
		server.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tweetToResponse(tweet))
}

// GetTweet godoc
// @Summary      Get a tweet by id
// @Tags         tweets
// @Produce      json
// @Param        id   path      int  true  "Tweet ID"
// @Success      200  {object}  TweetDTO
// @Failure      404  {object}  ErrorResponse
// @Router       /tweets/{id} [get]
func (server *Server) GetTweet(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		server.respondError(c, feed.ErrInvalidRequest)
		return
	}

	tweet, err := server.Tweets.Get(c.Request.Context(), id)
	if err != nil {
		server.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tweetToResponse(tweet))
}

// GetTimeline godoc
// @Summary      Offset-paginated timeline
// @Description  Newest first. Pages may skip or repeat items while tweets are being created; prefer /timeline/cursor.
// @Tags         tweets
// @Produce      json
// @Param        limit   query     int  false  "Page size (1-50, default 20)"
// @Param        offset  query     int  false  "Rows to skip"
// @Success      200     {array}   TweetDTO
// @Router       /timeline [get]
func (server *Server) GetTimeline(c *gin.Context) {
	tweets, err := server.Tweets.Timeline(
		c.Request.Context(),
		parseLimit(c.Query("limit")),
		parseOffset(c.Query("offset")),
	)
	if err != nil {
		server.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tweetsToResponse(tweets))
}

// GetTimelineCursor godoc
// @Summary      Cursor-paginated timeline
// @Tags         tweets
// @Produce      json
// @Param        limit   query     int     false  "Page size (1-50, default 20)"
// @Param        before  query     string  false  "next_cursor from the previous page"
// @Success      200     {object}  TimelineDTO
// @Router       /timeline/cursor [get]
func (server *Server) GetTimelineCursor(c *gin.Context) {
	page, err := server.Tweets.TimelineCursor(
		c.Request.Context(),
		parseLimit(c.Query("limit")),
		c.Query("before"),
	)
	if err != nil {
		server.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, timelineToResponse(page))
}
