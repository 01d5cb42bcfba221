package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Chirp/api/feed"
)

type FollowRequest struct {
	FollowerID  uint `json:"follower_id" binding:"required"`
	FollowingID uint `json:"following_id" binding:"required"`
}

func (server *Server) bindFollow(c *gin.Context) (FollowRequest, bool) {
	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.respondError(c, feed.ErrInvalidRequest)
		return req, false
	}
	return req, true
}

// FollowUser godoc
// @Summary      Follow a user
// @Tags         follows
// @Accept       json
// @Param        body  body  FollowRequest  true  "Edge to create"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /follow [post]
func (server *Server) FollowUser(c *gin.Context) {
	req, ok := server.bindFollow(c)
	if !ok {
		return
	}
	if err := server.Follows.Follow(c.Request.Context(), req.FollowerID, req.FollowingID); err != nil {
		server.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UnfollowUser godoc
// @Summary      Unfollow a user
// @Tags         follows
// @Accept       json
// @Param        body  body  FollowRequest  true  "Edge to remove"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /follow [delete]
func (server *Server) UnfollowUser(c *gin.Context) {
	req, ok := server.bindFollow(c)
	if !ok {
		return
	}
	if err := server.Follows.Unfollow(c.Request.Context(), req.FollowerID, req.FollowingID); err != nil {
		server.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
