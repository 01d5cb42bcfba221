package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"Chirp/api/feed"
)

type CreateUserRequest struct {
	Username string `json:"username"`
}

// CreateUser godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      CreateUserRequest  true  "Username"
// @Success      201   {object}  UserSummaryDTO
// @Failure      400   {object}  ErrorResponse
// @Router       /users [post]
func (server *Server) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.respondError(c, feed.ErrInvalidRequest)
		return
	}

	user, err := server.Users.Create(c.Request.Context(), req.Username)
	if err != nil {
		server.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, UserSummaryDTO{ID: user.ID, Username: user.Username})
}

// GetUser godoc
// @Summary      Get a user with follow counts
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  UserDTO
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func (server *Server) GetUser(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		server.respondError(c, feed.ErrInvalidRequest)
		return
	}

	user, err := server.Users.Get(c.Request.Context(), id)
	if err != nil {
		server.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

// GetFollowers godoc
// @Summary      List a user's followers, most recent first
// @Tags         users
// @Produce      json
// @Param        id      path      int     true   "User ID"
// @Param        limit   query     int     false  "Page size (1-50, default 20)"
// @Param        before  query     string  false  "next_cursor from the previous page"
// @Success      200     {object}  FollowListDTO
// @Failure      404     {object}  ErrorResponse
// @Router       /users/{id}/followers [get]
func (server *Server) GetFollowers(c *gin.Context) {
	server.listFollows(c, server.Users.Followers)
}

// GetFollowing godoc
// @Summary      List the users a user follows, most recent first
// @Tags         users
// @Produce      json
// @Param        id      path      int     true   "User ID"
// @Param        limit   query     int     false  "Page size (1-50, default 20)"
// @Param        before  query     string  false  "next_cursor from the previous page"
// @Success      200     {object}  FollowListDTO
// @Failure      404     {object}  ErrorResponse
// @Router       /users/{id}/following [get]
func (server *Server) GetFollowing(c *gin.Context) {
	server.listFollows(c, server.Users.Following)
}

type followLister func(ctx context.Context, id uint, limit int, before string) (*feed.FollowPage, error)

func (server *Server) listFollows(c *gin.Context, list followLister) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		server.respondError(c, feed.ErrInvalidRequest)
		return
	}

	page, err := list(c.Request.Context(), id, parseLimit(c.Query("limit")), c.Query("before"))
	if err != nil {
		server.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, followPageToResponse(page))
}

// GetRelationship godoc
// @Summary      Follow relationship between two users
// @Tags         users
// @Produce      json
// @Param        id      path      int  true  "Viewer user ID"
// @Param        target  path      int  true  "Target user ID"
// @Success      200     {object}  RelationshipDTO
// @Router       /users/{id}/relationship/{target} [get]
func (server *Server) GetRelationship(c *gin.Context) {
	viewerID, ok := parseID(c.Param("id"))
	if !ok {
		server.respondError(c, feed.ErrInvalidRequest)
		return
	}
	targetID, ok := parseID(c.Param("target"))
	if !ok {
		server.respondError(c, feed.ErrInvalidRequest)
		return
	}

	rel, err := server.Follows.Relationship(c.Request.Context(), viewerID, targetID)
	if err != nil {
		server.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, RelationshipDTO{
		Following:  rel.Following,
		FollowedBy: rel.FollowedBy,
		Mutual:     rel.Mutual,
	})
}
