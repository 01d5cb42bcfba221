package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"Chirp/api/feed"
	"Chirp/api/middlewares"
)

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// statusFor maps a failure reason to its HTTP status.
func statusFor(reason feed.Reason) int {
	switch reason {
	case feed.ReasonEmptyContent,
		feed.ReasonContentTooLong,
		feed.ReasonEmptyUsername,
		feed.ReasonUsernameTooLong,
		feed.ReasonInvalidRequest,
		feed.ReasonSelfFollow:
		return http.StatusBadRequest
	case feed.ReasonNotFound, feed.ReasonUserNotFound:
		return http.StatusNotFound
	case feed.ReasonAlreadyFollowing, feed.ReasonNotFollowing:
		return http.StatusConflict
	case feed.ReasonStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (server *Server) respondError(c *gin.Context, err error) {
	ferr := feed.AsError(err)
	status := statusFor(ferr.Reason)
	if status >= http.StatusInternalServerError {
		server.Log.Error("request failed",
			zap.String("request_id", middlewares.CurrentRequestID(c)),
			zap.String("reason", string(ferr.Reason)),
			zap.Error(err))
	}
	c.JSON(status, ErrorResponse{Error: ferr.Message, Reason: string(ferr.Reason)})
}
