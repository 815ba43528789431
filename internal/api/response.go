package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"til_mirror/internal/apperr"
)

// Envelope wraps all API responses in a consistent structure
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *Meta      `json:"meta,omitempty"`
}

type ErrorInfo struct {
	Code    apperr.Code `json:"code"`
	Message string      `json:"message"`
}

// Meta carries the source's continuation state for list responses.
type Meta struct {
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    data,
	})
}

func okWithMeta(c *gin.Context, data any, meta *Meta) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// fail classifies err and writes the matching status.
func fail(c *gin.Context, err error) {
	classified := apperr.Classify(err)
	c.JSON(statusFor(classified.Code), Envelope{
		Success: false,
		Error: &ErrorInfo{
			Code:    classified.Code,
			Message: classified.Message,
		},
	})
}

func statusFor(code apperr.Code) int {
	switch code {
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.InvalidRequest:
		return http.StatusBadRequest
	case apperr.RateLimited:
		return http.StatusTooManyRequests
	case apperr.ExternalServiceError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
