// Package handlers provides the JSON API handlers.
//
// This file defines the response helpers shared by every endpoint. Errors use
// one envelope so the browser pages and API clients can branch on `success`
// and `code` alike:
//
//	HTTP/1.1 400 Bad Request
//	{
//	  "success": false,
//	  "error": "weight and height must be positive numbers",
//	  "code": "bad_request",
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000"
//	}
//
// fail() logs 5xx responses with the request-scoped logger; mapError() turns
// service and store errors into the matching status and code.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/holistiq/internal/assistant"
	"github.com/tbourn/holistiq/internal/http/middleware"
	"github.com/tbourn/holistiq/internal/repo"
	"github.com/tbourn/holistiq/internal/services"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
type ErrorResponse struct {
	// Always false
	Success bool `json:"success" example:"false"`
	// Human-readable message (safe to show to users)
	Error string `json:"error" example:"weight and height must be positive numbers"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"bad_request"`
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
}

// MessageResponse acknowledges a write.
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Workout saved successfully"`
}

// fail aborts the request with a structured error and logs server-side errors.
func fail(c *gin.Context, status int, code, msg string) {
	resp := ErrorResponse{
		Success:   false,
		Error:     msg,
		Code:      code,
		RequestID: c.Writer.Header().Get("X-Request-ID"),
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail() for router-level fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// mapError translates a service error into an HTTP error. fallback is the
// code used for unexpected (500) errors.
func mapError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, services.ErrUnknownAssessment),
		errors.Is(err, services.ErrReportNotFound),
		errors.Is(err, services.ErrNoHealthData):
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, assistant.ErrNotConfigured):
		fail(c, http.StatusServiceUnavailable, ErrCodeAssistantUnavailable, err.Error())
	case errors.Is(err, repo.ErrStoreUnavailable):
		fail(c, http.StatusInternalServerError, ErrCodeStoreUnavailable, err.Error())
	default:
		fail(c, http.StatusInternalServerError, fallback, err.Error())
	}
}
