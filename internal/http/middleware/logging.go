// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides request correlation, access logging and panic recovery:
//
//   - RequestID() reuses or mints an X-Request-ID and stores it in the context.
//   - Logger() writes one structured access line per request and attaches a
//     request-scoped zerolog.Logger that handlers fetch with LoggerFrom().
//   - Recovery() turns panics into the JSON error envelope used by the API.
//
// Install them in that order so panics and errors carry the request id.
package middleware

import (
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	requestIDKey    = "requestID"
	requestIDHeader = "X-Request-ID"
	loggerKey       = "logger"

	// UserIDKey holds the optional caller id taken from X-User-ID.
	UserIDKey    = "userID"
	userIDHeader = "X-User-ID"

	maxQueryLogLength = 1024
	maxUserIDLength   = 64
)

// RequestID propagates the incoming X-Request-ID or generates a UUIDv4. It
// also records a caller id from X-User-ID, when present, under UserIDKey.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(requestIDHeader, rid)

		if uid := strings.TrimSpace(c.GetHeader(userIDHeader)); uid != "" {
			c.Set(UserIDKey, truncate(uid, maxUserIDLength))
		}
		c.Next()
	}
}

// RequestIDFrom returns the correlation id set by RequestID, or "".
func RequestIDFrom(c *gin.Context) string {
	v, _ := c.Get(requestIDKey)
	return asString(v)
}

// LogOptions tunes Logger.
type LogOptions struct {
	// SkipPaths are served without an access line (exact path match).
	SkipPaths []string
	// MaskHeaders are logged as "[REDACTED]" on top of the built-in set.
	MaskHeaders []string
	// Headers adds the scrubbed request headers to each access line.
	Headers bool
}

// Logger writes a structured access log per request. The level follows the
// outcome: error for 5xx or recorded gin errors, warn for 4xx, info otherwise.
// The query string and headers pass through a Redactor first; bodies are
// never logged. Skipped paths still get a request-scoped logger.
func Logger(opts LogOptions) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(opts.SkipPaths))
	for _, p := range opts.SkipPaths {
		skipped[p] = struct{}{}
	}
	red := NewRedactor(opts.MaskHeaders...)

	return func(c *gin.Context) {
		start := time.Now()

		uid, _ := c.Get(UserIDKey)
		l := log.With().
			Str("request_id", RequestIDFrom(c)).
			Str("user_id", asString(uid)).
			Str("method", c.Request.Method).
			Str("path", routeOf(c)).
			Logger()
		c.Set(loggerKey, &l)

		c.Next()

		if _, ok := skipped[c.Request.URL.Path]; ok {
			return
		}

		status := c.Writer.Status()
		var ev *zerolog.Event
		switch {
		case len(c.Errors) > 0:
			ev = l.Error().Str("errors", c.Errors.String())
		case status >= http.StatusInternalServerError:
			ev = l.Error()
		case status >= http.StatusBadRequest:
			ev = l.Warn()
		default:
			ev = l.Info()
		}
		if opts.Headers {
			ev = ev.Interface("headers", red.Headers(c.Request.Header))
		}
		ev.
			Int("status", status).
			Str("remote_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Str("query", truncate(red.Scrub(c.Request.URL.RawQuery), maxQueryLogLength)).
			Int64("bytes_in", c.Request.ContentLength).
			Int("bytes_out", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// Recovery converts a panic into a 500 error envelope and logs the stack.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			rid := RequestIDFrom(c)
			LoggerFrom(c).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if c.Writer.Written() {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.Header(requestIDHeader, rid)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success":    false,
				"error":      "internal server error",
				"code":       "internal_error",
				"request_id": rid,
			})
		}()
		c.Next()
	}
}

// LoggerFrom returns the request-scoped logger, or the global logger when
// Logger() is not installed.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if lg, ok := v.(*zerolog.Logger); ok {
			return lg
		}
	}
	l := log.With().Logger()
	return &l
}

func routeOf(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return c.Request.URL.Path
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// truncate caps s at max bytes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
