package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/menu-service/internal/logger"
)

// RequestLogger returns a middleware that logs one structured line per HTTP
// request through the request scoped logger set by RequestID. Paths listed in
// skip are not logged.
func RequestLogger(skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.Request.URL.Path
		if _, ok := skipped[path]; ok {
			return
		}

		statusCode := c.Writer.Status()
		event := logger.FromContext(c.Request.Context()).WithLevel(levelForStatus(statusCode))
		if route := c.FullPath(); route != "" {
			event = event.Str("route", route)
		}
		if menuID := c.Param("id"); menuID != "" {
			event = event.Str("resource_id", menuID)
		}
		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status_code", statusCode).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Int("response_size", c.Writer.Size()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Msg("HTTP request")
	}
}

// levelForStatus returns the log level based on HTTP status code.
func levelForStatus(statusCode int) zerolog.Level {
	switch {
	case statusCode >= 500:
		return zerolog.ErrorLevel
	case statusCode >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
