package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/menu-service/internal/domain/dto"
	"github.com/guttosm/menu-service/internal/i18n"
	"github.com/guttosm/menu-service/internal/logger"
)

// ErrorHandler returns a middleware that logs errors attached to the gin
// context. Client errors are logged at warn level. When no response was
// written yet a 500 is returned.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		status := c.Writer.Status()
		if !c.Writer.Written() {
			status = http.StatusInternalServerError
		}

		l := logger.FromContext(c.Request.Context())
		event := l.Error()
		if status < http.StatusInternalServerError {
			event = l.Warn()
		}
		event.
			Err(err.Err).
			Int("status_code", status).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, message).
				WithRequestID(GetRequestID(c)))
		}
	}
}
