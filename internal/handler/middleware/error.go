package middleware

import (
	"log/slog"
	"net/http"

	"offers-service/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				// Public: Meta ⇒ Return as is
				if env, ok := err.Meta.(httperr.Envelope); ok {
					c.JSON(env.StatusCode, env)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Envelope{
			StatusCode: http.StatusInternalServerError,
			Errors:     []httperr.Entry{{Error: "Internal Error", ErrorMessage: "internal server error"}},
		})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.JSON(http.StatusInternalServerError, httperr.Envelope{
					StatusCode: http.StatusInternalServerError,
					Errors:     []httperr.Entry{{Error: "Internal Error", ErrorMessage: "internal server error"}},
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
