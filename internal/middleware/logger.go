package middleware

import (
	"time"

	"github.com/osa911/astrobooking/internal/api/constants"
	"github.com/osa911/astrobooking/internal/logging"
	"github.com/osa911/astrobooking/internal/utils"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per request through the application logger
func Logger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.LogHTTPRequest(
			c.Request.Method,
			c.Request.URL.Path,
			utils.GetRealIP(c),
			c.GetString(constants.ContextKeyRequestID),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
