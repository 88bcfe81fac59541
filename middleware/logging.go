package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bicudoweb/galeria/utils"
)

// RequestLogger records one structured access-log line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		utils.Sugar.Infow("http request",
			"status", c.Writer.Status(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"clientIP", c.ClientIP(),
			"latency", time.Since(start).String(),
		)
	}
}
