package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog logs one structured line per request after the handler chain runs.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		attrs := []any{
			"status", c.Writer.Status(),
			"method", c.Request.Method,
			"path", path,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if rid := c.GetString(HeaderRequestID); rid != "" {
			attrs = append(attrs, "request_id", rid)
		}
		if len(c.Errors) > 0 {
			slog.Error("request failed", append(attrs, "errors", c.Errors.String())...)
			return
		}
		slog.Info("request handled", attrs...)
	}
}
