package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)

		fields := logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"duration":  duration,
			"client_ip": c.ClientIP(),
		}
		if admin := AdminUser(c); admin != "" {
			fields["admin"] = admin
		}

		entry := logrus.WithFields(fields)

		// 422 is a guest fixing their form, not a failure worth alerting on.
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("Request failed")
		case c.Writer.Status() >= 400 && c.Writer.Status() != 422:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request processed")
		}
	}
}
