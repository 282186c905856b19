package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Latency delays every request by a fixed duration. Used in development
// to exercise client loading states against a local backend.
func Latency(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		time.Sleep(d)
		c.Next()
	}
}
