package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ezhilarasu1330/React-Todo-App/pkg/metrics"
)

func Metrics(appMetrics *metrics.AppMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		appMetrics.IncrementActiveConnections(c.Request.Context())
		defer appMetrics.DecrementActiveConnections(c.Request.Context())

		c.Next()

		duration := time.Since(start)

		path := c.FullPath()

		if path == "" {
			path = "unmatched"
		}

		appMetrics.RecordRequest(
			c.Request.Context(),
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			duration,
		)
	}
}
