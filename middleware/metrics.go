// File: middleware/metrics.go
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fanconnect/metrics"
)

// RequestMetrics publishes latency and a request count for every request,
// dimensioned by route template and status class.
func RequestMetrics(pub metrics.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		dims := map[string]string{
			"Route":  route,
			"Status": strconv.Itoa(c.Writer.Status()/100) + "xx",
		}
		elapsed := float64(time.Since(start).Microseconds()) / 1000
		pub.Publish("RequestLatencyMs", elapsed, "Milliseconds", dims)
		pub.Publish("RequestCount", 1, "Count", dims)
	}
}
