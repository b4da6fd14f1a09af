package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scholardesk/research-hub-api/internal/service"
)

const metricsPath = "/metrics"

// Metrics records duration and volume per route. Unmatched requests are
// labeled with their raw path; scrapes of the metrics endpoint itself are
// not observed.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		if path == metricsPath {
			return
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
