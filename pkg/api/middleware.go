package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reporadar/reporadar/pkg/metrics"
)

// requestLogger logs every request and feeds the HTTP metrics. The route
// label uses the matched route pattern, not the raw path, to keep metric
// cardinality bounded.
func requestLogger(logger *slog.Logger, prom *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		prom.ObserveRequest(route, c.Writer.Status(), duration)
		logger.Info("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", duration)
	}
}
