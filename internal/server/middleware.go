package server

import (
	"time"

	"vehicle-auctions/internal/metrics"
	"vehicle-auctions/internal/session"
	"vehicle-auctions/services/auctions/helpers"
	"vehicle-auctions/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing and records them
func RequestLoggerMiddleware(rec metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(utils.RequestIDHeader)
		if requestID == "" {
			requestID = utils.NewRequestID()
		}
		c.Header(utils.RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(utils.WithRequestID(c.Request.Context(), requestID))

		c.Next() // process request

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		latency := time.Since(start)
		rec.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), latency)

		utils.Info("HTTP Request", map[string]any{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    latency.String(),
			"request_id": requestID,
		})
	}
}

// SessionMiddleware reads the caller's session from the request headers and
// hands it to the handlers through the gin context
func SessionMiddleware(c *gin.Context) {
	helpers.SetSession(c, session.FromRequest(c.Request))
	c.Next()
}
