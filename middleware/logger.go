package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RequestLogger tags every request with a request id and logs
// method/path/status/latency once the handler chain finishes.
func RequestLogger(c *gin.Context) {
	start := time.Now()
	requestID := uuid.NewString()

	logger := log.With().Str("request_id", requestID).Logger()
	c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))

	c.Next()

	log.Info().
		Str("request_id", requestID).
		Str("method", c.Request.Method).
		Str("endpoint", c.Request.URL.Path).
		Int("status", c.Writer.Status()).
		Int64("latency", time.Since(start).Milliseconds()).
		Msg("Request processed")
}
