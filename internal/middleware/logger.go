package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hostelhub/internal/security"
)

// Logger emits one structured line per request. Health probes are
// skipped to keep the log readable, and the acting user is attached
// when the auth middleware has resolved one.
func Logger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/api/healthz" {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		}

		event = event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("client_ip", c.ClientIP()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", c.Writer.Header().Get(requestIDHeader))

		if value, ok := c.Get("access_claims"); ok {
			if claims, ok := value.(security.AccessClaims); ok {
				event = event.Str("user_id", claims.UserID).Str("role", claims.Role)
			}
		}

		event.Msg("http request")
	}
}
