package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health reports dependency status. A degraded dependency turns the
// overall status but still answers 200 so load balancers keep routing
// while operators investigate.
func (h HandlerSet) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	check := func(name string, err error) string {
		if err == nil {
			return "ok"
		}
		status = "degraded"
		h.log.Error().Err(err).Str("dependency", name).Msg("health check failed")
		return "error"
	}

	dbStatus := check("postgres", h.db.Ping(ctx))
	cacheStatus := check("redis", h.cache.Ping(ctx).Err())

	c.JSON(http.StatusOK, gin.H{
		"status":      status,
		"database":    dbStatus,
		"cache":       cacheStatus,
		"environment": h.cfg.Environment,
	})
}
