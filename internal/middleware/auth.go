package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hostelhub/internal/config"
	"hostelhub/internal/repository"
	"hostelhub/internal/security"
)

// Auth verifies the bearer token and loads the current user into the
// request context. Client-side guards are a UX convenience; this middleware
// is the actual authorization boundary.
func Auth(cfg *config.AppConfig, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_token"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ParseAccessToken(tokenStr, cfg.Security.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_not_found"})
			return
		}

		c.Set("access_claims", *claims)
		c.Set("current_user", user)

		c.Next()
	}
}
