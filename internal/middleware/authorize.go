package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostelhub/internal/models"
)

// RequireRoles gates a route group to the given roles. It assumes Auth
// ran earlier in the chain; a missing user means the chain is miswired
// or the token never arrived, so it answers 401 rather than 403.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userVal, exists := c.Get("current_user")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		user, ok := userVal.(models.User)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_user"})
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
