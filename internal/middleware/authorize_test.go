package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"hostelhub/internal/models"
)

func newAuthorizeRouter(user *models.User, roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/protected",
		func(c *gin.Context) {
			if user != nil {
				c.Set("current_user", *user)
			}
			c.Next()
		},
		RequireRoles(roles...),
		func(c *gin.Context) {
			c.Status(http.StatusOK)
		},
	)
	return router
}

func doRequest(t *testing.T, router *gin.Engine) int {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(rec, req)
	return rec.Code
}

func TestRequireRolesAllowsMatch(t *testing.T) {
	user := models.User{ID: "u1", Role: models.UserRoleAdmin}
	router := newAuthorizeRouter(&user, models.UserRoleAdmin)

	if code := doRequest(t, router); code != http.StatusOK {
		t.Errorf("status = %d, want 200", code)
	}
}

func TestRequireRolesForbidsMismatch(t *testing.T) {
	user := models.User{ID: "u1", Role: models.UserRoleStaff}
	router := newAuthorizeRouter(&user, models.UserRoleAdmin)

	if code := doRequest(t, router); code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", code)
	}
}

func TestRequireRolesRejectsAnonymous(t *testing.T) {
	router := newAuthorizeRouter(nil, models.UserRoleAdmin)

	if code := doRequest(t, router); code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", code)
	}
}

func TestRequireRolesMultipleRoles(t *testing.T) {
	user := models.User{ID: "u1", Role: models.UserRoleStaff}
	router := newAuthorizeRouter(&user, models.UserRoleStaff, models.UserRoleAdmin)

	if code := doRequest(t, router); code != http.StatusOK {
		t.Errorf("status = %d, want 200", code)
	}
}
