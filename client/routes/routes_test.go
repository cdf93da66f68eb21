package routes

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"hostelhub/client/session"
	"hostelhub/client/store"
)

func guardWithRole(t *testing.T, role string) *Guard {
	t.Helper()
	s := store.NewMemStore()
	if role != "" {
		token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("sign token: %v", err)
		}
		s.Write(store.KeyToken, signed)
		s.Write(store.KeyRole, role)
	}
	return NewGuard(session.NewEvaluator(s, zerolog.Nop()))
}

func TestCheckRoleMatrix(t *testing.T) {
	tests := []struct {
		name string
		role string
		req  Requirement
		want Decision
	}{
		{"admin route, admin role", "admin", Requirement{AdminOnly: true}, DecisionAllow},
		{"admin route, staff role", "staff", Requirement{AdminOnly: true}, DecisionNotFound},
		{"staff route, staff role", "staff", Requirement{StaffOnly: true}, DecisionAllow},
		{"resident route, resident role", "resident", Requirement{ResidentOnly: true}, DecisionAllow},
		{"resident route, admin role", "admin", Requirement{ResidentOnly: true}, DecisionNotFound},
		{"auth-only route, any role", "staff", Requirement{}, DecisionAllow},
		{"auth-only route, no token", "", Requirement{}, DecisionNotFound},
		{"admin route, no token", "", Requirement{AdminOnly: true}, DecisionNotFound},
		{"public route, no token", "", Requirement{Public: true}, DecisionAllow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := guardWithRole(t, tt.role)
			if got := g.Check(tt.req); got != tt.want {
				t.Fatalf("Check(%+v) = %v, want %v", tt.req, got, tt.want)
			}
		})
	}
}

func TestResolvePaths(t *testing.T) {
	tests := []struct {
		name string
		role string
		path string
		want Decision
	}{
		{"public home without token", "", "/", DecisionAllow},
		{"room detail with params", "", "/room/101", DecisionAllow},
		{"reset password with params", "", "/reset-password/u1/tok123", DecisionAllow},
		{"profile without token", "", "/resident/profile", DecisionNotFound},
		{"profile as resident", "resident", "/resident/profile", DecisionAllow},
		{"add expense as admin", "admin", "/admin/add-expense", DecisionAllow},
		{"add expense as resident", "resident", "/admin/add-expense", DecisionNotFound},
		{"staff queue as staff", "staff", "/staff/maintenance", DecisionAllow},
		{"reserve room as resident", "resident", "/reserve-room/101", DecisionAllow},
		{"payment authenticated", "resident", "/payment", DecisionAllow},
		{"unknown path", "admin", "/no-such-page", DecisionNotFound},
		{"param segment missing", "", "/room", DecisionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := guardWithRole(t, tt.role)
			if got := g.Resolve(tt.path); got != tt.want {
				t.Fatalf("Resolve(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestUnknownStoredRoleIsRejected(t *testing.T) {
	g := guardWithRole(t, "superuser")
	if g.Check(Requirement{}) != DecisionNotFound {
		t.Fatal("unknown role must not authenticate")
	}
}
