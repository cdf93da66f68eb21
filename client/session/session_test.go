package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"hostelhub/client/store"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"uid": "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func seededEvaluator(t *testing.T, token string) (*Evaluator, *store.MemStore) {
	t.Helper()
	s := store.NewMemStore()
	if token != "" {
		s.Write(store.KeyToken, token)
		s.Write(store.KeyRole, "resident")
		s.Write(store.KeyResidentStatus, "inactive")
	}
	return NewEvaluator(s, zerolog.Nop()), s
}

func TestIsAuthenticatedValidToken(t *testing.T) {
	eval, _ := seededEvaluator(t, signedToken(t, time.Now().Add(time.Hour)))
	if !eval.IsAuthenticated() {
		t.Fatal("expected authenticated")
	}

	sess, ok := eval.Session()
	if !ok {
		t.Fatal("expected session snapshot")
	}
	if sess.Role != RoleResident || sess.ResidentStatus != "inactive" {
		t.Fatalf("session = %+v", sess)
	}
}

func TestIsAuthenticatedExpiredToken(t *testing.T) {
	eval, _ := seededEvaluator(t, signedToken(t, time.Now().Add(-time.Hour)))
	if eval.IsAuthenticated() {
		t.Fatal("expected unauthenticated for expired token")
	}
}

func TestIsAuthenticatedMissingToken(t *testing.T) {
	eval, _ := seededEvaluator(t, "")
	if eval.IsAuthenticated() {
		t.Fatal("expected unauthenticated with no token")
	}
}

func TestIsAuthenticatedMalformedToken(t *testing.T) {
	for _, token := range []string{"garbage", "a.b", "..", "x.y.z"} {
		eval, _ := seededEvaluator(t, token)
		if eval.IsAuthenticated() {
			t.Fatalf("token %q reported authenticated", token)
		}
	}
}

func TestRepairClearsSessionKeysTogether(t *testing.T) {
	eval, s := seededEvaluator(t, signedToken(t, time.Now().Add(-time.Minute)))

	eval.Repair()

	for _, key := range []string{store.KeyToken, store.KeyRole, store.KeyResidentStatus} {
		if _, ok := s.Read(key); ok {
			t.Fatalf("key %q survived repair", key)
		}
	}
}

func TestRepairKeepsHealthySession(t *testing.T) {
	eval, s := seededEvaluator(t, signedToken(t, time.Now().Add(time.Hour)))

	eval.Repair()

	if _, ok := s.Read(store.KeyToken); !ok {
		t.Fatal("repair removed a valid session")
	}
}

func TestClockIsInjectable(t *testing.T) {
	token := signedToken(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))
	eval, _ := seededEvaluator(t, token)

	eval.WithNow(func() time.Time { return time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC) })
	if !eval.IsAuthenticated() {
		t.Fatal("expected authenticated before expiry")
	}

	eval.WithNow(func() time.Time { return time.Date(2027, 1, 2, 0, 0, 0, 0, time.UTC) })
	if eval.IsAuthenticated() {
		t.Fatal("expected unauthenticated after expiry")
	}
}

func TestParseRole(t *testing.T) {
	for _, good := range []string{"resident", "staff", "admin"} {
		if _, err := ParseRole(good); err != nil {
			t.Fatalf("ParseRole(%q): %v", good, err)
		}
	}
	if _, err := ParseRole("superuser"); err == nil {
		t.Fatal("expected error for unknown role")
	}
}
