// Package session evaluates the locally stored credential. The client
// never holds the signing secret, so only the expiry claim is read;
// server-side enforcement is the real authority.
package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"hostelhub/client/store"
)

// Role is the closed set of roles the client understands. Unknown
// strings are rejected at the store boundary instead of propagating.
type Role string

const (
	RoleResident Role = "resident"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleResident, RoleStaff, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Session is the derived snapshot of the stored credential. It is
// only meaningful while the evaluator reports authenticated.
type Session struct {
	Token          string
	Role           Role
	ResidentStatus string
}

type Evaluator struct {
	store  store.Store
	now    func() time.Time
	parser *jwt.Parser
	log    zerolog.Logger
}

func NewEvaluator(s store.Store, log zerolog.Logger) *Evaluator {
	return &Evaluator{
		store:  s,
		now:    time.Now,
		parser: jwt.NewParser(),
		log:    log,
	}
}

// WithNow overrides the clock. Clock skew between client and issuer
// is not compensated.
func (e *Evaluator) WithNow(now func() time.Time) *Evaluator {
	e.now = now
	return e
}

// IsAuthenticated reports whether a token is present and its expiry
// claim lies in the future. A malformed token counts as
// unauthenticated and is logged, never a panic.
func (e *Evaluator) IsAuthenticated() bool {
	token, ok := e.store.Read(store.KeyToken)
	if !ok || token == "" {
		return false
	}

	exp, err := e.expiry(token)
	if err != nil {
		e.log.Warn().Err(err).Msg("stored token unreadable")
		return false
	}
	return exp.After(e.now())
}

func (e *Evaluator) expiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	// Signature is deliberately not verified here. The client has no
	// secret; only the expiry claim is of interest.
	if _, _, err := e.parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("decode token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("token has no usable expiry claim")
	}
	return exp.Time, nil
}

// Repair clears token, role and resident status together when the
// stored credential no longer authenticates. Clearing them as a unit
// avoids half-cleared sessions.
func (e *Evaluator) Repair() {
	if e.IsAuthenticated() {
		return
	}
	if _, ok := e.store.Read(store.KeyToken); !ok {
		if _, ok := e.store.Read(store.KeyRole); !ok {
			return
		}
	}

	e.log.Debug().Msg("clearing stale session")
	for _, key := range []string{store.KeyToken, store.KeyRole, store.KeyResidentStatus} {
		if err := e.store.Remove(key); err != nil {
			e.log.Error().Err(err).Str("key", key).Msg("session cleanup failed")
		}
	}
}

// Session returns the current snapshot. ok is false when the stored
// credential does not authenticate or carries an unknown role.
func (e *Evaluator) Session() (Session, bool) {
	if !e.IsAuthenticated() {
		return Session{}, false
	}

	token, _ := e.store.Read(store.KeyToken)
	rawRole, _ := e.store.Read(store.KeyRole)
	role, err := ParseRole(rawRole)
	if err != nil {
		e.log.Warn().Err(err).Msg("stored role rejected")
		return Session{}, false
	}
	status, _ := e.store.Read(store.KeyResidentStatus)

	return Session{
		Token:          token,
		Role:           role,
		ResidentStatus: status,
	}, true
}
