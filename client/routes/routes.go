// Package routes decides which client views the current session may
// reach. The check is a UX convenience over persisted state, never a
// security boundary; the server enforces authorization on every call.
package routes

import (
	"strings"

	"hostelhub/client/session"
)

// Requirement describes the access rule of a route. At most one role
// flag should be set; with none set, authentication alone suffices.
type Requirement struct {
	Public       bool
	AdminOnly    bool
	StaffOnly    bool
	ResidentOnly bool
}

type Decision int

const (
	// DecisionNotFound covers both unknown paths and insufficient
	// access. Unauthorized is intentionally indistinguishable from
	// not-found so protected paths do not reveal their existence.
	DecisionNotFound Decision = iota
	DecisionAllow
)

type Guard struct {
	sessions *session.Evaluator
	table    []route
}

type route struct {
	pattern string
	req     Requirement
}

func NewGuard(sessions *session.Evaluator) *Guard {
	return &Guard{
		sessions: sessions,
		table:    defaultTable,
	}
}

var defaultTable = []route{
	{"/", Requirement{Public: true}},
	{"/login", Requirement{Public: true}},
	{"/register", Requirement{Public: true}},
	{"/forgot-password", Requirement{Public: true}},
	{"/reset-password/:id/:resetToken", Requirement{Public: true}},
	{"/room/:roomNumber", Requirement{Public: true}},
	{"/contact", Requirement{Public: true}},
	{"/privacy-policy", Requirement{Public: true}},
	{"/terms-and-conditions", Requirement{Public: true}},

	{"/reserve-room/:roomNumber", Requirement{ResidentOnly: true}},
	{"/payment", Requirement{}},
	{"/payment-success", Requirement{}},
	{"/payment-failure", Requirement{}},
	{"/resident/profile", Requirement{ResidentOnly: true}},
	{"/resident/profile/edit", Requirement{ResidentOnly: true}},
	{"/resident/maintenance/create", Requirement{ResidentOnly: true}},
	{"/staff/maintenance", Requirement{StaffOnly: true}},
	{"/admin", Requirement{AdminOnly: true}},
	{"/admin/room/create", Requirement{AdminOnly: true}},
	{"/admin/maintenance/assign-staff", Requirement{AdminOnly: true}},
	{"/admin/add-expense", Requirement{AdminOnly: true}},
}

// Check evaluates a requirement against the current session. Pure and
// synchronous: no network calls, so it can be stale relative to the
// server's view.
func (g *Guard) Check(req Requirement) Decision {
	if req.Public {
		return DecisionAllow
	}

	sess, ok := g.sessions.Session()
	if !ok {
		return DecisionNotFound
	}

	switch {
	case req.AdminOnly && sess.Role != session.RoleAdmin:
		return DecisionNotFound
	case req.StaffOnly && sess.Role != session.RoleStaff:
		return DecisionNotFound
	case req.ResidentOnly && sess.Role != session.RoleResident:
		return DecisionNotFound
	}
	return DecisionAllow
}

// Resolve matches a concrete path against the route table, then
// applies Check. Unknown paths are not found.
func (g *Guard) Resolve(path string) Decision {
	req, ok := g.Lookup(path)
	if !ok {
		return DecisionNotFound
	}
	return g.Check(req)
}

// Lookup finds the requirement of the route matching path, honoring
// :param segments.
func (g *Guard) Lookup(path string) (Requirement, bool) {
	for _, r := range g.table {
		if matchPattern(r.pattern, path) {
			return r.req, true
		}
	}
	return Requirement{}, false
}

func matchPattern(pattern, path string) bool {
	pp := splitPath(pattern)
	ps := splitPath(path)
	if len(pp) != len(ps) {
		return false
	}
	for i := range pp {
		if strings.HasPrefix(pp[i], ":") {
			if ps[i] == "" {
				return false
			}
			continue
		}
		if pp[i] != ps[i] {
			return false
		}
	}
	return true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
