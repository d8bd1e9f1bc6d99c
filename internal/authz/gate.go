package authz

import "camrent-backend/internal/domain"

// Requirement is a route's declared access level.
type Requirement int

const (
	RequireNone Requirement = iota
	RequireAuthenticated
	RequireStaff // staff or admin
	RequireAdmin
)

// Decision is the outcome of evaluating a session against a requirement.
type Decision int

const (
	// DecisionPending: the session is still resolving; render a loading
	// state and make no authorization decision yet.
	DecisionPending Decision = iota
	// DecisionRedirectLogin: no user; send to the login view, preserving
	// the originally requested path.
	DecisionRedirectLogin
	// DecisionDenied: a user exists but their role does not satisfy the
	// requirement; render access denied inline, never a second redirect.
	DecisionDenied
	DecisionAllow
)

// Session is the current-user signal exposed by the session collaborator.
// Loading is true until the collaborator has resolved whether a user exists.
type Session struct {
	User    *domain.User
	Loading bool
}

// RoleSatisfies is the single capability check for the whole codebase.
// Inline role comparisons elsewhere are a bug.
func RoleSatisfies(role domain.Role, req Requirement) bool {
	switch req {
	case RequireNone, RequireAuthenticated:
		return true
	case RequireStaff:
		return role == domain.RoleStaff || role == domain.RoleAdmin
	case RequireAdmin:
		return role == domain.RoleAdmin
	default:
		return false
	}
}

// Decide evaluates the gate. It is called on every request, so a session
// change (for example an external sign-out) is picked up immediately.
func Decide(sess Session, req Requirement) Decision {
	if req == RequireNone {
		return DecisionAllow
	}
	if sess.Loading {
		return DecisionPending
	}
	if sess.User == nil {
		return DecisionRedirectLogin
	}
	if !RoleSatisfies(sess.User.Role, req) {
		return DecisionDenied
	}
	return DecisionAllow
}
