package session

import (
	"context"

	"camrent-backend/internal/authz"
	"camrent-backend/internal/logger"
)

// Manager is the session collaborator: it turns a bearer token into the
// current-user signal the authorization gate consumes. Constructed once at
// application start.
type Manager struct {
	verifier Verifier
	profiles *ProfileResolver
}

func NewManager(verifier Verifier, profiles *ProfileResolver) *Manager {
	return &Manager{verifier: verifier, profiles: profiles}
}

// Resolve produces the session for a request. An absent or unverifiable
// token yields an unauthenticated session, never an error: the gate decides
// what that means for the route.
func (m *Manager) Resolve(ctx context.Context, token string) authz.Session {
	if token == "" {
		return authz.Session{}
	}

	id, err := m.verifier.Verify(ctx, token)
	if err != nil {
		logger.Debug("Session token rejected", "error", err)
		return authz.Session{}
	}

	outcome, user, err := m.profiles.Resolve(ctx, id)
	if err != nil || outcome == ProfileFailed {
		logger.Warn("Profile resolution failed for verified identity", "email", id.Email, "error", err)
		return authz.Session{}
	}
	return authz.Session{User: user}
}
