package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"camrent-backend/internal/authz"
	"camrent-backend/internal/domain"
	"camrent-backend/internal/session"
)

type contextKey string

const userContextKey contextKey = "current-user"

// AuthMiddleware evaluates the authorization gate for every request to a
// protected route. Evaluation happens per request, never cached, so a role
// reassignment or external sign-out takes effect on the next call.
type AuthMiddleware struct {
	sessions *session.Manager
}

func NewAuthMiddleware(sessions *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Require wraps a handler with the given access requirement.
func (m *AuthMiddleware) Require(req authz.Requirement, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := m.sessions.Resolve(r.Context(), bearerToken(r))

		switch authz.Decide(sess, req) {
		case authz.DecisionPending:
			// Session still resolving; no authorization decision is made.
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusServiceUnavailable, "session is still loading")
		case authz.DecisionRedirectLogin:
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error": "authentication required",
				"login": "/login?next=" + url.QueryEscape(r.URL.RequestURI()),
			})
		case authz.DecisionDenied:
			writeError(w, http.StatusForbidden, "access denied")
		case authz.DecisionAllow:
			ctx := r.Context()
			if sess.User != nil {
				ctx = context.WithValue(ctx, userContextKey, sess.User)
			}
			next(w, r.WithContext(ctx))
		}
	}
}

// UserFromContext returns the authenticated user, or nil on public routes.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:]
	}
	return header
}
