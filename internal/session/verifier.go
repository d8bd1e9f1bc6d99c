package session

import (
	"context"
	"errors"

	"camrent-backend/internal/security"
)

var ErrUnverified = errors.New("could not verify session token")

// Identity is what the session provider asserts about the caller after
// verifying a token. Profile resolution turns it into an application user.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// Verifier checks a bearer token against the configured session provider.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// localVerifier validates tokens this service signed itself.
type localVerifier struct {
	tokens security.TokenManager
}

func NewLocalVerifier(tokens security.TokenManager) Verifier {
	return &localVerifier{tokens: tokens}
}

func (v *localVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	claims, err := v.tokens.ValidateToken(token)
	if err != nil {
		return nil, ErrUnverified
	}
	if claims.Type != security.TokenTypeAccess {
		return nil, security.ErrWrongTokenType
	}
	return &Identity{
		Subject: claims.Subject,
		Email:   claims.Email,
	}, nil
}
