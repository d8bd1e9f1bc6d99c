package session

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"camrent-backend/internal/domain"
	"camrent-backend/internal/logger"
	"camrent-backend/internal/repository"
)

// ProfileOutcome is the typed result of resolving a verified identity to a
// stored user profile.
type ProfileOutcome int

const (
	ProfileFound ProfileOutcome = iota
	ProfileCreatedFallback
	ProfileFailed
)

// RetryPolicy bounds the lookup loop for profiles that may not exist yet
// right after signup (the profile row is written by a separate path and can
// lag the auth record).
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// ProfileResolver looks up the profile for a verified identity, retrying a
// bounded number of times before falling back to creating a customer
// profile. There is no open-ended polling: the loop always terminates in one
// of the three outcomes.
type ProfileResolver struct {
	users  repository.UserRepository
	policy RetryPolicy
}

func NewProfileResolver(users repository.UserRepository, policy RetryPolicy) *ProfileResolver {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &ProfileResolver{users: users, policy: policy}
}

func (r *ProfileResolver) Resolve(ctx context.Context, id *Identity) (ProfileOutcome, *domain.User, error) {
	var lastErr error
	for attempt := 1; attempt <= r.policy.MaxAttempts; attempt++ {
		user, err := r.users.GetByEmail(ctx, id.Email)
		if err == nil {
			return ProfileFound, user, nil
		}
		lastErr = err
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Warn("Profile lookup failed", "email", id.Email, "attempt", attempt, "error", err)
		}
		if attempt < r.policy.MaxAttempts {
			select {
			case <-ctx.Done():
				return ProfileFailed, nil, ctx.Err()
			case <-time.After(r.policy.Delay):
			}
		}
	}

	// Only a clean not-found earns the fallback; anything else is a failure.
	if !errors.Is(lastErr, sql.ErrNoRows) {
		return ProfileFailed, nil, lastErr
	}

	user := &domain.User{
		Email: id.Email,
		Name:  id.Name,
		Role:  domain.RoleCustomer,
	}
	if user.Name == "" {
		user.Name = id.Email
	}
	if err := r.users.Create(ctx, user); err != nil {
		return ProfileFailed, nil, err
	}
	logger.Info("Created fallback profile for verified identity", "email", id.Email, "user_id", user.ID)
	return ProfileCreatedFallback, user, nil
}
