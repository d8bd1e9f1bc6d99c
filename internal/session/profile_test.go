package session

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"camrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func fastPolicy(attempts int) RetryPolicy {
	return RetryPolicy{MaxAttempts: attempts, Delay: time.Millisecond}
}

func TestResolveProfileFoundImmediately(t *testing.T) {
	users := new(MockUserRepo)
	resolver := NewProfileResolver(users, fastPolicy(3))
	ctx := context.Background()

	stored := &domain.User{ID: 4, Email: "kit@example.com", Role: domain.RoleStaff}
	users.On("GetByEmail", ctx, "kit@example.com").Return(stored, nil).Once()

	outcome, user, err := resolver.Resolve(ctx, &Identity{Subject: "sub-1", Email: "kit@example.com", Name: "Kit"})
	assert.NoError(t, err)
	assert.Equal(t, ProfileFound, outcome)
	assert.Equal(t, stored, user)
	users.AssertExpectations(t)
}

func TestResolveProfileFoundAfterRetry(t *testing.T) {
	users := new(MockUserRepo)
	resolver := NewProfileResolver(users, fastPolicy(3))
	ctx := context.Background()

	// The profile row lags the auth record right after signup.
	stored := &domain.User{ID: 4, Email: "kit@example.com", Role: domain.RoleCustomer}
	users.On("GetByEmail", ctx, "kit@example.com").Return(nil, sql.ErrNoRows).Twice()
	users.On("GetByEmail", ctx, "kit@example.com").Return(stored, nil).Once()

	outcome, user, err := resolver.Resolve(ctx, &Identity{Email: "kit@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, ProfileFound, outcome)
	assert.Equal(t, int32(4), user.ID)
	users.AssertNumberOfCalls(t, "GetByEmail", 3)
}

func TestResolveCreatesFallbackProfile(t *testing.T) {
	users := new(MockUserRepo)
	resolver := NewProfileResolver(users, fastPolicy(2))
	ctx := context.Background()

	users.On("GetByEmail", ctx, "new@example.com").Return(nil, sql.ErrNoRows).Times(2)
	users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "new@example.com" && u.Name == "Newcomer" && u.Role == domain.RoleCustomer
	})).Return(nil).Once()

	outcome, user, err := resolver.Resolve(ctx, &Identity{Email: "new@example.com", Name: "Newcomer"})
	assert.NoError(t, err)
	assert.Equal(t, ProfileCreatedFallback, outcome)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	users.AssertExpectations(t)
}

func TestResolveFallbackNameDefaultsToEmail(t *testing.T) {
	users := new(MockUserRepo)
	resolver := NewProfileResolver(users, fastPolicy(1))
	ctx := context.Background()

	users.On("GetByEmail", ctx, "new@example.com").Return(nil, sql.ErrNoRows).Once()
	users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Name == "new@example.com"
	})).Return(nil).Once()

	outcome, _, err := resolver.Resolve(ctx, &Identity{Email: "new@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, ProfileCreatedFallback, outcome)
}

func TestResolveFailsOnPersistentError(t *testing.T) {
	users := new(MockUserRepo)
	resolver := NewProfileResolver(users, fastPolicy(3))
	ctx := context.Background()

	// Only a clean not-found earns the fallback; a flaky store does not.
	dbErr := errors.New("connection refused")
	users.On("GetByEmail", ctx, "kit@example.com").Return(nil, dbErr).Times(3)

	outcome, user, err := resolver.Resolve(ctx, &Identity{Email: "kit@example.com"})
	assert.Equal(t, ProfileFailed, outcome)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, dbErr)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestResolveFailsWhenCreateFails(t *testing.T) {
	users := new(MockUserRepo)
	resolver := NewProfileResolver(users, fastPolicy(1))
	ctx := context.Background()

	createErr := errors.New("unique violation")
	users.On("GetByEmail", ctx, "new@example.com").Return(nil, sql.ErrNoRows).Once()
	users.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(createErr).Once()

	outcome, user, err := resolver.Resolve(ctx, &Identity{Email: "new@example.com"})
	assert.Equal(t, ProfileFailed, outcome)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, createErr)
}

func TestResolveStopsOnCancelledContext(t *testing.T) {
	users := new(MockUserRepo)
	resolver := NewProfileResolver(users, RetryPolicy{MaxAttempts: 5, Delay: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	users.On("GetByEmail", ctx, "kit@example.com").Return(nil, sql.ErrNoRows).Once()
	cancel()

	outcome, _, err := resolver.Resolve(ctx, &Identity{Email: "kit@example.com"})
	assert.Equal(t, ProfileFailed, outcome)
	assert.ErrorIs(t, err, context.Canceled)
}
