package service

import (
	"context"
	"testing"

	"camrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpdateProfileMergesNonEmptyFields(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewUserService(repo)
	ctx := context.Background()

	stored := &domain.User{ID: 4, Name: "Old Name", Email: "old@example.com", PhoneNumber: "555-0100"}
	repo.On("GetByID", ctx, int32(4)).Return(stored, nil).Once()
	repo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
		// Empty fields keep their stored values.
		return u.Name == "New Name" && u.Email == "old@example.com" && u.PhoneNumber == "555-0199"
	})).Return(nil).Once()

	assert.NoError(t, svc.UpdateProfile(ctx, 4, "New Name", "", "555-0199"))
	repo.AssertExpectations(t)
}

func TestReassignRole(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewUserService(repo)
	ctx := context.Background()

	stored := &domain.User{ID: 4, Role: domain.RoleCustomer}
	repo.On("GetByID", ctx, int32(4)).Return(stored, nil).Once()
	repo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleStaff
	})).Return(nil).Once()

	assert.NoError(t, svc.ReassignRole(ctx, 4, domain.RoleStaff))
	repo.AssertExpectations(t)
}

func TestReassignRoleRejectsUnknownRole(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewUserService(repo)

	err := svc.ReassignRole(context.Background(), 4, domain.Role("SUPERUSER"))
	assert.ErrorIs(t, err, ErrUnknownRole)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
