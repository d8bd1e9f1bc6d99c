package service

import (
	"context"
	"errors"

	"camrent-backend/internal/domain"
	"camrent-backend/internal/repository"
)

var ErrUnknownRole = errors.New("unknown role")

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) Get(ctx context.Context, id int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) UpdateProfile(ctx context.Context, userID int32, name, email, phone string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	if phone != "" {
		user.PhoneNumber = phone
	}
	return s.userRepo.Update(ctx, user)
}

// ReassignRole changes a user's role. The next authorization check for that
// user reflects the new role immediately, since the gate reads the stored
// profile on every request.
func (s *userService) ReassignRole(ctx context.Context, userID int32, role domain.Role) error {
	if !role.Valid() {
		return ErrUnknownRole
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Role = role
	return s.userRepo.Update(ctx, user)
}
