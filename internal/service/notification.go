package service

import (
	"context"

	"camrent-backend/internal/authz"
	"camrent-backend/internal/domain"
	"camrent-backend/internal/logger"
	"camrent-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
	userRepo repository.UserRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository, userRepo repository.UserRepository) NotificationService {
	return &notificationService{
		noteRepo: noteRepo,
		userRepo: userRepo,
	}
}

func (s *notificationService) List(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.noteRepo.List(ctx, userID, pageSize, (page-1)*pageSize)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID int32) error {
	return s.noteRepo.MarkAsRead(ctx, notificationID, userID)
}

func (s *notificationService) NotifyStaff(ctx context.Context, title, message string, attributes map[string]string) error {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if !authz.RoleSatisfies(users[i].Role, authz.RequireStaff) {
			continue
		}
		note := &domain.Notification{
			UserID:     users[i].ID,
			Title:      title,
			Message:    message,
			Attributes: attributes,
		}
		if err := s.noteRepo.Create(ctx, note); err != nil {
			logger.Warn("Failed to create staff notification", "user_id", users[i].ID, "error", err)
		}
	}
	return nil
}
