package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"camrent-backend/internal/domain"
	"camrent-backend/internal/logger"
	"camrent-backend/internal/repository"
)

var ErrEmptySuggestion = errors.New("suggestion needs an equipment name")

type suggestionService struct {
	suggestionRepo repository.SuggestionRepository
	noteSvc        NotificationService
	emailSvc       EmailService
}

func NewSuggestionService(suggestionRepo repository.SuggestionRepository, noteSvc NotificationService, emailSvc EmailService) SuggestionService {
	return &suggestionService{
		suggestionRepo: suggestionRepo,
		noteSvc:        noteSvc,
		emailSvc:       emailSvc,
	}
}

func (s *suggestionService) Create(ctx context.Context, sg *domain.Suggestion) error {
	if strings.TrimSpace(sg.EquipmentName) == "" {
		return ErrEmptySuggestion
	}
	sg.Status = domain.SuggestionStatusPending
	if err := s.suggestionRepo.Create(ctx, sg); err != nil {
		return err
	}

	if err := s.noteSvc.NotifyStaff(ctx, "New equipment suggestion",
		fmt.Sprintf("%s suggested adding %s", sg.SubmitterName, sg.EquipmentName),
		map[string]string{"type": "SUGGESTION", "suggestion_id": fmt.Sprintf("%d", sg.ID)}); err != nil {
		logger.Warn("Staff notification failed for suggestion", "suggestion_id", sg.ID, "error", err)
	}
	if sg.SubmitterEmail != "" {
		if err := s.emailSvc.SendSuggestionReceived(ctx, sg.SubmitterEmail, sg.SubmitterName, sg.EquipmentName); err != nil {
			logger.Warn("Suggestion acknowledgement email failed", "email", sg.SubmitterEmail, "error", err)
		}
	}
	return nil
}

func (s *suggestionService) List(ctx context.Context) ([]domain.Suggestion, error) {
	return s.suggestionRepo.List(ctx)
}

func (s *suggestionService) UpdateStatus(ctx context.Context, id int32, status domain.SuggestionStatus) error {
	switch status {
	case domain.SuggestionStatusPending, domain.SuggestionStatusReviewed, domain.SuggestionStatusImplemented:
	default:
		return fmt.Errorf("unknown suggestion status: %s", status)
	}
	return s.suggestionRepo.UpdateStatus(ctx, id, status)
}

func (s *suggestionService) Delete(ctx context.Context, id int32) error {
	return s.suggestionRepo.Delete(ctx, id)
}
