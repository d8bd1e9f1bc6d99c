package service

import (
	"context"
	"errors"
	"testing"

	"camrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSuggestionCreate(t *testing.T) {
	repo := new(MockSuggestionRepo)
	noteSvc := new(MockNotificationService)
	emailSvc := new(MockEmailService)
	svc := NewSuggestionService(repo, noteSvc, emailSvc)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(sg *domain.Suggestion) bool {
		return sg.Status == domain.SuggestionStatusPending
	})).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Suggestion).ID = 5
	}).Once()
	noteSvc.On("NotifyStaff", ctx, "New equipment suggestion", mock.AnythingOfType("string"), mock.Anything).Return(nil).Once()
	emailSvc.On("SendSuggestionReceived", ctx, "fan@example.com", "A Fan", "Anamorphic Lens").Return(nil).Once()

	sg := &domain.Suggestion{
		EquipmentName:  "Anamorphic Lens",
		Details:        "Would rent weekly",
		SubmitterName:  "A Fan",
		SubmitterEmail: "fan@example.com",
	}
	assert.NoError(t, svc.Create(ctx, sg))

	repo.AssertExpectations(t)
	noteSvc.AssertExpectations(t)
	emailSvc.AssertExpectations(t)
}

func TestSuggestionCreateWithoutEmailSkipsAcknowledgement(t *testing.T) {
	repo := new(MockSuggestionRepo)
	noteSvc := new(MockNotificationService)
	emailSvc := new(MockEmailService)
	svc := NewSuggestionService(repo, noteSvc, emailSvc)
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything).Return(nil).Once()
	noteSvc.On("NotifyStaff", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	assert.NoError(t, svc.Create(ctx, &domain.Suggestion{EquipmentName: "Gimbal"}))
	emailSvc.AssertNotCalled(t, "SendSuggestionReceived", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSuggestionCreateRejectsEmptyName(t *testing.T) {
	repo := new(MockSuggestionRepo)
	svc := NewSuggestionService(repo, new(MockNotificationService), new(MockEmailService))

	err := svc.Create(context.Background(), &domain.Suggestion{EquipmentName: "   "})
	assert.ErrorIs(t, err, ErrEmptySuggestion)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSuggestionCreateSurvivesNotificationFailure(t *testing.T) {
	repo := new(MockSuggestionRepo)
	noteSvc := new(MockNotificationService)
	emailSvc := new(MockEmailService)
	svc := NewSuggestionService(repo, noteSvc, emailSvc)
	ctx := context.Background()

	// Fan-out is best effort; the suggestion is stored either way.
	repo.On("Create", ctx, mock.Anything).Return(nil).Once()
	noteSvc.On("NotifyStaff", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
	emailSvc.On("SendSuggestionReceived", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("sendgrid 500")).Once()

	assert.NoError(t, svc.Create(ctx, &domain.Suggestion{EquipmentName: "Drone", SubmitterEmail: "fan@example.com"}))
}

func TestSuggestionUpdateStatus(t *testing.T) {
	repo := new(MockSuggestionRepo)
	svc := NewSuggestionService(repo, new(MockNotificationService), new(MockEmailService))
	ctx := context.Background()

	repo.On("UpdateStatus", ctx, int32(5), domain.SuggestionStatusReviewed).Return(nil).Once()
	assert.NoError(t, svc.UpdateStatus(ctx, 5, domain.SuggestionStatusReviewed))

	assert.Error(t, svc.UpdateStatus(ctx, 5, domain.SuggestionStatus("SHELVED")))
	repo.AssertExpectations(t)
}
