package service

import (
	"context"
	"fmt"

	"camrent-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *emailService) send(ctx context.Context, to, toName, subject, plainText string) error {
	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)

	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}

	logger.ExternalServiceResult("sendgrid", "send", nil)
	return nil
}

func (s *emailService) SendOrderConfirmation(ctx context.Context, email, name string, orderCount int, totalCents int32) error {
	subject := "Your rental order confirmation"
	body := fmt.Sprintf(
		"Hello %s,\n\nWe created %d rental order(s) for you, totalling $%d.%02d.\nOur staff will confirm pickup details shortly.\n\nThe CamRent Team",
		name, orderCount, totalCents/100, totalCents%100)
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) SendSuggestionReceived(ctx context.Context, email, name, equipmentName string) error {
	subject := "Thanks for your equipment suggestion"
	body := fmt.Sprintf(
		"Hello %s,\n\nThanks for suggesting %s. Our team reviews every suggestion and will follow up if we add it to the catalog.\n\nThe CamRent Team",
		name, equipmentName)
	return s.send(ctx, email, name, subject, body)
}
