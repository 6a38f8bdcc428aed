package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"usespace-backend/internal/domain"
	"usespace-backend/internal/logger"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) SendBookingRequestNotification(ctx context.Context, landlordEmail, tenantEmail, propertyTitle, date string) error {
	subject := fmt.Sprintf("New booking request: %s", propertyTitle)
	plainText := fmt.Sprintf("%s requested to book %s on %s. Open the app to confirm or reject it.", tenantEmail, propertyTitle, date)
	htmlContent := fmt.Sprintf(`<p><strong>%s</strong> requested to book <strong>%s</strong> on %s.</p><p>Open the app to confirm or reject it.</p>`, tenantEmail, propertyTitle, date)
	return s.send(ctx, landlordEmail, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendBookingStatusNotification(ctx context.Context, tenantEmail, propertyTitle, date string, status domain.AppointmentStatus) error {
	subject := fmt.Sprintf("Your booking for %s was %s", propertyTitle, status)
	plainText := fmt.Sprintf("Your booking request for %s on %s is now %s.", propertyTitle, date, status)
	htmlContent := fmt.Sprintf(`<p>Your booking request for <strong>%s</strong> on %s is now <strong>%s</strong>.</p>`, propertyTitle, date, status)
	return s.send(ctx, tenantEmail, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendPendingRequestsReminder(ctx context.Context, landlordEmail string, pendingCount int) error {
	subject := "You have booking requests waiting"
	plainText := fmt.Sprintf("You have %d pending booking request(s). Open the app to respond.", pendingCount)
	htmlContent := fmt.Sprintf(`<p>You have <strong>%d</strong> pending booking request(s). Open the app to respond.</p>`, pendingCount)
	return s.send(ctx, landlordEmail, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) send(ctx context.Context, to, subject, plainText, htmlContent string) error {
	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err == nil && response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	logger.ExternalServiceResult("sendgrid", "send", err, "to", to)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// noopEmailService logs instead of sending, for local runs without a
// SendGrid key.
type noopEmailService struct{}

func NewNoopEmailService() EmailService {
	return noopEmailService{}
}

func (noopEmailService) SendBookingRequestNotification(ctx context.Context, landlordEmail, tenantEmail, propertyTitle, date string) error {
	logger.InfoContext(ctx, "email disabled, skipping booking request notification",
		"to", landlordEmail, "property", propertyTitle, "date", date)
	return nil
}

func (noopEmailService) SendBookingStatusNotification(ctx context.Context, tenantEmail, propertyTitle, date string, status domain.AppointmentStatus) error {
	logger.InfoContext(ctx, "email disabled, skipping booking status notification",
		"to", tenantEmail, "property", propertyTitle, "status", status)
	return nil
}

func (noopEmailService) SendPendingRequestsReminder(ctx context.Context, landlordEmail string, pendingCount int) error {
	logger.InfoContext(ctx, "email disabled, skipping pending requests reminder",
		"to", landlordEmail, "pending", pendingCount)
	return nil
}
