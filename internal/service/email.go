package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"emprius-backend/internal/domain"
)

type mailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type emailNotifier struct {
	client    mailSender
	fromEmail string
	fromName  string
}

// NewEmailNotifier sends booking messages through SendGrid.
func NewEmailNotifier(apiKey, fromEmail, fromName string) Notifier {
	return newEmailNotifier(sendgrid.NewSendClient(apiKey), fromEmail, fromName)
}

func newEmailNotifier(client mailSender, fromEmail, fromName string) *emailNotifier {
	return &emailNotifier{client: client, fromEmail: fromEmail, fromName: fromName}
}

func (n *emailNotifier) Name() string { return "sendgrid" }

func (n *emailNotifier) Notify(ctx context.Context, to *domain.User, msg Message) error {
	if to.Email == "" {
		return errors.New("recipient has no email address")
	}

	from := mail.NewEmail(n.fromName, n.fromEmail)
	recipient := mail.NewEmail(to.Name, to.Email)
	body := fmt.Sprintf("Hello %s,\n\n%s.\n\nThe Emprius team", to.Name, msg.Body)
	message := mail.NewSingleEmail(from, msg.Title, recipient, body, "")

	resp, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
