package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer sends plain-text mail to a fixed recipient (the kitchen).
type SendGridMailer struct {
	client *sendgrid.Client
	from   *mail.Email
	to     *mail.Email
}

func NewSendGridMailer(apiKey, from, to string) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail("Tasty Point Orders", from),
		to:     mail.NewEmail("Kitchen", to),
	}
}

func (m *SendGridMailer) Send(ctx context.Context, subject, body string) error {
	message := mail.NewSingleEmail(m.from, subject, m.to, body, "")
	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("failed to send email: status %d", response.StatusCode)
	}
	return nil
}
