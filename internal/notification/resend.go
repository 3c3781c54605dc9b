package notification

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendTransport sends email through the Resend API.
type ResendTransport struct {
	client *resend.Client
}

// NewResendTransport creates a transport authenticated with apiKey.
func NewResendTransport(apiKey string) *ResendTransport {
	return &ResendTransport{client: resend.NewClient(apiKey)}
}

// Name implements Transport.
func (t *ResendTransport) Name() string { return TransportResend }

// Deliver implements Transport.
func (t *ResendTransport) Deliver(ctx context.Context, email Email) (string, error) {
	sent, err := t.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    email.From,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
	})
	if err != nil {
		return "", fmt.Errorf("resend send: %w", err)
	}
	return sent.Id, nil
}
