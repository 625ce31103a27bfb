package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// ResendNotifier delivers messages as email through Resend.
type ResendNotifier struct {
	client *resend.Client
	from   string
}

func NewResendNotifier(apiKey, from string) *ResendNotifier {
	return &ResendNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// New picks the Resend sender when an API key is present and falls back to
// logging otherwise.
func New(apiKey, from string) Notifier {
	if apiKey == "" {
		slog.Warn("resend api key not set, notifications will only be logged")
		return NewLogNotifier()
	}
	return NewResendNotifier(apiKey, from)
}

func (n *ResendNotifier) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{msg.RecipientAddress},
		Subject: msg.Subject,
		Html:    msg.BodyHTML,
	}
	if msg.CorrelationID != "" {
		params.Tags = []resend.Tag{{Name: "correlation_id", Value: msg.CorrelationID}}
	}

	sent, err := n.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	slog.Info("email sent", "resend_id", sent.Id, "correlation_id", msg.CorrelationID, "to", msg.RecipientAddress)
	return nil
}
