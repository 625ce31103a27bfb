package notify

import (
	"context"
	"log/slog"
)

// LogNotifier implements Notifier by logging messages instead of sending them.
// Used in development when no email API key is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Send(ctx context.Context, msg Message) error {
	slog.InfoContext(ctx, "notification (dev mode, not sent)",
		"correlation_id", msg.CorrelationID,
		"to", msg.RecipientAddress,
		"subject", msg.Subject)
	return nil
}
