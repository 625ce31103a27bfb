package notify

import (
	"context"
	"log/slog"
	"time"

	"hackfest-backend/internal/metrics"

	"github.com/google/uuid"
)

const sendTimeout = 30 * time.Second

// Message is one templated notification to a single address.
type Message struct {
	RecipientAddress string
	Subject          string
	BodyHTML         string
	CorrelationID    string
}

// Notifier defines the interface for delivering messages to an address.
// This abstraction allows swapping the log-only sender with a real email provider.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// Dispatch sends msg in the background and only logs the outcome. The caller
// never waits. A correlation ID is assigned when missing and returned.
func Dispatch(n Notifier, msg Message) string {
	if msg.CorrelationID == "" {
		msg.CorrelationID = uuid.NewString()
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		if err := n.Send(ctx, msg); err != nil {
			metrics.NotificationsTotal.WithLabelValues("failed").Inc()
			slog.Error("notification failed",
				"correlation_id", msg.CorrelationID, "to", msg.RecipientAddress, "error", err)
			return
		}
		metrics.NotificationsTotal.WithLabelValues("sent").Inc()
	}()
	return msg.CorrelationID
}
