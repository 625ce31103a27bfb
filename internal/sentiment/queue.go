package sentiment

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"hackfest-backend/internal/metrics"
)

// PendingItem is a feedback entry waiting to be classified.
type PendingItem struct {
	Email     string
	Text      string
	TeamScore float64
}

// Queue hands pending items to the classifier strictly one at a time.
// A rate-limit answer halts the queue for good; a cancelled context stops it
// before the next call is issued. Other per-item failures fall back to a
// neutral classification and the queue moves on.
type Queue struct {
	classifier Classifier
	items      []PendingItem
	next       int
	halted     error
}

func NewQueue(classifier Classifier, items []PendingItem) *Queue {
	return &Queue{classifier: classifier, items: items}
}

// Remaining is the number of items not yet handed out.
func (q *Queue) Remaining() int { return len(q.items) - q.next }

// Next classifies the next item. It returns ErrQueueDrained when empty, the
// context error when cancelled, and the *RateLimitedError once throttled
// (on that call and every call after it).
func (q *Queue) Next(ctx context.Context) (AnalysisPoint, error) {
	if q.halted != nil {
		return AnalysisPoint{}, q.halted
	}
	if err := ctx.Err(); err != nil {
		return AnalysisPoint{}, err
	}
	if q.next >= len(q.items) {
		return AnalysisPoint{}, ErrQueueDrained
	}

	item := q.items[q.next]
	q.next++

	point := AnalysisPoint{
		Email:        item.Email,
		FeedbackText: item.Text,
		TeamScore:    item.TeamScore,
	}

	if strings.TrimSpace(item.Text) == "" {
		metrics.ClassifierCallsTotal.WithLabelValues("skipped").Inc()
		n := Neutral()
		point.SentimentScore, point.Category = n.SentimentScore, n.Category
		return point, nil
	}

	start := time.Now()
	c, err := q.classifier.Classify(ctx, item.Text)
	metrics.ClassifierCallDuration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		metrics.ClassifierCallsTotal.WithLabelValues("ok").Inc()
	case isRateLimited(err):
		metrics.ClassifierCallsTotal.WithLabelValues("rate_limited").Inc()
		q.halted = err
		return AnalysisPoint{}, err
	case errors.Is(err, ErrMalformedResponse):
		metrics.ClassifierCallsTotal.WithLabelValues("malformed").Inc()
		slog.Warn("classifier response malformed, using neutral", "email", item.Email, "error", err)
		c = Neutral()
	default:
		metrics.ClassifierCallsTotal.WithLabelValues("error").Inc()
		slog.Error("classifier call failed, using neutral", "email", item.Email, "error", err)
		c = Neutral()
	}

	point.SentimentScore, point.Category = c.SentimentScore, c.Category
	return point, nil
}

func isRateLimited(err error) bool {
	_, ok := AsRateLimited(err)
	return ok
}

// Drain consumes the queue until it is empty or halted. Points classified
// before a halt are returned together with the halting error.
func (q *Queue) Drain(ctx context.Context) ([]AnalysisPoint, error) {
	points := make([]AnalysisPoint, 0, q.Remaining())
	for {
		p, err := q.Next(ctx)
		if errors.Is(err, ErrQueueDrained) {
			return points, nil
		}
		if err != nil {
			return points, err
		}
		points = append(points, p)
	}
}
