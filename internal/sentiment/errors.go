package sentiment

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInsufficientData means fewer than two usable points were left for a correlation.
	ErrInsufficientData = errors.New("insufficient data for correlation")
	// ErrMalformedResponse means the classifier answered with something that is not a classification.
	ErrMalformedResponse = errors.New("malformed classifier response")
	// ErrQueueDrained is returned by Queue.Next once every item has been consumed.
	ErrQueueDrained = errors.New("analysis queue drained")
)

// RateLimitedError is returned when the classifier throttles us. It halts the
// whole batch; nothing retries automatically.
type RateLimitedError struct {
	ResetAt    time.Time
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitedError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "classifier rate limited"
	}
	return fmt.Sprintf("%s, retry after %s", msg, e.RetryAfter.Round(time.Second))
}

// AsRateLimited unwraps err into a RateLimitedError.
func AsRateLimited(err error) (*RateLimitedError, bool) {
	var rlErr *RateLimitedError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
