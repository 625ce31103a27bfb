package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

const defaultRateLimitWait = 60 * time.Second

// Classifier scores one feedback text. Implementations return
// ErrMalformedResponse (wrapped) for unusable payloads and *RateLimitedError
// when throttled.
type Classifier interface {
	Classify(ctx context.Context, text string) (Classification, error)
}

// HTTPClassifier calls a JSON sentiment endpoint, typically an LLM gateway
// prompted to answer with {"sentimentScore": float, "category": string}.
type HTTPClassifier struct {
	endpoint string
	apiKey   string
	client   *http.Client
	clock    clockwork.Clock
}

type ClassifierOption func(*HTTPClassifier)

// WithHTTPClient replaces the default client. Timeouts are the caller's policy.
func WithHTTPClient(c *http.Client) ClassifierOption {
	return func(h *HTTPClassifier) {
		if c != nil {
			h.client = c
		}
	}
}

func WithClock(c clockwork.Clock) ClassifierOption {
	return func(h *HTTPClassifier) {
		if c != nil {
			h.clock = c
		}
	}
}

func NewHTTPClassifier(endpoint, apiKey string, opts ...ClassifierOption) *HTTPClassifier {
	h := &HTTPClassifier{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   http.DefaultClient,
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type classifyRequest struct {
	Text string `json:"text"`
}

func (h *HTTPClassifier) Classify(ctx context.Context, text string) (Classification, error) {
	body, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		return Classification{}, fmt.Errorf("encode classifier request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return Classification{}, fmt.Errorf("build classifier request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return Classification{}, fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return Classification{}, fmt.Errorf("read classifier response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return Classification{}, h.rateLimited(resp.Header, payload)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Classification{}, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	return ParseClassification(payload)
}

// rateLimited builds the error from X-RateLimit-Reset (unix seconds) or
// Retry-After (seconds), falling back to a fixed wait.
func (h *HTTPClassifier) rateLimited(header http.Header, payload []byte) *RateLimitedError {
	now := h.clock.Now()
	wait := defaultRateLimitWait
	resetAt := now.Add(wait)

	if v := header.Get("X-RateLimit-Reset"); v != "" {
		if secs, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			resetAt = time.Unix(secs, 0)
			wait = resetAt.Sub(now)
		}
	} else if v := header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			wait = time.Duration(secs) * time.Second
			resetAt = now.Add(wait)
		}
	}
	if wait < 0 {
		wait = 0
	}

	var body struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(payload, &body)

	return &RateLimitedError{ResetAt: resetAt, RetryAfter: wait, Message: body.Error}
}

// ParseClassification decodes a classifier payload. Model output is often
// wrapped in prose or a ```json fence, so the first {...} object is used.
// Scores are clamped to [-1, 1]; unknown categories become general comments.
func ParseClassification(payload []byte) (Classification, error) {
	text := string(payload)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return Classification{}, fmt.Errorf("%w: no JSON object in %q", ErrMalformedResponse, truncate(text, 80))
	}

	var raw struct {
		SentimentScore *float64 `json:"sentimentScore"`
		Category       string   `json:"category"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return Classification{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if raw.SentimentScore == nil {
		return Classification{}, fmt.Errorf("%w: missing sentimentScore", ErrMalformedResponse)
	}

	score := *raw.SentimentScore
	if score > 1 {
		score = 1
	} else if score < -1 {
		score = -1
	}
	return Classification{SentimentScore: score, Category: ParseCategory(raw.Category)}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
