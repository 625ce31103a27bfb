package sentiment

import (
	"context"
	"errors"
	"log/slog"

	"hackfest-backend/internal/metrics"
)

// Feedback is the subset of a feedback record the analysis needs.
type Feedback struct {
	Email string
	Text  string
}

// Team is the subset of a team record the join needs: every address that
// counts as membership, and the judged total (0 if unscored).
type Team struct {
	Emails []string
	Score  float64
}

// Join pairs each feedback with the score of the first team listing the
// submitter's email. Matching is exact and case-sensitive. Feedback from
// someone on no team is kept with a team score of 0.
func Join(feedback []Feedback, teams []Team) []PendingItem {
	scores := make(map[string]float64)
	for _, t := range teams {
		for _, e := range t.Emails {
			if _, dup := scores[e]; !dup && e != "" {
				scores[e] = t.Score
			}
		}
	}

	items := make([]PendingItem, 0, len(feedback))
	for _, f := range feedback {
		items = append(items, PendingItem{
			Email:     f.Email,
			Text:      f.Text,
			TeamScore: scores[f.Email],
		})
	}
	return items
}

// Report is the outcome of one analysis run.
type Report struct {
	Points      []AnalysisPoint  `json:"points"`
	Correlation Correlation      `json:"correlation"`
	Buckets     BucketCounts     `json:"buckets"`
	Categories  map[Category]int `json:"categories"`
	Total       int              `json:"total"`
	Processed   int              `json:"processed"`
}

// Complete reports whether every queued item was classified.
func (r Report) Complete() bool { return r.Processed == r.Total }

// Summarize computes correlation and tallies for a set of points.
func Summarize(points []AnalysisPoint, total int) Report {
	return Report{
		Points:      points,
		Correlation: Correlate(points),
		Buckets:     CountBuckets(points),
		Categories:  CountCategories(points),
		Total:       total,
		Processed:   len(points),
	}
}

// Analyzer runs the full pipeline: join, sequential classification, summary.
type Analyzer struct {
	classifier Classifier
}

func NewAnalyzer(classifier Classifier) *Analyzer {
	return &Analyzer{classifier: classifier}
}

// Run classifies the joined feedback and summarizes whatever was processed.
// On a rate limit or cancellation the partial report is returned alongside
// the error so callers can still show it.
func (a *Analyzer) Run(ctx context.Context, feedback []Feedback, teams []Team) (Report, error) {
	items := Join(feedback, teams)
	q := NewQueue(a.classifier, items)

	points, err := q.Drain(ctx)
	report := Summarize(points, len(items))

	switch {
	case err == nil:
		metrics.AnalysisRunsTotal.WithLabelValues("complete").Inc()
	case isRateLimited(err):
		metrics.AnalysisRunsTotal.WithLabelValues("rate_limited").Inc()
		slog.Warn("analysis halted by classifier rate limit",
			"processed", report.Processed, "total", report.Total, "error", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		metrics.AnalysisRunsTotal.WithLabelValues("cancelled").Inc()
	default:
		metrics.AnalysisRunsTotal.WithLabelValues("failed").Inc()
	}
	return report, err
}
