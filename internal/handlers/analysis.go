package handlers

import (
	"log/slog"
	"math"
	"net/http"
	"time"

	"hackfest-backend/internal/models"
	"hackfest-backend/internal/sentiment"

	"github.com/google/uuid"
)

type AnalysisHandler struct {
	teams    TeamStore
	feedback FeedbackStore
	analyses AnalysisStore
	runner   AnalysisRunner
}

func NewAnalysisHandler(teams TeamStore, feedback FeedbackStore, analyses AnalysisStore, runner AnalysisRunner) *AnalysisHandler {
	return &AnalysisHandler{
		teams:    teams,
		feedback: feedback,
		analyses: analyses,
		runner:   runner,
	}
}

// --- POST /admin/analysis ---

func (h *AnalysisHandler) Run(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	feedback, err := h.feedback.List(ctx)
	if err != nil {
		slog.Error("error loading feedback for analysis", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	teams, err := h.teams.List(ctx)
	if err != nil {
		slog.Error("error loading teams for analysis", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	items := make([]sentiment.Feedback, 0, len(feedback))
	for _, f := range feedback {
		items = append(items, sentiment.Feedback{Email: f.Email, Text: f.QuickFeedback})
	}
	members := make([]sentiment.Team, 0, len(teams))
	for i := range teams {
		members = append(members, sentiment.Team{Emails: teams[i].Emails(), Score: teams[i].ScoreValue()})
	}

	report, runErr := h.runner.Run(ctx, items, members)
	rateLimit, limited := sentiment.AsRateLimited(runErr)
	if runErr != nil && !limited {
		slog.Error("analysis run aborted", "processed", report.Processed, "total", report.Total, "error", runErr)
		writeError(w, http.StatusServiceUnavailable, "analysis was interrupted, please retry")
		return
	}

	run := &models.AnalysisRun{
		RunID:       uuid.NewString(),
		Points:      report.Points,
		Correlation: report.Correlation,
		Buckets:     report.Buckets,
		Categories:  report.Categories,
		Total:       report.Total,
		Processed:   report.Processed,
		Complete:    report.Complete(),
		CreatedAt:   time.Now(),
	}
	if limited {
		resetAt := rateLimit.ResetAt
		run.ResetAt = &resetAt
	}

	if err := h.analyses.Create(ctx, run); err != nil {
		// The computed run is still useful to the dashboard.
		slog.Error("error saving analysis run", "run_id", run.RunID, "error", err)
	}

	if limited {
		writeJSON(w, http.StatusTooManyRequests, map[string]interface{}{
			"error":               "sentiment classifier rate limited, retry later",
			"retry_after_seconds": int(math.Ceil(rateLimit.RetryAfter.Seconds())),
			"reset_at":            rateLimit.ResetAt,
			"analysis":            run,
		})
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// --- GET /admin/analysis/latest ---

func (h *AnalysisHandler) Latest(w http.ResponseWriter, r *http.Request) {
	run, err := h.analyses.Latest(r.Context())
	if err != nil {
		slog.Error("error loading latest analysis", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if run == nil {
		writeError(w, http.StatusNotFound, "no analysis has been run yet")
		return
	}
	writeJSON(w, http.StatusOK, run)
}
