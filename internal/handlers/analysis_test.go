package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hackfest-backend/internal/handlers"
	"hackfest-backend/internal/models"
	"hackfest-backend/internal/sentiment"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type analysisFixture struct {
	teams    *fakeTeamStore
	feedback *fakeFeedbackStore
	analyses *fakeAnalysisStore
	runner   *fakeRunner
	router   http.Handler
}

func newAnalysisFixture(t *testing.T) *analysisFixture {
	t.Helper()
	score := 40.0
	f := &analysisFixture{
		teams: &fakeTeamStore{teams: []models.Team{{
			TeamName: "Rocket",
			Leader:   models.Person{Name: "Ada", Email: "ada@rocket.dev"},
			Members:  []models.Person{{Name: "Lin", Email: "lin@rocket.dev"}},
			Score:    &score,
		}, {
			TeamName: "Unscored",
			Leader:   models.Person{Name: "Bo", Email: "bo@x.dev"},
		}}},
		feedback: &fakeFeedbackStore{items: []models.Feedback{
			{Email: "lin@rocket.dev", QuickFeedback: "great mentors"},
			{Email: "bo@x.dev", QuickFeedback: "too loud"},
		}},
		analyses: &fakeAnalysisStore{},
		runner:   &fakeRunner{},
	}
	h := handlers.NewAnalysisHandler(f.teams, f.feedback, f.analyses, f.runner)
	r := chi.NewRouter()
	r.Post("/admin/analysis", h.Run)
	r.Get("/admin/analysis/latest", h.Latest)
	f.router = r
	return f
}

func TestAnalysisHandler_LatestBeforeAnyRun(t *testing.T) {
	f := newAnalysisFixture(t)

	rec := doJSON(t, f.router, http.MethodGet, "/admin/analysis/latest", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnalysisHandler_RunComplete(t *testing.T) {
	f := newAnalysisFixture(t)
	points := []sentiment.AnalysisPoint{
		{Email: "lin@rocket.dev", SentimentScore: 0.8, Category: sentiment.CategoryGeneralComment, TeamScore: 40},
		{Email: "bo@x.dev", SentimentScore: -0.5, Category: sentiment.CategoryActionableInsight, TeamScore: 0},
	}
	f.runner.report = sentiment.Summarize(points, 2)

	rec := doJSON(t, f.router, http.MethodPost, "/admin/analysis", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, []sentiment.Feedback{
		{Email: "lin@rocket.dev", Text: "great mentors"},
		{Email: "bo@x.dev", Text: "too loud"},
	}, f.runner.gotFeedback)
	require.Len(t, f.runner.gotTeams, 2)
	assert.Equal(t, []string{"ada@rocket.dev", "lin@rocket.dev"}, f.runner.gotTeams[0].Emails)
	assert.Equal(t, 40.0, f.runner.gotTeams[0].Score)
	assert.Equal(t, 0.0, f.runner.gotTeams[1].Score)

	run := decode[models.AnalysisRun](t, rec)
	assert.True(t, run.Complete)
	assert.NotEmpty(t, run.RunID)
	assert.Nil(t, run.ResetAt)
	assert.Equal(t, sentiment.BucketCounts{Positive: 1, Negative: 1}, run.Buckets)
	require.True(t, run.Correlation.Defined())

	latest := doJSON(t, f.router, http.MethodGet, "/admin/analysis/latest", nil)
	require.Equal(t, http.StatusOK, latest.Code)
	assert.Equal(t, run.RunID, decode[models.AnalysisRun](t, latest).RunID)
}

func TestAnalysisHandler_RunRateLimited(t *testing.T) {
	f := newAnalysisFixture(t)
	resetAt := time.Now().Add(90 * time.Second).UTC().Truncate(time.Second)
	f.runner.report = sentiment.Summarize([]sentiment.AnalysisPoint{
		{Email: "lin@rocket.dev", SentimentScore: 0.8, Category: sentiment.CategorySuggestion, TeamScore: 40},
	}, 2)
	f.runner.err = &sentiment.RateLimitedError{ResetAt: resetAt, RetryAfter: 89500 * time.Millisecond}

	rec := doJSON(t, f.router, http.MethodPost, "/admin/analysis", nil)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	body := decode[struct {
		Error             string             `json:"error"`
		RetryAfterSeconds int                `json:"retry_after_seconds"`
		ResetAt           time.Time          `json:"reset_at"`
		Analysis          models.AnalysisRun `json:"analysis"`
	}](t, rec)
	assert.NotEmpty(t, body.Error)
	assert.Equal(t, 90, body.RetryAfterSeconds)
	assert.True(t, resetAt.Equal(body.ResetAt))
	assert.False(t, body.Analysis.Complete)
	assert.Equal(t, 1, body.Analysis.Processed)
	assert.Equal(t, 2, body.Analysis.Total)

	require.Len(t, f.analyses.runs, 1, "partial run is persisted")
	require.NotNil(t, f.analyses.runs[0].ResetAt)
	assert.True(t, resetAt.Equal(*f.analyses.runs[0].ResetAt))
}

func TestAnalysisHandler_RunCancelled(t *testing.T) {
	f := newAnalysisFixture(t)
	f.runner.err = context.Canceled

	rec := doJSON(t, f.router, http.MethodPost, "/admin/analysis", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Empty(t, f.analyses.runs)
}

func TestAnalysisHandler_StoreFailure(t *testing.T) {
	f := newAnalysisFixture(t)
	f.feedback.err = errStoreDown

	rec := doJSON(t, f.router, http.MethodPost, "/admin/analysis", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Nil(t, f.runner.gotFeedback)
}
