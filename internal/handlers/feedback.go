package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"hackfest-backend/internal/models"
)

type FeedbackHandler struct {
	feedback FeedbackStore
}

func NewFeedbackHandler(feedback FeedbackStore) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

type SubmitFeedbackRequest struct {
	Email         string `json:"email"`
	QuickFeedback string `json:"quick_feedback"`
	OverallRating *int   `json:"overall_rating"`
}

// --- POST /feedback ---

func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req SubmitFeedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !looksLikeEmail(req.Email) {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	if req.OverallRating == nil {
		writeError(w, http.StatusBadRequest, "overall_rating is required")
		return
	}
	if *req.OverallRating < 0 || *req.OverallRating > models.MaxOverallRating {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("overall_rating must be between 0 and %d", models.MaxOverallRating))
		return
	}

	// Email is stored as given: the team join is an exact match.
	feedback := &models.Feedback{
		Email:         req.Email,
		QuickFeedback: strings.TrimSpace(req.QuickFeedback),
		OverallRating: *req.OverallRating,
	}

	if err := h.feedback.Create(r.Context(), feedback); err != nil {
		slog.Error("error creating feedback", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to submit feedback")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "feedback submitted successfully",
		"feedback": feedback,
	})
}

// --- GET /admin/feedback ---

func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	feedback, err := h.feedback.List(r.Context())
	if err != nil {
		slog.Error("error listing feedback", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, feedback)
}
