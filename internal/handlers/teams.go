package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"hackfest-backend/internal/models"
	"hackfest-backend/internal/notify"
	"hackfest-backend/internal/repository"
)

type TeamHandler struct {
	teams    TeamStore
	notifier notify.Notifier
}

func NewTeamHandler(teams TeamStore, notifier notify.Notifier) *TeamHandler {
	return &TeamHandler{
		teams:    teams,
		notifier: notifier,
	}
}

type RegisterTeamRequest struct {
	TeamName string          `json:"team_name"`
	Leader   models.Person   `json:"leader"`
	Members  []models.Person `json:"members"`
	Track    string          `json:"track"`
}

func (req *RegisterTeamRequest) validate() string {
	switch {
	case strings.TrimSpace(req.TeamName) == "":
		return "team_name is required"
	case strings.TrimSpace(req.Leader.Name) == "":
		return "leader name is required"
	case !looksLikeEmail(req.Leader.Email):
		return "leader email is required"
	}
	for i, m := range req.Members {
		if strings.TrimSpace(m.Name) == "" || !looksLikeEmail(m.Email) {
			return fmt.Sprintf("member %d needs a name and email", i+1)
		}
	}
	return ""
}

type PaymentRequest struct {
	TransactionID string `json:"transaction_id"`
	ProofURL      string `json:"proof_url"`
}

type SaveScoresRequest struct {
	Scores   models.Scores `json:"scores"`
	Comments string        `json:"comments"`
}

type UpdateStatusRequest struct {
	Status models.TeamStatus `json:"status"`
}

// --- POST /teams ---

func (h *TeamHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	existing, err := h.teams.FindByLeaderEmail(r.Context(), req.Leader.Email)
	if err != nil {
		slog.Error("error checking existing team", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing != nil {
		writeError(w, http.StatusConflict, "a team is already registered with this leader email")
		return
	}

	team := &models.Team{
		TeamName: strings.TrimSpace(req.TeamName),
		Leader:   req.Leader,
		Members:  req.Members,
		Track:    req.Track,
		Status:   models.TeamStatusPending,
	}
	if team.Members == nil {
		team.Members = []models.Person{}
	}

	if err := h.teams.Create(r.Context(), team); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeError(w, http.StatusConflict, "a team is already registered with this leader email")
			return
		}
		slog.Error("error creating team", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to register team")
		return
	}

	notify.Dispatch(h.notifier, notify.TeamRegistered(team.Leader.Email, team.Leader.Name, team.TeamName))

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "team registered successfully",
		"team":    team,
	})
}

// --- POST /teams/{id}/payment ---

func (h *TeamHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req PaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.TransactionID) == "" || strings.TrimSpace(req.ProofURL) == "" {
		writeError(w, http.StatusBadRequest, "transaction_id and proof_url are required")
		return
	}

	team, err := h.teams.SetPayment(r.Context(), id, models.Payment{
		TransactionID: req.TransactionID,
		ProofURL:      req.ProofURL,
		SubmittedAt:   time.Now(),
	})
	if err != nil {
		slog.Error("error saving payment proof", "team_id", id.Hex(), "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save payment proof")
		return
	}
	if team == nil {
		writeError(w, http.StatusNotFound, "team not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "payment proof received",
		"team":    team,
	})
}

// --- GET /admin/teams ---

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teams.List(r.Context())
	if err != nil {
		slog.Error("error listing teams", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

// --- GET /admin/teams/{id} ---

func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	team, err := h.teams.FindByID(r.Context(), id)
	if err != nil {
		slog.Error("error finding team", "team_id", id.Hex(), "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if team == nil {
		writeError(w, http.StatusNotFound, "team not found")
		return
	}
	writeJSON(w, http.StatusOK, team)
}

// --- PUT /admin/teams/{id}/scores ---

func (h *TeamHandler) SaveScores(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req SaveScoresRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	for _, v := range req.Scores.Values() {
		if v < models.MinCriterionScore || v > models.MaxCriterionScore {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("each score must be between %d and %d", models.MinCriterionScore, models.MaxCriterionScore))
			return
		}
	}

	team, err := h.teams.SaveScores(r.Context(), id, req.Scores, req.Comments)
	if err != nil {
		slog.Error("error saving scores", "team_id", id.Hex(), "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save scores")
		return
	}
	if team == nil {
		writeError(w, http.StatusNotFound, "team not found")
		return
	}
	writeJSON(w, http.StatusOK, team)
}

// --- PATCH /admin/teams/{id}/status ---

func (h *TeamHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Status.Valid() {
		writeError(w, http.StatusBadRequest, "status must be pending, approved or rejected")
		return
	}

	team, err := h.teams.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		slog.Error("error updating team status", "team_id", id.Hex(), "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update status")
		return
	}
	if team == nil {
		writeError(w, http.StatusNotFound, "team not found")
		return
	}

	if req.Status != models.TeamStatusPending {
		notify.Dispatch(h.notifier, notify.TeamStatusChanged(team.Leader.Email, team.TeamName, string(req.Status)))
	}
	writeJSON(w, http.StatusOK, team)
}

// --- DELETE /admin/teams/{id} ---

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	deleted, err := h.teams.Delete(r.Context(), id)
	if err != nil {
		slog.Error("error deleting team", "team_id", id.Hex(), "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete team")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "team not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "team deleted"})
}
