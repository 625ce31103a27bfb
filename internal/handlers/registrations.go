package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"hackfest-backend/internal/models"
	"hackfest-backend/internal/notify"
	"hackfest-backend/internal/repository"
)

type RegistrationHandler struct {
	registrations RegistrationStore
	notifier      notify.Notifier
}

func NewRegistrationHandler(registrations RegistrationStore, notifier notify.Notifier) *RegistrationHandler {
	return &RegistrationHandler{
		registrations: registrations,
		notifier:      notifier,
	}
}

type RegistrationRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	College  string          `json:"college"`
	Workshop string          `json:"workshop"`
	Payment  *PaymentRequest `json:"payment,omitempty"`
}

func (req *RegistrationRequest) validate() string {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return "name is required"
	case !looksLikeEmail(req.Email):
		return "email is required"
	case strings.TrimSpace(req.Workshop) == "":
		return "workshop is required"
	}
	return ""
}

func (req *RegistrationRequest) toModel() *models.Registration {
	reg := &models.Registration{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Phone:    req.Phone,
		College:  req.College,
		Workshop: strings.TrimSpace(req.Workshop),
	}
	if req.Payment != nil && req.Payment.TransactionID != "" {
		reg.Payment = &models.Payment{
			TransactionID: req.Payment.TransactionID,
			ProofURL:      req.Payment.ProofURL,
			SubmittedAt:   time.Now(),
		}
	}
	return reg
}

// --- POST /registrations (public) ---

func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	reg, ok := h.create(w, r, false)
	if !ok {
		return
	}
	notify.Dispatch(h.notifier, notify.WorkshopRegistered(reg.Email, reg.Name, reg.Workshop))
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":      "registration successful",
		"registration": reg,
	})
}

// --- POST /admin/registrations (manual entry, no email) ---

func (h *RegistrationHandler) CreateManual(w http.ResponseWriter, r *http.Request) {
	reg, ok := h.create(w, r, true)
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, reg)
}

func (h *RegistrationHandler) create(w http.ResponseWriter, r *http.Request, manual bool) (*models.Registration, bool) {
	var req RegistrationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return nil, false
	}

	reg := req.toModel()
	reg.Manual = manual
	if err := h.registrations.Create(r.Context(), reg); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeError(w, http.StatusConflict, "this email is already registered for the workshop")
			return nil, false
		}
		slog.Error("error creating registration", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to register")
		return nil, false
	}
	return reg, true
}

// --- GET /admin/registrations ---

func (h *RegistrationHandler) List(w http.ResponseWriter, r *http.Request) {
	regs, err := h.registrations.List(r.Context())
	if err != nil {
		slog.Error("error listing registrations", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, regs)
}

// --- GET /admin/registrations/{id} ---

func (h *RegistrationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	reg, err := h.registrations.FindByID(r.Context(), id)
	if err != nil {
		slog.Error("error finding registration", "id", id.Hex(), "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if reg == nil {
		writeError(w, http.StatusNotFound, "registration not found")
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

// --- PUT /admin/registrations/{id} ---

func (h *RegistrationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req RegistrationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := h.registrations.Update(r.Context(), id, req.toModel())
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeError(w, http.StatusConflict, "this email is already registered for the workshop")
			return
		}
		slog.Error("error updating registration", "id", id.Hex(), "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update registration")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "registration not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// --- DELETE /admin/registrations/{id} ---

func (h *RegistrationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	deleted, err := h.registrations.Delete(r.Context(), id)
	if err != nil {
		slog.Error("error deleting registration", "id", id.Hex(), "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete registration")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "registration not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "registration deleted"})
}
