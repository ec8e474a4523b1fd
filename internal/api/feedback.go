package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/campverse/campverse/internal/storage"
	"github.com/campverse/campverse/internal/store"
)

// FeedbackHandler handles feedback endpoints.
type FeedbackHandler struct {
	KV storage.KV
}

type submitFeedbackRequest struct {
	Category    string `json:"category"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	IsAnonymous bool   `json:"isAnonymous"`
}

// List handles GET /api/feedback.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := store.ListFeedback(r.Context(), h.KV)
	if err != nil {
		slog.Error("failed to list feedback", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list feedback")
		return
	}
	jsonResponse(w, http.StatusOK, entries)
}

// Create handles POST /api/feedback. Entries are immutable once created.
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := GetUser(r.Context())

	var req submitFeedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := store.SubmitFeedback(r.Context(), h.KV, user.ID, req.Category, req.Rating, req.Comment, req.IsAnonymous)
	switch {
	case errors.Is(err, store.ErrMissingField), errors.Is(err, store.ErrInvalidField):
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		slog.Error("failed to submit feedback", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to submit feedback")
		return
	}

	jsonResponse(w, http.StatusCreated, entry)
}

// Averages handles GET /api/feedback/averages.
func (h *FeedbackHandler) Averages(w http.ResponseWriter, r *http.Request) {
	averages, err := store.AverageRatings(r.Context(), h.KV)
	if err != nil {
		slog.Error("failed to compute rating averages", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to compute averages")
		return
	}
	jsonResponse(w, http.StatusOK, averages)
}
