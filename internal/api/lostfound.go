package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/storage"
	"github.com/campverse/campverse/internal/store"
)

// LostFoundHandler handles lost & found endpoints.
type LostFoundHandler struct {
	KV storage.KV
}

type reportLostFoundRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	ImageURL    string `json:"imageUrl"`
	Contact     string `json:"contact"`
}

// List handles GET /api/lostfound.
func (h *LostFoundHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListLostFound(r.Context(), h.KV)
	if err != nil {
		slog.Error("failed to list lost & found", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/lostfound.
func (h *LostFoundHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := GetUser(r.Context())

	var req reportLostFoundRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contact := req.Contact
	if contact == "" {
		contact = user.Email
	}

	item, err := store.ReportLostFound(r.Context(), h.KV, model.LostFoundItem{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Category:    req.Category,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		PostedBy:    user.Name,
		Contact:     contact,
	})
	switch {
	case errors.Is(err, store.ErrMissingField), errors.Is(err, store.ErrInvalidField):
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		slog.Error("failed to report lost & found item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Resolve handles POST /api/lostfound/{id}/resolve.
func (h *LostFoundHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	user := GetUser(r.Context())
	id := r.PathValue("id")

	item, err := store.GetLostFound(r.Context(), h.KV, id)
	if err != nil {
		slog.Error("failed to get lost & found item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to resolve item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if !model.CanResolve(user, item) {
		jsonError(w, http.StatusForbidden, "only the poster may resolve an open item")
		return
	}

	if err := store.ResolveLostFound(r.Context(), h.KV, id); err != nil {
		slog.Error("failed to resolve lost & found item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to resolve item")
		return
	}

	jsonResponse(w, http.StatusOK, nil)
}
