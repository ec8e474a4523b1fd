package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/storage"
	"github.com/campverse/campverse/internal/store"
)

// NoticesHandler handles notice board endpoints.
type NoticesHandler struct {
	KV storage.KV
}

type postNoticeRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Priority string `json:"priority"`
}

// List handles GET /api/notices. An optional ?category= narrows the list.
func (h *NoticesHandler) List(w http.ResponseWriter, r *http.Request) {
	notices, err := store.ListNotices(r.Context(), h.KV, r.URL.Query().Get("category"))
	if err != nil {
		slog.Error("failed to list notices", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list notices")
		return
	}
	jsonResponse(w, http.StatusOK, notices)
}

// Create handles POST /api/notices (Faculty/Admin only).
func (h *NoticesHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := GetUser(r.Context())
	if !model.CanPostNotice(user.Role) {
		jsonError(w, http.StatusForbidden, "only faculty and admins may post notices")
		return
	}

	var req postNoticeRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	notice, err := store.PostNotice(r.Context(), h.KV, req.Title, req.Content, req.Category, req.Priority, user.Name)
	switch {
	case errors.Is(err, store.ErrMissingField), errors.Is(err, store.ErrInvalidField):
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		slog.Error("failed to post notice", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to post notice")
		return
	}

	jsonResponse(w, http.StatusCreated, notice)
}

// Delete handles DELETE /api/notices/{id} (admin or original poster).
func (h *NoticesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := GetUser(r.Context())
	id := r.PathValue("id")

	notice, err := store.GetNotice(r.Context(), h.KV, id)
	if err != nil {
		slog.Error("failed to get notice", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to delete notice")
		return
	}
	if notice == nil {
		jsonError(w, http.StatusNotFound, "notice not found")
		return
	}
	if !model.CanDeleteNotice(user, notice) {
		jsonError(w, http.StatusForbidden, "only an admin or the poster may delete a notice")
		return
	}

	if err := store.DeleteNotice(r.Context(), h.KV, id); err != nil {
		slog.Error("failed to delete notice", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to delete notice")
		return
	}

	jsonResponse(w, http.StatusOK, nil)
}
