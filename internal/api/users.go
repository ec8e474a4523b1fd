package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/campverse/campverse/internal/storage"
	"github.com/campverse/campverse/internal/store"
)

// UsersHandler handles user administration endpoints (admin view only).
type UsersHandler struct {
	KV storage.KV
}

// List handles GET /api/users.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := store.ListUsers(r.Context(), h.KV)
	if err != nil {
		slog.Error("failed to list users", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	jsonResponse(w, http.StatusOK, users)
}

// Delete handles DELETE /api/users/{id}. Self-deletion is rejected; the
// deleted user's postings are left in place.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requester := GetUser(r.Context())
	id := r.PathValue("id")

	err := store.DeleteUser(r.Context(), h.KV, id, requester.ID)
	switch {
	case errors.Is(err, store.ErrSelfDelete):
		jsonError(w, http.StatusForbidden, err.Error())
		return
	case errors.Is(err, store.ErrNotFound):
		jsonError(w, http.StatusNotFound, "user not found")
		return
	case err != nil:
		slog.Error("failed to delete user", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}

	jsonResponse(w, http.StatusOK, nil)
}
