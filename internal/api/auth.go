package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/campverse/campverse/internal/storage"
	"github.com/campverse/campverse/internal/store"
)

// AuthHandler handles session endpoints.
type AuthHandler struct {
	KV storage.KV
}

type loginRequest struct {
	Email string `json:"email"`
	// Password is accepted for form compatibility but never verified.
	Password string `json:"password"`
}

type registerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login handles POST /api/auth/login. The email is looked up in the user
// collection; a miss fails without detail and without touching the session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		jsonError(w, http.StatusBadRequest, "email required")
		return
	}

	user, err := store.FindUserByEmail(r.Context(), h.KV, req.Email)
	if err != nil {
		slog.Error("failed to look up user", "error", err)
		jsonError(w, http.StatusInternalServerError, "login failed")
		return
	}
	if user == nil {
		jsonError(w, http.StatusUnauthorized, store.ErrUserNotFound.Error())
		return
	}

	if err := store.SetCurrentUser(r.Context(), h.KV, user); err != nil {
		slog.Error("failed to store session", "error", err)
		jsonError(w, http.StatusInternalServerError, "login failed")
		return
	}

	jsonResponse(w, http.StatusOK, user)
}

// Register handles POST /api/auth/register. A duplicate email is a 409 and
// leaves the collection untouched; success logs the new user in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := store.RegisterUser(r.Context(), h.KV, req.Name, req.Email, req.Role)
	switch {
	case errors.Is(err, store.ErrEmailTaken):
		jsonError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, store.ErrMissingField), errors.Is(err, store.ErrInvalidField):
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		slog.Error("failed to register user", "error", err)
		jsonError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	if err := store.SetCurrentUser(r.Context(), h.KV, user); err != nil {
		slog.Error("failed to store session", "error", err)
	}

	jsonResponse(w, http.StatusCreated, user)
}

// Session handles GET /api/auth/session.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, GetUser(r.Context()))
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := store.SetCurrentUser(r.Context(), h.KV, nil); err != nil {
		slog.Error("failed to clear session", "error", err)
		jsonError(w, http.StatusInternalServerError, "logout failed")
		return
	}
	jsonResponse(w, http.StatusOK, nil)
}
