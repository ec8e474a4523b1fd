package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/store"
)

// AdminPage handles GET /admin. An optional ?q= searches over name, email,
// and role.
func (s *Server) AdminPage(w http.ResponseWriter, r *http.Request) {
	s.renderAdmin(w, r, "")
}

// AdminUserDeleteSubmit handles POST /admin/users/{id}/delete. Deleting
// one's own account is rejected with an inline message.
func (s *Server) AdminUserDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	user := GetSessionUser(r.Context())
	id := r.PathValue("id")

	err := store.DeleteUser(r.Context(), s.KV, id, user.ID)
	switch {
	case errors.Is(err, store.ErrSelfDelete):
		s.renderAdmin(w, r, "You cannot delete your own admin account!")
		return
	case errors.Is(err, store.ErrNotFound):
		s.renderAdmin(w, r, "User not found.")
		return
	case err != nil:
		slog.Error("failed to delete user", "error", err)
		http.Error(w, "failed to delete", http.StatusInternalServerError)
		return
	}

	slog.Info("user deleted", "admin", user.Name, "deleted_id", id)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// renderAdmin renders the admin panel with the user table, role counts, and
// an optional inline error.
func (s *Server) renderAdmin(w http.ResponseWriter, r *http.Request, errMsg string) {
	user := GetSessionUser(r.Context())

	users, err := store.ListUsers(r.Context(), s.KV)
	if err != nil {
		slog.Error("failed to list users", "error", err)
	}

	counts := map[string]int{}
	for _, u := range users {
		counts[u.Role]++
	}

	search := r.URL.Query().Get("q")
	filtered := users
	if search != "" {
		needle := strings.ToLower(search)
		filtered = filtered[:0:0]
		for _, u := range users {
			if strings.Contains(strings.ToLower(u.Name), needle) ||
				strings.Contains(strings.ToLower(u.Email), needle) ||
				strings.Contains(strings.ToLower(u.Role), needle) {
				filtered = append(filtered, u)
			}
		}
	}

	s.Templates.Render(w, "admin.html", &struct {
		PageData
		Users        []model.User
		TotalCount   int
		AdminCount   int
		FacultyCount int
		StudentCount int
		Search       string
	}{
		PageData: PageData{
			Title:  "Admin Panel",
			User:   user,
			Active: model.ViewAdmin,
			Menu:   model.AllowedViews(user.Role),
			Error:  errMsg,
		},
		Users:        filtered,
		TotalCount:   len(users),
		AdminCount:   counts[model.RoleAdmin],
		FacultyCount: counts[model.RoleFaculty],
		StudentCount: counts[model.RoleStudent],
		Search:       search,
	})
}
