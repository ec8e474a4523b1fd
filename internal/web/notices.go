package web

import (
	"log/slog"
	"net/http"

	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/store"
)

// NoticesPage handles GET /notices. An optional ?category= narrows the list.
func (s *Server) NoticesPage(w http.ResponseWriter, r *http.Request) {
	user := GetSessionUser(r.Context())

	category := r.URL.Query().Get("category")
	if category == "All" {
		category = ""
	}

	notices, err := store.ListNotices(r.Context(), s.KV, category)
	if err != nil {
		slog.Error("failed to list notices", "error", err)
	}

	// Deletable marks the notices the current user may remove.
	deletable := make(map[string]bool, len(notices))
	for i := range notices {
		deletable[notices[i].ID] = model.CanDeleteNotice(user, &notices[i])
	}

	s.Templates.Render(w, "notices.html", &struct {
		PageData
		Notices    []model.Notice
		Categories []string
		Filter     string
		Deletable  map[string]bool
		CanPost    bool
	}{
		PageData:   pageData("Notice Board", user, model.ViewNotices),
		Notices:    notices,
		Categories: model.NoticeCategories,
		Filter:     category,
		Deletable:  deletable,
		CanPost:    model.CanPostNotice(user.Role),
	})
}

// NoticeCreateSubmit handles POST /notices. Posting is limited to Faculty
// and Admin.
func (s *Server) NoticeCreateSubmit(w http.ResponseWriter, r *http.Request) {
	user := GetSessionUser(r.Context())
	if !model.CanPostNotice(user.Role) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	title := r.FormValue("title")
	content := r.FormValue("content")
	category := r.FormValue("category")
	priority := r.FormValue("priority")

	if _, err := store.PostNotice(r.Context(), s.KV, title, content, category, priority, user.Name); err != nil {
		slog.Warn("failed to post notice", "error", err)
	} else {
		slog.Info("notice posted", "user", user.Name, "title", title, "category", category)
	}
	http.Redirect(w, r, "/notices", http.StatusSeeOther)
}

// NoticeDeleteSubmit handles POST /notices/{id}/delete. Admins may delete
// anything, other users only their own postings.
func (s *Server) NoticeDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	user := GetSessionUser(r.Context())
	id := r.PathValue("id")

	notice, err := store.GetNotice(r.Context(), s.KV, id)
	if err != nil {
		slog.Error("failed to get notice", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if notice == nil {
		http.NotFound(w, r)
		return
	}
	if !model.CanDeleteNotice(user, notice) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	if err := store.DeleteNotice(r.Context(), s.KV, id); err != nil {
		slog.Error("failed to delete notice", "error", err)
		http.Error(w, "failed to delete", http.StatusInternalServerError)
		return
	}

	slog.Info("notice deleted", "user", user.Name, "title", notice.Title)
	http.Redirect(w, r, "/notices", http.StatusSeeOther)
}
