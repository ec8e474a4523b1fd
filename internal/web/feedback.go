package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/store"
)

// FeedbackPage handles GET /feedback.
func (s *Server) FeedbackPage(w http.ResponseWriter, r *http.Request) {
	user := GetSessionUser(r.Context())

	entries, err := store.ListFeedback(r.Context(), s.KV)
	if err != nil {
		slog.Error("failed to list feedback", "error", err)
	}
	averages, err := store.AverageRatings(r.Context(), s.KV)
	if err != nil {
		slog.Error("failed to compute rating averages", "error", err)
	}

	s.Templates.Render(w, "feedback.html", &struct {
		PageData
		Entries    []model.Feedback
		Averages   map[string]float64
		Categories []string
	}{
		PageData:   pageData("Feedback", user, model.ViewFeedback),
		Entries:    entries,
		Averages:   averages,
		Categories: model.FeedbackCategories,
	})
}

// FeedbackSubmit handles POST /feedback. Entries are immutable once stored.
func (s *Server) FeedbackSubmit(w http.ResponseWriter, r *http.Request) {
	user := GetSessionUser(r.Context())

	rating, err := strconv.Atoi(r.FormValue("rating"))
	if err != nil {
		rating = 0 // rejected by the store
	}
	anonymous := r.FormValue("anonymous") == "on"

	_, err = store.SubmitFeedback(r.Context(), s.KV, user.ID, r.FormValue("category"), rating, r.FormValue("comment"), anonymous)
	if err != nil {
		slog.Warn("failed to submit feedback", "error", err)
	} else {
		slog.Info("feedback submitted", "user", user.Name, "category", r.FormValue("category"), "rating", rating)
	}
	http.Redirect(w, r, "/feedback", http.StatusSeeOther)
}
