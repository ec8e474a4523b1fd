package web

import (
	"log/slog"
	"net/http"

	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/store"
)

// Dashboard handles GET /dashboard.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := GetSessionUser(r.Context())

	lostFound, err := store.ListLostFound(r.Context(), s.KV)
	if err != nil {
		slog.Error("failed to list lost & found for dashboard", "error", err)
	}
	notices, err := store.ListNotices(r.Context(), s.KV, "")
	if err != nil {
		slog.Error("failed to list notices for dashboard", "error", err)
	}
	market, err := store.ListMarketItems(r.Context(), s.KV)
	if err != nil {
		slog.Error("failed to list market items for dashboard", "error", err)
	}
	users, err := store.ListUsers(r.Context(), s.KV)
	if err != nil {
		slog.Error("failed to list users for dashboard", "error", err)
	}

	// Latest notices first, capped at 5.
	recent := make([]model.Notice, 0, 5)
	for i := len(notices) - 1; i >= 0 && len(recent) < 5; i-- {
		recent = append(recent, notices[i])
	}

	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		LostFoundCount int
		NoticeCount    int
		MarketCount    int
		UserCount      int
		RecentNotices  []model.Notice
	}{
		PageData:       pageData("Dashboard", user, model.ViewDashboard),
		LostFoundCount: len(lostFound),
		NoticeCount:    len(notices),
		MarketCount:    len(market),
		UserCount:      len(users),
		RecentNotices:  recent,
	})
}
