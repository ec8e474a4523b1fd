package api

import (
	"net/http"

	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/storage"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(kv storage.KV) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{KV: kv}
	usersHandler := &UsersHandler{KV: kv}
	lostFoundHandler := &LostFoundHandler{KV: kv}
	noticesHandler := &NoticesHandler{KV: kv}
	marketHandler := &MarketHandler{KV: kv}
	feedbackHandler := &FeedbackHandler{KV: kv}

	authMW := AuthMiddleware(kv)
	gated := func(view string, h http.HandlerFunc) http.Handler {
		return authMW(RequireView(view)(h))
	}

	// Public: login and registration.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)

	// Authenticated session routes.
	mux.Handle("GET /api/auth/session", authMW(http.HandlerFunc(authHandler.Session)))
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Lost & found (all roles).
	mux.Handle("GET /api/lostfound", gated(model.ViewLostFound, lostFoundHandler.List))
	mux.Handle("POST /api/lostfound", gated(model.ViewLostFound, lostFoundHandler.Create))
	mux.Handle("POST /api/lostfound/{id}/resolve", gated(model.ViewLostFound, lostFoundHandler.Resolve))

	// Notices (all roles read; posting checked per role in the handler).
	mux.Handle("GET /api/notices", gated(model.ViewNotices, noticesHandler.List))
	mux.Handle("POST /api/notices", gated(model.ViewNotices, noticesHandler.Create))
	mux.Handle("DELETE /api/notices/{id}", gated(model.ViewNotices, noticesHandler.Delete))

	// Marketplace (all roles).
	mux.Handle("GET /api/market", gated(model.ViewMarketplace, marketHandler.List))
	mux.Handle("POST /api/market", gated(model.ViewMarketplace, marketHandler.Create))
	mux.Handle("POST /api/market/{id}/sold", gated(model.ViewMarketplace, marketHandler.MarkSold))

	// Feedback (students and faculty).
	mux.Handle("GET /api/feedback", gated(model.ViewFeedback, feedbackHandler.List))
	mux.Handle("POST /api/feedback", gated(model.ViewFeedback, feedbackHandler.Create))
	mux.Handle("GET /api/feedback/averages", gated(model.ViewFeedback, feedbackHandler.Averages))

	// User administration (admin only).
	mux.Handle("GET /api/users", gated(model.ViewAdmin, usersHandler.List))
	mux.Handle("DELETE /api/users/{id}", gated(model.ViewAdmin, usersHandler.Delete))

	return mux
}
