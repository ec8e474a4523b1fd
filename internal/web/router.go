package web

import (
	"net/http"

	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/storage"
	webembed "github.com/campverse/campverse/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(kv storage.KV) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		KV:        kv,
		Templates: templates,
	}

	mux := http.NewServeMux()
	session := SessionMiddleware(kv)

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Public routes: landing and auth.
	mux.HandleFunc("GET /{$}", s.Home)
	mux.HandleFunc("GET /login", s.LoginPage)
	mux.HandleFunc("POST /login", s.LoginSubmit)
	mux.HandleFunc("POST /register", s.RegisterSubmit)
	mux.HandleFunc("POST /logout", s.Logout)

	// Feature tabs, gated per view.
	page := func(view string, h http.HandlerFunc) http.Handler {
		return session(RequireView(view)(h))
	}

	mux.Handle("GET /dashboard", page(model.ViewDashboard, s.Dashboard))

	mux.Handle("GET /lostfound", page(model.ViewLostFound, s.LostFoundPage))
	mux.Handle("POST /lostfound", page(model.ViewLostFound, s.LostFoundCreateSubmit))
	mux.Handle("POST /lostfound/{id}/resolve", page(model.ViewLostFound, s.LostFoundResolveSubmit))

	mux.Handle("GET /notices", page(model.ViewNotices, s.NoticesPage))
	mux.Handle("POST /notices", page(model.ViewNotices, s.NoticeCreateSubmit))
	mux.Handle("POST /notices/{id}/delete", page(model.ViewNotices, s.NoticeDeleteSubmit))

	mux.Handle("GET /marketplace", page(model.ViewMarketplace, s.MarketplacePage))
	mux.Handle("POST /marketplace", page(model.ViewMarketplace, s.MarketCreateSubmit))
	mux.Handle("POST /marketplace/{id}/sold", page(model.ViewMarketplace, s.MarketSoldSubmit))

	mux.Handle("GET /college", page(model.ViewCollege, s.CollegePage))

	mux.Handle("GET /feedback", page(model.ViewFeedback, s.FeedbackPage))
	mux.Handle("POST /feedback", page(model.ViewFeedback, s.FeedbackSubmit))

	mux.Handle("GET /admin", page(model.ViewAdmin, s.AdminPage))
	mux.Handle("POST /admin/users/{id}/delete", page(model.ViewAdmin, s.AdminUserDeleteSubmit))

	return mux, nil
}
