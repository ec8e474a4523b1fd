package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/storage"
	"github.com/campverse/campverse/internal/store"
)

type webContextKey string

const webUserKey webContextKey = "webuser"

// SessionMiddleware loads the current user from the session key and adds it
// to the request context. Requests without a session are sent back to the
// landing page.
func SessionMiddleware(kv storage.KV) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := store.CurrentUser(r.Context(), kv)
			if err != nil {
				slog.Error("failed to read session", "error", err)
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			if user == nil {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), webUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireView returns middleware that checks the role gate for a view. A
// role outside the permitted set lands on the dashboard, the default tab.
func RequireView(view string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := GetSessionUser(r.Context())
			if user == nil || !model.CanView(user.Role, view) {
				http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetSessionUser retrieves the logged-in user from the request context.
func GetSessionUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(webUserKey).(*model.User)
	return user
}
