package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/campverse/campverse/internal/store"
)

// Home handles GET /. It resolves the startup state: a stored session goes
// straight to the app, everything else lands on the landing page.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	user, err := store.CurrentUser(r.Context(), s.KV)
	if err != nil {
		slog.Error("failed to read session", "error", err)
	}
	if user != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	s.Templates.Render(w, "landing.html", &PageData{Title: "CampVerse"})
}

// LoginPage handles GET /login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	user, err := store.CurrentUser(r.Context(), s.KV)
	if err != nil {
		slog.Error("failed to read session", "error", err)
	}
	if user != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	s.Templates.Render(w, "login.html", &PageData{Title: "Sign In"})
}

// LoginSubmit handles POST /login. Only the email is looked up; the
// password field is accepted but never verified against anything.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	if email == "" {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Sign In",
			Error: "Enter your email address.",
		})
		return
	}

	user, err := store.FindUserByEmail(r.Context(), s.KV, email)
	if err != nil {
		slog.Error("failed to look up user", "error", err)
	}
	if user == nil {
		// One generic message for every failure kind.
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Sign In",
			Error: "Invalid credentials or user not found.",
		})
		return
	}

	if err := store.SetCurrentUser(r.Context(), s.KV, user); err != nil {
		slog.Error("failed to store session", "error", err)
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Sign In",
			Error: "Sign-in failed, try again.",
		})
		return
	}

	slog.Info("user signed in", "email", user.Email, "role", user.Role)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// RegisterSubmit handles POST /register. A duplicate email fails without
// touching the collection; success logs the new user straight in.
func (s *Server) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	email := r.FormValue("email")
	role := r.FormValue("role")

	user, err := store.RegisterUser(r.Context(), s.KV, name, email, role)
	if err != nil {
		message := "Registration failed, check the form."
		if errors.Is(err, store.ErrEmailTaken) {
			message = "A user already exists with this email."
		}
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Sign In",
			Error: message,
		})
		return
	}

	if err := store.SetCurrentUser(r.Context(), s.KV, user); err != nil {
		slog.Error("failed to store session", "error", err)
	}

	slog.Info("user registered", "email", user.Email, "role", user.Role)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout handles POST /logout.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if err := store.SetCurrentUser(r.Context(), s.KV, nil); err != nil {
		slog.Error("failed to clear session", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
