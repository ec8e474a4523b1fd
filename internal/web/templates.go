package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/storage"
	webembed "github.com/campverse/campverse/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"canView":       model.CanView,
		"canPostNotice": model.CanPostNotice,
		"viewLabel": func(view string) string {
			switch view {
			case model.ViewDashboard:
				return "Dashboard"
			case model.ViewLostFound:
				return "Lost & Found"
			case model.ViewNotices:
				return "Notice Board"
			case model.ViewMarketplace:
				return "Marketplace"
			case model.ViewCollege:
				return "College Mgmt"
			case model.ViewFeedback:
				return "Feedback"
			case model.ViewAdmin:
				return "Admin Panel"
			default:
				return view
			}
		},
		"expired": func(n model.Notice) bool {
			return n.Expired(time.Now())
		},
		"shortDate": func(value string) string {
			t, err := time.Parse(time.RFC3339, value)
			if err != nil {
				return value
			}
			return t.Format("Jan 2, 2006")
		},
		"price": func(p float64) string {
			return fmt.Sprintf("%.2f", p)
		},
	}
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	// Read layout.
	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"landing.html",
		"login.html",
		"dashboard.html",
		"lostfound.html",
		"notices.html",
		"marketplace.html",
		"college.html",
		"feedback.html",
		"admin.html",
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title   string
	User    *model.User
	Active  string
	Menu    []string
	Error   string
	Success string
}

// Server holds all dependencies for page handlers.
type Server struct {
	KV        storage.KV
	Templates *Templates
}

// pageData builds the common template data for an authenticated page.
func pageData(title string, user *model.User, active string) PageData {
	return PageData{
		Title:  title,
		User:   user,
		Active: active,
		Menu:   model.AllowedViews(user.Role),
	}
}
