package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/campverse/campverse/internal/imaging"
	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/store"
)

// maxUploadBytes caps multipart request bodies. Images are stored inline in
// the record store, so uploads are kept small.
const maxUploadBytes = 5 << 20

// LostFoundPage handles GET /lostfound.
func (s *Server) LostFoundPage(w http.ResponseWriter, r *http.Request) {
	user := GetSessionUser(r.Context())
	items, err := store.ListLostFound(r.Context(), s.KV)
	if err != nil {
		slog.Error("failed to list lost & found", "error", err)
	}

	// Resolvable marks the items the current user may close.
	resolvable := make(map[string]bool, len(items))
	for i := range items {
		resolvable[items[i].ID] = model.CanResolve(user, &items[i])
	}

	s.Templates.Render(w, "lostfound.html", &struct {
		PageData
		Items      []model.LostFoundItem
		Resolvable map[string]bool
	}{
		PageData:   pageData("Lost & Found", user, model.ViewLostFound),
		Items:      items,
		Resolvable: resolvable,
	})
}

// LostFoundCreateSubmit handles POST /lostfound.
func (s *Server) LostFoundCreateSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.limitUpload(w, r) {
		return
	}
	user := GetSessionUser(r.Context())

	item := model.LostFoundItem{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Type:        r.FormValue("type"),
		Category:    r.FormValue("category"),
		Location:    r.FormValue("location"),
		PostedBy:    user.Name,
		Contact:     r.FormValue("contact"),
	}
	if item.Contact == "" {
		item.Contact = user.Email
	}
	item.ImageURL = s.optionalImage(r)

	if _, err := store.ReportLostFound(r.Context(), s.KV, item); err != nil {
		slog.Warn("failed to report lost & found item", "error", err)
	} else {
		slog.Info("lost & found item reported", "user", user.Name, "title", item.Title, "type", item.Type)
	}
	http.Redirect(w, r, "/lostfound", http.StatusSeeOther)
}

// LostFoundResolveSubmit handles POST /lostfound/{id}/resolve. Only the
// original poster may resolve an item.
func (s *Server) LostFoundResolveSubmit(w http.ResponseWriter, r *http.Request) {
	user := GetSessionUser(r.Context())
	id := r.PathValue("id")

	item, err := store.GetLostFound(r.Context(), s.KV, id)
	if err != nil {
		slog.Error("failed to get lost & found item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.NotFound(w, r)
		return
	}
	if !model.CanResolve(user, item) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	if err := store.ResolveLostFound(r.Context(), s.KV, id); err != nil {
		slog.Error("failed to resolve lost & found item", "error", err)
		http.Error(w, "failed to resolve", http.StatusInternalServerError)
		return
	}

	slog.Info("lost & found item resolved", "user", user.Name, "title", item.Title)
	http.Redirect(w, r, "/lostfound", http.StatusSeeOther)
}

// limitUpload caps the request body and parses the multipart form. It must
// run before any form field access, otherwise FormValue triggers a parse
// with no body limit. An oversized body is rejected with 413; returns false
// when the request has already been answered.
func (s *Server) limitUpload(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	err := r.ParseMultipartForm(maxUploadBytes)
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
		return false
	}

	slog.Warn("failed to parse upload form", "error", err)
	http.Error(w, "bad request", http.StatusBadRequest)
	return false
}

// optionalImage reads an optional image from the already-parsed multipart
// form and returns it as a data URI, or empty when no usable image was sent.
func (s *Server) optionalImage(r *http.Request) string {
	if r.MultipartForm == nil {
		return ""
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		return ""
	}
	defer file.Close()

	uri, err := imaging.Process(file)
	if err != nil {
		slog.Warn("discarding unusable image upload", "error", err)
		return ""
	}
	return uri
}
