package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/store"
)

// MarketplacePage handles GET /marketplace.
func (s *Server) MarketplacePage(w http.ResponseWriter, r *http.Request) {
	user := GetSessionUser(r.Context())
	items, err := store.ListMarketItems(r.Context(), s.KV)
	if err != nil {
		slog.Error("failed to list market items", "error", err)
	}

	// Sellable marks the listings the current user may mark sold.
	sellable := make(map[string]bool, len(items))
	for i := range items {
		sellable[items[i].ID] = model.CanMarkSold(user, &items[i])
	}

	s.Templates.Render(w, "marketplace.html", &struct {
		PageData
		Items    []model.MarketItem
		Sellable map[string]bool
	}{
		PageData: pageData("Marketplace", user, model.ViewMarketplace),
		Items:    items,
		Sellable: sellable,
	})
}

// MarketCreateSubmit handles POST /marketplace.
func (s *Server) MarketCreateSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.limitUpload(w, r) {
		return
	}
	user := GetSessionUser(r.Context())

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		price = -1 // rejected by the store
	}

	item := model.MarketItem{
		Title:       r.FormValue("title"),
		Price:       price,
		Description: r.FormValue("description"),
		SellerID:    user.ID,
		SellerName:  user.Name,
	}
	item.ImageURL = s.optionalImage(r)

	if _, err := store.PostMarketItem(r.Context(), s.KV, item); err != nil {
		slog.Warn("failed to post market item", "error", err)
	} else {
		slog.Info("market item posted", "user", user.Name, "title", item.Title, "price", item.Price)
	}
	http.Redirect(w, r, "/marketplace", http.StatusSeeOther)
}

// MarketSoldSubmit handles POST /marketplace/{id}/sold. Only the seller may
// mark a listing sold.
func (s *Server) MarketSoldSubmit(w http.ResponseWriter, r *http.Request) {
	user := GetSessionUser(r.Context())
	id := r.PathValue("id")

	item, err := store.GetMarketItem(r.Context(), s.KV, id)
	if err != nil {
		slog.Error("failed to get market item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.NotFound(w, r)
		return
	}
	if !model.CanMarkSold(user, item) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	if err := store.MarkSold(r.Context(), s.KV, id); err != nil {
		slog.Error("failed to mark item sold", "error", err)
		http.Error(w, "failed to mark sold", http.StatusInternalServerError)
		return
	}

	slog.Info("market item sold", "user", user.Name, "title", item.Title)
	http.Redirect(w, r, "/marketplace", http.StatusSeeOther)
}
