package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/storage"
	"github.com/campverse/campverse/internal/store"
)

// MarketHandler handles marketplace endpoints.
type MarketHandler struct {
	KV storage.KV
}

type postMarketItemRequest struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

// List handles GET /api/market.
func (h *MarketHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListMarketItems(r.Context(), h.KV)
	if err != nil {
		slog.Error("failed to list market items", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/market.
func (h *MarketHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := GetUser(r.Context())

	var req postMarketItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := store.PostMarketItem(r.Context(), h.KV, model.MarketItem{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		SellerID:    user.ID,
		SellerName:  user.Name,
	})
	switch {
	case errors.Is(err, store.ErrMissingField), errors.Is(err, store.ErrInvalidField):
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		slog.Error("failed to post market item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// MarkSold handles POST /api/market/{id}/sold (seller only).
func (h *MarketHandler) MarkSold(w http.ResponseWriter, r *http.Request) {
	user := GetUser(r.Context())
	id := r.PathValue("id")

	item, err := store.GetMarketItem(r.Context(), h.KV, id)
	if err != nil {
		slog.Error("failed to get market item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to mark item sold")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if !model.CanMarkSold(user, item) {
		jsonError(w, http.StatusForbidden, "only the seller may mark an available item sold")
		return
	}

	if err := store.MarkSold(r.Context(), h.KV, id); err != nil {
		slog.Error("failed to mark item sold", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to mark item sold")
		return
	}

	jsonResponse(w, http.StatusOK, nil)
}
