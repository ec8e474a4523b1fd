package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/storage"
)

// ListMarketItems returns all marketplace listings in insertion order.
func ListMarketItems(ctx context.Context, kv storage.KV) ([]model.MarketItem, error) {
	return GetAll[model.MarketItem](ctx, kv, KeyMarket)
}

// PostMarketItem creates a new listing with status Available. Negative
// prices are rejected.
func PostMarketItem(ctx context.Context, kv storage.KV, item model.MarketItem) (*model.MarketItem, error) {
	if item.Title == "" {
		return nil, ErrMissingField
	}
	if item.Price < 0 {
		return nil, fmt.Errorf("price %v: %w", item.Price, ErrInvalidField)
	}

	item.ID = uuid.NewString()
	item.Status = model.MarketAvailable
	if item.Date == "" {
		item.Date = time.Now().UTC().Format(time.RFC3339)
	}
	if err := Append(ctx, kv, KeyMarket, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// MarkSold marks a listing sold. The transition only moves forward; there
// is no way back to Available. Returns ErrNotFound when no listing matches.
func MarkSold(ctx context.Context, kv storage.KV, id string) error {
	found, err := UpdateByID(ctx, kv, KeyMarket, id, func(item *model.MarketItem) {
		item.Status = model.MarketSold
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// GetMarketItem returns the listing with the given id, or nil if absent.
func GetMarketItem(ctx context.Context, kv storage.KV, id string) (*model.MarketItem, error) {
	items, err := ListMarketItems(ctx, kv)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}
