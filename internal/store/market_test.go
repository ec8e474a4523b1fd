package store

import (
	"context"
	"errors"
	"testing"

	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/storage"
)

func TestPostAndSellMarketItem(t *testing.T) {
	kv := storage.NewTestKV(t)
	ctx := context.Background()

	item, err := PostMarketItem(ctx, kv, model.MarketItem{
		Title:       "Desk lamp",
		Price:       25.50,
		Description: "Barely used",
		SellerID:    "s1",
		SellerName:  "Sarah",
	})
	if err != nil {
		t.Fatalf("PostMarketItem: %v", err)
	}
	if item.Status != model.MarketAvailable {
		t.Errorf("expected Available, got %q", item.Status)
	}

	// Another user sees the listing as available.
	items, _ := ListMarketItems(ctx, kv)
	if len(items) != 1 || items[0].Status != model.MarketAvailable {
		t.Fatalf("unexpected listing state: %+v", items)
	}

	if err := MarkSold(ctx, kv, item.ID); err != nil {
		t.Fatalf("MarkSold: %v", err)
	}

	got, _ := GetMarketItem(ctx, kv, item.ID)
	if got.Status != model.MarketSold {
		t.Errorf("expected Sold, got %q", got.Status)
	}
	// Everything else untouched.
	if got.ID != item.ID || got.Price != 25.50 || got.Description != "Barely used" {
		t.Errorf("sale changed unrelated fields: %+v", got)
	}
}

func TestPostMarketItemValidation(t *testing.T) {
	kv := storage.NewTestKV(t)
	ctx := context.Background()

	if _, err := PostMarketItem(ctx, kv, model.MarketItem{Price: 10}); !errors.Is(err, ErrMissingField) {
		t.Errorf("missing title: expected ErrMissingField, got %v", err)
	}
	if _, err := PostMarketItem(ctx, kv, model.MarketItem{Title: "x", Price: -1}); !errors.Is(err, ErrInvalidField) {
		t.Errorf("negative price: expected ErrInvalidField, got %v", err)
	}
	if _, err := PostMarketItem(ctx, kv, model.MarketItem{Title: "free", Price: 0}); err != nil {
		t.Errorf("zero price should be accepted, got %v", err)
	}
}

func TestMarkSoldMissing(t *testing.T) {
	kv := storage.NewTestKV(t)
	ctx := context.Background()

	if err := MarkSold(ctx, kv, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
