package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/storage"
)

// ListLostFound returns all lost & found reports in insertion order.
func ListLostFound(ctx context.Context, kv storage.KV) ([]model.LostFoundItem, error) {
	return GetAll[model.LostFoundItem](ctx, kv, KeyLostFound)
}

// ReportLostFound creates a new report with status Open. PostedBy is the
// poster's display name; resolution rights hinge on it later.
func ReportLostFound(ctx context.Context, kv storage.KV, item model.LostFoundItem) (*model.LostFoundItem, error) {
	if item.Title == "" || item.Location == "" {
		return nil, ErrMissingField
	}
	if item.Type != model.LostFoundLost && item.Type != model.LostFoundFound {
		return nil, fmt.Errorf("type %q: %w", item.Type, ErrInvalidField)
	}

	item.ID = uuid.NewString()
	item.Status = model.LostFoundOpen
	if item.Date == "" {
		item.Date = time.Now().UTC().Format(time.RFC3339)
	}
	if err := Append(ctx, kv, KeyLostFound, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ResolveLostFound marks a report resolved. The transition only moves
// forward: resolving an already-resolved item leaves it resolved. Returns
// ErrNotFound when no report matches the id.
func ResolveLostFound(ctx context.Context, kv storage.KV, id string) error {
	found, err := UpdateByID(ctx, kv, KeyLostFound, id, func(item *model.LostFoundItem) {
		item.Status = model.LostFoundResolved
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// GetLostFound returns the report with the given id, or nil if absent.
func GetLostFound(ctx context.Context, kv storage.KV, id string) (*model.LostFoundItem, error) {
	items, err := ListLostFound(ctx, kv)
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
