package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/storage"
)

// DefaultNoticeLifetime is how far out the expiry date is set when a new
// notice is posted. Expiry is stored but never enforced.
const DefaultNoticeLifetime = 7 * 24 * time.Hour

// ListNotices returns all notices in insertion order. A non-empty category
// narrows the result to that category.
func ListNotices(ctx context.Context, kv storage.KV, category string) ([]model.Notice, error) {
	notices, err := GetAll[model.Notice](ctx, kv, KeyNotices)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return notices, nil
	}

	filtered := notices[:0:0]
	for _, n := range notices {
		if n.Category == category {
			filtered = append(filtered, n)
		}
	}
	return filtered, nil
}

// PostNotice creates a new notice. Date and ExpiryDate are filled in; the
// role gate (Faculty/Admin may post) lives with the callers.
func PostNotice(ctx context.Context, kv storage.KV, title, content, category, priority, postedBy string) (*model.Notice, error) {
	if title == "" || content == "" {
		return nil, ErrMissingField
	}
	if !model.ValidNoticeCategory(category) {
		return nil, fmt.Errorf("category %q: %w", category, ErrInvalidField)
	}
	if priority != model.PriorityHigh && priority != model.PriorityMedium && priority != model.PriorityLow {
		return nil, fmt.Errorf("priority %q: %w", priority, ErrInvalidField)
	}

	now := time.Now().UTC()
	notice := model.Notice{
		ID:         uuid.NewString(),
		Title:      title,
		Content:    content,
		Category:   category,
		Priority:   priority,
		PostedBy:   postedBy,
		Date:       now.Format(time.RFC3339),
		ExpiryDate: now.Add(DefaultNoticeLifetime).Format(time.RFC3339),
	}
	if err := Append(ctx, kv, KeyNotices, notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

// GetNotice returns the notice with the given id, or nil if absent.
func GetNotice(ctx context.Context, kv storage.KV, id string) (*model.Notice, error) {
	notices, err := GetAll[model.Notice](ctx, kv, KeyNotices)
	if err != nil {
		return nil, err
	}
	for i := range notices {
		if notices[i].ID == id {
			return &notices[i], nil
		}
	}
	return nil, nil
}

// DeleteNotice removes the notice with the given id. Returns ErrNotFound
// when no notice matches.
func DeleteNotice(ctx context.Context, kv storage.KV, id string) error {
	mu.Lock()
	defer mu.Unlock()

	notices, err := GetAll[model.Notice](ctx, kv, KeyNotices)
	if err != nil {
		return err
	}

	kept := notices[:0:0]
	found := false
	for _, n := range notices {
		if n.ID == id {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return ErrNotFound
	}
	return ReplaceAll(ctx, kv, KeyNotices, kept)
}
