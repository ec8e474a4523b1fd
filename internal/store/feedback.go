package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/storage"
)

// ListFeedback returns all feedback entries in insertion order.
func ListFeedback(ctx context.Context, kv storage.KV) ([]model.Feedback, error) {
	return GetAll[model.Feedback](ctx, kv, KeyFeedback)
}

// SubmitFeedback creates a feedback entry. Entries are immutable and
// undeletable afterwards; there is no corresponding update or delete.
func SubmitFeedback(ctx context.Context, kv storage.KV, userID, category string, rating int, comment string, anonymous bool) (*model.Feedback, error) {
	if comment == "" {
		return nil, ErrMissingField
	}
	if !model.ValidFeedbackCategory(category) {
		return nil, fmt.Errorf("category %q: %w", category, ErrInvalidField)
	}
	if !model.ValidRating(rating) {
		return nil, fmt.Errorf("rating %d: %w", rating, ErrInvalidField)
	}

	entry := model.Feedback{
		ID:          uuid.NewString(),
		UserID:      userID,
		Category:    category,
		Rating:      rating,
		Comment:     comment,
		Date:        time.Now().UTC().Format(time.RFC3339),
		IsAnonymous: anonymous,
	}
	if err := Append(ctx, kv, KeyFeedback, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// AverageRatings returns the mean rating per category, skipping categories
// with no entries.
func AverageRatings(ctx context.Context, kv storage.KV) (map[string]float64, error) {
	entries, err := ListFeedback(ctx, kv)
	if err != nil {
		return nil, err
	}

	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, e := range entries {
		sums[e.Category] += e.Rating
		counts[e.Category]++
	}

	averages := make(map[string]float64, len(sums))
	for category, sum := range sums {
		averages[category] = float64(sum) / float64(counts[category])
	}
	return averages, nil
}
