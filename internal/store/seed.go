package store

import (
	"context"
	"fmt"
	"time"

	"github.com/campverse/campverse/internal/imaging"
	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/storage"
)

// Initialize seeds every collection that has no persisted content yet.
// Users and notices get demo records, the rest start empty. Existing
// content is never touched, so initialization is idempotent.
func Initialize(ctx context.Context, kv storage.KV) error {
	now := time.Now().UTC().Format(time.RFC3339)

	seedUsers := []model.User{
		{ID: "1", Name: "Admin User", Email: "admin@campverse.edu", Role: model.RoleAdmin, Avatar: imaging.Avatar("admin@campverse.edu")},
		{ID: "2", Name: "Prof. Sarah Jenkins", Email: "sarah@campverse.edu", Role: model.RoleFaculty, Department: "Computer Science", Avatar: imaging.Avatar("sarah@campverse.edu")},
		{ID: "3", Name: "John Doe", Email: "john@campverse.edu", Role: model.RoleStudent, StudentID: "CS101", Avatar: imaging.Avatar("john@campverse.edu")},
	}

	seedNotices := []model.Notice{
		{
			ID:         "n1",
			Title:      "Mid-term Exams Schedule",
			Content:    "The mid-term exams for all departments will commence from next Monday.",
			Category:   model.NoticeAcademic,
			PostedBy:   "Admin",
			Date:       now,
			ExpiryDate: "2025-12-31",
			Priority:   model.PriorityHigh,
		},
		{
			ID:         "n2",
			Title:      "Hackathon 2025 Registration",
			Content:    "Register your teams for the upcoming annual hackathon.",
			Category:   model.NoticeEvent,
			PostedBy:   "Faculty",
			Date:       now,
			ExpiryDate: "2025-05-15",
			Priority:   model.PriorityMedium,
		},
	}

	if err := seedIfAbsent(ctx, kv, KeyUsers, seedUsers); err != nil {
		return err
	}
	if err := seedIfAbsent(ctx, kv, KeyNotices, seedNotices); err != nil {
		return err
	}
	if err := seedIfAbsent(ctx, kv, KeyLostFound, []model.LostFoundItem{}); err != nil {
		return err
	}
	if err := seedIfAbsent(ctx, kv, KeyMarket, []model.MarketItem{}); err != nil {
		return err
	}
	return seedIfAbsent(ctx, kv, KeyFeedback, []model.Feedback{})
}

// seedIfAbsent writes the initial records only when the key has no content.
func seedIfAbsent[T any](ctx context.Context, kv storage.KV, key string, records []T) error {
	_, ok, err := kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("checking collection %q: %w", key, err)
	}
	if ok {
		return nil
	}
	return ReplaceAll(ctx, kv, key, records)
}
