// Package store is the sole mutation and query surface over the persisted
// collections. Feature code never holds shared references into a collection;
// every read returns a fresh snapshot parsed from the backend.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/campverse/campverse/internal/storage"
)

// Collection keys.
const (
	KeyUsers     = "users"
	KeyLostFound = "lost_found"
	KeyNotices   = "notices"
	KeyMarket    = "market"
	KeyFeedback  = "feedback"
	KeySession   = "session"
)

// Record is any collection entry with a unique id. Ids are caller-supplied
// and never reused.
type Record interface {
	RecordID() string
}

// mu serializes read-modify-write sequences. The process is the only writer,
// so one lock is all the atomicity the store needs.
var mu sync.Mutex

// GetAll returns all records under a collection key in insertion order.
// An absent key or unparseable content yields an empty slice; parse failures
// are logged, not raised.
func GetAll[T any](ctx context.Context, kv storage.KV, key string) ([]T, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("reading collection %q: %w", key, err)
	}
	if !ok {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		slog.Error("unparseable collection content, treating as empty", "key", key, "error", err)
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// ReplaceAll serializes records and persists them under the collection key,
// replacing prior content.
func ReplaceAll[T any](ctx context.Context, kv storage.KV, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("serializing collection %q: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("writing collection %q: %w", key, err)
	}
	return nil
}

// Append reads the collection, pushes one record, and writes it back. The
// caller supplies a pre-generated unique id.
func Append[T any](ctx context.Context, kv storage.KV, key string, record T) error {
	mu.Lock()
	defer mu.Unlock()

	records, err := GetAll[T](ctx, kv, key)
	if err != nil {
		return err
	}
	records = append(records, record)
	return ReplaceAll(ctx, kv, key, records)
}

// UpdateByID finds the first record whose id matches, applies the mutation
// in place, and writes the collection back. Returns false, without writing,
// if no record matches.
func UpdateByID[T Record](ctx context.Context, kv storage.KV, key, id string, apply func(*T)) (bool, error) {
	mu.Lock()
	defer mu.Unlock()

	records, err := GetAll[T](ctx, kv, key)
	if err != nil {
		return false, err
	}

	for i := range records {
		if records[i].RecordID() != id {
			continue
		}
		apply(&records[i])
		if err := ReplaceAll(ctx, kv, key, records); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
