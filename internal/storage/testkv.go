package storage

import "testing"

// NewTestKV creates a fresh in-memory SQLite-backed KV store.
func NewTestKV(t *testing.T) *SQLite {
	t.Helper()

	kv, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}

	t.Cleanup(func() { kv.Close() })

	return kv
}
