package storage

import (
	"context"
	"testing"
)

func TestGetMissingKey(t *testing.T) {
	kv := NewTestKV(t)
	ctx := context.Background()

	value, ok, err := kv.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expected missing key to report not found")
	}
	if value != "" {
		t.Errorf("expected empty value, got %q", value)
	}
}

func TestSetAndGet(t *testing.T) {
	kv := NewTestKV(t)
	ctx := context.Background()

	if err := kv.Set(ctx, "users", `[{"id":"1"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	value, ok, err := kv.Get(ctx, "users")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}
	if value != `[{"id":"1"}]` {
		t.Errorf("unexpected value: %q", value)
	}
}

func TestSetReplaces(t *testing.T) {
	kv := NewTestKV(t)
	ctx := context.Background()

	kv.Set(ctx, "session", "null")
	kv.Set(ctx, "session", `{"id":"2"}`)

	value, _, err := kv.Get(ctx, "session")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != `{"id":"2"}` {
		t.Errorf("expected replaced value, got %q", value)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	kv := NewTestKV(t)
	ctx := context.Background()

	kv.Set(ctx, "notices", "[]")
	kv.Set(ctx, "market", `[{"id":"m1"}]`)

	value, _, _ := kv.Get(ctx, "notices")
	if value != "[]" {
		t.Errorf("writing one key changed another: %q", value)
	}
}
