// Package storage provides the persisted key-value backend. Collections are
// stored as serialized text under string keys; there is no transactional
// guarantee across keys.
package storage

import "context"

// KV is the minimal key-value surface the record store runs on. A future
// implementation could swap in a different backend without touching any
// feature code.
type KV interface {
	// Get returns the value stored under key and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any prior content.
	Set(ctx context.Context, key, value string) error
}
