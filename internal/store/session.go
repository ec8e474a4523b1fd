package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/storage"
)

// CurrentUser returns the user stored under the session key, or nil when no
// one is logged in. "Logged in" means exactly that a user record is present.
func CurrentUser(ctx context.Context, kv storage.KV) (*model.User, error) {
	raw, ok, err := kv.Get(ctx, KeySession)
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	if !ok || raw == "" || raw == "null" {
		return nil, nil
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		slog.Error("unparseable session content, treating as logged out", "error", err)
		return nil, nil
	}
	return &user, nil
}

// SetCurrentUser stores the user under the session key. A nil user clears
// the session (logout). There is no expiry and no token.
func SetCurrentUser(ctx context.Context, kv storage.KV, user *model.User) error {
	raw := []byte("null")
	if user != nil {
		var err error
		raw, err = json.Marshal(user)
		if err != nil {
			return fmt.Errorf("serializing session: %w", err)
		}
	}
	if err := kv.Set(ctx, KeySession, string(raw)); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}
