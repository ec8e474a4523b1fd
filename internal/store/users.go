package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campverse/campverse/internal/imaging"
	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/storage"
)

// ListUsers returns all users in insertion order.
func ListUsers(ctx context.Context, kv storage.KV) ([]model.User, error) {
	return GetAll[model.User](ctx, kv, KeyUsers)
}

// FindUserByEmail returns the user with the given email, or nil if no user
// matches.
func FindUserByEmail(ctx context.Context, kv storage.KV, email string) (*model.User, error) {
	users, err := ListUsers(ctx, kv)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// RegisterUser creates a new user with a fresh id and a generated default
// avatar. Returns ErrEmailTaken, without mutating the collection, when the
// email is already registered.
func RegisterUser(ctx context.Context, kv storage.KV, name, email, role string) (*model.User, error) {
	if name == "" || email == "" {
		return nil, ErrMissingField
	}
	if !model.ValidRole(role) {
		return nil, fmt.Errorf("role %q: %w", role, ErrInvalidField)
	}

	existing, err := FindUserByEmail(ctx, kv, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	user := model.User{
		ID:     uuid.NewString(),
		Name:   name,
		Email:  email,
		Role:   role,
		Avatar: imaging.Avatar(email),
	}
	if err := Append(ctx, kv, KeyUsers, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the user with the given id. Self-deletion is rejected
// with ErrSelfDelete; a missing id yields ErrNotFound. Postings by the
// deleted user are left alone: collections are independent.
func DeleteUser(ctx context.Context, kv storage.KV, id, requesterID string) error {
	if id == requesterID {
		return ErrSelfDelete
	}

	mu.Lock()
	defer mu.Unlock()

	users, err := GetAll[model.User](ctx, kv, KeyUsers)
	if err != nil {
		return err
	}

	kept := users[:0:0]
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return ErrNotFound
	}
	return ReplaceAll(ctx, kv, KeyUsers, kept)
}
