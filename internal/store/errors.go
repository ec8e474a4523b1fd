package store

import "errors"

// Validation outcomes surfaced to the user. None are fatal; each is
// recovered locally and rendered as an inline message.
var (
	// ErrEmailTaken is returned when registering with an email that is
	// already in the user collection.
	ErrEmailTaken = errors.New("a user with this email already exists")

	// ErrUserNotFound is returned on login when no user matches the email.
	// Kept deliberately generic so callers surface a single error kind.
	ErrUserNotFound = errors.New("invalid credentials or user not found")

	// ErrSelfDelete is returned when an admin tries to delete their own
	// account.
	ErrSelfDelete = errors.New("you cannot delete your own account")

	// ErrNotFound is returned when an operation references an id that is
	// not in the collection.
	ErrNotFound = errors.New("record not found")

	// ErrMissingField is returned when a required form field is empty.
	ErrMissingField = errors.New("required field missing")

	// ErrInvalidField is returned when a field value is outside its domain.
	ErrInvalidField = errors.New("invalid field value")
)
