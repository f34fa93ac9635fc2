package repository

import (
	"context"

	"multi-calendar-sync/internal/model"
)

// Repository is the composed interface for the user domain data store.
type Repository interface {
	UserRepository
}

// UserRepository defines all data access methods for the User entity.
type UserRepository interface {
	// UpsertUser creates the user when the email is unseen, otherwise
	// bumps updated_at, and returns the stored row either way.
	UpsertUser(ctx context.Context, opt UpsertUserOptions) (model.User, error)

	// GetOneUser retrieves a single user by the provided filters.
	// Returns zero-value User (ID == 0) when not found, no error.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)

	// AddAccount appends a token set to the user's connected accounts.
	AddAccount(ctx context.Context, opt AddAccountOptions) error

	// AddEventRecord appends one created event to the user's history.
	AddEventRecord(ctx context.Context, opt AddEventRecordOptions) error
}
