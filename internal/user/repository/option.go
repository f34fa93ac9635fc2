package repository

import (
	"multi-calendar-sync/internal/model"
	"multi-calendar-sync/pkg/googleauth"
)

// UpsertUserOptions holds parameters for creating-or-touching a user.
type UpsertUserOptions struct {
	Email string
}

// GetOneUserOptions holds filter parameters for fetching a single user.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID          int64
	Email       string
	AccessToken string // matches a connected account's access token
}

// AddAccountOptions holds parameters for attaching a token set.
type AddAccountOptions struct {
	UserID   int64
	TokenSet googleauth.TokenSet
}

// AddEventRecordOptions holds parameters for appending event history.
type AddEventRecordOptions struct {
	UserID int64
	Record model.EventRecord
}
