package user

import (
	"context"

	"multi-calendar-sync/internal/model"
	"multi-calendar-sync/pkg/googleauth"
)

// UseCase is the user-store surface the rest of the service depends on.
// Everything here is best-effort bookkeeping: calendar operations must
// keep working when the store is absent or failing.
type UseCase interface {
	// SaveTokenSet upserts the user for email and appends the token set
	// to their connected accounts.
	SaveTokenSet(ctx context.Context, email string, ts googleauth.TokenSet) error

	// RecordEvent appends a created event to the history of the user
	// owning the account with the given access token. Unknown tokens
	// are not an error: the record is silently skipped.
	RecordEvent(ctx context.Context, accessToken string, rec model.EventRecord) error

	// GetByEmail returns the stored user with accounts and history.
	GetByEmail(ctx context.Context, email string) (model.User, error)
}
