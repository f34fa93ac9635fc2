package calendars

import "errors"

var (
	// ErrEmptyBatch rejects batch requests naming zero users.
	ErrEmptyBatch = errors.New("at least one user token is required")

	// ErrMissingCredentials rejects a token set carrying neither an
	// access token nor a refresh token.
	ErrMissingCredentials = errors.New("user token is missing credentials")

	// ErrMissingUserToken / ErrMissingEventID guard the delete surface.
	ErrMissingUserToken = errors.New("userToken is required")
	ErrMissingEventID   = errors.New("eventId is required")

	// ErrBatchFailed is the opaque aggregate failure under the
	// fail-fast policy: no partial results accompany it.
	ErrBatchFailed = errors.New("calendar batch failed")

	// ErrDeleteFailed is the opaque downstream failure for a delete.
	ErrDeleteFailed = errors.New("failed to delete event")
)
