package auth

import (
	"context"

	"multi-calendar-sync/pkg/googleauth"
)

// UseCase drives the OAuth consent flow.
type UseCase interface {
	// ConsentURL returns the Google consent URL for the configured scopes.
	ConsentURL(ctx context.Context) string

	// HandleCallback exchanges an authorization code for a token set,
	// resolves the authenticated email (best-effort) and persists the
	// pair when a user store is wired.
	HandleCallback(ctx context.Context, code string) (CallbackOutput, error)
}

// UserinfoClient resolves the authenticated user's email for one
// bound authorization context.
type UserinfoClient interface {
	Email(ctx context.Context) (string, error)
}

// UserinfoFactory builds a UserinfoClient from a bound authorization
// context. Injected so tests can substitute the downstream API.
type UserinfoFactory func(ctx context.Context, authCtx *googleauth.Context) (UserinfoClient, error)
