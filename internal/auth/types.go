package auth

import "multi-calendar-sync/pkg/googleauth"

// CallbackOutput is the result of exchanging an authorization code.
// Email is best-effort: empty when the userinfo lookup failed.
type CallbackOutput struct {
	TokenSet googleauth.TokenSet
	Email    string
}
