package auth

import "errors"

var (
	ErrMissingCode    = errors.New("code query parameter is required")
	ErrExchangeFailed = errors.New("failed to exchange authorization code")
)
