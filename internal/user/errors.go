package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailEmpty   = errors.New("email is required")
)
