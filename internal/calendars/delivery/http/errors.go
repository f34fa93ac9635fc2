package http

import (
	"errors"
	"net/http"

	"multi-calendar-sync/internal/calendars"
	pkgErrors "multi-calendar-sync/pkg/errors"
)

// errDeleteFieldsRequired carries the exact caller-facing message of
// the delete surface's 400.
var errDeleteFieldsRequired = errors.New("Both userToken and eventId parameters are required.")

// mapError translates domain/use-case errors into HTTP errors.
// Anything unmapped collapses into the opaque 500 per the contract:
// the caller never learns whether a token expired, a scope was revoked
// or the network failed.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, errDeleteFieldsRequired),
		errors.Is(err, calendars.ErrMissingUserToken),
		errors.Is(err, calendars.ErrMissingEventID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, errDeleteFieldsRequired.Error())
	case errors.Is(err, calendars.ErrEmptyBatch),
		errors.Is(err, calendars.ErrMissingCredentials):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
