package usecase

import (
	"context"

	"multi-calendar-sync/internal/calendars"
	"multi-calendar-sync/pkg/gcalendar"
)

// DeleteEvent removes one event from the user's primary calendar.
// Both the token set and the event id are mandatory; validation
// happens before any downstream call is attempted.
func (uc *implUseCase) DeleteEvent(ctx context.Context, input calendars.DeleteEventInput) error {
	if input.UserToken.IsZero() {
		return calendars.ErrMissingUserToken
	}
	if input.EventID == "" {
		return calendars.ErrMissingEventID
	}

	client, err := uc.clientFor(ctx, input.UserToken)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteEvent client: %v", err)
		return calendars.ErrDeleteFailed
	}

	if err := client.DeleteEvent(ctx, gcalendar.DefaultCalendarID, input.EventID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteEvent: %v", err)
		return calendars.ErrDeleteFailed
	}
	return nil
}
