package calendars

import (
	"context"

	"google.golang.org/api/calendar/v3"

	"multi-calendar-sync/pkg/gcalendar"
	"multi-calendar-sync/pkg/googleauth"
)

// UseCase is the batch calendar operator: one operation applied once
// per authorized user.
type UseCase interface {
	ListBatch(ctx context.Context, input ListBatchInput) (ListBatchOutput, error)
	CreateBatch(ctx context.Context, input CreateBatchInput) (CreateBatchOutput, error)
	DeleteEvent(ctx context.Context, input DeleteEventInput) error
}

// CalendarClient is the downstream calendar surface used for one bound
// user. Satisfied by *gcalendar.Client.
type CalendarClient interface {
	ListUpcoming(ctx context.Context, req gcalendar.ListUpcomingRequest) ([]*calendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*calendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// ClientFactory builds a CalendarClient from a bound authorization
// context. Injected so tests can substitute the downstream API.
type ClientFactory func(ctx context.Context, authCtx *googleauth.Context) (CalendarClient, error)
