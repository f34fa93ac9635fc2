package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/api/calendar/v3"

	"multi-calendar-sync/internal/calendars"
	"multi-calendar-sync/pkg/gcalendar"
	"multi-calendar-sync/pkg/googleauth"
)

// ListBatch fetches upcoming events once per token set. Fan-out is
// parallel — contexts are fully independent — with results written by
// index so output preserves input order. Under fail-fast any per-user
// error cancels the group and the caller gets zero partial results.
func (uc *implUseCase) ListBatch(ctx context.Context, input calendars.ListBatchInput) (calendars.ListBatchOutput, error) {
	if len(input.Users) == 0 {
		return calendars.ListBatchOutput{}, calendars.ErrEmptyBatch
	}

	entries := make([]calendars.ListEntry, len(input.Users))
	g, gctx := errgroup.WithContext(ctx)

	for i, ts := range input.Users {
		i, ts := i, ts
		g.Go(func() error {
			events, err := uc.fetchUserEvents(gctx, ts)
			if err != nil {
				uc.l.Errorf(gctx, "uc.ListBatch entry %d: %v", i, err)
				if uc.failFast {
					return err
				}
				entries[i] = calendars.ListEntry{User: ts, Err: err}
				return nil
			}
			entries[i] = calendars.ListEntry{User: ts, Events: events}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return calendars.ListBatchOutput{}, calendars.ErrBatchFailed
	}
	return calendars.ListBatchOutput{Entries: entries}, nil
}

func (uc *implUseCase) fetchUserEvents(ctx context.Context, ts googleauth.TokenSet) ([]*calendar.Event, error) {
	client, err := uc.clientFor(ctx, ts)
	if err != nil {
		return nil, err
	}
	return client.ListUpcoming(ctx, gcalendar.ListUpcomingRequest{
		CalendarID: gcalendar.DefaultCalendarID,
		TimeMin:    time.Now(),
		MaxResults: calendars.MaxUpcomingEvents,
	})
}
