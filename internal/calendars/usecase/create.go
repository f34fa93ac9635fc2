package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/api/calendar/v3"

	"multi-calendar-sync/internal/calendars"
	"multi-calendar-sync/internal/model"
	"multi-calendar-sync/pkg/gcalendar"
	"multi-calendar-sync/pkg/googleauth"
)

// CreateBatch inserts the same event once per token set, parallel
// fan-out with input order preserved. Defaults are resolved once so
// every user in the batch receives an identical event.
func (uc *implUseCase) CreateBatch(ctx context.Context, input calendars.CreateBatchInput) (calendars.CreateBatchOutput, error) {
	if len(input.UserTokens) == 0 {
		return calendars.CreateBatchOutput{}, calendars.ErrEmptyBatch
	}

	req := buildCreateRequest(time.Now(), input.Event)

	entries := make([]calendars.CreateEntry, len(input.UserTokens))
	g, gctx := errgroup.WithContext(ctx)

	for i, ts := range input.UserTokens {
		i, ts := i, ts
		g.Go(func() error {
			created, err := uc.createUserEvent(gctx, ts, req)
			if err != nil {
				uc.l.Errorf(gctx, "uc.CreateBatch entry %d: %v", i, err)
				if uc.failFast {
					return err
				}
				entries[i] = calendars.CreateEntry{User: ts, Err: err}
				return nil
			}
			entries[i] = calendars.CreateEntry{User: ts, Event: created}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return calendars.CreateBatchOutput{}, calendars.ErrBatchFailed
	}

	// History recording happens after the batch settles so a store
	// hiccup can never fail or reorder the batch itself.
	uc.recordCreated(ctx, entries, req)

	return calendars.CreateBatchOutput{Entries: entries}, nil
}

func (uc *implUseCase) createUserEvent(ctx context.Context, ts googleauth.TokenSet, req gcalendar.CreateEventRequest) (*calendar.Event, error) {
	client, err := uc.clientFor(ctx, ts)
	if err != nil {
		return nil, err
	}
	return client.CreateEvent(ctx, req)
}

// buildCreateRequest fills unset fields with the documented defaults:
// start tomorrow, one hour long, fixed default time zone.
func buildCreateRequest(now time.Time, fields calendars.EventFields) gcalendar.CreateEventRequest {
	req := gcalendar.CreateEventRequest{
		CalendarID:    gcalendar.DefaultCalendarID,
		Summary:       fields.Summary,
		Description:   fields.Description,
		StartDateTime: fields.StartDateTime,
		EndDateTime:   fields.EndDateTime,
		TimeZone:      fields.TimeZone,
	}
	if req.Summary == "" {
		req.Summary = calendars.DefaultSummary
	}
	if req.Description == "" {
		req.Description = calendars.DefaultDescription
	}
	if req.TimeZone == "" {
		req.TimeZone = calendars.DefaultTimeZone
	}
	if req.StartDateTime == "" {
		req.StartDateTime = now.Add(24 * time.Hour).Format(time.RFC3339)
	}
	if req.EndDateTime == "" {
		req.EndDateTime = now.Add(24*time.Hour + time.Hour).Format(time.RFC3339)
	}
	return req
}

func (uc *implUseCase) recordCreated(ctx context.Context, entries []calendars.CreateEntry, req gcalendar.CreateEventRequest) {
	if uc.users == nil {
		return
	}

	start, _ := time.Parse(time.RFC3339, req.StartDateTime)
	end, _ := time.Parse(time.RFC3339, req.EndDateTime)

	for _, entry := range entries {
		if entry.Event == nil {
			continue
		}
		rec := model.EventRecord{
			EventID:       entry.Event.Id,
			Summary:       entry.Event.Summary,
			StartDateTime: start,
			EndDateTime:   end,
		}
		if err := uc.users.RecordEvent(ctx, entry.User.AccessToken, rec); err != nil {
			uc.l.Warnf(ctx, "uc.CreateBatch RecordEvent: %v", err)
		}
	}
}
