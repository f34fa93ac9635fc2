package usecase

import (
	"context"

	"multi-calendar-sync/config"
	"multi-calendar-sync/internal/calendars"
	"multi-calendar-sync/internal/user"
	"multi-calendar-sync/pkg/gcalendar"
	"multi-calendar-sync/pkg/googleauth"
	"multi-calendar-sync/pkg/log"
)

// implUseCase is the private implementation of calendars.UseCase.
type implUseCase struct {
	l         log.Logger
	binder    *googleauth.Binder
	newClient calendars.ClientFactory
	users     user.UseCase // optional event-history recorder
	failFast  bool
}

// New creates the batch calendar operator. factory and users may be
// nil: factory falls back to the real Google Calendar client, nil
// users disables event-history recording.
func New(l log.Logger, binder *googleauth.Binder, factory calendars.ClientFactory, users user.UseCase, policy string) *implUseCase {
	if factory == nil {
		factory = func(ctx context.Context, authCtx *googleauth.Context) (calendars.CalendarClient, error) {
			return gcalendar.NewClientFromHTTP(ctx, authCtx.HTTPClient())
		}
	}
	return &implUseCase{
		l:         l,
		binder:    binder,
		newClient: factory,
		users:     users,
		failFast:  policy != config.BatchPolicyPartial,
	}
}

// clientFor binds one token set and builds its downstream client.
// Each bind+call pair is independent: a failure for one user cannot
// corrupt another user's context.
func (uc *implUseCase) clientFor(ctx context.Context, ts googleauth.TokenSet) (calendars.CalendarClient, error) {
	return uc.newClient(ctx, uc.binder.Bind(ctx, ts))
}
