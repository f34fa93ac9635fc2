package http

import (
	"google.golang.org/api/calendar/v3"

	"multi-calendar-sync/internal/calendars"
	"multi-calendar-sync/pkg/googleauth"
)

// --- Request DTOs ---

type getCalendarsReq struct {
	Users []googleauth.TokenSet `json:"users"`
}

func (r getCalendarsReq) validate() error {
	return validateTokenSets(r.Users)
}

func (r getCalendarsReq) toInput() calendars.ListBatchInput {
	return calendars.ListBatchInput{Users: r.Users}
}

// ---

type eventDataReq struct {
	Summary       string `json:"summary"`
	Description   string `json:"description"`
	StartDateTime string `json:"startDateTime"`
	EndDateTime   string `json:"endDateTime"`
	TimeZone      string `json:"timeZone"`
}

type createEventReq struct {
	EventData  eventDataReq          `json:"eventData"`
	UserTokens []googleauth.TokenSet `json:"userTokens"`
}

func (r createEventReq) validate() error {
	return validateTokenSets(r.UserTokens)
}

func (r createEventReq) toInput() calendars.CreateBatchInput {
	return calendars.CreateBatchInput{
		Event: calendars.EventFields{
			Summary:       r.EventData.Summary,
			Description:   r.EventData.Description,
			StartDateTime: r.EventData.StartDateTime,
			EndDateTime:   r.EventData.EndDateTime,
			TimeZone:      r.EventData.TimeZone,
		},
		UserTokens: r.UserTokens,
	}
}

// ---

type deleteEventReq struct {
	UserToken googleauth.TokenSet `json:"userToken"`
	EventID   string              `json:"eventId"`
}

func (r deleteEventReq) validate() error {
	if r.UserToken.IsZero() || r.EventID == "" {
		return errDeleteFieldsRequired
	}
	return nil
}

func (r deleteEventReq) toInput() calendars.DeleteEventInput {
	return calendars.DeleteEventInput{
		UserToken: r.UserToken,
		EventID:   r.EventID,
	}
}

// validateTokenSets rejects malformed batches before any downstream
// call: a non-empty list, each entry carrying both credentials.
func validateTokenSets(tokens []googleauth.TokenSet) error {
	if len(tokens) == 0 {
		return calendars.ErrEmptyBatch
	}
	for _, ts := range tokens {
		if ts.AccessToken == "" || ts.RefreshToken == "" {
			return calendars.ErrMissingCredentials
		}
	}
	return nil
}

// --- Response DTOs ---

type listEntryResp struct {
	User   googleauth.TokenSet `json:"user"`
	Events []*calendar.Event   `json:"events"`
	Error  string              `json:"error,omitempty"`
}

type getCalendarsResp struct {
	GetCalendars []listEntryResp `json:"getCalendars"`
}

func (h *handler) newGetCalendarsResp(out calendars.ListBatchOutput) getCalendarsResp {
	entries := make([]listEntryResp, len(out.Entries))
	for i, entry := range out.Entries {
		entries[i] = listEntryResp{User: entry.User, Events: entry.Events}
		if entry.Err != nil {
			entries[i].Error = entry.Err.Error()
		}
	}
	return getCalendarsResp{GetCalendars: entries}
}

type createEntryResp struct {
	User  googleauth.TokenSet `json:"user"`
	Event *calendar.Event     `json:"event,omitempty"`
	Error string              `json:"error,omitempty"`
}

type createEventResp struct {
	CreatedEvents []createEntryResp `json:"createdEvents"`
}

func (h *handler) newCreateEventResp(out calendars.CreateBatchOutput) createEventResp {
	entries := make([]createEntryResp, len(out.Entries))
	for i, entry := range out.Entries {
		entries[i] = createEntryResp{User: entry.User, Event: entry.Event}
		if entry.Err != nil {
			entries[i].Error = entry.Err.Error()
		}
	}
	return createEventResp{CreatedEvents: entries}
}
