package calendars

import (
	"google.golang.org/api/calendar/v3"

	"multi-calendar-sync/pkg/googleauth"
)

// Defaults applied to create requests that omit fields.
const (
	DefaultSummary     = "Default Event Summary"
	DefaultDescription = "Default Event Description"
	DefaultTimeZone    = "Asia/Kolkata"
)

// MaxUpcomingEvents caps a per-user list fetch.
const MaxUpcomingEvents = 10

// EventFields is the request form of an event. Every field is
// optional; defaults fill the gaps. End-after-start is not validated
// here — the calendar API reports violations per user.
type EventFields struct {
	Summary       string
	Description   string
	StartDateTime string
	EndDateTime   string
	TimeZone      string
}

// --- UseCase Inputs ---

type ListBatchInput struct {
	Users []googleauth.TokenSet
}

type CreateBatchInput struct {
	Event      EventFields
	UserTokens []googleauth.TokenSet
}

type DeleteEventInput struct {
	UserToken googleauth.TokenSet
	EventID   string
}

// --- UseCase Outputs ---

// ListEntry pairs one input token set with its fetched events, or with
// the error that entry hit (partial policy only).
type ListEntry struct {
	User   googleauth.TokenSet
	Events []*calendar.Event
	Err    error
}

type ListBatchOutput struct {
	Entries []ListEntry
}

// CreateEntry pairs one input token set with its created event, or
// with the error that entry hit (partial policy only).
type CreateEntry struct {
	User  googleauth.TokenSet
	Event *calendar.Event
	Err   error
}

type CreateBatchOutput struct {
	Entries []CreateEntry
}
