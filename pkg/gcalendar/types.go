package gcalendar

import "time"

// CreateEventRequest is the input for inserting a calendar event.
// Times are RFC3339 strings so caller-provided values pass through to
// the API untouched; the API reports invalid windows itself.
type CreateEventRequest struct {
	CalendarID    string
	Summary       string
	Description   string
	StartDateTime string
	EndDateTime   string
	TimeZone      string // IANA zone, e.g. "Asia/Kolkata"
}

// ListUpcomingRequest is the input for listing upcoming events.
type ListUpcomingRequest struct {
	CalendarID string
	TimeMin    time.Time
	MaxResults int64
}
