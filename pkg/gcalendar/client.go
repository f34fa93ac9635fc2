package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// DefaultCalendarID is used whenever a request leaves CalendarID empty.
const DefaultCalendarID = "primary"

// Client wraps the Google Calendar API service for one authorization
// context. Build a fresh Client per bound user; it is not meant to
// outlive the call sequence it was created for.
type Client struct {
	service *calendar.Service
}

// NewClientFromHTTP creates a Calendar client from a pre-authorized HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListUpcoming fetches upcoming events ordered by start time ascending,
// with recurring events expanded to single occurrences.
func (c *Client) ListUpcoming(ctx context.Context, req ListUpcomingRequest) ([]*calendar.Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	timeMin := req.TimeMin
	if timeMin.IsZero() {
		timeMin = time.Now()
	}

	call := c.service.Events.List(calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime")
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return resp.Items, nil
}

// CreateEvent inserts a new event and returns it as created by the API.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*calendar.Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartDateTime,
			TimeZone: req.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndDateTime,
			TimeZone: req.TimeZone,
		},
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}
	return created, nil
}

// DeleteEvent removes one event by id.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}
	if err := c.service.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}
