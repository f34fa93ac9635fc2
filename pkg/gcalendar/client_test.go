package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"multi-calendar-sync/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*gcalendar.Client, func()) {
	t.Helper()
	ts := httptest.NewServer(handler)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		ts.Close()
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client, ts.Close
}

func TestCalendarClient(t *testing.T) {
	t.Run("List Upcoming E2E", func(t *testing.T) {
		var gotQuery map[string]string
		client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
				gotQuery = map[string]string{
					"maxResults":   r.URL.Query().Get("maxResults"),
					"singleEvents": r.URL.Query().Get("singleEvents"),
					"orderBy":      r.URL.Query().Get("orderBy"),
					"timeMin":      r.URL.Query().Get("timeMin"),
				}
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"items": [
						{
							"id": "event-123",
							"summary": "Existing Event",
							"start": { "dateTime": "2024-05-01T09:00:00+05:30" },
							"end": { "dateTime": "2024-05-01T10:00:00+05:30" }
						}
					]
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})
		defer closeFn()

		events, err := client.ListUpcoming(context.Background(), gcalendar.ListUpcomingRequest{
			TimeMin:    time.Now(),
			MaxResults: 10,
		})
		if err != nil {
			t.Fatalf("failed to list events: %v", err)
		}
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}
		if events[0].Summary != "Existing Event" {
			t.Errorf("unexpected event: %s", events[0].Summary)
		}
		if gotQuery["maxResults"] != "10" {
			t.Errorf("expected maxResults=10, got %q", gotQuery["maxResults"])
		}
		if gotQuery["singleEvents"] != "true" {
			t.Errorf("expected singleEvents=true, got %q", gotQuery["singleEvents"])
		}
		if gotQuery["orderBy"] != "startTime" {
			t.Errorf("expected orderBy=startTime, got %q", gotQuery["orderBy"])
		}
		if gotQuery["timeMin"] == "" {
			t.Errorf("expected timeMin to be set")
		}
	})

	t.Run("List Upcoming API error", func(t *testing.T) {
		client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		defer closeFn()

		_, err := client.ListUpcoming(context.Background(), gcalendar.ListUpcomingRequest{
			TimeMin: time.Now(),
		})
		if err == nil {
			t.Fatalf("expected api error")
		}
	})

	t.Run("Create Event E2E", func(t *testing.T) {
		client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"id": "event-123",
					"htmlLink": "https://calendar.google.com/event-uri",
					"status": "confirmed"
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})
		defer closeFn()

		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:       "Title",
			Description:   "Desc",
			StartDateTime: time.Now().Format(time.RFC3339),
			EndDateTime:   time.Now().Add(time.Hour).Format(time.RFC3339),
			TimeZone:      "Asia/Kolkata",
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected link: %s", event.HtmlLink)
		}
	})

	t.Run("Create Event Error E2E", func(t *testing.T) {
		client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		defer closeFn()

		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{})
		if err == nil {
			t.Fatalf("expected create event error")
		}
	})

	t.Run("Delete Event E2E", func(t *testing.T) {
		var deletedPath string
		client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodDelete {
				deletedPath = r.URL.Path
				w.WriteHeader(http.StatusNoContent)
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})
		defer closeFn()

		if err := client.DeleteEvent(context.Background(), "", "event-123"); err != nil {
			t.Fatalf("failed to delete event: %v", err)
		}
		if deletedPath != "/calendar/v3/calendars/primary/events/event-123" {
			t.Errorf("unexpected delete path: %s", deletedPath)
		}
	})

	t.Run("Delete Event Error E2E", func(t *testing.T) {
		client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		defer closeFn()

		if err := client.DeleteEvent(context.Background(), "primary", "missing"); err == nil {
			t.Fatalf("expected delete error")
		}
	})
}
