package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"taskmagic/pkg/gcalendar"
)

// rewriteTransport forces every request onto the local test server so the
// generated Google API client can be exercised without real credentials.
type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newFakeCalendarClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestNewClient(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("rejects unknown credentials format", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Error("expected an error for unrecognized credentials")
		}
	})

	t.Run("accepts OAuth Desktop credentials with a stored token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o644)
		defer os.Remove("token.json")

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds)); err != nil {
			t.Fatalf("expected client construction to succeed: %v", err)
		}
	})

	t.Run("rejects an unparsable stored token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"broken": true`), 0o644)
		defer os.Remove("token.json")

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds)); err == nil {
			t.Fatal("expected an error for a broken token file")
		}
	})

	t.Run("surfaces file errors", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp("", "creds.json")
		defer os.Remove(tmpFile.Name())
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), tmpFile.Name()); err == nil {
			t.Error("expected an error for unusable credentials")
		}
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), "no-such-credentials.json"); err == nil {
			t.Error("expected an error for a missing file")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("creates on the primary calendar", func(t *testing.T) {
		client := newFakeCalendarClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				w.Write([]byte(`{"id": "event-123", "htmlLink": "https://calendar.google.com/event-uri", "status": "confirmed"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "Standup",
			StartTime: time.Now(),
			EndTime:   time.Now().Add(time.Hour),
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected link: %s", event.HtmlLink)
		}
	})

	t.Run("surfaces API failures", func(t *testing.T) {
		client := newFakeCalendarClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{}); err == nil {
			t.Fatal("expected an error from the API")
		}
	})
}

func TestListEvents(t *testing.T) {
	client := newFakeCalendarClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/calendar/v3/calendars/broken/events":
			w.WriteHeader(http.StatusInternalServerError)
		case r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet:
			w.Write([]byte(`{
				"items": [
					{
						"id": "event-123",
						"summary": "Planning",
						"start": { "dateTime": "2024-05-01T09:00:00Z" },
						"end": { "dateTime": "2024-05-01T10:00:00Z" }
					},
					{
						"id": "event-124",
						"summary": "Holiday",
						"start": { "date": "2024-05-02" },
						"end": { "date": "2024-05-03" }
					}
				]
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	t.Run("maps timed and all-day events", func(t *testing.T) {
		events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			TimeMin: time.Now(),
			TimeMax: time.Now().Add(24 * time.Hour),
		})
		if err != nil {
			t.Fatalf("failed to list events: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if !events[0].StartTime.Equal(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected timed start: %v", events[0].StartTime)
		}
		if !events[1].StartTime.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected all-day start: %v", events[1].StartTime)
		}
	})

	t.Run("surfaces API failures", func(t *testing.T) {
		_, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			CalendarID: "broken",
			TimeMin:    time.Now(),
			TimeMax:    time.Now().Add(24 * time.Hour),
		})
		if err == nil {
			t.Fatal("expected an error from the API")
		}
	})
}
