package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskmagic/internal/model"
	"taskmagic/pkg/gcalendar"
)

// rewriteTransport pins the generated Google API client to the local test
// server.
type rewriteTransport struct {
	transport http.RoundTripper
	host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.host
	return t.transport.RoundTrip(req)
}

func newMirrorUseCase(t *testing.T, store *mockStore, handler http.HandlerFunc, opts CalendarOptions) *implUseCase {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		transport: tsClient.Transport,
		host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	calClient, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating calendar client: %v", err)
	}

	uc := New(&mockLogger{}, store, calClient, opts, time.Minute)
	uc.nowFn = func() time.Time { return testNow }
	return uc
}

func TestCalendarMirror(t *testing.T) {
	ctx := context.Background()

	t.Run("mirrors the applied due date", func(t *testing.T) {
		var posted struct {
			Summary string `json:"summary"`
			Start   struct {
				DateTime string `json:"dateTime"`
			} `json:"start"`
			End struct {
				DateTime string `json:"dateTime"`
			} `json:"end"`
		}
		var gotPath string

		store := &mockStore{tasks: map[int64]model.Task{
			7: {ID: 7, Title: "tomorrow dentist"},
		}}
		uc := newMirrorUseCase(t, store, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			json.NewDecoder(r.Body).Decode(&posted)
			w.Write([]byte(`{"id": "ev-1", "htmlLink": "https://calendar.google.com/ev-1"}`))
		}, CalendarOptions{CalendarID: "team", EventDuration: 30 * time.Minute})

		res, err := uc.EnrichCreated(ctx, store.tasks[7])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CalendarLink != "https://calendar.google.com/ev-1" {
			t.Errorf("unexpected calendar link %q", res.CalendarLink)
		}
		if gotPath != "/calendar/v3/calendars/team/events" {
			t.Errorf("unexpected request path %q", gotPath)
		}
		if posted.Summary != "Dentist" {
			t.Errorf("unexpected event summary %q", posted.Summary)
		}
		if posted.Start.DateTime != "2024-01-11T23:59:00Z" {
			t.Errorf("unexpected event start %q", posted.Start.DateTime)
		}
		if posted.End.DateTime != "2024-01-12T00:29:00Z" {
			t.Errorf("unexpected event end %q", posted.End.DateTime)
		}
	})

	t.Run("enrichment survives a mirror outage", func(t *testing.T) {
		store := &mockStore{tasks: map[int64]model.Task{
			7: {ID: 7, Title: "tomorrow dentist"},
		}}
		uc := newMirrorUseCase(t, store, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}, CalendarOptions{})

		res, err := uc.EnrichCreated(ctx, store.tasks[7])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Applied {
			t.Fatal("expected the store update to apply despite the mirror outage")
		}
		if res.CalendarLink != "" {
			t.Errorf("expected no calendar link, got %q", res.CalendarLink)
		}
	})

	t.Run("tasks without due dates are not mirrored", func(t *testing.T) {
		var calls int
		store := &mockStore{tasks: map[int64]model.Task{
			7: {ID: 7, Title: "buy milk !4"},
		}}
		uc := newMirrorUseCase(t, store, func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Write([]byte(`{"id": "ev-1"}`))
		}, CalendarOptions{})

		if _, err := uc.EnrichCreated(ctx, store.tasks[7]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 0 {
			t.Errorf("expected no calendar calls, got %d", calls)
		}
	})
}
