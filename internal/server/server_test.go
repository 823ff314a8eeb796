package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"footballdirector/internal/app"
	"footballdirector/pkg/store"
	"footballdirector/pkg/view"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	appCore, err := app.New(app.Config{Store: store.NewMemoryStore()})
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	ts := httptest.NewServer(New(Config{App: appCore}).Router())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string, wantStatus int, out any) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s: status %d want %d", path, resp.StatusCode, wantStatus)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("GET %s: decode: %v", path, err)
		}
	}
}

func post(t *testing.T, ts *httptest.Server, path string, wantStatus int, out any) {
	t.Helper()
	resp, err := http.Post(ts.URL+path, "application/json", nil)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("POST %s: status %d want %d", path, resp.StatusCode, wantStatus)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("POST %s: decode: %v", path, err)
		}
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	var body map[string]string
	get(t, ts, "/healthz", http.StatusOK, &body)
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestClubEndpoint(t *testing.T) {
	ts := newTestServer(t)
	var club struct {
		Name   string `json:"name"`
		Counts struct {
			Footballers    int `json:"footballers"`
			Staff          int `json:"staff"`
			UnreadMessages int `json:"unreadMessages"`
		} `json:"counts"`
	}
	get(t, ts, "/api/club", http.StatusOK, &club)
	if club.Name != "Ashworth United" {
		t.Fatalf("unexpected club: %q", club.Name)
	}
	if club.Counts.Footballers != 8 || club.Counts.Staff != 7 || club.Counts.UnreadMessages != 2 {
		t.Fatalf("unexpected counts: %+v", club.Counts)
	}
}

func TestFootballerEndpoints(t *testing.T) {
	ts := newTestServer(t)

	var squad []view.FootballerView
	get(t, ts, "/api/footballers", http.StatusOK, &squad)
	if len(squad) != 8 {
		t.Fatalf("expected 8 footballers, got %d", len(squad))
	}

	var one view.FootballerView
	get(t, ts, "/api/footballers/3", http.StatusOK, &one)
	if one.LastName != "Lindqvist" || one.Age != 24 {
		t.Fatalf("unexpected footballer: %+v", one)
	}

	get(t, ts, "/api/footballers/9999", http.StatusNotFound, nil)
	get(t, ts, "/api/footballers/abc", http.StatusBadRequest, nil)
}

func TestStaffEndpoints(t *testing.T) {
	ts := newTestServer(t)

	var all []view.StaffView
	get(t, ts, "/api/staff", http.StatusOK, &all)
	if len(all) != 7 {
		t.Fatalf("expected 7 staff, got %d", len(all))
	}

	var coaches []view.StaffView
	get(t, ts, "/api/staff?role=Coach", http.StatusOK, &coaches)
	for _, c := range coaches {
		if c.Role != "Coach" {
			t.Fatalf("unexpected role in filtered list: %q", c.Role)
		}
		if c.Specialization == nil {
			t.Fatalf("coach %d missing specialization", c.ID)
		}
	}

	var owners []view.StaffView
	get(t, ts, "/api/staff?role=ClubOwner", http.StatusOK, &owners)
	if len(owners) != 1 || owners[0].Wealth == nil {
		t.Fatalf("unexpected owners: %+v", owners)
	}

	get(t, ts, "/api/staff?role=Janitor", http.StatusBadRequest, nil)
	get(t, ts, "/api/staff/9999", http.StatusNotFound, nil)
}

func TestInboxAndConversations(t *testing.T) {
	ts := newTestServer(t)

	var inbox []view.ConversationSummary
	get(t, ts, "/api/inbox", http.StatusOK, &inbox)
	if len(inbox) != 3 {
		t.Fatalf("expected 3 inbox threads, got %d", len(inbox))
	}
	for _, s := range inbox {
		if !s.InitiatedByNpc {
			t.Fatalf("thread %d not NPC-initiated", s.ID)
		}
	}

	var conv struct {
		ID       int `json:"id"`
		Messages []struct {
			Content string `json:"content"`
		} `json:"messages"`
	}
	get(t, ts, "/api/conversation/1", http.StatusOK, &conv)
	if conv.ID != 1 || len(conv.Messages) != 3 {
		t.Fatalf("unexpected conversation: %+v", conv)
	}

	get(t, ts, "/api/conversation/9999", http.StatusNotFound, nil)

	var summaries []view.ConversationSummary
	get(t, ts, "/api/person/100/conversations", http.StatusOK, &summaries)
	if len(summaries) != 1 || summaries[0].PersonName != "Roberto Santini" {
		t.Fatalf("unexpected summaries: %+v", summaries)
	}
	get(t, ts, "/api/person/100/other", http.StatusNotFound, nil)
}

func TestClockEndpoints(t *testing.T) {
	ts := newTestServer(t)

	var clock struct {
		Season int    `json:"season"`
		Phase  string `json:"phase"`
	}
	get(t, ts, "/api/clock", http.StatusOK, &clock)
	if clock.Season != 2024 || clock.Phase != "PreSeason" {
		t.Fatalf("unexpected clock: %+v", clock)
	}

	post(t, ts, "/api/clock/advance?days=70", http.StatusOK, &clock)
	if clock.Phase != "EarlySeason" {
		t.Fatalf("unexpected phase after advance: %+v", clock)
	}

	post(t, ts, "/api/clock/advance?days=0", http.StatusBadRequest, nil)
	post(t, ts, "/api/clock/advance?days=x", http.StatusBadRequest, nil)
	post(t, ts, "/api/clock/advance-to-next-event", http.StatusOK, nil)

	// Advancing is a write; GET must be rejected.
	get(t, ts, "/api/clock/advance", http.StatusMethodNotAllowed, nil)
}

func TestLlmTestWithoutGenerator(t *testing.T) {
	ts := newTestServer(t)
	post(t, ts, "/api/llm/test", http.StatusServiceUnavailable, nil)
}

func TestMiddlewareHeaders(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.Header.Get("X-Request-Id") == "" {
		t.Fatal("expected generated request id header")
	}
	if resp.Header.Get("X-Content-Type-Options") != "nosniff" {
		t.Fatal("expected nosniff header")
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("expected CORS header")
	}
}
