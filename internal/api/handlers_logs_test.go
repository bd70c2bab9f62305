package api

import (
	"net/http"
	"testing"
	"time"
)

func TestListDailyCarbonLogsPagination(t *testing.T) {
	app, handler := newTestApp(t)

	base := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	handler.now = func() time.Time { return base }
	token := registerTestUser(t, app, "logs@example.com")

	for day := 0; day < 3; day++ {
		current := base.AddDate(0, 0, day)
		handler.now = func() time.Time { return current }
		doJSONRequest(t, app, http.MethodPost, "/submit-checklist", token, fullChecklistPayload())
	}

	response := doJSONRequest(t, app, http.MethodGet, "/daily-carbon-logs?page=1&per_page=2", token, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)

	logs, _ := body["logs"].([]any)
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs on first page, got %d", len(logs))
	}
	if total, _ := body["total_logs"].(float64); total != 3 {
		t.Fatalf("expected 3 total logs, got %v", body["total_logs"])
	}
	if pages, _ := body["total_pages"].(float64); pages != 2 {
		t.Fatalf("expected 2 pages, got %v", body["total_pages"])
	}

	// Newest first.
	first, _ := logs[0].(map[string]any)
	second, _ := logs[1].(map[string]any)
	if first["logDate"].(string) < second["logDate"].(string) {
		t.Fatalf("expected newest-first ordering, got %v then %v", first["logDate"], second["logDate"])
	}

	response = doJSONRequest(t, app, http.MethodGet, "/daily-carbon-logs?page=2&per_page=2", token, nil)
	body = decodeJSONBody(t, response)
	logs, _ = body["logs"].([]any)
	if len(logs) != 1 {
		t.Fatalf("expected 1 log on last page, got %d", len(logs))
	}
}

func TestListDailyCarbonLogsTodayOnly(t *testing.T) {
	app, handler := newTestApp(t)

	base := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	handler.now = func() time.Time { return base }
	token := registerTestUser(t, app, "todaylogs@example.com")

	doJSONRequest(t, app, http.MethodPost, "/submit-checklist", token, fullChecklistPayload())

	next := base.AddDate(0, 0, 1)
	handler.now = func() time.Time { return next }
	doJSONRequest(t, app, http.MethodPost, "/submit-checklist", token, fullChecklistPayload())

	response := doJSONRequest(t, app, http.MethodGet, "/daily-carbon-logs?today_only=true", token, nil)
	body := decodeJSONBody(t, response)
	if total, _ := body["total_logs"].(float64); total != 1 {
		t.Fatalf("expected only today's log, got %v", body["total_logs"])
	}
}

func TestListDailyCarbonLogsDateFilter(t *testing.T) {
	app, handler := newTestApp(t)

	base := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	handler.now = func() time.Time { return base }
	token := registerTestUser(t, app, "rangelogs@example.com")

	for day := 0; day < 3; day++ {
		current := base.AddDate(0, 0, day)
		handler.now = func() time.Time { return current }
		doJSONRequest(t, app, http.MethodPost, "/submit-checklist", token, fullChecklistPayload())
	}

	response := doJSONRequest(t, app, http.MethodGet, "/daily-carbon-logs?date_from=2026-08-28&date_to=2026-08-28", token, nil)
	body := decodeJSONBody(t, response)
	if total, _ := body["total_logs"].(float64); total != 1 {
		t.Fatalf("expected 1 log in range, got %v", body["total_logs"])
	}
}

func TestListDailyCarbonLogsRejectsBadDate(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "baddate@example.com")

	response := doJSONRequest(t, app, http.MethodGet, "/daily-carbon-logs?date_from=28-08-2026", token, nil)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}
