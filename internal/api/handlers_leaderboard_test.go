package api

import (
	"net/http"
	"testing"
)

func TestLeaderboardOrdersByPoints(t *testing.T) {
	app, handler := newTestApp(t)

	token := registerTestUser(t, app, "first@example.com")
	registerTestUser(t, app, "second@example.com")

	leader, err := handler.repositories.Users.FindByNormalizedEmail("second@example.com")
	if err != nil {
		t.Fatalf("load user: %v", err)
	}
	if err := handler.repositories.Users.UpdateByID(leader.ID, map[string]any{"points": 50}); err != nil {
		t.Fatalf("seed points: %v", err)
	}

	response := doJSONRequest(t, app, http.MethodGet, "/leaderboard", token, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)

	entries, _ := body["leaderboard"].([]any)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	top, _ := entries[0].(map[string]any)
	if top["username"] != "second" {
		t.Fatalf("expected second on top, got %v", top)
	}
	if top["points"] != float64(50) {
		t.Fatalf("expected 50 points on top, got %v", top["points"])
	}
	if top["profilePicture"] == "" {
		t.Fatalf("expected profile picture in entry, got %v", top)
	}

	runnerUp, _ := entries[1].(map[string]any)
	if runnerUp["username"] != "first" {
		t.Fatalf("expected first as runner-up, got %v", runnerUp)
	}
}
