package api

import (
	"net/http"
	"testing"
)

func TestGetChallengesWithOverview(t *testing.T) {
	app := newTestApp(t)

	response := performRequest(t, app, http.MethodGet, "/api/challenges", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("GET /api/challenges status = %d, want 200", response.StatusCode)
	}
	payload := decodeBody(t, response)

	if challenges := listField(t, payload, "challenges"); len(challenges) != 4 {
		t.Fatalf("%d challenges, want 4", len(challenges))
	}
	if points := numberField(t, payload, "points"); points != 1250 {
		t.Fatalf("points = %v, want 1250", points)
	}
	if active := numberField(t, payload, "active_count"); active != 4 {
		t.Fatalf("active count = %v, want 4", active)
	}
}

func TestLeaveAndRejoinChallenge(t *testing.T) {
	app := newTestApp(t)

	response := performRequest(t, app, http.MethodPost, "/api/challenges/1/leave", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("leave status = %d, want 200", response.StatusCode)
	}
	payload := decodeBody(t, response)
	if active, _ := payload["is_active"].(bool); active {
		t.Fatal("challenge still active after leave")
	}
	if participants := numberField(t, payload, "participants"); participants != 1246 {
		t.Fatalf("participants = %v, want 1246", participants)
	}
	if toast := currentToast(t, app); toast != toastChallengeLeft {
		t.Fatalf("toast = %q, want %q", toast, toastChallengeLeft)
	}

	response = performRequest(t, app, http.MethodPost, "/api/challenges/1/join", nil)
	payload = decodeBody(t, response)
	if active, _ := payload["is_active"].(bool); !active {
		t.Fatal("challenge inactive after rejoin")
	}
	if participants := numberField(t, payload, "participants"); participants != 1247 {
		t.Fatalf("participants = %v, want 1247", participants)
	}
	if toast := currentToast(t, app); toast != toastChallengeJoined {
		t.Fatalf("toast = %q, want %q", toast, toastChallengeJoined)
	}
}

func TestChallengeProgressClampsAtTarget(t *testing.T) {
	app := newTestApp(t)

	// Seed challenge 2: 3 of 5 workouts.
	response := performRequest(t, app, http.MethodPost, "/api/challenges/2/progress", map[string]any{
		"delta": 1000,
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("progress status = %d, want 200", response.StatusCode)
	}
	payload := decodeBody(t, response)
	if current := numberField(t, payload, "current"); current != 5 {
		t.Fatalf("current = %v, want clamped 5", current)
	}
	if completed, _ := payload["completed"].(bool); !completed {
		t.Fatal("challenge not completed at target")
	}
}

func TestChallengeProgressRejectsNegativeDelta(t *testing.T) {
	app := newTestApp(t)

	response := performRequest(t, app, http.MethodPost, "/api/challenges/2/progress", map[string]any{
		"delta": -1,
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("negative delta status = %d, want 400", response.StatusCode)
	}
}

func TestGetBadgesAndLeaderboard(t *testing.T) {
	app := newTestApp(t)

	response := performRequest(t, app, http.MethodGet, "/api/challenges/badges", nil)
	if badges := listField(t, decodeBody(t, response), "badges"); len(badges) != 4 {
		t.Fatalf("%d badges, want 4", len(badges))
	}

	response = performRequest(t, app, http.MethodGet, "/api/challenges/leaderboard", nil)
	entries := listField(t, decodeBody(t, response), "leaderboard")
	if len(entries) != 5 {
		t.Fatalf("%d leaderboard entries, want 5", len(entries))
	}
	first := entries[0].(map[string]any)
	if first["rank"].(float64) != 1 || first["name"] != "Sarah Johnson" {
		t.Fatalf("leaderboard head = %#v, want rank 1 Sarah Johnson", first)
	}
}
