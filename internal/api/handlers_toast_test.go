package api

import (
	"net/http"
	"testing"
)

func TestToastLifecycle(t *testing.T) {
	app := newTestApp(t)

	if toast := currentToast(t, app); toast != "" {
		t.Fatalf("initial toast = %q, want empty", toast)
	}

	performRequest(t, app, http.MethodPost, "/api/medications/1/take", map[string]any{
		"time_slot": "08:00",
	})
	if toast := currentToast(t, app); toast != toastMedicationTaken {
		t.Fatalf("toast = %q, want %q", toast, toastMedicationTaken)
	}

	response := performRequest(t, app, http.MethodDelete, "/api/toast", nil)
	if response.StatusCode != http.StatusNoContent {
		t.Fatalf("DELETE /api/toast status = %d, want 204", response.StatusCode)
	}
	if toast := currentToast(t, app); toast != "" {
		t.Fatalf("toast = %q after dismiss, want empty", toast)
	}
}

func TestNewToastReplacesPrevious(t *testing.T) {
	app := newTestApp(t)

	performRequest(t, app, http.MethodPost, "/api/medications/1/take", map[string]any{"time_slot": "08:00"})
	performRequest(t, app, http.MethodPost, "/api/medications/1/skip", map[string]any{"time_slot": "20:00"})

	if toast := currentToast(t, app); toast != toastMedicationSkipped {
		t.Fatalf("toast = %q, want the later message %q", toast, toastMedicationSkipped)
	}
}
