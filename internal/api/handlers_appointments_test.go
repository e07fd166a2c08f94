package api

import (
	"net/http"
	"testing"
)

func TestGetAppointmentsPartition(t *testing.T) {
	app := newTestApp(t)

	response := performRequest(t, app, http.MethodGet, "/api/appointments", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("GET /api/appointments status = %d, want 200", response.StatusCode)
	}
	payload := decodeBody(t, response)

	if upcoming := listField(t, payload, "upcoming"); len(upcoming) != 2 {
		t.Fatalf("%d upcoming appointments, want 2", len(upcoming))
	}
	if history := listField(t, payload, "history"); len(history) != 2 {
		t.Fatalf("%d history appointments, want 2", len(history))
	}
}

func TestBookAppointment(t *testing.T) {
	app := newTestApp(t)

	response := performRequest(t, app, http.MethodPost, "/api/appointments", map[string]any{
		"doctor":     "Dr. Gomez",
		"date":       "2024-08-01",
		"time_slot":  "11:30",
		"telehealth": true,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("POST /api/appointments status = %d, want 201", response.StatusCode)
	}
	payload := decodeBody(t, response)
	if payload["status"] != "upcoming" {
		t.Fatalf("booked status = %v, want upcoming", payload["status"])
	}
	if toast := currentToast(t, app); toast != toastAppointmentBooked {
		t.Fatalf("toast = %q, want %q", toast, toastAppointmentBooked)
	}
}

func TestBookAppointmentMissingFields(t *testing.T) {
	app := newTestApp(t)

	response := performRequest(t, app, http.MethodPost, "/api/appointments", map[string]any{
		"date":      "2024-08-01",
		"time_slot": "11:30",
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("POST without doctor status = %d, want 400", response.StatusCode)
	}
	if toast := currentToast(t, app); toast != toastMissingFields {
		t.Fatalf("toast = %q, want %q", toast, toastMissingFields)
	}
}

func TestBookAppointmentEmptyDateIsMissingField(t *testing.T) {
	app := newTestApp(t)

	response := performRequest(t, app, http.MethodPost, "/api/appointments", map[string]any{
		"doctor":    "Dr. Gomez",
		"time_slot": "11:30",
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("POST without date status = %d, want 400", response.StatusCode)
	}
	if toast := currentToast(t, app); toast != toastMissingFields {
		t.Fatalf("toast = %q, want %q", toast, toastMissingFields)
	}
}

func TestRescheduleAppointmentMissingFields(t *testing.T) {
	app := newTestApp(t)

	response := performRequest(t, app, http.MethodPut, "/api/appointments/2", map[string]any{
		"date":      "2024-08-02",
		"time_slot": "16:00",
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("PUT without doctor status = %d, want 400", response.StatusCode)
	}
	if toast := currentToast(t, app); toast != toastMissingFields {
		t.Fatalf("toast = %q, want %q", toast, toastMissingFields)
	}
}

func TestBookAppointmentRejectsBadDate(t *testing.T) {
	app := newTestApp(t)

	response := performRequest(t, app, http.MethodPost, "/api/appointments", map[string]any{
		"doctor":    "Dr. Gomez",
		"date":      "August 1st",
		"time_slot": "11:30",
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("POST with bad date status = %d, want 400", response.StatusCode)
	}
}

func TestCancelAppointmentFlow(t *testing.T) {
	app := newTestApp(t)

	response := performRequest(t, app, http.MethodPost, "/api/appointments/1/cancel", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("cancel status = %d, want 200", response.StatusCode)
	}
	if decodeBody(t, response)["status"] != "cancelled" {
		t.Fatal("appointment not cancelled")
	}
	if toast := currentToast(t, app); toast != toastAppointmentCancelled {
		t.Fatalf("toast = %q, want %q", toast, toastAppointmentCancelled)
	}

	// Repeat cancel is a no-op.
	response = performRequest(t, app, http.MethodPost, "/api/appointments/1/cancel", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("second cancel status = %d, want 200", response.StatusCode)
	}
}

func TestCancelCompletedAppointmentConflicts(t *testing.T) {
	app := newTestApp(t)

	// Seed appointment 3 is completed.
	response := performRequest(t, app, http.MethodPost, "/api/appointments/3/cancel", nil)
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("cancel completed status = %d, want 409", response.StatusCode)
	}
}

func TestRescheduleAppointment(t *testing.T) {
	app := newTestApp(t)

	response := performRequest(t, app, http.MethodPut, "/api/appointments/2", map[string]any{
		"doctor":    "Dr. Patel",
		"date":      "2024-08-02",
		"time_slot": "16:00",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("reschedule status = %d, want 200", response.StatusCode)
	}
	payload := decodeBody(t, response)
	if payload["doctor"] != "Dr. Patel" || payload["time_slot"] != "16:00" {
		t.Fatalf("rescheduled appointment = %#v", payload)
	}
	if payload["status"] != "upcoming" {
		t.Fatalf("rescheduled status = %v, want upcoming", payload["status"])
	}
	if toast := currentToast(t, app); toast != toastAppointmentRescheduled {
		t.Fatalf("toast = %q, want %q", toast, toastAppointmentRescheduled)
	}
}

func TestGetDoctors(t *testing.T) {
	app := newTestApp(t)

	response := performRequest(t, app, http.MethodGet, "/api/appointments/doctors", nil)
	doctors := listField(t, decodeBody(t, response), "doctors")
	if len(doctors) != 4 {
		t.Fatalf("%d doctors, want 4", len(doctors))
	}
}
