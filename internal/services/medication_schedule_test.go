package services

import (
	"testing"
	"time"

	"github.com/armedhealth/armed/internal/models"
)

func TestBuildTodayScheduleExpandsTimeSlots(t *testing.T) {
	medications := []models.Medication{
		{ID: 1, Name: "Metformin", Times: "08:00, 20:00", IsActive: true},
		{ID: 2, Name: "Omega 3", Times: "12:00", IsActive: true},
	}

	rows := BuildTodaySchedule(medications, nil)
	if len(rows) != 3 {
		t.Fatalf("BuildTodaySchedule() returned %d rows, want 3", len(rows))
	}
	for _, row := range rows {
		if row.Status != models.DosePending {
			t.Fatalf("row %s %s status = %q, want pending", row.Name, row.TimeSlot, row.Status)
		}
	}
	if rows[0].TimeSlot != "08:00" || rows[1].TimeSlot != "20:00" || rows[2].TimeSlot != "12:00" {
		t.Fatalf("BuildTodaySchedule() slot order = %q %q %q", rows[0].TimeSlot, rows[1].TimeSlot, rows[2].TimeSlot)
	}
}

func TestResolveSlotStatusLastLogWins(t *testing.T) {
	logs := []models.MedicationLog{
		{ID: 1, MedicationID: 1, TimeSlot: "08:00", Status: models.DoseSkipped},
		{ID: 2, MedicationID: 1, TimeSlot: "08:00", Status: models.DoseTaken},
	}

	if got := ResolveSlotStatus(logs, 1, "08:00"); got != models.DoseTaken {
		t.Fatalf("ResolveSlotStatus() = %q, want %q (last matching log)", got, models.DoseTaken)
	}
	if got := ResolveSlotStatus(logs, 1, "20:00"); got != models.DosePending {
		t.Fatalf("ResolveSlotStatus() unlogged slot = %q, want pending", got)
	}
	if got := ResolveSlotStatus(logs, 2, "08:00"); got != models.DosePending {
		t.Fatalf("ResolveSlotStatus() other medication = %q, want pending", got)
	}
}

func TestTodayScheduleReflectsLoggedDoses(t *testing.T) {
	medicationRepo := &stubMedicationRepo{medications: []models.Medication{
		{ID: 1, Name: "Metformin", Dosage: "500mg", Times: "08:00, 20:00", IsActive: true},
	}}
	logs := &stubDoseLogRepo{}
	service := newMedicationServiceForTest(medicationRepo, logs, &stubReminderRepo{})

	rows, summary, err := service.TodaySchedule()
	if err != nil {
		t.Fatalf("TodaySchedule() unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("TodaySchedule() returned %d rows, want 2", len(rows))
	}
	if summary.Pending != 2 || summary.Taken != 0 {
		t.Fatalf("summary = %+v, want 2 pending", summary)
	}

	if _, err := service.TakeDose(1, "08:00"); err != nil {
		t.Fatalf("TakeDose() unexpected error: %v", err)
	}

	rows, summary, err = service.TodaySchedule()
	if err != nil {
		t.Fatalf("TodaySchedule() unexpected error: %v", err)
	}
	if rows[0].Status != models.DoseTaken {
		t.Fatalf("08:00 row status = %q, want taken", rows[0].Status)
	}
	if rows[1].Status != models.DosePending {
		t.Fatalf("20:00 row status = %q, want pending", rows[1].Status)
	}
	if summary.Taken != 1 || summary.Pending != 1 {
		t.Fatalf("summary after take = %+v, want 1 taken 1 pending", summary)
	}
}

func TestTodayScheduleIgnoresLogsFromOtherDays(t *testing.T) {
	medicationRepo := &stubMedicationRepo{medications: []models.Medication{
		{ID: 1, Name: "Metformin", Times: "08:00", IsActive: true},
	}}
	yesterday := DateAtLocation(time.Now(), time.UTC).AddDate(0, 0, -1)
	logs := &stubDoseLogRepo{logs: []models.MedicationLog{
		{ID: 1, MedicationID: 1, Date: yesterday, TimeSlot: "08:00", Status: models.DoseTaken},
	}}
	service := newMedicationServiceForTest(medicationRepo, logs, &stubReminderRepo{})

	rows, _, err := service.TodaySchedule()
	if err != nil {
		t.Fatalf("TodaySchedule() unexpected error: %v", err)
	}
	if rows[0].Status != models.DosePending {
		t.Fatalf("row status = %q, want pending (yesterday's log must not count)", rows[0].Status)
	}
}

func TestTodayScheduleSkipsInactiveMedications(t *testing.T) {
	medicationRepo := &stubMedicationRepo{medications: []models.Medication{
		{ID: 1, Name: "Metformin", Times: "08:00", IsActive: true},
		{ID: 2, Name: "Old Script", Times: "10:00", IsActive: false},
	}}
	service := newMedicationServiceForTest(medicationRepo, &stubDoseLogRepo{}, &stubReminderRepo{})

	rows, _, err := service.TodaySchedule()
	if err != nil {
		t.Fatalf("TodaySchedule() unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("TodaySchedule() returned %d rows, want 1 (inactive excluded)", len(rows))
	}
}

func TestSearchScheduleFiltersByName(t *testing.T) {
	medicationRepo := &stubMedicationRepo{medications: []models.Medication{
		{ID: 1, Name: "Metformin", Times: "08:00, 20:00", IsActive: true},
		{ID: 2, Name: "Omega 3", Times: "12:00", IsActive: true},
	}}
	service := newMedicationServiceForTest(medicationRepo, &stubDoseLogRepo{}, &stubReminderRepo{})

	rows, err := service.SearchSchedule("omega")
	if err != nil {
		t.Fatalf("SearchSchedule() unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Omega 3" {
		t.Fatalf("SearchSchedule(omega) = %#v, want the Omega 3 row", rows)
	}
}

func TestFilterScheduleRowsMatchesNameCaseInsensitively(t *testing.T) {
	rows := []ScheduleRow{
		{Name: "Metformin", TimeSlot: "08:00"},
		{Name: "Omega 3", TimeSlot: "12:00"},
	}

	filtered := FilterScheduleRows(rows, "met")
	if len(filtered) != 1 || filtered[0].Name != "Metformin" {
		t.Fatalf("FilterScheduleRows(met) = %#v, want the Metformin row", filtered)
	}

	if got := FilterScheduleRows(rows, ""); len(got) != 2 {
		t.Fatalf("FilterScheduleRows(\"\") returned %d rows, want all", len(got))
	}
}
