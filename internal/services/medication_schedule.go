package services

import (
	"time"

	"github.com/armedhealth/armed/internal/models"
)

// ScheduleRow is one dose slot of today's schedule: a medication with two
// time slots contributes two rows.
type ScheduleRow struct {
	MedicationID uint
	Name         string
	Dosage       string
	Quantity     string
	Instructions string
	TimeSlot     string
	Status       string
}

type ScheduleSummary struct {
	Total   int
	Taken   int
	Missed  int
	Skipped int
	Pending int
}

// BuildTodaySchedule expands each medication's slots in iteration order x
// split order. It is deliberately not sorted by clock time.
func BuildTodaySchedule(medications []models.Medication, todayLogs []models.MedicationLog) []ScheduleRow {
	rows := make([]ScheduleRow, 0, len(medications))
	for _, medication := range medications {
		if !medication.IsActive {
			continue
		}
		for _, slot := range SplitTimeSlots(medication.Times) {
			rows = append(rows, ScheduleRow{
				MedicationID: medication.ID,
				Name:         medication.Name,
				Dosage:       medication.Dosage,
				Quantity:     medication.Quantity,
				Instructions: medication.Instructions,
				TimeSlot:     slot,
				Status:       ResolveSlotStatus(todayLogs, medication.ID, slot),
			})
		}
	}
	return rows
}

// ResolveSlotStatus returns the status of the last log matching the
// medication and slot, or pending when none matches. Dose actions append
// rather than update, so the latest entry wins.
func ResolveSlotStatus(todayLogs []models.MedicationLog, medicationID uint, timeSlot string) string {
	status := models.DosePending
	for _, logEntry := range todayLogs {
		if logEntry.MedicationID == medicationID && logEntry.TimeSlot == timeSlot {
			status = logEntry.Status
		}
	}
	return status
}

func SummarizeSchedule(rows []ScheduleRow) ScheduleSummary {
	summary := ScheduleSummary{Total: len(rows)}
	for _, row := range rows {
		switch row.Status {
		case models.DoseTaken:
			summary.Taken++
		case models.DoseMissed:
			summary.Missed++
		case models.DoseSkipped:
			summary.Skipped++
		default:
			summary.Pending++
		}
	}
	return summary
}

// FilterScheduleRows keeps rows whose medication name matches the query,
// case-insensitively. An empty query keeps everything.
func FilterScheduleRows(rows []ScheduleRow, query string) []ScheduleRow {
	if query == "" {
		return rows
	}
	filtered := make([]ScheduleRow, 0, len(rows))
	for _, row := range rows {
		if containsFold(row.Name, query) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// TodaySchedule builds the full derived view for the current day.
func (service *MedicationService) TodaySchedule() ([]ScheduleRow, ScheduleSummary, error) {
	medications, err := service.medications.ListActive()
	if err != nil {
		return nil, ScheduleSummary{}, err
	}

	dayStart, dayEnd := DayRange(time.Now(), service.location)
	todayLogs, err := service.logs.ListByDayRange(dayStart, dayEnd)
	if err != nil {
		return nil, ScheduleSummary{}, err
	}

	rows := BuildTodaySchedule(medications, todayLogs)
	return rows, SummarizeSchedule(rows), nil
}

// SearchSchedule is the dashboard variant: today's rows filtered by a
// medication-name query.
func (service *MedicationService) SearchSchedule(query string) ([]ScheduleRow, error) {
	rows, _, err := service.TodaySchedule()
	if err != nil {
		return nil, err
	}
	return FilterScheduleRows(rows, query), nil
}
