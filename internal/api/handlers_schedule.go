package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/armedhealth/armed/internal/services"
)

// GetTodaySchedule returns today's dose rows plus the taken/missed/
// skipped/pending counters. An optional q parameter filters rows by
// medication name.
func (handler *Handler) GetTodaySchedule(c *fiber.Ctx) error {
	rows, summary, err := handler.medicationService.TodaySchedule()
	if err != nil {
		return serviceError(c, err)
	}

	if query := c.Query("q"); query != "" {
		rows = services.FilterScheduleRows(rows, query)
	}

	return c.JSON(fiber.Map{
		"schedule": scheduleRowsPayload(rows),
		"summary":  scheduleSummaryPayload(summary),
	})
}

func (handler *Handler) GetReminders(c *fiber.Ctx) error {
	views, err := handler.medicationService.Reminders()
	if err != nil {
		return serviceError(c, err)
	}

	payloads := make([]fiber.Map, 0, len(views))
	for _, view := range views {
		payloads = append(payloads, reminderPayload(view))
	}
	return c.JSON(fiber.Map{"reminders": payloads})
}

func (handler *Handler) ToggleReminder(c *fiber.Ctx) error {
	reminderID, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid reminder id")
	}

	reminder, err := handler.medicationService.ToggleReminder(reminderID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"id":        reminder.ID,
		"is_active": reminder.IsActive,
	})
}
