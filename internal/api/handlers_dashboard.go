package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/armedhealth/armed/internal/services"
)

// GetDashboard aggregates the landing view: today's medication schedule
// (optionally filtered by q), the glucose trend series, upcoming
// appointments, the goals header, and the unread notification count.
func (handler *Handler) GetDashboard(c *fiber.Ctx) error {
	rows, summary, err := handler.medicationService.TodaySchedule()
	if err != nil {
		return serviceError(c, err)
	}
	if query := c.Query("q"); query != "" {
		rows = services.FilterScheduleRows(rows, query)
	}

	glucose, err := handler.repositories.Glucose.List()
	if err != nil {
		return serviceError(c, err)
	}

	upcoming, _, err := handler.appointmentService.Partition()
	if err != nil {
		return serviceError(c, err)
	}

	overview, err := handler.challengeService.Overview()
	if err != nil {
		return serviceError(c, err)
	}

	unread, err := handler.notificationService.UnreadCount()
	if err != nil {
		return serviceError(c, err)
	}

	members, err := handler.careTeamService.Search("")
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"schedule":     scheduleRowsPayload(rows),
		"summary":      scheduleSummaryPayload(summary),
		"glucose":      glucosePayload(glucose),
		"appointments": appointmentsPayload(upcoming),
		"care_team":    careTeamPayload(members),
		"points":       overview.Points,
		"active_count": overview.ActiveCount,
		"unread_count": unread,
	})
}
