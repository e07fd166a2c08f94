package api

import "github.com/gofiber/fiber/v2"

// ExportJSON dumps the full in-memory state as one document; handy for
// inspecting a session before a restart wipes it.
func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	medications, err := handler.medicationService.ListMedications()
	if err != nil {
		return serviceError(c, err)
	}

	history, err := handler.medicationService.History()
	if err != nil {
		return serviceError(c, err)
	}
	historyPayloads := make([]fiber.Map, 0, len(history))
	for _, entry := range history {
		historyPayloads = append(historyPayloads, doseLogPayload(entry.Log, entry.MedicationName))
	}

	upcoming, past, err := handler.appointmentService.Partition()
	if err != nil {
		return serviceError(c, err)
	}

	challenges, err := handler.challengeService.ListChallenges()
	if err != nil {
		return serviceError(c, err)
	}

	notifications, err := handler.repositories.Notifications.List()
	if err != nil {
		return serviceError(c, err)
	}

	members, err := handler.careTeamService.Search("")
	if err != nil {
		return serviceError(c, err)
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="armed-export.json"`)
	return c.JSON(fiber.Map{
		"medications":   medicationsPayload(medications),
		"dose_history":  historyPayloads,
		"appointments":  append(appointmentsPayload(upcoming), appointmentsPayload(past)...),
		"challenges":    challengesPayload(challenges),
		"notifications": notificationsPayload(notifications),
		"care_team":     careTeamPayload(members),
	})
}
