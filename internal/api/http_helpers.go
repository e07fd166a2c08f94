package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/armedhealth/armed/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps the service sentinels onto HTTP statuses.
func serviceError(c *fiber.Ctx, err error) error {
	return apiError(c, statusForError(err), err.Error())
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrMissingRequiredFields),
		errors.Is(err, services.ErrInvalidProgressDelta):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrMedicationNotFound),
		errors.Is(err, services.ErrReminderNotFound),
		errors.Is(err, services.ErrAppointmentNotFound),
		errors.Is(err, services.ErrChallengeNotFound),
		errors.Is(err, services.ErrNotificationNotFound),
		errors.Is(err, services.ErrUnknownNotificationType),
		errors.Is(err, services.ErrMemberNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrAppointmentNotUpcoming):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func parseIDParam(c *fiber.Ctx) (uint, bool) {
	value, err := c.ParamsInt("id")
	if err != nil || value <= 0 {
		return 0, false
	}
	return uint(value), true
}

func (handler *Handler) parseDateField(raw string) (time.Time, bool) {
	parsed, err := time.ParseInLocation("2006-01-02", raw, handler.location)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
