package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/armedhealth/armed/internal/services"
)

func (handler *Handler) GetAppointments(c *fiber.Ctx) error {
	upcoming, history, err := handler.appointmentService.Partition()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"upcoming": appointmentsPayload(upcoming),
		"history":  appointmentsPayload(history),
	})
}

func (handler *Handler) GetDoctors(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"doctors": handler.appointmentService.Doctors()})
}

func (handler *Handler) BookAppointment(c *fiber.Ctx) error {
	input, ok := handler.parseAppointmentInput(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	appointment, err := handler.appointmentService.Book(input)
	if err != nil {
		if errors.Is(err, services.ErrMissingRequiredFields) {
			handler.toaster.Show(toastMissingFields)
		}
		return serviceError(c, err)
	}

	handler.toaster.Show(toastAppointmentBooked)
	return c.Status(fiber.StatusCreated).JSON(appointmentPayload(appointment))
}

func (handler *Handler) CancelAppointment(c *fiber.Ctx) error {
	appointmentID, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid appointment id")
	}

	appointment, err := handler.appointmentService.Cancel(appointmentID)
	if err != nil {
		return serviceError(c, err)
	}

	handler.toaster.Show(toastAppointmentCancelled)
	return c.JSON(appointmentPayload(appointment))
}

func (handler *Handler) RescheduleAppointment(c *fiber.Ctx) error {
	appointmentID, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid appointment id")
	}

	input, ok := handler.parseAppointmentInput(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	appointment, err := handler.appointmentService.Reschedule(appointmentID, input)
	if err != nil {
		if errors.Is(err, services.ErrMissingRequiredFields) {
			handler.toaster.Show(toastMissingFields)
		}
		return serviceError(c, err)
	}

	handler.toaster.Show(toastAppointmentRescheduled)
	return c.JSON(appointmentPayload(appointment))
}

func (handler *Handler) parseAppointmentInput(c *fiber.Ctx) (services.AppointmentInput, bool) {
	var input appointmentInput
	if err := c.BodyParser(&input); err != nil {
		return services.AppointmentInput{}, false
	}

	parsed := services.AppointmentInput{
		Doctor:     input.Doctor,
		TimeSlot:   input.TimeSlot,
		Telehealth: input.Telehealth,
	}

	// An absent date is a missing required field, not a malformed
	// request: leave it zero so the service reports it alongside the
	// other presence checks.
	if strings.TrimSpace(input.Date) == "" {
		return parsed, true
	}

	date, ok := handler.parseDateField(input.Date)
	if !ok {
		return services.AppointmentInput{}, false
	}
	parsed.Date = date
	return parsed, true
}
