package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/armedhealth/armed/internal/models"
	"github.com/armedhealth/armed/internal/services"
)

func (handler *Handler) GetMedications(c *fiber.Ctx) error {
	medications, err := handler.medicationService.ListMedications()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"medications": medicationsPayload(medications)})
}

func (handler *Handler) CreateMedication(c *fiber.Ctx) error {
	var input medicationInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	medication, err := handler.medicationService.CreateMedication(services.NewMedicationInput{
		Name:         input.Name,
		Dosage:       input.Dosage,
		Frequency:    input.Frequency,
		Times:        input.Times,
		Quantity:     input.Quantity,
		Instructions: input.Instructions,
	})
	if err != nil {
		if errors.Is(err, services.ErrMissingRequiredFields) {
			handler.toaster.Show(toastMissingFields)
		}
		return serviceError(c, err)
	}

	handler.toaster.Show(toastMedicationAdded)
	return c.Status(fiber.StatusCreated).JSON(medicationPayload(medication))
}

func (handler *Handler) TakeDose(c *fiber.Ctx) error {
	return handler.logDose(c, handler.medicationService.TakeDose, toastMedicationTaken)
}

func (handler *Handler) SkipDose(c *fiber.Ctx) error {
	return handler.logDose(c, handler.medicationService.SkipDose, toastMedicationSkipped)
}

func (handler *Handler) MarkDoseMissed(c *fiber.Ctx) error {
	return handler.logDose(c, handler.medicationService.MarkDoseMissed, toastMedicationMissed)
}

func (handler *Handler) logDose(c *fiber.Ctx, action func(uint, string) (models.MedicationLog, error), toast string) error {
	medicationID, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}

	var input doseInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	logEntry, err := action(medicationID, input.TimeSlot)
	if err != nil {
		return serviceError(c, err)
	}

	handler.toaster.Show(toast)
	return c.Status(fiber.StatusCreated).JSON(doseLogPayload(logEntry, ""))
}

func (handler *Handler) GetDoseHistory(c *fiber.Ctx) error {
	entries, err := handler.medicationService.History()
	if err != nil {
		return serviceError(c, err)
	}

	payloads := make([]fiber.Map, 0, len(entries))
	for _, entry := range entries {
		payloads = append(payloads, doseLogPayload(entry.Log, entry.MedicationName))
	}
	return c.JSON(fiber.Map{"history": payloads})
}
