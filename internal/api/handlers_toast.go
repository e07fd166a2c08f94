package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetToast(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": handler.toaster.Current()})
}

func (handler *Handler) DismissToast(c *fiber.Ctx) error {
	handler.toaster.Dismiss()
	return c.SendStatus(fiber.StatusNoContent)
}
