package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/armedhealth/armed/internal/services"
)

// GetNotifications lists notifications for the given filter tab. The
// default tab is All; disabled types are hidden on every tab.
func (handler *Handler) GetNotifications(c *fiber.Ctx) error {
	filter := c.Query("filter", services.FilterAll)

	notifications, err := handler.notificationService.Filter(filter)
	if err != nil {
		return serviceError(c, err)
	}

	unread, err := handler.notificationService.UnreadCount()
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"notifications": notificationsPayload(notifications),
		"unread_count":  unread,
	})
}

func (handler *Handler) ToggleNotificationRead(c *fiber.Ctx) error {
	notificationID, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid notification id")
	}

	notification, err := handler.notificationService.ToggleRead(notificationID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(notificationPayload(notification))
}

// MarkAllNotificationsRead clears every unread flag, then arms the
// simulator: a fresh system notification arrives shortly after.
func (handler *Handler) MarkAllNotificationsRead(c *fiber.Ctx) error {
	if err := handler.notificationService.MarkAllRead(); err != nil {
		return serviceError(c, err)
	}

	handler.simulator.Schedule()
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) GetNotificationSettings(c *fiber.Ctx) error {
	settings, err := handler.notificationService.Settings()
	if err != nil {
		return serviceError(c, err)
	}

	payloads := make([]fiber.Map, 0, len(settings))
	for _, setting := range settings {
		payloads = append(payloads, settingPayload(setting))
	}
	return c.JSON(fiber.Map{"settings": payloads})
}

func (handler *Handler) ToggleNotificationSetting(c *fiber.Ctx) error {
	setting, err := handler.notificationService.ToggleSetting(c.Params("type"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(settingPayload(setting))
}
