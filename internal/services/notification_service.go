package services

import (
	"errors"
	"fmt"

	"github.com/armedhealth/armed/internal/models"
)

var (
	ErrNotificationNotFound    = errors.New("notification not found")
	ErrUnknownNotificationType = errors.New("unknown notification type")
)

// FilterAll bypasses the type check but still honors the per-type
// settings gate: disabling a type hides it from "All" too.
const FilterAll = "All"

type NotificationRepository interface {
	List() ([]models.Notification, error)
	Find(notificationID uint) (models.Notification, bool, error)
	Save(notification *models.Notification) error
	MarkAllRead() error
	Prepend(notification *models.Notification) error
}

type NotificationSettingRepository interface {
	List() ([]models.NotificationSetting, error)
	FindByType(notificationType string) (models.NotificationSetting, bool, error)
	Save(setting *models.NotificationSetting) error
}

type NotificationService struct {
	notifications NotificationRepository
	settings      NotificationSettingRepository
}

func NewNotificationService(notifications NotificationRepository, settings NotificationSettingRepository) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		settings:      settings,
	}
}

func (service *NotificationService) ToggleRead(notificationID uint) (models.Notification, error) {
	notification, found, err := service.notifications.Find(notificationID)
	if err != nil {
		return models.Notification{}, fmt.Errorf("find notification: %w", err)
	}
	if !found {
		return models.Notification{}, ErrNotificationNotFound
	}

	notification.Read = !notification.Read
	if err := service.notifications.Save(&notification); err != nil {
		return models.Notification{}, fmt.Errorf("save notification: %w", err)
	}
	return notification, nil
}

func (service *NotificationService) MarkAllRead() error {
	return service.notifications.MarkAllRead()
}

func (service *NotificationService) ToggleSetting(notificationType string) (models.NotificationSetting, error) {
	setting, found, err := service.settings.FindByType(notificationType)
	if err != nil {
		return models.NotificationSetting{}, fmt.Errorf("find setting: %w", err)
	}
	if !found {
		return models.NotificationSetting{}, ErrUnknownNotificationType
	}

	setting.Enabled = !setting.Enabled
	if err := service.settings.Save(&setting); err != nil {
		return models.NotificationSetting{}, fmt.Errorf("save setting: %w", err)
	}
	return setting, nil
}

func (service *NotificationService) Settings() ([]models.NotificationSetting, error) {
	return service.settings.List()
}

// Filter applies the type filter and the enabled-settings gate.
func (service *NotificationService) Filter(typeFilter string) ([]models.Notification, error) {
	notifications, err := service.notifications.List()
	if err != nil {
		return nil, err
	}
	settings, err := service.settings.List()
	if err != nil {
		return nil, err
	}

	enabledByType := make(map[string]bool, len(settings))
	for _, setting := range settings {
		enabledByType[setting.Type] = setting.Enabled
	}

	filtered := make([]models.Notification, 0, len(notifications))
	for _, notification := range notifications {
		if typeFilter != FilterAll && notification.Type != typeFilter {
			continue
		}
		if !enabledByType[notification.Type] {
			continue
		}
		filtered = append(filtered, notification)
	}
	return filtered, nil
}

func (service *NotificationService) UnreadCount() (int, error) {
	notifications, err := service.notifications.List()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, notification := range notifications {
		if !notification.Read {
			count++
		}
	}
	return count, nil
}
