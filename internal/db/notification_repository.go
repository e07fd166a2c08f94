package db

import (
	"database/sql"

	"github.com/armedhealth/armed/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	database *gorm.DB
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{database: database}
}

// List returns newest-first display order: prepended notifications carry
// positions below every seeded one.
func (repo *NotificationRepository) List() ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	if err := repo.database.Order("position ASC, id ASC").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (repo *NotificationRepository) Find(notificationID uint) (models.Notification, bool, error) {
	notification := models.Notification{}
	result := repo.database.Where("id = ?", notificationID).Limit(1).Find(&notification)
	if result.Error != nil {
		return models.Notification{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Notification{}, false, nil
	}
	return notification, true, nil
}

func (repo *NotificationRepository) Save(notification *models.Notification) error {
	return repo.database.Save(notification).Error
}

func (repo *NotificationRepository) MarkAllRead() error {
	return repo.database.Model(&models.Notification{}).Where("read = ?", false).Update("read", true).Error
}

// Prepend stores the notification ahead of every existing one.
func (repo *NotificationRepository) Prepend(notification *models.Notification) error {
	var minPosition sql.NullInt64
	if err := repo.database.Model(&models.Notification{}).Select("MIN(position)").Scan(&minPosition).Error; err != nil {
		return err
	}
	notification.Position = 0
	if minPosition.Valid {
		notification.Position = int(minPosition.Int64) - 1
	}
	return repo.database.Create(notification).Error
}
