package db

import (
	"github.com/armedhealth/armed/internal/models"
	"gorm.io/gorm"
)

type NotificationSettingRepository struct {
	database *gorm.DB
}

func NewNotificationSettingRepository(database *gorm.DB) *NotificationSettingRepository {
	return &NotificationSettingRepository{database: database}
}

func (repo *NotificationSettingRepository) List() ([]models.NotificationSetting, error) {
	settings := make([]models.NotificationSetting, 0)
	if err := repo.database.Order("id ASC").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (repo *NotificationSettingRepository) FindByType(notificationType string) (models.NotificationSetting, bool, error) {
	setting := models.NotificationSetting{}
	result := repo.database.Where("type = ?", notificationType).Limit(1).Find(&setting)
	if result.Error != nil {
		return models.NotificationSetting{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.NotificationSetting{}, false, nil
	}
	return setting, true, nil
}

func (repo *NotificationSettingRepository) Save(setting *models.NotificationSetting) error {
	return repo.database.Save(setting).Error
}
