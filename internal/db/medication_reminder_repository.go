package db

import (
	"github.com/armedhealth/armed/internal/models"
	"gorm.io/gorm"
)

type MedicationReminderRepository struct {
	database *gorm.DB
}

func NewMedicationReminderRepository(database *gorm.DB) *MedicationReminderRepository {
	return &MedicationReminderRepository{database: database}
}

func (repo *MedicationReminderRepository) List() ([]models.MedicationReminder, error) {
	reminders := make([]models.MedicationReminder, 0)
	if err := repo.database.Order("id ASC").Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (repo *MedicationReminderRepository) Find(reminderID uint) (models.MedicationReminder, bool, error) {
	reminder := models.MedicationReminder{}
	result := repo.database.Where("id = ?", reminderID).Limit(1).Find(&reminder)
	if result.Error != nil {
		return models.MedicationReminder{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MedicationReminder{}, false, nil
	}
	return reminder, true, nil
}

func (repo *MedicationReminderRepository) Save(reminder *models.MedicationReminder) error {
	return repo.database.Save(reminder).Error
}
