package db

import (
	"time"

	"github.com/armedhealth/armed/internal/models"
	"gorm.io/gorm"
)

type MedicationLogRepository struct {
	database *gorm.DB
}

func NewMedicationLogRepository(database *gorm.DB) *MedicationLogRepository {
	return &MedicationLogRepository{database: database}
}

// List returns logs in append order; callers reverse for display.
func (repo *MedicationLogRepository) List() ([]models.MedicationLog, error) {
	logs := make([]models.MedicationLog, 0)
	if err := repo.database.Order("id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *MedicationLogRepository) ListByDayRange(dayStart time.Time, dayEnd time.Time) ([]models.MedicationLog, error) {
	logs := make([]models.MedicationLog, 0)
	if err := repo.database.
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Order("id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *MedicationLogRepository) Create(logEntry *models.MedicationLog) error {
	return repo.database.Create(logEntry).Error
}
