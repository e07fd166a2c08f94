package db

import (
	"github.com/armedhealth/armed/internal/models"
	"gorm.io/gorm"
)

type MedicationRepository struct {
	database *gorm.DB
}

func NewMedicationRepository(database *gorm.DB) *MedicationRepository {
	return &MedicationRepository{database: database}
}

func (repo *MedicationRepository) List() ([]models.Medication, error) {
	medications := make([]models.Medication, 0)
	if err := repo.database.Order("id ASC").Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (repo *MedicationRepository) ListActive() ([]models.Medication, error) {
	medications := make([]models.Medication, 0)
	if err := repo.database.Where("is_active = ?", true).Order("id ASC").Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (repo *MedicationRepository) Find(medicationID uint) (models.Medication, bool, error) {
	medication := models.Medication{}
	result := repo.database.Where("id = ?", medicationID).Limit(1).Find(&medication)
	if result.Error != nil {
		return models.Medication{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Medication{}, false, nil
	}
	return medication, true, nil
}

func (repo *MedicationRepository) Create(medication *models.Medication) error {
	return repo.database.Create(medication).Error
}

func (repo *MedicationRepository) Save(medication *models.Medication) error {
	return repo.database.Save(medication).Error
}
