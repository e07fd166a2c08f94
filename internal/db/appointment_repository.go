package db

import (
	"github.com/armedhealth/armed/internal/models"
	"gorm.io/gorm"
)

type AppointmentRepository struct {
	database *gorm.DB
}

func NewAppointmentRepository(database *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{database: database}
}

func (repo *AppointmentRepository) List() ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	if err := repo.database.Order("id ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (repo *AppointmentRepository) Find(appointmentID uint) (models.Appointment, bool, error) {
	appointment := models.Appointment{}
	result := repo.database.Where("id = ?", appointmentID).Limit(1).Find(&appointment)
	if result.Error != nil {
		return models.Appointment{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Appointment{}, false, nil
	}
	return appointment, true, nil
}

func (repo *AppointmentRepository) Create(appointment *models.Appointment) error {
	return repo.database.Create(appointment).Error
}

func (repo *AppointmentRepository) Save(appointment *models.Appointment) error {
	return repo.database.Save(appointment).Error
}
