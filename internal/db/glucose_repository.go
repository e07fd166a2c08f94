package db

import (
	"github.com/armedhealth/armed/internal/models"
	"gorm.io/gorm"
)

type GlucoseRepository struct {
	database *gorm.DB
}

func NewGlucoseRepository(database *gorm.DB) *GlucoseRepository {
	return &GlucoseRepository{database: database}
}

func (repo *GlucoseRepository) List() ([]models.GlucosePoint, error) {
	points := make([]models.GlucosePoint, 0)
	if err := repo.database.Order("hour ASC").Find(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}
