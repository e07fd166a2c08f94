package db

import (
	"github.com/armedhealth/armed/internal/models"
	"gorm.io/gorm"
)

type BadgeRepository struct {
	database *gorm.DB
}

func NewBadgeRepository(database *gorm.DB) *BadgeRepository {
	return &BadgeRepository{database: database}
}

func (repo *BadgeRepository) List() ([]models.Badge, error) {
	badges := make([]models.Badge, 0)
	if err := repo.database.Order("id ASC").Find(&badges).Error; err != nil {
		return nil, err
	}
	return badges, nil
}
