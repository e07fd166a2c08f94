package db

import (
	"github.com/armedhealth/armed/internal/models"
	"gorm.io/gorm"
)

type LeaderboardRepository struct {
	database *gorm.DB
}

func NewLeaderboardRepository(database *gorm.DB) *LeaderboardRepository {
	return &LeaderboardRepository{database: database}
}

func (repo *LeaderboardRepository) List() ([]models.LeaderboardEntry, error) {
	entries := make([]models.LeaderboardEntry, 0)
	if err := repo.database.Order("rank ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
