package db

import (
	"github.com/armedhealth/armed/internal/models"
	"gorm.io/gorm"
)

type ChallengeRepository struct {
	database *gorm.DB
}

func NewChallengeRepository(database *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{database: database}
}

func (repo *ChallengeRepository) List() ([]models.Challenge, error) {
	challenges := make([]models.Challenge, 0)
	if err := repo.database.Order("id ASC").Find(&challenges).Error; err != nil {
		return nil, err
	}
	return challenges, nil
}

func (repo *ChallengeRepository) Find(challengeID uint) (models.Challenge, bool, error) {
	challenge := models.Challenge{}
	result := repo.database.Where("id = ?", challengeID).Limit(1).Find(&challenge)
	if result.Error != nil {
		return models.Challenge{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Challenge{}, false, nil
	}
	return challenge, true, nil
}

func (repo *ChallengeRepository) Save(challenge *models.Challenge) error {
	return repo.database.Save(challenge).Error
}
