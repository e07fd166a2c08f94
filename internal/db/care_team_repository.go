package db

import (
	"github.com/armedhealth/armed/internal/models"
	"gorm.io/gorm"
)

type CareTeamRepository struct {
	database *gorm.DB
}

func NewCareTeamRepository(database *gorm.DB) *CareTeamRepository {
	return &CareTeamRepository{database: database}
}

func (repo *CareTeamRepository) List() ([]models.CareTeamMember, error) {
	members := make([]models.CareTeamMember, 0)
	if err := repo.database.Order("id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (repo *CareTeamRepository) Find(memberID uint) (models.CareTeamMember, bool, error) {
	member := models.CareTeamMember{}
	result := repo.database.Where("id = ?", memberID).Limit(1).Find(&member)
	if result.Error != nil {
		return models.CareTeamMember{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CareTeamMember{}, false, nil
	}
	return member, true, nil
}

func (repo *CareTeamRepository) Save(member *models.CareTeamMember) error {
	return repo.database.Save(member).Error
}
