package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/armedhealth/armed/internal/models"
)

var ErrMemberNotFound = errors.New("care team member not found")

type CareTeamRepository interface {
	List() ([]models.CareTeamMember, error)
	Find(memberID uint) (models.CareTeamMember, bool, error)
	Save(member *models.CareTeamMember) error
}

type CareTeamService struct {
	members CareTeamRepository
}

func NewCareTeamService(members CareTeamRepository) *CareTeamService {
	return &CareTeamService{members: members}
}

// Search matches the query against name or role, case-insensitively.
func (service *CareTeamService) Search(query string) ([]models.CareTeamMember, error) {
	members, err := service.members.List()
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return members, nil
	}

	filtered := make([]models.CareTeamMember, 0, len(members))
	for _, member := range members {
		if containsFold(member.Name, query) || containsFold(member.Role, query) {
			filtered = append(filtered, member)
		}
	}
	return filtered, nil
}

// MarkMessagesRead clears the member's unread state by id; there is no
// per-name special casing.
func (service *CareTeamService) MarkMessagesRead(memberID uint) (models.CareTeamMember, error) {
	member, found, err := service.members.Find(memberID)
	if err != nil {
		return models.CareTeamMember{}, fmt.Errorf("find member: %w", err)
	}
	if !found {
		return models.CareTeamMember{}, ErrMemberNotFound
	}

	member.Badge = 0
	member.Unread = false
	member.Messages = []string{}
	if err := service.members.Save(&member); err != nil {
		return models.CareTeamMember{}, fmt.Errorf("save member: %w", err)
	}
	return member, nil
}
