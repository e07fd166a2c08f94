package services

import (
	"errors"
	"fmt"

	"github.com/armedhealth/armed/internal/models"
)

var (
	ErrChallengeNotFound    = errors.New("challenge not found")
	ErrInvalidProgressDelta = errors.New("invalid progress delta")
)

// Points shown in the goals header; static in the seed data set.
const seedUserPoints = 1250

type ChallengeRepository interface {
	List() ([]models.Challenge, error)
	Find(challengeID uint) (models.Challenge, bool, error)
	Save(challenge *models.Challenge) error
}

type BadgeRepository interface {
	List() ([]models.Badge, error)
}

type LeaderboardRepository interface {
	List() ([]models.LeaderboardEntry, error)
}

type ChallengeService struct {
	challenges  ChallengeRepository
	badges      BadgeRepository
	leaderboard LeaderboardRepository
}

type ChallengeOverview struct {
	Points      int
	ActiveCount int
}

func NewChallengeService(challenges ChallengeRepository, badges BadgeRepository, leaderboard LeaderboardRepository) *ChallengeService {
	return &ChallengeService{
		challenges:  challenges,
		badges:      badges,
		leaderboard: leaderboard,
	}
}

func (service *ChallengeService) ListChallenges() ([]models.Challenge, error) {
	return service.challenges.List()
}

func (service *ChallengeService) Badges() ([]models.Badge, error) {
	return service.badges.List()
}

func (service *ChallengeService) Leaderboard() ([]models.LeaderboardEntry, error) {
	return service.leaderboard.List()
}

func (service *ChallengeService) Overview() (ChallengeOverview, error) {
	challenges, err := service.challenges.List()
	if err != nil {
		return ChallengeOverview{}, err
	}

	overview := ChallengeOverview{Points: seedUserPoints}
	for _, challenge := range challenges {
		if challenge.IsActive {
			overview.ActiveCount++
		}
	}
	return overview, nil
}

// Join activates the challenge and counts the participant. Joining a
// challenge that is already active changes nothing.
func (service *ChallengeService) Join(challengeID uint) (models.Challenge, error) {
	challenge, found, err := service.challenges.Find(challengeID)
	if err != nil {
		return models.Challenge{}, fmt.Errorf("find challenge: %w", err)
	}
	if !found {
		return models.Challenge{}, ErrChallengeNotFound
	}
	if challenge.IsActive {
		return challenge, nil
	}

	challenge.IsActive = true
	challenge.Participants++
	if err := service.challenges.Save(&challenge); err != nil {
		return models.Challenge{}, fmt.Errorf("save challenge: %w", err)
	}
	return challenge, nil
}

// Leave deactivates and releases the participant; the count never drops
// below zero.
func (service *ChallengeService) Leave(challengeID uint) (models.Challenge, error) {
	challenge, found, err := service.challenges.Find(challengeID)
	if err != nil {
		return models.Challenge{}, fmt.Errorf("find challenge: %w", err)
	}
	if !found {
		return models.Challenge{}, ErrChallengeNotFound
	}
	if !challenge.IsActive {
		return challenge, nil
	}

	challenge.IsActive = false
	if challenge.Participants > 0 {
		challenge.Participants--
	}
	if err := service.challenges.Save(&challenge); err != nil {
		return models.Challenge{}, fmt.Errorf("save challenge: %w", err)
	}
	return challenge, nil
}

// AddProgress clamps at the target: current never exceeds it no matter
// how large the delta.
func (service *ChallengeService) AddProgress(challengeID uint, delta int) (models.Challenge, error) {
	if delta < 0 {
		return models.Challenge{}, ErrInvalidProgressDelta
	}

	challenge, found, err := service.challenges.Find(challengeID)
	if err != nil {
		return models.Challenge{}, fmt.Errorf("find challenge: %w", err)
	}
	if !found {
		return models.Challenge{}, ErrChallengeNotFound
	}

	updated := challenge.Current + delta
	if updated > challenge.Target {
		updated = challenge.Target
	}
	if updated == challenge.Current {
		return challenge, nil
	}

	challenge.Current = updated
	if err := service.challenges.Save(&challenge); err != nil {
		return models.Challenge{}, fmt.Errorf("save challenge: %w", err)
	}
	return challenge, nil
}

func ChallengeCompleted(challenge models.Challenge) bool {
	return challenge.Current >= challenge.Target
}

func ProgressPercent(challenge models.Challenge) float64 {
	if challenge.Target <= 0 {
		return 100
	}
	percent := float64(challenge.Current) / float64(challenge.Target) * 100
	if percent > 100 {
		return 100
	}
	return percent
}
