package models

import "time"

const (
	ChallengeDaily   = "daily"
	ChallengeWeekly  = "weekly"
	ChallengeMonthly = "monthly"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Icon and Color are opaque display metadata passed through to clients.
type Challenge struct {
	ID           uint   `gorm:"primaryKey"`
	Title        string `gorm:"not null"`
	Description  string
	Type         string `gorm:"not null"`
	Target       int    `gorm:"not null"`
	Current      int    `gorm:"not null;default:0"`
	Unit         string
	Icon         string
	Color        string
	Points       int
	IsActive     bool `gorm:"not null;default:false"`
	StartDate    time.Time
	EndDate      time.Time
	Participants int    `gorm:"not null;default:0"`
	Difficulty   string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Badge struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	Icon        string
	Color       string
	IsEarned    bool `gorm:"not null;default:false"`
	EarnedDate  *time.Time
	Points      int
	CreatedAt   time.Time
}

type LeaderboardEntry struct {
	ID                  uint   `gorm:"primaryKey"`
	Name                string `gorm:"not null"`
	Avatar              string
	Points              int
	Rank                int `gorm:"not null"`
	ChallengesCompleted int
	CreatedAt           time.Time
}
