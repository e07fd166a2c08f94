package models

import "time"

type CareTeamMember struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Role      string `gorm:"not null"`
	Image     string
	Badge     int      `gorm:"not null;default:0"`
	Unread    bool     `gorm:"not null;default:false"`
	Messages  []string `gorm:"serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
