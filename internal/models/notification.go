package models

import "time"

const (
	NotificationMedication   = "Medication"
	NotificationAppointments = "Appointments"
	NotificationChallenge    = "Challenge"
	NotificationSystem       = "System"
)

func NotificationTypes() []string {
	return []string{
		NotificationMedication,
		NotificationAppointments,
		NotificationChallenge,
		NotificationSystem,
	}
}

// TimeLabel is a display string ("08:00", "Yesterday", "Just now"), not a
// timestamp; ordering comes from Position.
type Notification struct {
	ID          uint   `gorm:"primaryKey"`
	Type        string `gorm:"not null"`
	Title       string `gorm:"not null"`
	Description string
	Read        bool `gorm:"not null;default:false"`
	TimeLabel   string
	Position    int `gorm:"not null;index"`
	CreatedAt   time.Time
}

type NotificationSetting struct {
	ID        uint   `gorm:"primaryKey"`
	Type      string `gorm:"not null;uniqueIndex"`
	Enabled   bool   `gorm:"not null;default:true"`
	UpdatedAt time.Time
}
