package models

import "time"

const (
	DoseTaken   = "taken"
	DoseMissed  = "missed"
	DoseSkipped = "skipped"
	DosePending = "pending"
)

// Times holds one or more time-of-day slots as a comma-separated string
// ("08:00, 20:00"); the schedule builder expands it into one row per slot.
type Medication struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Dosage       string `gorm:"not null"`
	Frequency    string `gorm:"not null;default:'Once daily'"`
	Times        string `gorm:"not null"`
	Quantity     string
	Instructions string
	StartDate    time.Time `gorm:"type:date;not null"`
	EndDate      *time.Time
	IsActive     bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MedicationID is a weak reference: a log may outlive the medication it
// points at and must still render.
type MedicationLog struct {
	ID           uint      `gorm:"primaryKey"`
	MedicationID uint      `gorm:"not null;index"`
	Date         time.Time `gorm:"type:date;not null"`
	TimeSlot     string    `gorm:"not null"`
	Status       string    `gorm:"not null"`
	Notes        string
	CreatedAt    time.Time
}

type MedicationReminder struct {
	ID           uint     `gorm:"primaryKey"`
	MedicationID uint     `gorm:"not null;index"`
	TimeSlot     string   `gorm:"not null"`
	Days         []string `gorm:"serializer:json"`
	IsActive     bool     `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
