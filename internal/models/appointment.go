package models

import "time"

const (
	AppointmentUpcoming  = "upcoming"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

type Appointment struct {
	ID         uint      `gorm:"primaryKey"`
	Doctor     string    `gorm:"not null"`
	Date       time.Time `gorm:"type:date;not null"`
	TimeSlot   string    `gorm:"not null"`
	Telehealth bool      `gorm:"not null;default:false"`
	Status     string    `gorm:"not null;default:upcoming"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
