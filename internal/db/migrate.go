package db

import (
	"github.com/armedhealth/armed/internal/models"
	"gorm.io/gorm"
)

func autoMigrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.Medication{},
		&models.MedicationLog{},
		&models.MedicationReminder{},
		&models.Appointment{},
		&models.Challenge{},
		&models.Badge{},
		&models.LeaderboardEntry{},
		&models.Notification{},
		&models.NotificationSetting{},
		&models.CareTeamMember{},
		&models.GlucosePoint{},
	)
}
