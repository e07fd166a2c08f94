package db

import (
	"fmt"

	"github.com/armedhealth/armed/internal/models"
	"gorm.io/gorm"
)

// Seed loads the fixture collections into an empty store. Safe to call on
// every start: a store that already has medications is left untouched.
func Seed(database *gorm.DB) error {
	var count int64
	if err := database.Model(&models.Medication{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count medications: %w", err)
	}
	if count > 0 {
		return nil
	}

	return database.Transaction(func(tx *gorm.DB) error {
		// Medications first: log and reminder seeds reference their ids.
		steps := []struct {
			name   string
			create func(tx *gorm.DB) error
		}{
			{"medications", func(tx *gorm.DB) error { records := models.SeedMedications(); return tx.Create(&records).Error }},
			{"medication logs", func(tx *gorm.DB) error { records := models.SeedMedicationLogs(); return tx.Create(&records).Error }},
			{"medication reminders", func(tx *gorm.DB) error { records := models.SeedMedicationReminders(); return tx.Create(&records).Error }},
			{"appointments", func(tx *gorm.DB) error { records := models.SeedAppointments(); return tx.Create(&records).Error }},
			{"challenges", func(tx *gorm.DB) error { records := models.SeedChallenges(); return tx.Create(&records).Error }},
			{"badges", func(tx *gorm.DB) error { records := models.SeedBadges(); return tx.Create(&records).Error }},
			{"leaderboard", func(tx *gorm.DB) error { records := models.SeedLeaderboard(); return tx.Create(&records).Error }},
			{"notifications", func(tx *gorm.DB) error { records := models.SeedNotifications(); return tx.Create(&records).Error }},
			{"notification settings", func(tx *gorm.DB) error { records := models.SeedNotificationSettings(); return tx.Create(&records).Error }},
			{"care team", func(tx *gorm.DB) error { records := models.SeedCareTeam(); return tx.Create(&records).Error }},
			{"glucose points", func(tx *gorm.DB) error { records := models.SeedGlucosePoints(); return tx.Create(&records).Error }},
		}

		for _, step := range steps {
			if err := step.create(tx); err != nil {
				return fmt.Errorf("seed %s: %w", step.name, err)
			}
		}
		return nil
	})
}
