package api

import (
	"time"

	"gorm.io/gorm"

	"github.com/armedhealth/armed/internal/db"
	"github.com/armedhealth/armed/internal/services"
)

func NewHandler(database *gorm.DB, location *time.Location, toaster *services.Toaster, simulator *services.NotificationSimulator) *Handler {
	handler := &Handler{
		db:        database,
		location:  location,
		toaster:   toaster,
		simulator: simulator,
	}
	return handler.withDependencies(database)
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	if handler.location == nil {
		handler.location = time.UTC
	}
	if handler.toaster == nil {
		handler.toaster = services.NewToaster(services.DefaultToastDuration)
	}

	handler.repositories = db.NewRepositories(database)
	handler.medicationService = services.NewMedicationService(
		handler.repositories.Medications,
		handler.repositories.MedicationLogs,
		handler.repositories.MedicationReminders,
		handler.location,
	)
	handler.appointmentService = services.NewAppointmentService(handler.repositories.Appointments)
	handler.challengeService = services.NewChallengeService(
		handler.repositories.Challenges,
		handler.repositories.Badges,
		handler.repositories.Leaderboard,
	)
	handler.notificationService = services.NewNotificationService(
		handler.repositories.Notifications,
		handler.repositories.NotificationSettings,
	)
	handler.careTeamService = services.NewCareTeamService(handler.repositories.CareTeam)

	if handler.simulator == nil {
		handler.simulator = services.NewNotificationSimulator(handler.repositories.Notifications, 0)
	}
	return handler
}
