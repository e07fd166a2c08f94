package api

import (
	"time"

	"gorm.io/gorm"

	"github.com/armedhealth/armed/internal/db"
	"github.com/armedhealth/armed/internal/services"
)

type Handler struct {
	db           *gorm.DB
	location     *time.Location
	repositories *db.Repositories

	medicationService   *services.MedicationService
	appointmentService  *services.AppointmentService
	challengeService    *services.ChallengeService
	notificationService *services.NotificationService
	careTeamService     *services.CareTeamService

	toaster   *services.Toaster
	simulator *services.NotificationSimulator
}

// Toast messages mirror the feedback lines users see after each action.
const (
	toastMedicationTaken   = "Medication marked as taken!"
	toastMedicationSkipped = "Medication marked as skipped"
	toastMedicationMissed  = "Medication marked as missed"
	toastMedicationAdded   = "Medication added successfully!"
	toastMissingFields     = "Please fill in all required fields"

	toastAppointmentBooked      = "Appointment booked successfully!"
	toastAppointmentCancelled   = "Appointment cancelled."
	toastAppointmentRescheduled = "Appointment rescheduled."

	toastChallengeJoined = "Challenge joined successfully!"
	toastChallengeLeft   = "Challenge left successfully!"
)
