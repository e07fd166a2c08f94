package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/armedhealth/armed/internal/models"
)

var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrAppointmentNotUpcoming = errors.New("appointment is not upcoming")
)

type AppointmentRepository interface {
	List() ([]models.Appointment, error)
	Find(appointmentID uint) (models.Appointment, bool, error)
	Create(appointment *models.Appointment) error
	Save(appointment *models.Appointment) error
}

type AppointmentService struct {
	appointments AppointmentRepository
}

type AppointmentInput struct {
	Doctor     string
	Date       time.Time
	TimeSlot   string
	Telehealth bool
}

func NewAppointmentService(appointments AppointmentRepository) *AppointmentService {
	return &AppointmentService{appointments: appointments}
}

func (service *AppointmentService) Doctors() []string {
	return models.SeedDoctors()
}

func (service *AppointmentService) Book(input AppointmentInput) (models.Appointment, error) {
	doctor := strings.TrimSpace(input.Doctor)
	timeSlot := strings.TrimSpace(input.TimeSlot)
	if doctor == "" || timeSlot == "" || input.Date.IsZero() {
		return models.Appointment{}, ErrMissingRequiredFields
	}

	appointment := models.Appointment{
		Doctor:     doctor,
		Date:       input.Date,
		TimeSlot:   timeSlot,
		Telehealth: input.Telehealth,
		Status:     models.AppointmentUpcoming,
	}
	if err := service.appointments.Create(&appointment); err != nil {
		return models.Appointment{}, fmt.Errorf("create appointment: %w", err)
	}
	return appointment, nil
}

// Cancel moves an upcoming appointment to cancelled. Cancelling an already
// cancelled appointment is a no-op, not an error; completed appointments
// cannot be cancelled.
func (service *AppointmentService) Cancel(appointmentID uint) (models.Appointment, error) {
	appointment, found, err := service.appointments.Find(appointmentID)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("find appointment: %w", err)
	}
	if !found {
		return models.Appointment{}, ErrAppointmentNotFound
	}

	switch appointment.Status {
	case models.AppointmentCancelled:
		return appointment, nil
	case models.AppointmentUpcoming:
		appointment.Status = models.AppointmentCancelled
		if err := service.appointments.Save(&appointment); err != nil {
			return models.Appointment{}, fmt.Errorf("save appointment: %w", err)
		}
		return appointment, nil
	default:
		return models.Appointment{}, ErrAppointmentNotUpcoming
	}
}

// Reschedule mutates the appointment in place: same id, status stays
// upcoming.
func (service *AppointmentService) Reschedule(appointmentID uint, input AppointmentInput) (models.Appointment, error) {
	doctor := strings.TrimSpace(input.Doctor)
	timeSlot := strings.TrimSpace(input.TimeSlot)
	if doctor == "" || timeSlot == "" || input.Date.IsZero() {
		return models.Appointment{}, ErrMissingRequiredFields
	}

	appointment, found, err := service.appointments.Find(appointmentID)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("find appointment: %w", err)
	}
	if !found {
		return models.Appointment{}, ErrAppointmentNotFound
	}
	if appointment.Status != models.AppointmentUpcoming {
		return models.Appointment{}, ErrAppointmentNotUpcoming
	}

	appointment.Doctor = doctor
	appointment.Date = input.Date
	appointment.TimeSlot = timeSlot
	appointment.Telehealth = input.Telehealth
	if err := service.appointments.Save(&appointment); err != nil {
		return models.Appointment{}, fmt.Errorf("save appointment: %w", err)
	}
	return appointment, nil
}

// Partition splits into upcoming and history in insertion order; history
// is every non-upcoming status, not date-sorted.
func (service *AppointmentService) Partition() ([]models.Appointment, []models.Appointment, error) {
	appointments, err := service.appointments.List()
	if err != nil {
		return nil, nil, err
	}

	upcoming := make([]models.Appointment, 0, len(appointments))
	history := make([]models.Appointment, 0)
	for _, appointment := range appointments {
		if appointment.Status == models.AppointmentUpcoming {
			upcoming = append(upcoming, appointment)
		} else {
			history = append(history, appointment)
		}
	}
	return upcoming, history, nil
}
