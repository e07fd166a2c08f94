package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/armedhealth/armed/internal/models"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrMedicationNotFound    = errors.New("medication not found")
	ErrReminderNotFound      = errors.New("reminder not found")
)

const defaultFrequency = "Once daily"

// Rendered in place of a name when a log references a medication that no
// longer resolves; orphaned references must never crash a view.
const UnknownMedicationLabel = "Unknown medication"

type MedicationRepository interface {
	List() ([]models.Medication, error)
	ListActive() ([]models.Medication, error)
	Find(medicationID uint) (models.Medication, bool, error)
	Create(medication *models.Medication) error
}

type MedicationLogRepository interface {
	List() ([]models.MedicationLog, error)
	ListByDayRange(dayStart time.Time, dayEnd time.Time) ([]models.MedicationLog, error)
	Create(logEntry *models.MedicationLog) error
}

type MedicationReminderRepository interface {
	List() ([]models.MedicationReminder, error)
	Find(reminderID uint) (models.MedicationReminder, bool, error)
	Save(reminder *models.MedicationReminder) error
}

type MedicationService struct {
	medications MedicationRepository
	logs        MedicationLogRepository
	reminders   MedicationReminderRepository
	location    *time.Location
}

type NewMedicationInput struct {
	Name         string
	Dosage       string
	Frequency    string
	Times        string
	Quantity     string
	Instructions string
}

type DoseHistoryEntry struct {
	Log            models.MedicationLog
	MedicationName string
}

type ReminderView struct {
	Reminder       models.MedicationReminder
	MedicationName string
}

func NewMedicationService(medications MedicationRepository, logs MedicationLogRepository, reminders MedicationReminderRepository, location *time.Location) *MedicationService {
	if location == nil {
		location = time.UTC
	}
	return &MedicationService{
		medications: medications,
		logs:        logs,
		reminders:   reminders,
		location:    location,
	}
}

func (service *MedicationService) ListMedications() ([]models.Medication, error) {
	return service.medications.List()
}

func (service *MedicationService) CreateMedication(input NewMedicationInput) (models.Medication, error) {
	name := strings.TrimSpace(input.Name)
	dosage := strings.TrimSpace(input.Dosage)
	times := strings.TrimSpace(input.Times)
	if name == "" || dosage == "" || times == "" {
		return models.Medication{}, ErrMissingRequiredFields
	}

	frequency := strings.TrimSpace(input.Frequency)
	if frequency == "" {
		frequency = defaultFrequency
	}

	medication := models.Medication{
		Name:         name,
		Dosage:       dosage,
		Frequency:    frequency,
		Times:        times,
		Quantity:     strings.TrimSpace(input.Quantity),
		Instructions: strings.TrimSpace(input.Instructions),
		StartDate:    DateAtLocation(time.Now(), service.location),
		IsActive:     true,
	}
	if err := service.medications.Create(&medication); err != nil {
		return models.Medication{}, fmt.Errorf("create medication: %w", err)
	}
	return medication, nil
}

func (service *MedicationService) TakeDose(medicationID uint, timeSlot string) (models.MedicationLog, error) {
	return service.logDose(medicationID, timeSlot, models.DoseTaken, "Taken on time")
}

func (service *MedicationService) SkipDose(medicationID uint, timeSlot string) (models.MedicationLog, error) {
	return service.logDose(medicationID, timeSlot, models.DoseSkipped, "Skipped by user")
}

func (service *MedicationService) MarkDoseMissed(medicationID uint, timeSlot string) (models.MedicationLog, error) {
	return service.logDose(medicationID, timeSlot, models.DoseMissed, "Missed dose")
}

// logDose appends; it never replaces an earlier log for the same slot.
// The schedule view resolves the latest matching entry.
func (service *MedicationService) logDose(medicationID uint, timeSlot string, status string, notes string) (models.MedicationLog, error) {
	timeSlot = strings.TrimSpace(timeSlot)
	if timeSlot == "" {
		return models.MedicationLog{}, ErrMissingRequiredFields
	}

	_, found, err := service.medications.Find(medicationID)
	if err != nil {
		return models.MedicationLog{}, fmt.Errorf("find medication: %w", err)
	}
	if !found {
		return models.MedicationLog{}, ErrMedicationNotFound
	}

	logEntry := models.MedicationLog{
		MedicationID: medicationID,
		Date:         DateAtLocation(time.Now(), service.location),
		TimeSlot:     timeSlot,
		Status:       status,
		Notes:        notes,
	}
	if err := service.logs.Create(&logEntry); err != nil {
		return models.MedicationLog{}, fmt.Errorf("append dose log: %w", err)
	}
	return logEntry, nil
}

// History returns dose logs newest-appended first, with medication names
// resolved and orphaned references labelled rather than dropped.
func (service *MedicationService) History() ([]DoseHistoryEntry, error) {
	logs, err := service.logs.List()
	if err != nil {
		return nil, err
	}
	medications, err := service.medications.List()
	if err != nil {
		return nil, err
	}

	nameByID := make(map[uint]string, len(medications))
	for _, medication := range medications {
		nameByID[medication.ID] = medication.Name
	}

	entries := make([]DoseHistoryEntry, 0, len(logs))
	for index := len(logs) - 1; index >= 0; index-- {
		name, ok := nameByID[logs[index].MedicationID]
		if !ok {
			name = UnknownMedicationLabel
		}
		entries = append(entries, DoseHistoryEntry{Log: logs[index], MedicationName: name})
	}
	return entries, nil
}

func (service *MedicationService) Reminders() ([]ReminderView, error) {
	reminders, err := service.reminders.List()
	if err != nil {
		return nil, err
	}
	medications, err := service.medications.List()
	if err != nil {
		return nil, err
	}

	nameByID := make(map[uint]string, len(medications))
	for _, medication := range medications {
		nameByID[medication.ID] = medication.Name
	}

	views := make([]ReminderView, 0, len(reminders))
	for _, reminder := range reminders {
		name, ok := nameByID[reminder.MedicationID]
		if !ok {
			name = UnknownMedicationLabel
		}
		views = append(views, ReminderView{Reminder: reminder, MedicationName: name})
	}
	return views, nil
}

func (service *MedicationService) ToggleReminder(reminderID uint) (models.MedicationReminder, error) {
	reminder, found, err := service.reminders.Find(reminderID)
	if err != nil {
		return models.MedicationReminder{}, fmt.Errorf("find reminder: %w", err)
	}
	if !found {
		return models.MedicationReminder{}, ErrReminderNotFound
	}

	reminder.IsActive = !reminder.IsActive
	if err := service.reminders.Save(&reminder); err != nil {
		return models.MedicationReminder{}, fmt.Errorf("save reminder: %w", err)
	}
	return reminder, nil
}
