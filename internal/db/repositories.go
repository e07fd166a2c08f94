package db

import "gorm.io/gorm"

type Repositories struct {
	Medications          *MedicationRepository
	MedicationLogs       *MedicationLogRepository
	MedicationReminders  *MedicationReminderRepository
	Appointments         *AppointmentRepository
	Challenges           *ChallengeRepository
	Badges               *BadgeRepository
	Leaderboard          *LeaderboardRepository
	Notifications        *NotificationRepository
	NotificationSettings *NotificationSettingRepository
	CareTeam             *CareTeamRepository
	Glucose              *GlucoseRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Medications:          NewMedicationRepository(database),
		MedicationLogs:       NewMedicationLogRepository(database),
		MedicationReminders:  NewMedicationReminderRepository(database),
		Appointments:         NewAppointmentRepository(database),
		Challenges:           NewChallengeRepository(database),
		Badges:               NewBadgeRepository(database),
		Leaderboard:          NewLeaderboardRepository(database),
		Notifications:        NewNotificationRepository(database),
		NotificationSettings: NewNotificationSettingRepository(database),
		CareTeam:             NewCareTeamRepository(database),
		Glucose:              NewGlucoseRepository(database),
	}
}
