package models

import "time"

// Seed fixtures loaded into an empty store at startup. The store is
// in-memory, so every process start returns to exactly this state.

func seedDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func SeedMedications() []Medication {
	return []Medication{
		{
			Name:         "Metformin",
			Dosage:       "500mg",
			Frequency:    "Twice daily",
			Times:        "08:00, 20:00",
			Quantity:     "1 pill",
			Instructions: "Take with food",
			StartDate:    seedDay(2024, time.January, 15),
			IsActive:     true,
		},
		{
			Name:         "Omega 3",
			Dosage:       "1000mg",
			Frequency:    "Once daily",
			Times:        "09:00",
			Quantity:     "3 pills",
			Instructions: "Take with breakfast",
			StartDate:    seedDay(2024, time.January, 10),
			IsActive:     true,
		},
		{
			Name:         "Levothyroxine",
			Dosage:       "50mcg",
			Frequency:    "Once daily",
			Times:        "07:00",
			Quantity:     "2 pills",
			Instructions: "Take on empty stomach",
			StartDate:    seedDay(2024, time.January, 1),
			IsActive:     true,
		},
		{
			Name:      "Aspirin",
			Dosage:    "100mg",
			Frequency: "Once daily",
			Times:     "09:00",
			Quantity:  "1 pill",
			StartDate: seedDay(2024, time.January, 5),
			IsActive:  true,
		},
		{
			Name:      "Atorvastatin",
			Dosage:    "20mg",
			Frequency: "Once daily",
			Times:     "21:00",
			Quantity:  "1 pill",
			StartDate: seedDay(2024, time.January, 8),
			IsActive:  true,
		},
	}
}

func SeedMedicationLogs() []MedicationLog {
	return []MedicationLog{
		{
			MedicationID: 1,
			Date:         seedDay(2024, time.January, 20),
			TimeSlot:     "08:00",
			Status:       DoseTaken,
			Notes:        "Taken with breakfast",
		},
		{
			MedicationID: 1,
			Date:         seedDay(2024, time.January, 20),
			TimeSlot:     "20:00",
			Status:       DoseMissed,
		},
		{
			MedicationID: 2,
			Date:         seedDay(2024, time.January, 20),
			TimeSlot:     "09:00",
			Status:       DoseTaken,
		},
	}
}

func SeedMedicationReminders() []MedicationReminder {
	everyDay := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	return []MedicationReminder{
		{MedicationID: 1, TimeSlot: "08:00", Days: everyDay, IsActive: true},
		{MedicationID: 1, TimeSlot: "20:00", Days: everyDay, IsActive: true},
	}
}

func SeedAppointments() []Appointment {
	return []Appointment{
		{Doctor: "Dr. Smith", Date: seedDay(2024, time.July, 25), TimeSlot: "10:00", Telehealth: true, Status: AppointmentUpcoming},
		{Doctor: "Dr. Lee", Date: seedDay(2024, time.July, 20), TimeSlot: "15:30", Telehealth: false, Status: AppointmentUpcoming},
		{Doctor: "Dr. Patel", Date: seedDay(2024, time.June, 10), TimeSlot: "09:00", Telehealth: true, Status: AppointmentCompleted},
		{Doctor: "Dr. Smith", Date: seedDay(2024, time.May, 15), TimeSlot: "11:00", Telehealth: false, Status: AppointmentCancelled},
	}
}

// Doctors selectable on the booking form.
func SeedDoctors() []string {
	return []string{"Dr. Smith", "Dr. Lee", "Dr. Patel", "Dr. Gomez"}
}

func SeedChallenges() []Challenge {
	return []Challenge{
		{
			Title:        "Daily Steps Goal",
			Description:  "Walk 5,000 steps today to stay active",
			Type:         ChallengeDaily,
			Target:       5000,
			Current:      3200,
			Unit:         "steps",
			Icon:         "activity",
			Color:        "bg-blue-500",
			Points:       50,
			IsActive:     true,
			StartDate:    seedDay(2024, time.January, 20),
			EndDate:      seedDay(2024, time.January, 20),
			Participants: 1247,
			Difficulty:   DifficultyEasy,
		},
		{
			Title:        "Weekly Workout Streak",
			Description:  "Complete 5 workouts this week",
			Type:         ChallengeWeekly,
			Target:       5,
			Current:      3,
			Unit:         "workouts",
			Icon:         "zap",
			Color:        "bg-green-500",
			Points:       200,
			IsActive:     true,
			StartDate:    seedDay(2024, time.January, 15),
			EndDate:      seedDay(2024, time.January, 21),
			Participants: 892,
			Difficulty:   DifficultyMedium,
		},
		{
			Title:        "Hydration Master",
			Description:  "Drink 8 glasses of water daily",
			Type:         ChallengeDaily,
			Target:       8,
			Current:      6,
			Unit:         "glasses",
			Icon:         "heart",
			Color:        "bg-cyan-500",
			Points:       30,
			IsActive:     true,
			StartDate:    seedDay(2024, time.January, 20),
			EndDate:      seedDay(2024, time.January, 20),
			Participants: 2156,
			Difficulty:   DifficultyEasy,
		},
		{
			Title:        "Sleep Well Challenge",
			Description:  "Get 8 hours of sleep for 7 days",
			Type:         ChallengeWeekly,
			Target:       7,
			Current:      4,
			Unit:         "days",
			Icon:         "star",
			Color:        "bg-purple-500",
			Points:       150,
			IsActive:     true,
			StartDate:    seedDay(2024, time.January, 15),
			EndDate:      seedDay(2024, time.January, 21),
			Participants: 567,
			Difficulty:   DifficultyHard,
		},
	}
}

func SeedBadges() []Badge {
	firstSteps := seedDay(2024, time.January, 15)
	weekWarrior := seedDay(2024, time.January, 18)
	return []Badge{
		{Name: "First Steps", Description: "Complete your first daily challenge", Icon: "trophy", Color: "text-yellow-500", IsEarned: true, EarnedDate: &firstSteps, Points: 100},
		{Name: "Week Warrior", Description: "Complete 5 weekly challenges", Icon: "award", Color: "text-blue-500", IsEarned: true, EarnedDate: &weekWarrior, Points: 250},
		{Name: "Hydration Hero", Description: "Drink 8 glasses of water for 7 consecutive days", Icon: "heart", Color: "text-cyan-500", IsEarned: false, Points: 300},
		{Name: "Fitness Master", Description: "Complete 20 challenges total", Icon: "target", Color: "text-green-500", IsEarned: false, Points: 500},
	}
}

func SeedLeaderboard() []LeaderboardEntry {
	return []LeaderboardEntry{
		{Name: "Sarah Johnson", Avatar: "https://randomuser.me/api/portraits/women/44.jpg", Points: 2840, Rank: 1, ChallengesCompleted: 23},
		{Name: "Mike Chen", Avatar: "https://randomuser.me/api/portraits/men/32.jpg", Points: 2650, Rank: 2, ChallengesCompleted: 21},
		{Name: "Emma Davis", Avatar: "https://randomuser.me/api/portraits/women/68.jpg", Points: 2420, Rank: 3, ChallengesCompleted: 19},
		{Name: "Alex Thompson", Avatar: "https://randomuser.me/api/portraits/men/45.jpg", Points: 2180, Rank: 4, ChallengesCompleted: 17},
		{Name: "Lisa Wang", Avatar: "https://randomuser.me/api/portraits/women/50.jpg", Points: 1950, Rank: 5, ChallengesCompleted: 15},
	}
}

func SeedNotifications() []Notification {
	return []Notification{
		{Type: NotificationMedication, Title: "Take Metformin", Description: "It's time to take your 8am dose.", Read: false, TimeLabel: "08:00", Position: 1},
		{Type: NotificationAppointments, Title: "Upcoming Appointment", Description: "You have an appointment with Dr. Smith tomorrow at 10:00.", Read: false, TimeLabel: "Yesterday", Position: 2},
		{Type: NotificationChallenge, Title: "Daily Steps Challenge", Description: "You are 500 steps away from your daily goal!", Read: true, TimeLabel: "Today", Position: 3},
		{Type: NotificationSystem, Title: "Profile Updated", Description: "Your profile was updated successfully.", Read: true, TimeLabel: "2 days ago", Position: 4},
		{Type: NotificationMedication, Title: "Missed Dose", Description: "You missed your 8pm medication yesterday.", Read: false, TimeLabel: "Yesterday", Position: 5},
		{Type: NotificationAppointments, Title: "Appointment Cancelled", Description: "Your appointment with Dr. Lee was cancelled.", Read: true, TimeLabel: "3 days ago", Position: 6},
	}
}

func SeedNotificationSettings() []NotificationSetting {
	types := NotificationTypes()
	settings := make([]NotificationSetting, 0, len(types))
	for _, notificationType := range types {
		settings = append(settings, NotificationSetting{Type: notificationType, Enabled: true})
	}
	return settings
}

func SeedCareTeam() []CareTeamMember {
	return []CareTeamMember{
		{
			Name:   "Zain Curtis",
			Role:   "Endocrinologist",
			Image:  "https://randomuser.me/api/portraits/men/32.jpg",
			Badge:  2,
			Unread: true,
			Messages: []string{
				"Your next appointment is on Friday at 10am.",
				"Please remember to update your glucose log.",
			},
		},
		{Name: "Phillip Workman", Role: "Neurologist", Image: "https://randomuser.me/api/portraits/men/45.jpg"},
		{Name: "Cheyenne Herwitz", Role: "Cardiologist", Image: "https://randomuser.me/api/portraits/women/65.jpg"},
		{Name: "Ava Patel", Role: "General Physician", Image: "https://randomuser.me/api/portraits/women/68.jpg"},
		{Name: "Sophia Lee", Role: "Nutritionist", Image: "https://randomuser.me/api/portraits/women/50.jpg"},
	}
}

func SeedGlucosePoints() []GlucosePoint {
	return []GlucosePoint{
		{Hour: 8, Today: 60, Yesterday: 40},
		{Hour: 10, Today: 120, Yesterday: 100},
		{Hour: 12, Today: 70, Yesterday: 80},
		{Hour: 14, Today: 60, Yesterday: 80},
		{Hour: 16, Today: 110, Yesterday: 100},
		{Hour: 18, Today: 80, Yesterday: 70},
		{Hour: 20, Today: 60, Yesterday: 60},
	}
}
