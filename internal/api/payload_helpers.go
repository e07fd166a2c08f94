package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/armedhealth/armed/internal/models"
	"github.com/armedhealth/armed/internal/services"
)

const dateLayout = "2006-01-02"

func medicationPayload(medication models.Medication) fiber.Map {
	payload := fiber.Map{
		"id":           medication.ID,
		"name":         medication.Name,
		"dosage":       medication.Dosage,
		"frequency":    medication.Frequency,
		"times":        medication.Times,
		"quantity":     medication.Quantity,
		"instructions": medication.Instructions,
		"start_date":   medication.StartDate.Format(dateLayout),
		"is_active":    medication.IsActive,
	}
	if medication.EndDate != nil {
		payload["end_date"] = medication.EndDate.Format(dateLayout)
	}
	return payload
}

func medicationsPayload(medications []models.Medication) []fiber.Map {
	payloads := make([]fiber.Map, 0, len(medications))
	for _, medication := range medications {
		payloads = append(payloads, medicationPayload(medication))
	}
	return payloads
}

func doseLogPayload(logEntry models.MedicationLog, medicationName string) fiber.Map {
	return fiber.Map{
		"id":              logEntry.ID,
		"medication_id":   logEntry.MedicationID,
		"medication_name": medicationName,
		"date":            logEntry.Date.Format(dateLayout),
		"time_slot":       logEntry.TimeSlot,
		"status":          logEntry.Status,
		"notes":           logEntry.Notes,
	}
}

func scheduleRowPayload(row services.ScheduleRow) fiber.Map {
	return fiber.Map{
		"medication_id": row.MedicationID,
		"name":          row.Name,
		"dosage":        row.Dosage,
		"quantity":      row.Quantity,
		"instructions":  row.Instructions,
		"time_slot":     row.TimeSlot,
		"status":        row.Status,
	}
}

func scheduleRowsPayload(rows []services.ScheduleRow) []fiber.Map {
	payloads := make([]fiber.Map, 0, len(rows))
	for _, row := range rows {
		payloads = append(payloads, scheduleRowPayload(row))
	}
	return payloads
}

func scheduleSummaryPayload(summary services.ScheduleSummary) fiber.Map {
	return fiber.Map{
		"total":   summary.Total,
		"taken":   summary.Taken,
		"missed":  summary.Missed,
		"skipped": summary.Skipped,
		"pending": summary.Pending,
	}
}

func reminderPayload(view services.ReminderView) fiber.Map {
	return fiber.Map{
		"id":              view.Reminder.ID,
		"medication_id":   view.Reminder.MedicationID,
		"medication_name": view.MedicationName,
		"time_slot":       view.Reminder.TimeSlot,
		"days":            view.Reminder.Days,
		"is_active":       view.Reminder.IsActive,
	}
}

func appointmentPayload(appointment models.Appointment) fiber.Map {
	return fiber.Map{
		"id":         appointment.ID,
		"doctor":     appointment.Doctor,
		"date":       appointment.Date.Format(dateLayout),
		"time_slot":  appointment.TimeSlot,
		"telehealth": appointment.Telehealth,
		"status":     appointment.Status,
	}
}

func appointmentsPayload(appointments []models.Appointment) []fiber.Map {
	payloads := make([]fiber.Map, 0, len(appointments))
	for _, appointment := range appointments {
		payloads = append(payloads, appointmentPayload(appointment))
	}
	return payloads
}

func challengePayload(challenge models.Challenge) fiber.Map {
	return fiber.Map{
		"id":           challenge.ID,
		"title":        challenge.Title,
		"description":  challenge.Description,
		"type":         challenge.Type,
		"target":       challenge.Target,
		"current":      challenge.Current,
		"unit":         challenge.Unit,
		"icon":         challenge.Icon,
		"color":        challenge.Color,
		"points":       challenge.Points,
		"is_active":    challenge.IsActive,
		"participants": challenge.Participants,
		"difficulty":   challenge.Difficulty,
		"completed":    services.ChallengeCompleted(challenge),
		"percent":      services.ProgressPercent(challenge),
	}
}

func challengesPayload(challenges []models.Challenge) []fiber.Map {
	payloads := make([]fiber.Map, 0, len(challenges))
	for _, challenge := range challenges {
		payloads = append(payloads, challengePayload(challenge))
	}
	return payloads
}

func badgePayload(badge models.Badge) fiber.Map {
	payload := fiber.Map{
		"id":          badge.ID,
		"name":        badge.Name,
		"description": badge.Description,
		"icon":        badge.Icon,
		"color":       badge.Color,
		"is_earned":   badge.IsEarned,
		"points":      badge.Points,
	}
	if badge.EarnedDate != nil {
		payload["earned_date"] = badge.EarnedDate.Format(dateLayout)
	}
	return payload
}

func leaderboardPayload(entries []models.LeaderboardEntry) []fiber.Map {
	payloads := make([]fiber.Map, 0, len(entries))
	for _, entry := range entries {
		payloads = append(payloads, fiber.Map{
			"rank":                 entry.Rank,
			"name":                 entry.Name,
			"avatar":               entry.Avatar,
			"points":               entry.Points,
			"challenges_completed": entry.ChallengesCompleted,
		})
	}
	return payloads
}

func notificationPayload(notification models.Notification) fiber.Map {
	return fiber.Map{
		"id":          notification.ID,
		"type":        notification.Type,
		"title":       notification.Title,
		"description": notification.Description,
		"read":        notification.Read,
		"time":        notification.TimeLabel,
	}
}

func notificationsPayload(notifications []models.Notification) []fiber.Map {
	payloads := make([]fiber.Map, 0, len(notifications))
	for _, notification := range notifications {
		payloads = append(payloads, notificationPayload(notification))
	}
	return payloads
}

func settingPayload(setting models.NotificationSetting) fiber.Map {
	return fiber.Map{
		"type":    setting.Type,
		"enabled": setting.Enabled,
	}
}

func careTeamMemberPayload(member models.CareTeamMember) fiber.Map {
	messages := member.Messages
	if messages == nil {
		messages = []string{}
	}
	return fiber.Map{
		"id":       member.ID,
		"name":     member.Name,
		"role":     member.Role,
		"image":    member.Image,
		"badge":    member.Badge,
		"unread":   member.Unread,
		"messages": messages,
	}
}

func careTeamPayload(members []models.CareTeamMember) []fiber.Map {
	payloads := make([]fiber.Map, 0, len(members))
	for _, member := range members {
		payloads = append(payloads, careTeamMemberPayload(member))
	}
	return payloads
}

func glucosePayload(points []models.GlucosePoint) []fiber.Map {
	payloads := make([]fiber.Map, 0, len(points))
	for _, point := range points {
		payloads = append(payloads, fiber.Map{
			"hour":      point.Hour,
			"today":     point.Today,
			"yesterday": point.Yesterday,
		})
	}
	return payloads
}
