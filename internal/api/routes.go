package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	api.Get("/dashboard", handler.GetDashboard)
	api.Get("/toast", handler.GetToast)
	api.Delete("/toast", handler.DismissToast)

	medications := api.Group("/medications")
	medications.Get("", handler.GetMedications)
	medications.Post("", handler.CreateMedication)
	medications.Get("/schedule", handler.GetTodaySchedule)
	medications.Get("/history", handler.GetDoseHistory)
	medications.Post("/:id/take", handler.TakeDose)
	medications.Post("/:id/skip", handler.SkipDose)
	medications.Post("/:id/miss", handler.MarkDoseMissed)

	reminders := api.Group("/reminders")
	reminders.Get("", handler.GetReminders)
	reminders.Post("/:id/toggle", handler.ToggleReminder)

	appointments := api.Group("/appointments")
	appointments.Get("", handler.GetAppointments)
	appointments.Get("/doctors", handler.GetDoctors)
	appointments.Post("", handler.BookAppointment)
	appointments.Post("/:id/cancel", handler.CancelAppointment)
	appointments.Put("/:id", handler.RescheduleAppointment)

	challenges := api.Group("/challenges")
	challenges.Get("", handler.GetChallenges)
	challenges.Get("/badges", handler.GetBadges)
	challenges.Get("/leaderboard", handler.GetLeaderboard)
	challenges.Post("/:id/join", handler.JoinChallenge)
	challenges.Post("/:id/leave", handler.LeaveChallenge)
	challenges.Post("/:id/progress", handler.AddChallengeProgress)

	notifications := api.Group("/notifications")
	notifications.Get("", handler.GetNotifications)
	notifications.Post("/read-all", handler.MarkAllNotificationsRead)
	notifications.Post("/:id/toggle-read", handler.ToggleNotificationRead)
	notifications.Get("/settings", handler.GetNotificationSettings)
	notifications.Post("/settings/:type/toggle", handler.ToggleNotificationSetting)

	careTeam := api.Group("/care-team")
	careTeam.Get("", handler.GetCareTeam)
	careTeam.Post("/:id/read", handler.MarkCareTeamMessagesRead)

	export := api.Group("/export")
	export.Get("/json", handler.ExportJSON)
}
