package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	auth := app.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)

	app.Get("/me", handler.AuthRequired, handler.GetProfile)
	app.Patch("/me/profile-picture", handler.AuthRequired, handler.UpdateProfilePicture)
	app.Patch("/me/current-island-theme", handler.AuthRequired, handler.UpdateIslandTheme)

	app.Get("/leaderboard", handler.AuthRequired, handler.Leaderboard)

	app.Post("/submit-checklist", handler.AuthRequired, handler.SubmitChecklist)
	app.Get("/check-today-submission", handler.AuthRequired, handler.CheckTodaySubmission)
	app.Get("/check-goals-achieved", handler.AuthRequired, handler.CheckGoalsAchieved)
	app.Get("/latest-goals", handler.AuthRequired, handler.LatestGoals)
	app.Get("/daily-carbon-logs", handler.AuthRequired, handler.ListDailyCarbonLogs)
}
