package api

import (
	"github.com/arasywa/ecoisland/internal/services"
	"github.com/gofiber/fiber/v2"
)

// CheckGoalsAchieved compares yesterday's goal record against today's carbon
// log and awards points for each goal met, at most once per day.
func (handler *Handler) CheckGoalsAchieved(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	dayStart, dayEnd := handler.today()
	yesterdayStart := dayStart.AddDate(0, 0, -1)

	todayLog, found, err := handler.repositories.CarbonLogs.FindByUserAndDay(user.ID, dayStart, dayEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load carbon log")
	}
	if !found {
		return apiMessage(c, fiber.StatusNotFound, "No carbon log found for today")
	}

	goals, found, err := handler.repositories.GoalLogs.FindByUserAndDay(user.ID, yesterdayStart, dayStart)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load goals")
	}
	if !found {
		return apiMessage(c, fiber.StatusNotFound, "No goals found for yesterday")
	}

	achievements := services.EvaluateGoalAchievements(goals, todayLog)

	alreadyAwarded := user.LastPointsAddedDate != nil && services.SameCalendarDay(*user.LastPointsAddedDate, dayStart)
	pointsEarned := 0
	totalPoints := user.Points
	if !alreadyAwarded && achievements.Points > 0 {
		if err := handler.repositories.Users.AwardPoints(user.ID, achievements.Points, dayStart); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to award points")
		}
		pointsEarned = achievements.Points
		totalPoints += achievements.Points
	}

	return c.JSON(fiber.Map{
		"date":           dayStart.Format("2006-01-02"),
		"goals_achieved": achievements.BooleanResults,
		"numeric_goals":  achievements.NumericResults,
		"points_earned":  pointsEarned,
		"total_points":   totalPoints,
	})
}

// LatestGoals returns the most recent goal record rendered as a flat list the
// client can show directly.
func (handler *Handler) LatestGoals(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	goals, found, err := handler.repositories.GoalLogs.LatestByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load goals")
	}
	if !found {
		return apiMessage(c, fiber.StatusNotFound, "No goal log found")
	}

	return c.JSON(fiber.Map{
		"goals":   buildCombinedGoals(goals),
		"logDate": goals.LogDate.Format("2006-01-02"),
	})
}
