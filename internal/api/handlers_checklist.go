package api

import (
	"encoding/json"
	"time"

	"github.com/arasywa/ecoisland/internal/models"
	"github.com/arasywa/ecoisland/internal/services"
	"github.com/gofiber/fiber/v2"
)

// historyWindowDays is the trailing window the baseline estimate is built
// from.
const historyWindowDays = 30

// SubmitChecklist scores one daily checklist, stores the carbon log and, when
// any behavior is off target, the derived goal record. The response carries
// the complete evaluation so the client never needs a follow-up fetch.
func (handler *Handler) SubmitChecklist(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	raw := map[string]any{}
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid JSON payload")
	}

	checklist := services.BuildChecklist(raw)
	actuals := services.SubmissionActuals{
		CarTravelKm:         services.CoerceNumber(raw[services.ActivityCarTravelKm]),
		ShowerTimeMinutes:   services.CoerceNumber(raw[services.ActivityShowerTimeMinutes]),
		ElectronicTimeHours: services.CoerceNumber(raw[services.ActivityElectronicTimeHours]),
	}

	dayStart, _ := handler.today()
	history, err := handler.repositories.CarbonLogs.ListSince(user.ID, dayStart.AddDate(0, 0, -historyWindowDays))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load carbon history")
	}

	result := services.EvaluateSubmission(checklist, raw, actuals, history, dayStart)

	entry := buildDailyCarbonLog(user.ID, dayStart, checklist, actuals, raw, result)
	if err := handler.repositories.CarbonLogs.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store carbon log")
	}

	numericGoalsSaved := false
	if result.ShouldPersistGoals() {
		result.Goals.UserID = user.ID
		numericGoalsSaved = result.Goals.Suggestions != nil
		if err := handler.repositories.GoalLogs.Create(result.Goals); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to store goals")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"totalcarbon":             services.RoundEmission(result.TotalEmission),
		"carbonLevel":             result.Level,
		"emission_category":       result.Category,
		"fuzzy_analysis":          result.Fuzzy,
		"improvement_suggestions": result.ImprovementSuggestions,
		"historical_data_points":  len(history),
		"goals_saved": fiber.Map{
			"numeric_goals":     numericGoalsSaved,
			"improvement_goals": len(result.ImprovementSuggestions) > 0,
		},
	})
}

// buildDailyCarbonLog maps one evaluated submission onto its persisted row.
// The boolean columns take the normalized checklist values, not the raw
// payload flags.
func buildDailyCarbonLog(userID uint, logDate time.Time, checklist services.Checklist, actuals services.SubmissionActuals, raw map[string]any, result services.SubmissionResult) models.DailyCarbonLog {
	return models.DailyCarbonLog{
		UserID:                 userID,
		TotalCarbon:            services.RoundEmission(result.TotalEmission),
		CarbonLevel:            result.Level,
		IslandPath:             result.Level - 1,
		CarbonSaved:            int(services.CoerceNumber(raw["carbonSaved"])),
		CarTravelKm:            actuals.CarTravelKm,
		ShowerTimeMinutes:      actuals.ShowerTimeMinutes,
		ElectronicTimeHours:    actuals.ElectronicTimeHours,
		PackagedFood:           checklist[services.ActivityPackagedFood] == 1,
		OnlineShopping:         checklist[services.ActivityOnlineShopping] == 1,
		WasteFood:              checklist[services.ActivityWasteFood] == 1,
		AirConditioningHeating: checklist[services.ActivityAirConditioningHeating] == 1,
		NoDriving:              checklist[services.ActivityNoDriving] == 1,
		PlantMealThanMeat:      checklist[services.ActivityPlantMealThanMeat] == 1,
		UseTumbler:             checklist[services.ActivityUseTumbler] == 1,
		SaveEnergy:             checklist[services.ActivitySaveEnergy] == 1,
		SeparateRecycleWaste:   checklist[services.ActivitySeparateRecycleWaste] == 1,
		LogDate:                logDate,
	}
}

// CheckTodaySubmission reports whether the user already submitted a checklist
// for the current day.
func (handler *Handler) CheckTodaySubmission(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	dayStart, dayEnd := handler.today()
	_, found, err := handler.repositories.CarbonLogs.FindByUserAndDay(user.ID, dayStart, dayEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check submission")
	}

	message := "No submission found for today"
	if found {
		message = "User has already submitted today"
	}
	return c.JSON(fiber.Map{
		"user_id":       user.ID,
		"date_checked":  dayStart.Format("2006-01-02"),
		"has_submitted": found,
		"message":       message,
	})
}
