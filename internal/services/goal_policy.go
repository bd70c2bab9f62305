package services

import (
	"math"
	"time"

	"github.com/arasywa/ecoisland/internal/models"
)

// numericGoalTolerance is the absolute difference below which re-asking a
// continuous behavior is not worth a persisted goal.
const numericGoalTolerance = 0.1

func shouldSaveNumericGoal(actual, suggested float64) bool {
	return math.Abs(actual-suggested) > numericGoalTolerance
}

// DecideGoals turns one evaluated submission into tomorrow's goal record, or
// nil when no behavior is materially off. Numeric goals are saved when the
// suggestion differs from the actual by more than the tolerance. Negative
// flags set in the (already normalized) checklist yield a false goal ("stop
// this"); positive flags not set yield a true goal ("start this").
func DecideGoals(checklist Checklist, actuals SubmissionActuals, analysis FuzzyAnalysis, improvements []string, logDate time.Time) *models.DailyGoalsLog {
	goals := models.DailyGoalsLog{LogDate: logDate}
	saveAny := false
	saveNumeric := false

	numeric := []struct {
		actual    float64
		suggested float64
		target    **float64
	}{
		{actuals.CarTravelKm, analysis.Suggestions.CarTravelKm, &goals.CarTravelKmGoal},
		{actuals.ShowerTimeMinutes, analysis.Suggestions.ShowerTimeMinutes, &goals.ShowerTimeMinutesGoal},
		{actuals.ElectronicTimeHours, analysis.Suggestions.ElectronicTimeHours, &goals.ElectronicTimeHoursGoal},
	}
	for _, behavior := range numeric {
		if shouldSaveNumericGoal(behavior.actual, behavior.suggested) {
			value := behavior.suggested
			*behavior.target = &value
			saveAny = true
			saveNumeric = true
		}
	}

	stopGoals := []struct {
		activity string
		target   **bool
	}{
		{ActivityPackagedFood, &goals.PackagedFoodGoal},
		{ActivityOnlineShopping, &goals.OnlineShoppingGoal},
		{ActivityWasteFood, &goals.WasteFoodGoal},
		{ActivityAirConditioningHeating, &goals.AirConditioningHeatingGoal},
	}
	for _, goal := range stopGoals {
		if checklist[goal.activity] == 1 {
			stop := false
			*goal.target = &stop
			saveAny = true
		}
	}

	startGoals := []struct {
		activity string
		target   **bool
	}{
		{ActivityNoDriving, &goals.NoDrivingGoal},
		{ActivityPlantMealThanMeat, &goals.PlantMealThanMeatGoal},
		{ActivityUseTumbler, &goals.UseTumblerGoal},
		{ActivitySaveEnergy, &goals.SaveEnergyGoal},
		{ActivitySeparateRecycleWaste, &goals.SeparateRecycleWasteGoal},
	}
	for _, goal := range startGoals {
		if checklist[goal.activity] != 1 {
			start := true
			*goal.target = &start
			saveAny = true
		}
	}

	if !saveAny {
		return nil
	}

	if saveNumeric {
		suggestions := analysis.Suggestions
		goals.Suggestions = &suggestions
	}
	if len(improvements) > 0 {
		goals.ImprovementSuggestions = improvements
	}
	return &goals
}
