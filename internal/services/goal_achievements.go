package services

import "github.com/arasywa/ecoisland/internal/models"

// PointsPerAchievedGoal is the reward for each goal met, numeric or boolean.
const PointsPerAchievedGoal = 5

// NumericGoalResult reports one numeric goal: the persisted target and
// whether today's actual met it. Both are nil when no goal was set.
type NumericGoalResult struct {
	Target   *float64 `json:"target"`
	Achieved *bool    `json:"achieved"`
}

// GoalAchievements is the outcome of checking yesterday's goals against
// today's log. Boolean results are keyed by activity name, numeric results by
// goal field name; nil entries mean the behavior had no goal.
type GoalAchievements struct {
	BooleanResults map[string]*bool
	NumericResults map[string]NumericGoalResult
	Points         int
}

// EvaluateGoalAchievements compares one goal record against one carbon log.
// A numeric goal is achieved when the actual stayed at or under the target; a
// boolean goal when the logged flag equals the goal flag.
func EvaluateGoalAchievements(goals models.DailyGoalsLog, todayLog models.DailyCarbonLog) GoalAchievements {
	result := GoalAchievements{
		BooleanResults: make(map[string]*bool),
		NumericResults: make(map[string]NumericGoalResult),
	}

	numeric := []struct {
		field  string
		target *float64
		actual float64
	}{
		{"carTravelKmGoal", goals.CarTravelKmGoal, todayLog.CarTravelKm},
		{"showerTimeMinutesGoal", goals.ShowerTimeMinutesGoal, todayLog.ShowerTimeMinutes},
		{"electronicTimeHoursGoal", goals.ElectronicTimeHoursGoal, todayLog.ElectronicTimeHours},
	}
	for _, goal := range numeric {
		if goal.target == nil {
			result.NumericResults[goal.field] = NumericGoalResult{}
			continue
		}
		achieved := goal.actual <= *goal.target
		result.NumericResults[goal.field] = NumericGoalResult{Target: goal.target, Achieved: &achieved}
		if achieved {
			result.Points += PointsPerAchievedGoal
		}
	}

	boolean := []struct {
		activity string
		target   *bool
		actual   bool
	}{
		{ActivityPackagedFood, goals.PackagedFoodGoal, todayLog.PackagedFood},
		{ActivityOnlineShopping, goals.OnlineShoppingGoal, todayLog.OnlineShopping},
		{ActivityWasteFood, goals.WasteFoodGoal, todayLog.WasteFood},
		{ActivityAirConditioningHeating, goals.AirConditioningHeatingGoal, todayLog.AirConditioningHeating},
		{ActivityNoDriving, goals.NoDrivingGoal, todayLog.NoDriving},
		{ActivityPlantMealThanMeat, goals.PlantMealThanMeatGoal, todayLog.PlantMealThanMeat},
		{ActivityUseTumbler, goals.UseTumblerGoal, todayLog.UseTumbler},
		{ActivitySaveEnergy, goals.SaveEnergyGoal, todayLog.SaveEnergy},
		{ActivitySeparateRecycleWaste, goals.SeparateRecycleWasteGoal, todayLog.SeparateRecycleWaste},
	}
	for _, goal := range boolean {
		if goal.target == nil {
			result.BooleanResults[goal.activity] = nil
			continue
		}
		achieved := goal.actual == *goal.target
		result.BooleanResults[goal.activity] = &achieved
		if achieved {
			result.Points += PointsPerAchievedGoal
		}
	}

	return result
}
