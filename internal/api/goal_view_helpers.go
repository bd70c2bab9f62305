package api

import "github.com/arasywa/ecoisland/internal/models"

// GoalView is one goal rendered for the client. Numeric goals carry a value
// and unit; checklist goals are title-only.
type GoalView struct {
	Type  string   `json:"type"`
	Field string   `json:"field"`
	Title string   `json:"title"`
	Value *float64 `json:"value,omitempty"`
	Unit  string   `json:"unit,omitempty"`
}

// buildCombinedGoals flattens one goal record into display order: numeric
// targets first, then "stop" goals, then "start" goals.
func buildCombinedGoals(goals models.DailyGoalsLog) []GoalView {
	views := make([]GoalView, 0, 12)

	numeric := []struct {
		field string
		title string
		unit  string
		value *float64
	}{
		{"carTravelKmGoal", "Try limit your vehicle usage to", "km", goals.CarTravelKmGoal},
		{"showerTimeMinutesGoal", "Try limit your showers time to", "minutes", goals.ShowerTimeMinutesGoal},
		{"electronicTimeHoursGoal", "Try reduce your screen time to", "hours", goals.ElectronicTimeHoursGoal},
	}
	for _, goal := range numeric {
		if goal.value != nil {
			views = append(views, GoalView{
				Type:  "numeric",
				Field: goal.field,
				Title: goal.title,
				Value: goal.value,
				Unit:  goal.unit,
			})
		}
	}

	// A false flag means "stop doing this tomorrow".
	negative := []struct {
		field string
		title string
		value *bool
	}{
		{"packagedFoodGoal", "Eat unpackaged or fresh food", goals.PackagedFoodGoal},
		{"onlineShoppingGoal", "Limit online shopping habits", goals.OnlineShoppingGoal},
		{"wasteFoodGoal", "Avoid food waste", goals.WasteFoodGoal},
		{"airConditioningHeatingGoal", "Reduce air conditioning or heating usage", goals.AirConditioningHeatingGoal},
	}
	for _, goal := range negative {
		if goal.value != nil && !*goal.value {
			views = append(views, GoalView{Type: "negative", Field: goal.field, Title: goal.title})
		}
	}

	// A true flag means "start doing this tomorrow".
	positive := []struct {
		field string
		title string
		value *bool
	}{
		{"noDrivingGoal", "Use environmentally friendly transportation", goals.NoDrivingGoal},
		{"plantMealThanMeatGoal", "Eat more plant based meals", goals.PlantMealThanMeatGoal},
		{"useTumblerGoal", "Bring your own tumbler or reusable bottle", goals.UseTumblerGoal},
		{"saveEnergyGoal", "Practice energy saving at home", goals.SaveEnergyGoal},
		{"separateRecycleWasteGoal", "Separate waste for recycling", goals.SeparateRecycleWasteGoal},
	}
	for _, goal := range positive {
		if goal.value != nil && *goal.value {
			views = append(views, GoalView{Type: "positive", Field: goal.field, Title: goal.title})
		}
	}

	return views
}
