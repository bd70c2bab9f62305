package models

import "time"

// BehaviorValues carries one value per continuous behavior. It is reused for
// suggestions, membership degrees, minimum limits and personal baselines.
type BehaviorValues struct {
	CarTravelKm         float64 `json:"carTravelKm"`
	ShowerTimeMinutes   float64 `json:"showerTimeMinutes"`
	ElectronicTimeHours float64 `json:"electronicTimeHours"`
}

// DailyGoalsLog holds tomorrow's targets derived from one submission. Nil
// fields mean "no goal for this behavior", which is distinct from zero: a
// false boolean goal means "stop doing this", a true one means "start".
type DailyGoalsLog struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	UserID  uint      `gorm:"not null;index:idx_goals_user_date" json:"usersId"`
	LogDate time.Time `gorm:"type:date;not null;index:idx_goals_user_date" json:"logDate"`

	CarTravelKmGoal         *float64 `json:"carTravelKmGoal"`
	ShowerTimeMinutesGoal   *float64 `json:"showerTimeMinutesGoal"`
	ElectronicTimeHoursGoal *float64 `json:"electronicTimeHoursGoal"`

	PackagedFoodGoal           *bool `json:"packagedFoodGoal"`
	OnlineShoppingGoal         *bool `json:"onlineShoppingGoal"`
	WasteFoodGoal              *bool `json:"wasteFoodGoal"`
	AirConditioningHeatingGoal *bool `json:"airConditioningHeatingGoal"`
	NoDrivingGoal              *bool `json:"noDrivingGoal"`
	PlantMealThanMeatGoal      *bool `json:"plantMealThanMeatGoal"`
	UseTumblerGoal             *bool `json:"useTumblerGoal"`
	SaveEnergyGoal             *bool `json:"saveEnergyGoal"`
	SeparateRecycleWasteGoal   *bool `json:"separateRecycleWasteGoal"`

	Suggestions            *BehaviorValues `gorm:"serializer:json" json:"suggestions"`
	ImprovementSuggestions []string        `gorm:"serializer:json" json:"improvementSuggestions"`

	CreatedAt time.Time `json:"-"`
}
