package models

import "time"

// DailyCarbonLog is one submitted checklist for one user and one day. The
// boolean columns store the normalized checklist values (polarity already
// applied), not the raw payload flags.
type DailyCarbonLog struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	UserID                 uint      `gorm:"not null;index:idx_carbon_user_date" json:"usersId"`
	TotalCarbon            float64   `json:"totalCarbon"`
	CarbonLevel            int       `json:"carbonLevel"`
	IslandPath             int       `json:"islandPath"`
	CarbonSaved            int       `json:"carbonSaved"`
	CarTravelKm            float64   `json:"carTravelKm"`
	ShowerTimeMinutes      float64   `json:"showerTimeMinutes"`
	ElectronicTimeHours    float64   `json:"electronicTimeHours"`
	PackagedFood           bool      `json:"packagedFood"`
	OnlineShopping         bool      `json:"onlineShopping"`
	WasteFood              bool      `json:"wasteFood"`
	AirConditioningHeating bool      `json:"airConditioningHeating"`
	NoDriving              bool      `json:"noDriving"`
	PlantMealThanMeat      bool      `json:"plantMealThanMeat"`
	UseTumbler             bool      `json:"useTumbler"`
	SaveEnergy             bool      `json:"saveEnergy"`
	SeparateRecycleWaste   bool      `json:"separateRecycleWaste"`
	LogDate                time.Time `gorm:"type:date;not null;index:idx_carbon_user_date" json:"logDate"`
	CreatedAt              time.Time `json:"-"`
}
