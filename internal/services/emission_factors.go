package services

const (
	ActivityCarTravelKm            = "carTravelKm"
	ActivityPackagedFood           = "packagedFood"
	ActivityShowerTimeMinutes      = "showerTimeMinutes"
	ActivityElectronicTimeHours    = "electronicTimeHours"
	ActivityOnlineShopping         = "onlineShopping"
	ActivityWasteFood              = "wasteFood"
	ActivityAirConditioningHeating = "airConditioningHeating"
	ActivityNoDriving              = "noDriving"
	ActivityPlantMealThanMeat      = "plantMealThanMeat"
	ActivityUseTumbler             = "useTumbler"
	ActivitySaveEnergy             = "saveEnergy"
	ActivitySeparateRecycleWaste   = "separateRecycleWaste"
)

type ActivityKind int

const (
	KindNumeric ActivityKind = iota
	KindBoolean
)

// ActivityFactor maps one checklist activity to its emission weight in kg CO2
// per unit. Negative weights are avoided emissions.
type ActivityFactor struct {
	Name   string
	Weight float64
	Kind   ActivityKind
}

// EmissionFactors is the fixed activity table. The slice order is load-bearing:
// checklist iteration, suggestion output and goal columns all follow it.
var EmissionFactors = []ActivityFactor{
	{Name: ActivityCarTravelKm, Weight: 0.21, Kind: KindNumeric},
	{Name: ActivityPackagedFood, Weight: 0.5, Kind: KindBoolean},
	{Name: ActivityShowerTimeMinutes, Weight: 0.05, Kind: KindNumeric},
	{Name: ActivityElectronicTimeHours, Weight: 0.06, Kind: KindNumeric},
	{Name: ActivityOnlineShopping, Weight: 1.0, Kind: KindBoolean},
	{Name: ActivityWasteFood, Weight: 0.9, Kind: KindBoolean},
	{Name: ActivityAirConditioningHeating, Weight: 1.5, Kind: KindBoolean},

	{Name: ActivityNoDriving, Weight: -1.0, Kind: KindBoolean},
	{Name: ActivityPlantMealThanMeat, Weight: -2.0, Kind: KindBoolean},
	{Name: ActivityUseTumbler, Weight: -0.2, Kind: KindBoolean},
	{Name: ActivitySaveEnergy, Weight: -0.3, Kind: KindBoolean},
	{Name: ActivitySeparateRecycleWaste, Weight: -0.7, Kind: KindBoolean},
}

// invertedActivities lists the checklist flags whose raw payload polarity is
// "1 = did the bad thing". BuildChecklist re-reads them as "1 = flagged for
// improvement"; no other code may apply this mapping again.
var invertedActivities = map[string]bool{
	ActivityPackagedFood:           true,
	ActivityOnlineShopping:         true,
	ActivityWasteFood:              true,
	ActivityAirConditioningHeating: true,
}
