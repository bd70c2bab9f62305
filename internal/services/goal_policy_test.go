package services

import (
	"testing"
	"time"

	"github.com/arasywa/ecoisland/internal/models"
)

func perfectChecklist() Checklist {
	return Checklist{
		ActivityPackagedFood:           0,
		ActivityOnlineShopping:         0,
		ActivityWasteFood:              0,
		ActivityAirConditioningHeating: 0,
		ActivityNoDriving:              1,
		ActivityPlantMealThanMeat:      1,
		ActivityUseTumbler:             1,
		ActivitySaveEnergy:             1,
		ActivitySeparateRecycleWaste:   1,
	}
}

func analysisWithSuggestions(car, shower, electronic float64) FuzzyAnalysis {
	return FuzzyAnalysis{
		Suggestions: models.BehaviorValues{
			CarTravelKm:         car,
			ShowerTimeMinutes:   shower,
			ElectronicTimeHours: electronic,
		},
	}
}

func TestDecideGoalsNumericWithinToleranceIsSkipped(t *testing.T) {
	actuals := SubmissionActuals{CarTravelKm: 10, ShowerTimeMinutes: 12, ElectronicTimeHours: 8}
	analysis := analysisWithSuggestions(10.05, 12, 8)

	goals := DecideGoals(perfectChecklist(), actuals, analysis, nil, time.Now())
	if goals != nil {
		t.Fatalf("expected no goal record, got %+v", goals)
	}
}

func TestDecideGoalsNumericBeyondToleranceIsPersisted(t *testing.T) {
	actuals := SubmissionActuals{CarTravelKm: 10, ShowerTimeMinutes: 12, ElectronicTimeHours: 8}
	analysis := analysisWithSuggestions(9.8, 12, 8)

	goals := DecideGoals(perfectChecklist(), actuals, analysis, nil, time.Now())
	if goals == nil {
		t.Fatalf("expected goal record")
	}
	if goals.CarTravelKmGoal == nil || *goals.CarTravelKmGoal != 9.8 {
		t.Fatalf("expected car goal 9.8, got %v", goals.CarTravelKmGoal)
	}
	if goals.ShowerTimeMinutesGoal != nil || goals.ElectronicTimeHoursGoal != nil {
		t.Fatalf("expected only the car goal to be set")
	}
	if goals.Suggestions == nil {
		t.Fatalf("expected suggestion snapshot alongside numeric goal")
	}
}

func TestDecideGoalsBooleanPolarities(t *testing.T) {
	checklist := perfectChecklist()
	checklist[ActivityPackagedFood] = 1 // flagged for improvement
	checklist[ActivityNoDriving] = 0    // habit missing

	actuals := SubmissionActuals{CarTravelKm: 10, ShowerTimeMinutes: 12, ElectronicTimeHours: 8}
	analysis := analysisWithSuggestions(10, 12, 8)

	goals := DecideGoals(checklist, actuals, analysis, nil, time.Now())
	if goals == nil {
		t.Fatalf("expected goal record")
	}
	if goals.PackagedFoodGoal == nil || *goals.PackagedFoodGoal {
		t.Fatalf("expected packagedFood stop goal (false), got %v", goals.PackagedFoodGoal)
	}
	if goals.NoDrivingGoal == nil || !*goals.NoDrivingGoal {
		t.Fatalf("expected noDriving start goal (true), got %v", goals.NoDrivingGoal)
	}
	if goals.OnlineShoppingGoal != nil {
		t.Fatalf("expected no onlineShopping goal, got %v", goals.OnlineShoppingGoal)
	}
	if goals.UseTumblerGoal != nil {
		t.Fatalf("expected no useTumbler goal, got %v", goals.UseTumblerGoal)
	}
	if goals.Suggestions != nil {
		t.Fatalf("expected no suggestion snapshot without numeric goals")
	}
}

func TestDecideGoalsCarriesImprovementSuggestions(t *testing.T) {
	checklist := perfectChecklist()
	checklist[ActivitySaveEnergy] = 0

	actuals := SubmissionActuals{CarTravelKm: 10, ShowerTimeMinutes: 12, ElectronicTimeHours: 8}
	analysis := analysisWithSuggestions(10, 12, 8)
	improvements := []string{"Turn off unnecessary devices/lights"}

	goals := DecideGoals(checklist, actuals, analysis, improvements, time.Now())
	if goals == nil {
		t.Fatalf("expected goal record")
	}
	if len(goals.ImprovementSuggestions) != 1 {
		t.Fatalf("expected one improvement suggestion, got %v", goals.ImprovementSuggestions)
	}
}
