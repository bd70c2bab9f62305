package services

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/arasywa/ecoisland/internal/models"
)

func TestEvaluateSubmissionEndToEnd(t *testing.T) {
	raw := map[string]any{
		"packagedFood":           true,
		"onlineShopping":         false,
		"wasteFood":              false,
		"airConditioningHeating": false,
		"noDriving":              false,
		"plantMealThanMeat":      false,
		"useTumbler":             false,
		"saveEnergy":             false,
		"separateRecycleWaste":   false,
		"carTravelKm":            float64(20),
		"showerTimeMinutes":      float64(10),
		"electronicTimeHours":    float64(4),
	}
	checklist := BuildChecklist(raw)
	actuals := SubmissionActuals{CarTravelKm: 20, ShowerTimeMinutes: 10, ElectronicTimeHours: 4}

	// Three identical history records pin the baselines at {10, 12, 8}.
	history := []models.DailyCarbonLog{
		{CarTravelKm: 10, ShowerTimeMinutes: 12, ElectronicTimeHours: 8},
		{CarTravelKm: 10, ShowerTimeMinutes: 12, ElectronicTimeHours: 8},
		{CarTravelKm: 10, ShowerTimeMinutes: 12, ElectronicTimeHours: 8},
	}

	logDate := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	result := EvaluateSubmission(checklist, raw, actuals, history, logDate)

	// 0.5 + 20*0.21 + 10*0.05 + 4*0.06 = 5.44
	if math.Abs(result.TotalEmission-5.44) > 1e-9 {
		t.Fatalf("expected total 5.44, got %v", result.TotalEmission)
	}
	if result.Level != 3 {
		t.Fatalf("expected level 3, got %d", result.Level)
	}
	if result.Category.Level != "moderate" {
		t.Fatalf("expected moderate category, got %s", result.Category.Level)
	}

	// Car 20 is the right foot of the (8, 12, 20) triangle: degree 0, so the
	// suggestion is just the baseline ceiling.
	if result.Fuzzy.MembershipDegrees.CarTravelKm != 0 {
		t.Fatalf("expected car degree 0, got %v", result.Fuzzy.MembershipDegrees.CarTravelKm)
	}
	if math.Abs(result.Fuzzy.Suggestions.CarTravelKm-10) > 1e-9 {
		t.Fatalf("expected car suggestion 10, got %v", result.Fuzzy.Suggestions.CarTravelKm)
	}
	if math.Abs(result.Fuzzy.Suggestions.ShowerTimeMinutes-10) > 1e-9 {
		t.Fatalf("expected shower suggestion to stay at 10, got %v", result.Fuzzy.Suggestions.ShowerTimeMinutes)
	}
	if math.Abs(result.Fuzzy.Suggestions.ElectronicTimeHours-4) > 1e-9 {
		t.Fatalf("expected screen suggestion to stay at 4, got %v", result.Fuzzy.Suggestions.ElectronicTimeHours)
	}

	wantSuggestions := []string{
		"Avoid food packaged in plastic",
		"Use public transport/walk more",
		"Increase plant-based food intake",
		"Use a tumbler/reusable container",
		"Turn off unnecessary devices/lights",
		"Sort and recycle your waste",
	}
	if !reflect.DeepEqual(result.ImprovementSuggestions, wantSuggestions) {
		t.Fatalf("suggestions mismatch:\n got %v\nwant %v", result.ImprovementSuggestions, wantSuggestions)
	}

	if !result.ShouldPersistGoals() {
		t.Fatalf("expected goals to be persisted")
	}
	goals := result.Goals
	if goals.CarTravelKmGoal == nil || math.Abs(*goals.CarTravelKmGoal-10) > 1e-9 {
		t.Fatalf("expected car goal 10, got %v", goals.CarTravelKmGoal)
	}
	if goals.ShowerTimeMinutesGoal != nil || goals.ElectronicTimeHoursGoal != nil {
		t.Fatalf("expected no shower or screen goal")
	}
	if goals.PackagedFoodGoal == nil || *goals.PackagedFoodGoal {
		t.Fatalf("expected packagedFood stop goal")
	}
	if goals.NoDrivingGoal == nil || !*goals.NoDrivingGoal {
		t.Fatalf("expected noDriving start goal")
	}
	if !goals.LogDate.Equal(logDate) {
		t.Fatalf("expected log date %v, got %v", logDate, goals.LogDate)
	}
}

func TestEvaluateSubmissionIsIdempotent(t *testing.T) {
	raw := map[string]any{
		"packagedFood": true,
		"carTravelKm":  float64(17),
	}
	checklist := BuildChecklist(raw)
	actuals := SubmissionActuals{CarTravelKm: 17, ShowerTimeMinutes: 9, ElectronicTimeHours: 3}
	history := []models.DailyCarbonLog{
		{CarTravelKm: 8}, {CarTravelKm: 10, ShowerTimeMinutes: 12}, {CarTravelKm: 11, ElectronicTimeHours: 6},
	}
	logDate := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	first := EvaluateSubmission(checklist, raw, actuals, history, logDate)
	second := EvaluateSubmission(checklist, raw, actuals, history, logDate)

	if first.Fuzzy != second.Fuzzy {
		t.Fatalf("expected identical fuzzy analysis, got %+v and %+v", first.Fuzzy, second.Fuzzy)
	}
	if !reflect.DeepEqual(first.Goals, second.Goals) {
		t.Fatalf("expected identical goals, got %+v and %+v", first.Goals, second.Goals)
	}
}

func TestEvaluateSubmissionThinHistoryFallsBackToDefaults(t *testing.T) {
	raw := map[string]any{}
	checklist := BuildChecklist(raw)
	actuals := SubmissionActuals{}

	result := EvaluateSubmission(checklist, raw, actuals, nil, time.Now())
	if result.Fuzzy.NormalValues != DefaultNormalValues {
		t.Fatalf("expected default baselines, got %+v", result.Fuzzy.NormalValues)
	}
}
