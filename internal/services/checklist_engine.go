package services

import (
	"time"

	"github.com/arasywa/ecoisland/internal/models"
)

// SubmissionActuals are the three continuous behavior values exactly as
// submitted, before any normalization.
type SubmissionActuals struct {
	CarTravelKm         float64
	ShowerTimeMinutes   float64
	ElectronicTimeHours float64
}

// SubmissionResult is everything one checklist evaluation produces.
type SubmissionResult struct {
	TotalEmission          float64
	Level                  int
	Category               EmissionCategory
	Fuzzy                  FuzzyAnalysis
	ImprovementSuggestions []string
	Goals                  *models.DailyGoalsLog
}

// ShouldPersistGoals reports whether the evaluation yielded any goal at all.
func (result SubmissionResult) ShouldPersistGoals() bool {
	return result.Goals != nil
}

// EvaluateSubmission runs the full scoring chain for one submission:
// aggregate, classify, estimate the baseline from the supplied history,
// derive fuzzy targets, generate textual nudges and decide the goal record.
// The function is pure: history is an already-materialized window and no
// state outside the inputs is read or written, so concurrent evaluations for
// different users need no coordination.
func EvaluateSubmission(checklist Checklist, raw map[string]any, actuals SubmissionActuals, history []models.DailyCarbonLog, logDate time.Time) SubmissionResult {
	total := CalculateEmissions(checklist)
	level := ClassifyLevel(total)

	normalValues := CalculateNormalValues(history)
	analysis := AnalyzeUsage(actuals.CarTravelKm, actuals.ShowerTimeMinutes, actuals.ElectronicTimeHours, normalValues)
	improvements := GenerateImprovementSuggestions(raw)

	return SubmissionResult{
		TotalEmission:          total,
		Level:                  level,
		Category:               CategoryForLevel(level),
		Fuzzy:                  analysis,
		ImprovementSuggestions: improvements,
		Goals:                  DecideGoals(checklist, actuals, analysis, improvements, logDate),
	}
}
