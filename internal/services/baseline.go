package services

import (
	"sort"

	"github.com/arasywa/ecoisland/internal/models"
)

// DefaultNormalValues stands in for a personal baseline when the history is
// too thin to say anything about the person.
var DefaultNormalValues = models.BehaviorValues{
	CarTravelKm:         10,
	ShowerTimeMinutes:   12,
	ElectronicTimeHours: 8,
}

const minHistoryForBaseline = 3

// CalculateNormalValues derives the personal "normal" for each continuous
// behavior from the supplied history window. With fewer than three records
// the fixed defaults apply. The estimator takes the lower median: values are
// sorted ascending and the element at index len/2 is picked. For even-length
// history that is the upper of the two middle elements, not their average;
// goal stability depends on this exact tie-break, so keep it.
func CalculateNormalValues(history []models.DailyCarbonLog) models.BehaviorValues {
	if len(history) < minHistoryForBaseline {
		return DefaultNormalValues
	}

	car := make([]float64, 0, len(history))
	shower := make([]float64, 0, len(history))
	electronic := make([]float64, 0, len(history))
	for _, record := range history {
		car = append(car, record.CarTravelKm)
		shower = append(shower, record.ShowerTimeMinutes)
		electronic = append(electronic, record.ElectronicTimeHours)
	}

	sort.Float64s(car)
	sort.Float64s(shower)
	sort.Float64s(electronic)

	middle := len(history) / 2
	return models.BehaviorValues{
		CarTravelKm:         car[middle],
		ShowerTimeMinutes:   shower[middle],
		ElectronicTimeHours: electronic[middle],
	}
}
