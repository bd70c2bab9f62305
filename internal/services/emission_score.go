package services

import "math"

// CalculateEmissions reduces a normalized checklist into one net emission
// value in kg CO2. Boolean activities apply their full weight when set:
// negative weights accumulate into a reductions pool, positive weights into
// an emissions pool. Numeric activities contribute value times weight to the
// emissions pool regardless of sign. The result never goes below zero.
func CalculateEmissions(checklist Checklist) float64 {
	var emissions, reductions float64

	for _, factor := range EmissionFactors {
		value := checklist[factor.Name]
		if factor.Kind == KindBoolean {
			if value != 1 {
				continue
			}
			if factor.Weight < 0 {
				reductions += -factor.Weight
			} else {
				emissions += factor.Weight
			}
			continue
		}
		emissions += value * factor.Weight
	}

	return math.Max(0, emissions-reductions)
}

// RoundEmission rounds a net emission value to two decimals for storage and
// API responses.
func RoundEmission(value float64) float64 {
	return math.Round(value*100) / 100
}
