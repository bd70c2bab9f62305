package services

import (
	"math"
	"strconv"
	"strings"
)

// Checklist holds one day of normalized activity values keyed by activity
// name. Boolean activities are stored as 0/1, numeric activities keep the
// submitted value.
type Checklist map[string]float64

// BuildChecklist normalizes a raw submission payload into a Checklist.
// Missing or malformed values count as 0. This is the single place where the
// inverted-polarity flags are normalized; every downstream consumer reads the
// stored "1 = flagged for improvement" meaning and must not invert again.
func BuildChecklist(raw map[string]any) Checklist {
	checklist := make(Checklist, len(EmissionFactors))
	for _, factor := range EmissionFactors {
		value := CoerceNumber(raw[factor.Name])
		switch {
		case invertedActivities[factor.Name]:
			if value == 1 {
				checklist[factor.Name] = 1
			} else {
				checklist[factor.Name] = 0
			}
		case factor.Kind == KindBoolean:
			if value != 0 {
				checklist[factor.Name] = 1
			} else {
				checklist[factor.Name] = 0
			}
		default:
			checklist[factor.Name] = value
		}
	}
	return checklist
}

// CoerceNumber converts an arbitrary JSON value to a float64, treating
// anything unusable as 0.
func CoerceNumber(value any) float64 {
	switch typed := value.(type) {
	case bool:
		if typed {
			return 1
		}
		return 0
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) {
			return 0
		}
		return typed
	case int:
		return float64(typed)
	case int64:
		return float64(typed)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
