package services

import (
	"fmt"
	"log"
	"math"

	"github.com/arasywa/ecoisland/internal/models"
)

// FuzzyAnalysis is the full suggestion result for the three continuous
// behaviors. Everything the engine derived is surfaced, not just the final
// numbers, so clients can explain a suggestion. Degraded marks the fallback
// produced when the computation could not run.
type FuzzyAnalysis struct {
	Suggestions       models.BehaviorValues `json:"suggestions"`
	MembershipDegrees models.BehaviorValues `json:"membership_degrees"`
	MinimumLimits     models.BehaviorValues `json:"minimum_limits"`
	NormalValues      models.BehaviorValues `json:"normal_values"`
	Degraded          bool                  `json:"degraded"`
}

type behaviorProfile struct {
	domainFloor       float64
	aggressiveDamping float64
	moderateDamping   float64
}

var behaviorProfiles = struct {
	car        behaviorProfile
	shower     behaviorProfile
	electronic behaviorProfile
}{
	car:        behaviorProfile{domainFloor: 50, aggressiveDamping: 0.6, moderateDamping: 0.4},
	shower:     behaviorProfile{domainFloor: 30, aggressiveDamping: 0.5, moderateDamping: 0.3},
	electronic: behaviorProfile{domainFloor: 24, aggressiveDamping: 0.4, moderateDamping: 0.25},
}

const (
	highUsageGate     = 0.6
	moderateUsageGate = 0.3

	// reductionScaleLimit bounds the shared reduction-magnitude scale [0,20].
	reductionScaleLimit = 21
)

// reductionSets are the fuzzy sets a reduction amount is drawn from. The
// light set is part of the model even though the decision rule currently only
// consumes moderate and aggressive.
type reductionSets struct {
	light      fuzzySet
	moderate   fuzzySet
	aggressive fuzzySet
}

func newReductionSets() reductionSets {
	domain := unitRange(reductionScaleLimit)
	return reductionSets{
		light:      newTriangleSet(domain, 2, 5, 8),
		moderate:   newTriangleSet(domain, 4, 8, 12),
		aggressive: newTriangleSet(domain, 8, 12, 16),
	}
}

// AnalyzeUsage runs the fuzzy suggestion engine for all three behaviors. It
// never fails: when the computation cannot run on the given numbers the whole
// analysis degrades atomically to a conservative fallback, and the cause is
// logged rather than surfaced.
func AnalyzeUsage(carKm, showerMin, electronicHours float64, normalValues models.BehaviorValues) FuzzyAnalysis {
	analysis, err := runUsageAnalysis(carKm, showerMin, electronicHours, normalValues)
	if err != nil {
		log.Printf("fuzzy analysis degraded: %v", err)
		return degradedAnalysis(carKm, showerMin, electronicHours, normalValues)
	}
	return analysis
}

func runUsageAnalysis(carKm, showerMin, electronicHours float64, normalValues models.BehaviorValues) (analysis FuzzyAnalysis, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("fuzzy computation fault: %v", recovered)
		}
	}()

	inputs := []float64{
		carKm, showerMin, electronicHours,
		normalValues.CarTravelKm, normalValues.ShowerTimeMinutes, normalValues.ElectronicTimeHours,
	}
	for _, value := range inputs {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return FuzzyAnalysis{}, fmt.Errorf("non-finite input %v", value)
		}
	}
	normals := []float64{normalValues.CarTravelKm, normalValues.ShowerTimeMinutes, normalValues.ElectronicTimeHours}
	for _, normal := range normals {
		if normal < 0 {
			return FuzzyAnalysis{}, fmt.Errorf("negative baseline %v breaks membership corners", normal)
		}
	}

	sets := newReductionSets()
	car := suggestBehavior(carKm, normalValues.CarTravelKm, behaviorProfiles.car, sets)
	shower := suggestBehavior(showerMin, normalValues.ShowerTimeMinutes, behaviorProfiles.shower, sets)
	electronic := suggestBehavior(electronicHours, normalValues.ElectronicTimeHours, behaviorProfiles.electronic, sets)

	return FuzzyAnalysis{
		Suggestions: models.BehaviorValues{
			CarTravelKm:         car.suggestion,
			ShowerTimeMinutes:   shower.suggestion,
			ElectronicTimeHours: electronic.suggestion,
		},
		MembershipDegrees: models.BehaviorValues{
			CarTravelKm:         car.degree,
			ShowerTimeMinutes:   shower.degree,
			ElectronicTimeHours: electronic.degree,
		},
		MinimumLimits: models.BehaviorValues{
			CarTravelKm:         car.minimumLimit,
			ShowerTimeMinutes:   shower.minimumLimit,
			ElectronicTimeHours: electronic.minimumLimit,
		},
		NormalValues: normalValues,
	}, nil
}

type behaviorSuggestion struct {
	suggestion   float64
	degree       float64
	minimumLimit float64
}

func suggestBehavior(actual, normal float64, profile behaviorProfile, sets reductionSets) behaviorSuggestion {
	domain := unitRange(math.Max(profile.domainFloor, normal*3))
	highUsage := newTriangleSet(domain, normal*0.8, normal*1.2, normal*2)
	degree := highUsage.membershipAt(actual)
	minimumLimit := normal * 0.9

	suggestion := actual
	if actual > normal {
		switch {
		case degree > highUsageGate:
			reduction := sets.aggressive.scaled(degree).centroid()
			suggestion = math.Max(minimumLimit, actual-reduction*profile.aggressiveDamping)
		case degree > moderateUsageGate:
			reduction := sets.moderate.scaled(degree).centroid()
			suggestion = math.Max(minimumLimit, actual-reduction*profile.moderateDamping)
		}
	}

	// Never suggest a target above the personal normal.
	suggestion = math.Min(suggestion, normal)

	return behaviorSuggestion{suggestion: suggestion, degree: degree, minimumLimit: minimumLimit}
}

func degradedAnalysis(carKm, showerMin, electronicHours float64, normalValues models.BehaviorValues) FuzzyAnalysis {
	return FuzzyAnalysis{
		Suggestions: models.BehaviorValues{
			CarTravelKm:         carKm * 0.9,
			ShowerTimeMinutes:   showerMin * 0.9,
			ElectronicTimeHours: electronicHours * 0.9,
		},
		MinimumLimits: models.BehaviorValues{
			CarTravelKm:         carKm * 0.8,
			ShowerTimeMinutes:   showerMin * 0.8,
			ElectronicTimeHours: electronicHours * 0.8,
		},
		NormalValues: normalValues,
		Degraded:     true,
	}
}
