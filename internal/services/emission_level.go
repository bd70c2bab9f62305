package services

// EmissionCategory is the display metadata attached to one severity level.
type EmissionCategory struct {
	Level string `json:"level"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

var emissionCategories = map[int]EmissionCategory{
	1: {Level: "very_low", Label: "Very Low (Ideal)", Emoji: "🌿"},
	2: {Level: "low", Label: "Low (Sustainable)", Emoji: "🟢"},
	3: {Level: "moderate", Label: "Moderate (Fairly good)", Emoji: "🟡"},
	4: {Level: "high", Label: "High (Needs improvement)", Emoji: "🟠"},
	5: {Level: "very_high", Label: "Very High (Requires attention)", Emoji: "🔴"},
}

// ClassifyLevel maps a net emission value onto a severity level from 1 to 5
// using fixed half-open thresholds.
func ClassifyLevel(totalEmission float64) int {
	switch {
	case totalEmission < 2.5:
		return 1
	case totalEmission < 5:
		return 2
	case totalEmission < 8:
		return 3
	case totalEmission < 12:
		return 4
	default:
		return 5
	}
}

// CategoryForLevel returns the metadata for a severity level. Unknown levels
// fall back to the most severe category.
func CategoryForLevel(level int) EmissionCategory {
	if category, known := emissionCategories[level]; known {
		return category
	}
	return emissionCategories[5]
}
