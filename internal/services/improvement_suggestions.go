package services

type improvementRule struct {
	activity   string
	suggestion string
}

// Negative activities: the flag set means the person did the harmful thing.
var negativeActivityRules = []improvementRule{
	{ActivityPackagedFood, "Avoid food packaged in plastic"},
	{ActivityOnlineShopping, "Reduce online shopping/delivery"},
	{ActivityWasteFood, "Avoid wasting food"},
	{ActivityAirConditioningHeating, "Minimize AC/heater usage"},
}

// Positive activities: the flag unset means the beneficial habit is missing.
var positiveActivityRules = []improvementRule{
	{ActivityNoDriving, "Use public transport/walk more"},
	{ActivityPlantMealThanMeat, "Increase plant-based food intake"},
	{ActivityUseTumbler, "Use a tumbler/reusable container"},
	{ActivitySaveEnergy, "Turn off unnecessary devices/lights"},
	{ActivitySeparateRecycleWaste, "Sort and recycle your waste"},
}

// GenerateImprovementSuggestions builds the textual nudges for the boolean
// activities. It reads the RAW submission payload, not the normalized
// checklist: the negative flags still carry their original polarity here.
// Each activity contributes at most one line, in rule-table order.
func GenerateImprovementSuggestions(raw map[string]any) []string {
	suggestions := make([]string, 0, len(negativeActivityRules)+len(positiveActivityRules))
	for _, rule := range negativeActivityRules {
		if rawFlagTrue(raw, rule.activity) {
			suggestions = append(suggestions, rule.suggestion)
		}
	}
	for _, rule := range positiveActivityRules {
		if !rawFlagTrue(raw, rule.activity) {
			suggestions = append(suggestions, rule.suggestion)
		}
	}
	return suggestions
}

// rawFlagTrue matches only a JSON boolean true, mirroring the strictness of
// the submission contract for flag activities.
func rawFlagTrue(raw map[string]any, key string) bool {
	flag, isBool := raw[key].(bool)
	return isBool && flag
}
