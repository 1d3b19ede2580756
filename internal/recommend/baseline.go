package recommend

import (
	"math"
	"strings"

	"github.com/MKhiriev/go-nutri-keeper/models"
)

// Baseline score weights.
const (
	baseScore        = 0.5
	caloriesBonus    = 0.3
	priceBonus       = 0.2
	cuisineBonus     = 0.1
	goalKeywordBonus = 0.1
	calorieFitBonus  = 0.1
	conflictPenalty  = 0.15
	wellnessBonus    = 0.1
)

// BaselineScore scores item for uc deterministically and explains the score.
// The result is within [0, 1].
func BaselineScore(item models.MenuItem, uc UserContext) (float64, string) {
	text := normalizeText(item.Text())
	score := baseScore
	var reasons []string

	if item.Calories != nil {
		score += caloriesBonus
		reasons = append(reasons, "calorie information available")
	}
	if item.Price != nil {
		score += priceBonus
		reasons = append(reasons, "price listed")
	}
	if item.Cuisine != nil {
		cuisine := normalizeText(*item.Cuisine)
		for _, preferred := range uc.PreferredCuisines {
			if cuisine == preferred {
				score += cuisineBonus
				reasons = append(reasons, "matches your preferred "+cuisine+" cuisine")
				break
			}
		}
	}

	if goal, ok := matchGoal(uc.ActiveGoals, goalKeywords, text); ok {
		score += goalKeywordBonus
		reasons = append(reasons, "supports your "+goal+" goal")
	}
	if item.Calories != nil && fitsCalorieBudget(uc.ActiveGoals, *item.Calories) {
		score += calorieFitBonus
		reasons = append(reasons, "fits your remaining calorie budget")
	}
	if goal, ok := matchGoal(uc.ActiveGoals, goalConflicts, text); ok {
		score -= conflictPenalty
		reasons = append(reasons, "may work against your "+goal+" goal")
	}

	switch {
	case uc.LowMood() && containsAny(text, tryptophanWords):
		score += wellnessBonus
		reasons = append(reasons, "contains mood-supporting foods")
	case uc.HighStress() && containsAny(text, magnesiumWords):
		score += wellnessBonus
		reasons = append(reasons, "contains magnesium-rich foods")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "meets your dietary restrictions")
	}

	return clampScore(score), strings.Join(reasons, "; ")
}

// matchGoal returns the target type of the first active goal whose rule
// words appear in text.
func matchGoal(goals []models.Goal, rules []keywordRule, text string) (string, bool) {
	for _, goal := range goals {
		target := normalizeText(goal.TargetType)
		for _, rule := range rules {
			if !strings.Contains(target, normalizeText(rule.match)) {
				continue
			}
			if containsAny(text, rule.words) {
				return goal.TargetType, true
			}
		}
	}
	return "", false
}

// fitsCalorieBudget reports whether calories fit the remaining budget of any
// active calorie goal.
func fitsCalorieBudget(goals []models.Goal, calories float64) bool {
	for _, goal := range goals {
		if !strings.Contains(strings.ToLower(goal.TargetType), "calorie") {
			continue
		}
		remaining := goal.TargetValue - goal.CurrentValue
		if remaining > 0 && calories <= remaining {
			return true
		}
	}
	return false
}

// clampScore limits s to [0, 1] and rounds away float noise.
func clampScore(s float64) float64 {
	if math.IsNaN(s) {
		return 0
	}
	s = math.Max(0, math.Min(1, s))
	return math.Round(s*1000) / 1000
}
