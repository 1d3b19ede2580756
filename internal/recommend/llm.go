package recommend

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-nutri-keeper/models"
)

// maxPromptDescription caps the description length sent per item.
const maxPromptDescription = 160

// BuildPrompt renders the ranking prompt for candidates and uc. Item ids are
// listed in candidate order.
func BuildPrompt(candidates []models.MenuItem, uc UserContext) string {
	var b strings.Builder

	b.WriteString("You are a nutrition assistant ranking menu items for one user.\n")
	b.WriteString("Every listed item is already safe for the user; do not invent items.\n\n")

	b.WriteString("User context:\n")
	fmt.Fprintf(&b, "- allergies: %s\n", listOrNone(uc.Allergies))
	fmt.Fprintf(&b, "- strict dietary preferences: %s\n", listOrNone(uc.StrictPreferences))
	fmt.Fprintf(&b, "- preferred cuisines: %s\n", listOrNone(uc.PreferredCuisines))
	if len(uc.ActiveGoals) == 0 {
		b.WriteString("- active goals: none\n")
	} else {
		b.WriteString("- active goals:\n")
		for _, g := range uc.ActiveGoals {
			fmt.Fprintf(&b, "  - %s: target %s, current %s\n", g.TargetType, formatNumber(g.TargetValue), formatNumber(g.CurrentValue))
		}
	}
	switch {
	case uc.LowMood():
		b.WriteString("- recent mood is low\n")
	case uc.HighStress():
		b.WriteString("- recent stress is high\n")
	}

	ids := make([]string, len(candidates))
	for i, item := range candidates {
		ids[i] = itemKey(item.MenuItemID)
	}
	fmt.Fprintf(&b, "\nItem ids: [%s]\n\nItems:\n", strings.Join(ids, ", "))
	for _, item := range candidates {
		fmt.Fprintf(&b, "- id=%s | name=%s", itemKey(item.MenuItemID), item.Name)
		if item.Description != nil && *item.Description != "" {
			fmt.Fprintf(&b, " | description=%s", truncate(*item.Description, maxPromptDescription))
		}
		if item.Calories != nil {
			fmt.Fprintf(&b, " | calories=%s", formatNumber(*item.Calories))
		}
		if item.Price != nil {
			fmt.Fprintf(&b, " | price=%.2f", *item.Price)
		}
		if item.Cuisine != nil {
			fmt.Fprintf(&b, " | cuisine=%s", *item.Cuisine)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nRespond with only a JSON array sorted from best to worst. Each element must be ")
	b.WriteString(`{"item_id": "<id from the list>", "score": <number between 0 and 1>, "explanation": "<one sentence>"}.`)
	b.WriteString("\n")

	return b.String()
}

// validateRankings keeps the entries that name a known candidate, carry a
// numeric score and a non-empty explanation. The first entry for an id wins.
func validateRankings(entries []RankedEntry, candidates []models.MenuItem) []scoredItem {
	index := make(map[string]int, len(candidates))
	for i, item := range candidates {
		index[itemKey(item.MenuItemID)] = i
	}

	seen := make(map[string]bool, len(entries))
	valid := make([]scoredItem, 0, len(entries))
	for _, entry := range entries {
		id := strings.TrimSpace(entry.ItemID)
		pos, ok := index[id]
		if !ok || seen[id] {
			continue
		}
		score, ok := coerceScore(entry.Score)
		if !ok {
			continue
		}
		explanation := strings.TrimSpace(entry.Explanation)
		if explanation == "" {
			continue
		}
		seen[id] = true
		valid = append(valid, scoredItem{
			item:        candidates[pos],
			position:    pos,
			score:       clampScore(score),
			explanation: explanation,
		})
	}

	return valid
}

// coerceScore converts a model-provided score into a float.
func coerceScore(v any) (float64, bool) {
	var f float64
	switch s := v.(type) {
	case float64:
		f = s
	case float32:
		f = float64(s)
	case int:
		f = float64(s)
	case int64:
		f = float64(s)
	case json.Number:
		parsed, err := s.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func itemKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

func listOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
