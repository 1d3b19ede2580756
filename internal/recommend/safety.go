package recommend

import (
	"strings"

	"github.com/MKhiriev/go-nutri-keeper/models"
)

// IsSafe reports whether item may be shown to a user with the given allergies
// and strict preferences. Allergy names are matched as case-folded
// substrings in both their given and singular forms; strict preferences
// exclude items mentioning any token of their denylist.
func IsSafe(item models.MenuItem, allergies, strict []string) bool {
	text := normalizeText(item.Text())

	for _, allergy := range allergies {
		if allergenMentioned(text, allergy) {
			return false
		}
	}

	for _, pref := range strict {
		pattern, ok := denylistPatterns[normalizePreference(pref)]
		if !ok {
			continue
		}
		if pattern.MatchString(text) {
			return false
		}
	}

	return true
}

func allergenMentioned(text, allergy string) bool {
	name := normalizeText(allergy)
	if name == "" {
		return false
	}
	if strings.Contains(text, name) {
		return true
	}
	if singular := singularize(name); singular != name && strings.Contains(text, singular) {
		return true
	}
	return false
}

// singularize strips a plural suffix from the last word of name.
func singularize(name string) string {
	switch {
	case len(name) > 4 && strings.HasSuffix(name, "ies"):
		return strings.TrimSuffix(name, "ies") + "y"
	case len(name) > 4 && (strings.HasSuffix(name, "shes") || strings.HasSuffix(name, "ches")):
		return strings.TrimSuffix(name, "es")
	case len(name) > 3 && strings.HasSuffix(name, "s") && !strings.HasSuffix(name, "ss"):
		return strings.TrimSuffix(name, "s")
	}
	return name
}
