package recommend

import (
	"regexp"
	"strings"
)

// strictDenylists maps a strict dietary preference to the tokens an item
// must not mention. Preferences missing from the table exclude nothing.
var strictDenylists = map[string][]string{
	"vegan": {
		"beef", "pork", "chicken", "turkey", "fish", "salmon", "shrimp", "cheese", "milk", "egg", "honey",
		"bacon", "ham", "lamb", "tuna", "crab", "lobster", "yogurt",
	},
	"vegetarian": {
		"beef", "pork", "chicken", "turkey", "bacon", "ham", "lamb", "fish", "salmon", "shrimp", "tuna", "crab", "lobster",
	},
	"pescatarian": {"beef", "pork", "chicken", "turkey", "bacon", "ham", "lamb"},
	"gluten-free": {"wheat", "bread", "pasta", "barley", "rye"},
	"dairy-free":  {"milk", "cheese", "butter", "cream", "yogurt"},
}

// goalKeywords maps a substring of a goal target type to the words that make
// an item supportive of that goal.
var goalKeywords = []keywordRule{
	{match: "protein", words: []string{"protein", "chicken", "beef", "fish", "tofu", "legume", "bean"}},
	{match: "fiber", words: []string{"fiber", "whole grain", "bean", "lentil", "vegetable"}},
	{match: "sodium", words: []string{"low sodium", "fresh", "unsalted"}},
	{match: "calorie", words: []string{"light", "salad", "grilled"}},
}

// goalConflicts maps a substring of a goal target type to the words that work
// against it.
var goalConflicts = []keywordRule{
	{match: "calorie_reduction", words: []string{"fried", "sugar", "heavy"}},
	{match: "sodium", words: []string{"salty", "cured", "pickled"}},
}

var (
	tryptophanWords = []string{"turkey", "salmon", "chicken", "tryptophan", "banana"}
	magnesiumWords  = []string{"spinach", "almond", "avocado", "magnesium", "dark chocolate"}
)

type keywordRule struct {
	match string
	words []string
}

var denylistPatterns = compileDenylists(strictDenylists)

func compileDenylists(lists map[string][]string) map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(lists))
	for pref, tokens := range lists {
		quoted := make([]string, len(tokens))
		for i, token := range tokens {
			quoted[i] = regexp.QuoteMeta(token)
		}
		// tokens must start a word so that "egg" leaves "veggie" alone
		patterns[pref] = regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)`)
	}
	return patterns
}

// normalizeText case-folds s and turns hyphens and underscores into spaces.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(s))), " ")
}

// normalizePreference maps "Gluten Free", "gluten_free" and "gluten-free" to
// the same denylist key.
func normalizePreference(s string) string {
	return strings.Join(strings.Fields(strings.NewReplacer("_", " ", "-", " ").Replace(strings.ToLower(s))), "-")
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
