package recommend

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────────────────────────────────────
// Safety
// ─────────────────────────────────────────────────────────────────────────────

func TestRecommendMeals_StrictVeganFiltering(t *testing.T) {
	f := newFixture(
		withNutrition(menuItem(1, 1, "Chicken Salad"), 12, 400),
		menuItem(2, 1, "Veggie Bowl"),
	)
	f.health.prefs = []models.DietaryPreference{strictPref("vegan")}

	res, err := f.engine(nil, Options{}).RecommendMeals(context.Background(), testUser, baseline())
	require.NoError(t, err)

	assert.Equal(t, []string{"Veggie Bowl"}, itemNames(res.Items))
	assert.Equal(t, models.ModeBaseline, res.ModeUsed)
}

func TestRecommendMeals_AllergenHardBlock(t *testing.T) {
	f := newFixture(
		withNutrition(menuItem(1, 1, "Peanut Butter Cookie"), 3, 250),
		menuItem(2, 1, "Rice Bowl"),
	)
	f.health.allergies = []models.UserAllergy{{AllergenName: "Peanut", Severity: models.SeveritySevere}}

	res, err := f.engine(nil, Options{}).RecommendMeals(context.Background(), testUser, baseline())
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	assert.Equal(t, int64(2), res.Items[0].ItemID)
	assert.NotContains(t, res.Items[0].Explanation, "Peanut")
}

func TestRecommendMeals_DietFilterActsAsStrictPreference(t *testing.T) {
	f := newFixture(
		menuItem(1, 1, "Beef Burger"),
		menuItem(2, 1, "Fish Tacos"),
		menuItem(3, 1, "Lentil Soup"),
	)
	req := baseline()
	req.Filters.Diet = []string{"vegetarian"}

	res, err := f.engine(nil, Options{}).RecommendMeals(context.Background(), testUser, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"Lentil Soup"}, itemNames(res.Items))
}

func TestRecommendMeals_CuisineAndPriceFilters(t *testing.T) {
	thai, italian := "Thai", "italian"
	cheapThai := withNutrition(menuItem(1, 1, "Green Curry"), 9, 500)
	cheapThai.Cuisine = &thai
	dearThai := withNutrition(menuItem(2, 1, "Lobster Pad Thai"), 30, 700)
	dearThai.Cuisine = &thai
	pasta := withNutrition(menuItem(3, 2, "Pasta"), 8, 650)
	pasta.Cuisine = &italian

	f := newFixture(cheapThai, dearThai, pasta)
	req := baseline()
	req.Filters.Cuisine = []string{"thai"}
	req.Filters.PriceRange = ptr(models.PriceBudget)

	res, err := f.engine(nil, Options{}).RecommendMeals(context.Background(), testUser, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"Green Curry"}, itemNames(res.Items))
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering and truncation
// ─────────────────────────────────────────────────────────────────────────────

func TestRecommendMeals_SortedStableAndBounded(t *testing.T) {
	items := []models.MenuItem{
		menuItem(1, 1, "Plain A"),
		withNutrition(menuItem(2, 1, "Full"), 11, 300),
		menuItem(3, 1, "Plain B"),
		{MenuItemID: 4, RestaurantID: 1, Name: "Calories only", Calories: ptr(100.0)},
		menuItem(5, 1, "Plain C"),
	}
	// same score as Plain A, but more complete
	protein := menuItem(6, 1, "Plain D")
	protein.Protein = ptr(20.0)
	items = append(items, protein)

	f := newFixture(items...)

	res, err := f.engine(nil, Options{}).RecommendMeals(context.Background(), testUser, baseline())
	require.NoError(t, err)

	assert.Equal(t, []string{"Full", "Calories only", "Plain D", "Plain A", "Plain B", "Plain C"}, itemNames(res.Items))
	for i := 1; i < len(res.Items); i++ {
		assert.GreaterOrEqual(t, res.Items[i-1].Score, res.Items[i].Score)
	}
	for _, item := range res.Items {
		assert.GreaterOrEqual(t, item.Score, 0.0)
		assert.LessOrEqual(t, item.Score, 1.0)
	}
}

func TestRecommendMeals_MaxResults(t *testing.T) {
	items := make([]models.MenuItem, 0, 15)
	for i := int64(1); i <= 15; i++ {
		items = append(items, menuItem(i, 1, "Dish "+strconv.FormatInt(i, 10)))
	}
	f := newFixture(items...)

	res, err := f.engine(nil, Options{}).RecommendMeals(context.Background(), testUser, baseline())
	require.NoError(t, err)
	assert.Len(t, res.Items, 10)

	req := baseline()
	req.MaxResults = ptr(3)
	res, err = f.engine(nil, Options{}).RecommendMeals(context.Background(), testUser, req)
	require.NoError(t, err)
	assert.Len(t, res.Items, 3)

	res, err = f.engine(nil, Options{MaxResults: 5}).RecommendMeals(context.Background(), testUser, baseline())
	require.NoError(t, err)
	assert.Len(t, res.Items, 5)
}

func TestRecommendMeals_EmptyCatalog(t *testing.T) {
	f := newFixture()

	res, err := f.engine(nil, Options{}).RecommendMeals(context.Background(), testUser, baseline())
	require.NoError(t, err)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}

func TestRecommendMeals_CatalogError(t *testing.T) {
	f := newFixture()
	f.catalog.err = errors.New("db down")

	_, err := f.engine(nil, Options{}).RecommendMeals(context.Background(), testUser, baseline())
	assert.ErrorIs(t, err, ErrLoadingCatalog)
}

func TestRecommendMeals_WellnessWindow(t *testing.T) {
	f := newFixture(menuItem(1, 1, "Banana Bread"), menuItem(2, 1, "Toast"))
	f.wellness.averages = models.WellnessAverages{AvgMood: ptr(3.0)}

	res, err := f.engine(nil, Options{}).RecommendMeals(context.Background(), testUser, baseline())
	require.NoError(t, err)

	assert.Equal(t, "2026-03-07", f.wellness.since.String())
	assert.Equal(t, "Banana Bread", res.Items[0].Name)
	assert.InDelta(t, 0.6, res.Items[0].Score, 1e-9)
}

// ─────────────────────────────────────────────────────────────────────────────
// Language model ranking
// ─────────────────────────────────────────────────────────────────────────────

func TestRecommendMeals_LLMRanking(t *testing.T) {
	f := newFixture(menuItem(1, 1, "Rice Bowl"), menuItem(2, 1, "Veggie Bowl"), menuItem(3, 1, "Chicken Salad"))
	f.health.prefs = []models.DietaryPreference{strictPref("vegan")}

	var prompt string
	ranker := RankFunc(func(_ context.Context, p string) ([]RankedEntry, error) {
		prompt = p
		return []RankedEntry{
			{ItemID: "2", Score: 0.9, Explanation: "colourful and filling"},
			{ItemID: "3", Score: 0.99, Explanation: "unsafe item the model made up"},
			{ItemID: "42", Score: 0.8, Explanation: "unknown id"},
			{ItemID: "1", Score: "0.4", Explanation: "plain"},
			{ItemID: "1", Score: 0.95, Explanation: "duplicate"},
		}, nil
	})

	res, err := f.engine(ranker, Options{}).RecommendMeals(context.Background(), testUser, models.RecommendationRequest{})
	require.NoError(t, err)

	assert.Equal(t, models.ModeLLM, res.ModeUsed)
	assert.False(t, res.FellBack)
	assert.Equal(t, []string{"Veggie Bowl", "Rice Bowl"}, itemNames(res.Items))
	assert.Equal(t, "colourful and filling", res.Items[0].Explanation)
	assert.InDelta(t, 0.4, res.Items[1].Score, 1e-9)

	assert.Contains(t, prompt, "Item ids: [1, 2]")
	assert.Contains(t, prompt, "strict dietary preferences: vegan")
	assert.NotContains(t, prompt, "Chicken Salad")
}

func TestRecommendMeals_LLMFallback(t *testing.T) {
	tests := []struct {
		name   string
		ranker Ranker
	}{
		{
			name: "ranker error",
			ranker: RankFunc(func(context.Context, string) ([]RankedEntry, error) {
				return nil, errors.New("503 from upstream")
			}),
		},
		{
			name: "all entries invalid",
			ranker: RankFunc(func(context.Context, string) ([]RankedEntry, error) {
				return []RankedEntry{
					{ItemID: "9", Score: 0.5, Explanation: "unknown"},
					{ItemID: "1", Score: "high", Explanation: "bad score"},
					{ItemID: "2", Score: 0.5, Explanation: "   "},
				}, nil
			}),
		},
		{
			name: "timeout",
			ranker: RankFunc(func(ctx context.Context, _ string) ([]RankedEntry, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(menuItem(1, 1, "Rice Bowl"), withNutrition(menuItem(2, 1, "Veggie Bowl"), 9, 300))

			res, err := f.engine(tt.ranker, Options{LLMTimeout: 20 * time.Millisecond}).
				RecommendMeals(context.Background(), testUser, models.RecommendationRequest{Mode: models.ModeLLM})
			require.NoError(t, err)

			assert.Equal(t, models.ModeBaseline, res.ModeUsed)
			assert.True(t, res.FellBack)
			assert.Equal(t, []string{"Veggie Bowl", "Rice Bowl"}, itemNames(res.Items))
		})
	}
}

func TestRecommendMeals_NoRankerUsesBaselineSilently(t *testing.T) {
	f := newFixture(menuItem(1, 1, "Rice Bowl"))

	res, err := f.engine(nil, Options{}).RecommendMeals(context.Background(), testUser, models.RecommendationRequest{Mode: models.ModeLLM})
	require.NoError(t, err)

	assert.Equal(t, models.ModeBaseline, res.ModeUsed)
	assert.False(t, res.FellBack)
}

func TestRecommendMeals_BaselineModeSkipsRanker(t *testing.T) {
	f := newFixture(menuItem(1, 1, "Rice Bowl"))
	called := false
	ranker := RankFunc(func(context.Context, string) ([]RankedEntry, error) {
		called = true
		return nil, nil
	})

	_, err := f.engine(ranker, Options{}).RecommendMeals(context.Background(), testUser, baseline())
	require.NoError(t, err)
	assert.False(t, called)
}

// ─────────────────────────────────────────────────────────────────────────────
// Restaurants
// ─────────────────────────────────────────────────────────────────────────────

func TestRecommendRestaurants_BestSafeItem(t *testing.T) {
	f := newFixture(
		withNutrition(menuItem(1, 1, "Peanut Noodles"), 14, 800),
		menuItem(2, 1, "Plain Rice"),
		withNutrition(menuItem(3, 2, "Grilled Tofu"), 12.5, 450),
		menuItem(4, 2, "Miso Soup"),
		withNutrition(menuItem(5, 3, "Satay with peanut sauce"), 10, 600),
	)
	f.health.allergies = []models.UserAllergy{{AllergenName: "peanuts"}}

	res, err := f.engine(nil, Options{}).RecommendRestaurants(context.Background(), testUser, baseline())
	require.NoError(t, err)

	require.Len(t, res.Items, 2)
	assert.Equal(t, int64(2), res.Items[0].ItemID)
	assert.Equal(t, "Restaurant B", res.Items[0].Name)
	assert.InDelta(t, 1.0, res.Items[0].Score, 1e-9)
	assert.Equal(t, "best item: Grilled Tofu ($12.50, 450 cal)", res.Items[0].Explanation)

	assert.Equal(t, int64(1), res.Items[1].ItemID)
	assert.Equal(t, "best item: Plain Rice (price n/a, calories n/a)", res.Items[1].Explanation)
}

func TestRecommendRestaurants_Truncated(t *testing.T) {
	f := newFixture(menuItem(1, 1, "A"), menuItem(2, 2, "B"), menuItem(3, 3, "C"))
	req := baseline()
	req.MaxResults = ptr(2)

	res, err := f.engine(nil, Options{}).RecommendRestaurants(context.Background(), testUser, req)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, []int64{res.Items[0].ItemID, res.Items[1].ItemID})
}

func TestRecommend_OversizedMaxResultsIsClamped(t *testing.T) {
	f := newFixture(menuItem(1, 1, "Rice Bowl"), menuItem(2, 2, "Veggie Bowl"))
	req := baseline()
	req.MaxResults = ptr(math.MaxInt)
	e := f.engine(nil, Options{})

	var restaurants, meals Result
	var err error
	require.NotPanics(t, func() {
		restaurants, err = e.RecommendRestaurants(context.Background(), testUser, req)
	})
	require.NoError(t, err)
	assert.Len(t, restaurants.Items, 2)

	require.NotPanics(t, func() {
		meals, err = e.RecommendMeals(context.Background(), testUser, req)
	})
	require.NoError(t, err)
	assert.Len(t, meals.Items, 2)

	assert.Equal(t, models.MaxRecommendResults, e.limit(req))
}

func TestRecommendRestaurants_UnrankedRestaurantKeepsBaselineScore(t *testing.T) {
	f := newFixture(
		menuItem(1, 1, "Rice Bowl"),
		withNutrition(menuItem(2, 2, "Grilled Tofu"), 12, 450),
		menuItem(3, 3, "Peanut Satay"),
	)
	f.health.allergies = []models.UserAllergy{{AllergenName: "peanut"}}

	// the model only ranks the first restaurant's item
	ranker := RankFunc(func(context.Context, string) ([]RankedEntry, error) {
		return []RankedEntry{{ItemID: "1", Score: 0.2, Explanation: "plain but safe"}}, nil
	})

	res, err := f.engine(ranker, Options{}).RecommendRestaurants(context.Background(), testUser, models.RecommendationRequest{Mode: models.ModeLLM})
	require.NoError(t, err)

	assert.Equal(t, models.ModeLLM, res.ModeUsed)
	assert.False(t, res.FellBack)
	require.Len(t, res.Items, 2)
	assert.Equal(t, int64(2), res.Items[0].ItemID)
	assert.Equal(t, "best item: Grilled Tofu ($12.00, 450 cal)", res.Items[0].Explanation)
	assert.Equal(t, int64(1), res.Items[1].ItemID)
	assert.InDelta(t, 0.2, res.Items[1].Score, 1e-9)
}

func TestRecommendMeals_UnrankedItemsStayOut(t *testing.T) {
	f := newFixture(menuItem(1, 1, "Rice Bowl"), menuItem(2, 2, "Veggie Bowl"))
	ranker := RankFunc(func(context.Context, string) ([]RankedEntry, error) {
		return []RankedEntry{{ItemID: "2", Score: 0.7, Explanation: "fresh"}}, nil
	})

	res, err := f.engine(ranker, Options{}).RecommendMeals(context.Background(), testUser, models.RecommendationRequest{Mode: models.ModeLLM})
	require.NoError(t, err)
	assert.Equal(t, []string{"Veggie Bowl"}, itemNames(res.Items))
}

func TestBuildPrompt_ListsContext(t *testing.T) {
	desc := strings.Repeat("x", 300)
	prompt := BuildPrompt(
		[]models.MenuItem{{MenuItemID: 7, Name: "Bowl", Description: &desc, Calories: ptr(420.0), Price: ptr(9.5)}},
		UserContext{
			Allergies:   []string{"peanut"},
			ActiveGoals: []models.Goal{{TargetType: "protein_grams", TargetValue: 120, CurrentValue: 40}},
			AvgStress:   ptr(8.0),
		},
	)

	assert.Contains(t, prompt, "allergies: peanut")
	assert.Contains(t, prompt, "protein_grams: target 120, current 40")
	assert.Contains(t, prompt, "recent stress is high")
	assert.Contains(t, prompt, "id=7 | name=Bowl")
	assert.Contains(t, prompt, "calories=420 | price=9.50")
	assert.NotContains(t, prompt, desc)
}

func Test_coerceScore(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{0.7, 0.7, true},
		{1, 1, true},
		{" 0.25 ", 0.25, true},
		{"NaN", 0, false},
		{"high", 0, false},
		{nil, 0, false},
		{[]int{1}, 0, false},
	}

	for _, tt := range tests {
		got, ok := coerceScore(tt.in)
		assert.Equal(t, tt.ok, ok, "%v", tt.in)
		if tt.ok {
			assert.InDelta(t, tt.want, got, 1e-9)
		}
	}
}
