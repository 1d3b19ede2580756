package recommend

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

const (
	defaultMaxResults = 10
	defaultLLMTimeout = 10 * time.Second
)

// Options tunes an [Engine]. Zero values fall back to defaults.
type Options struct {
	MaxResults int
	LLMTimeout time.Duration
}

// Engine produces meal and restaurant recommendations.
type Engine struct {
	catalog  Catalog
	health   HealthSource
	goals    GoalSource
	wellness WellnessSource
	ranker   Ranker

	maxResults int
	llmTimeout time.Duration
	clock      func() time.Time
}

// NewEngine builds an [Engine]. A nil ranker makes every request use the
// baseline scorer.
func NewEngine(catalog Catalog, health HealthSource, goals GoalSource, wellness WellnessSource, ranker Ranker, opts Options) *Engine {
	e := &Engine{
		catalog:    catalog,
		health:     health,
		goals:      goals,
		wellness:   wellness,
		ranker:     ranker,
		maxResults: opts.MaxResults,
		llmTimeout: opts.LLMTimeout,
	}
	if e.maxResults <= 0 {
		e.maxResults = defaultMaxResults
	}
	if e.llmTimeout <= 0 {
		e.llmTimeout = defaultLLMTimeout
	}
	return e
}

// Result is a ranked recommendation list with the scorer that produced it.
// FellBack is set when the language model was requested and failed.
type Result struct {
	Items    []models.RecommendedItem
	ModeUsed models.RecommendMode
	FellBack bool
}

type scoredItem struct {
	item        models.MenuItem
	position    int
	score       float64
	explanation string
}

// RecommendMeals ranks the safe menu items of active restaurants for user.
func (e *Engine) RecommendMeals(ctx context.Context, user models.User, req models.RecommendationRequest) (Result, error) {
	r, err := e.rankItems(ctx, user, req)
	if err != nil {
		return Result{}, err
	}

	limit := e.limit(req)
	items := make([]models.RecommendedItem, 0, min(limit, len(r.scored)))
	for _, s := range r.scored {
		if len(items) == limit {
			break
		}
		items = append(items, models.RecommendedItem{
			ItemID:      s.item.MenuItemID,
			Name:        s.item.Name,
			Score:       s.score,
			Explanation: s.explanation,
		})
	}

	return Result{Items: items, ModeUsed: r.mode, FellBack: r.fellBack}, nil
}

// RecommendRestaurants ranks active restaurants by their best safe menu item.
// Restaurants with no safe item are left out. When the language model ranked
// none of a restaurant's safe items, its best baseline-scored item stands in.
func (e *Engine) RecommendRestaurants(ctx context.Context, user models.User, req models.RecommendationRequest) (Result, error) {
	r, err := e.rankItems(ctx, user, req)
	if err != nil {
		return Result{}, err
	}

	// both lists are sorted, so the first item seen for a restaurant is its
	// best one; ranked items are looked at before baseline stand-ins
	seen := make(map[int64]bool)
	var best []scoredItem
	for _, list := range [][]scoredItem{r.scored, r.unranked} {
		for _, s := range list {
			if seen[s.item.RestaurantID] {
				continue
			}
			seen[s.item.RestaurantID] = true
			best = append(best, s)
		}
	}
	sortScored(best)

	limit := e.limit(req)
	items := make([]models.RecommendedItem, 0, min(limit, len(best)))
	for _, s := range best[:min(limit, len(best))] {
		items = append(items, models.RecommendedItem{
			ItemID:      s.item.RestaurantID,
			Name:        s.item.RestaurantName,
			Score:       s.score,
			Explanation: bestItemExplanation(s.item),
		})
	}

	return Result{Items: items, ModeUsed: r.mode, FellBack: r.fellBack}, nil
}

// ranking is the scored candidate list of one request. unranked holds the
// baseline scores of safe candidates the language model left out; it is
// empty when the baseline scored everything.
type ranking struct {
	scored   []scoredItem
	unranked []scoredItem
	mode     models.RecommendMode
	fellBack bool
}

// rankItems loads the context and catalog, drops unsafe and filtered items
// and returns the rest scored and sorted.
func (e *Engine) rankItems(ctx context.Context, user models.User, req models.RecommendationRequest) (ranking, error) {
	uc, err := e.loadContext(ctx, user)
	if err != nil {
		return ranking{}, err
	}
	uc = uc.withDiet(req.Filters.Diet)

	catalog, err := e.catalog.ListActiveMenuItems(ctx)
	if err != nil {
		return ranking{}, fmt.Errorf("%w: %w", ErrLoadingCatalog, err)
	}
	candidates := filterCandidates(catalog, uc, req.Filters)

	mode := req.Mode
	if mode == "" {
		mode = models.ModeLLM
	}
	if mode == models.ModeLLM && e.ranker == nil {
		mode = models.ModeBaseline
	}

	var scored []scoredItem
	fellBack := false
	if mode == models.ModeLLM && len(candidates) > 0 {
		scored, err = e.scoreWithRanker(ctx, candidates, uc)
		if err != nil {
			logger.FromContext(ctx).Warn().
				Err(err).
				Str("func", "*Engine.rankItems").
				Int64("user_id", user.UserID).
				Msg("ranker failed, falling back to baseline")
			mode, fellBack, scored = models.ModeBaseline, true, nil
		}
	}
	var unranked []scoredItem
	if scored == nil {
		mode = models.ModeBaseline
		scored = scoreBaseline(candidates, uc)
	} else {
		unranked = scoreUnranked(candidates, scored, uc)
	}

	sortScored(scored)
	sortScored(unranked)
	return ranking{scored: scored, unranked: unranked, mode: mode, fellBack: fellBack}, nil
}

// filterCandidates applies the safety filter and the request's hard filters.
func filterCandidates(items []models.MenuItem, uc UserContext, filters models.RecommendationFilters) []models.MenuItem {
	cuisines := make(map[string]bool, len(filters.Cuisine))
	for _, c := range filters.Cuisine {
		if c = normalizeText(c); c != "" {
			cuisines[c] = true
		}
	}

	candidates := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if !IsSafe(item, uc.Allergies, uc.StrictPreferences) {
			continue
		}
		if filters.PriceRange != nil && !InPriceRange(item.Price, *filters.PriceRange) {
			continue
		}
		if len(cuisines) > 0 && (item.Cuisine == nil || !cuisines[normalizeText(*item.Cuisine)]) {
			continue
		}
		candidates = append(candidates, item)
	}
	return candidates
}

func scoreBaseline(candidates []models.MenuItem, uc UserContext) []scoredItem {
	scored := make([]scoredItem, len(candidates))
	for i, item := range candidates {
		score, explanation := BaselineScore(item, uc)
		scored[i] = scoredItem{item: item, position: i, score: score, explanation: explanation}
	}
	return scored
}

// scoreUnranked baseline-scores the candidates missing from ranked, keeping
// their candidate positions for tie-breaks.
func scoreUnranked(candidates []models.MenuItem, ranked []scoredItem, uc UserContext) []scoredItem {
	inRanking := make(map[int]bool, len(ranked))
	for _, s := range ranked {
		inRanking[s.position] = true
	}

	var unranked []scoredItem
	for i, item := range candidates {
		if inRanking[i] {
			continue
		}
		score, explanation := BaselineScore(item, uc)
		unranked = append(unranked, scoredItem{item: item, position: i, score: score, explanation: explanation})
	}
	return unranked
}

func (e *Engine) scoreWithRanker(ctx context.Context, candidates []models.MenuItem, uc UserContext) ([]scoredItem, error) {
	ctx, cancel := context.WithTimeout(ctx, e.llmTimeout)
	defer cancel()

	entries, err := e.ranker.Rank(ctx, BuildPrompt(candidates, uc))
	if err != nil {
		return nil, err
	}

	valid := validateRankings(entries, candidates)
	if len(valid) == 0 {
		return nil, ErrNoValidRankings
	}
	return valid, nil
}

// sortScored orders by score, then by nutritional completeness, then by
// candidate order.
func sortScored(scored []scoredItem) {
	slices.SortStableFunc(scored, func(a, b scoredItem) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		if c := cmp.Compare(b.item.Completeness(), a.item.Completeness()); c != 0 {
			return c
		}
		return cmp.Compare(a.position, b.position)
	})
}

// limit is the requested result count, clamped to MaxRecommendResults so a
// caller that skipped validation still cannot size allocations.
func (e *Engine) limit(req models.RecommendationRequest) int {
	n := e.maxResults
	if req.MaxResults != nil && *req.MaxResults > 0 {
		n = *req.MaxResults
	}
	return min(n, models.MaxRecommendResults)
}

func bestItemExplanation(item models.MenuItem) string {
	price := "price n/a"
	if item.Price != nil {
		price = fmt.Sprintf("$%.2f", *item.Price)
	}
	calories := "calories n/a"
	if item.Calories != nil {
		calories = fmt.Sprintf("%.0f cal", *item.Calories)
	}
	return "best item: " + strings.TrimSpace(item.Name) + " (" + price + ", " + calories + ")"
}
