package models

// RecommendMode selects the scorer.
type RecommendMode string

const (
	ModeBaseline RecommendMode = "baseline"
	ModeLLM      RecommendMode = "llm"
)

// Price ranges accepted by recommendation filters.
const (
	PriceBudget    = "$"
	PriceModerate  = "$$"
	PriceExpensive = "$$$"
	PriceLuxury    = "$$$$"
)

// MaxRecommendResults caps max_results on both recommendation endpoints.
const MaxRecommendResults = 100

// RecommendationFilters are optional hard filters supplied by the caller.
type RecommendationFilters struct {
	Diet       []string `json:"diet,omitempty"`
	Cuisine    []string `json:"cuisine,omitempty"`
	PriceRange *string  `json:"price_range,omitempty"`
}

// RecommendationRequest is the body of both recommendation endpoints.
type RecommendationRequest struct {
	Filters    RecommendationFilters `json:"filters"`
	Mode       RecommendMode         `json:"mode,omitempty"`
	MaxResults *int                  `json:"max_results,omitempty"`
}

// RecommendedItem is one ranked entry. ItemID is a menu item id for meal
// recommendations and a restaurant id for restaurant recommendations.
type RecommendedItem struct {
	ItemID      int64   `json:"item_id"`
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// RecommendationResponse is the body returned by both recommendation endpoints.
type RecommendationResponse struct {
	Items []RecommendedItem `json:"items"`
}
