package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-nutri-keeper/models"
)

var priceRanges = []string{models.PriceBudget, models.PriceModerate, models.PriceExpensive, models.PriceLuxury}

// CatalogValidator validates restaurant, menu item and recommendation payloads.
type CatalogValidator struct{}

func NewCatalogValidator() Validator {
	return &CatalogValidator{}
}

func (v *CatalogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var errs Errors

	switch value := obj.(type) {
	case models.RestaurantInput:
		checkName(&errs, "name", value.Name)
	case *models.RestaurantInput:
		return v.Validate(ctx, *value, fields...)

	case models.RestaurantUpdate:
		if value.Name != nil {
			checkName(&errs, "name", *value.Name)
		}
	case *models.RestaurantUpdate:
		return v.Validate(ctx, *value, fields...)

	case models.MenuItemInput:
		checkName(&errs, "name", value.Name)
		checkNonNegative(&errs, "price", value.Price)
		checkNonNegative(&errs, "calories", value.Calories)
		checkNonNegative(&errs, "protein", value.Protein)
		checkNonNegative(&errs, "carbs", value.Carbs)
		checkNonNegative(&errs, "fat", value.Fat)
	case *models.MenuItemInput:
		return v.Validate(ctx, *value, fields...)

	case models.RecommendationRequest:
		switch value.Mode {
		case "", models.ModeBaseline, models.ModeLLM:
		default:
			errs.Add("mode", "mode must be one of: baseline, llm", TypeEnum)
		}
		if n := value.MaxResults; n != nil && (*n < 1 || *n > models.MaxRecommendResults) {
			errs.Add("max_results", fmt.Sprintf("max_results must be between 1 and %d", models.MaxRecommendResults), TypeRange)
		}
		if pr := value.Filters.PriceRange; pr != nil && !oneOf(*pr, priceRanges) {
			errs.AddLoc([]string{"body", "filters", "price_range"}, "price_range must be one of: $, $$, $$$, $$$$", TypeEnum)
		}
	case *models.RecommendationRequest:
		return v.Validate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}

	return errs.Err()
}
