package recommend

import "github.com/MKhiriev/go-nutri-keeper/models"

// InPriceRange reports whether price falls into priceRange. Items without a
// price only pass the budget range. An unknown range passes everything.
func InPriceRange(price *float64, priceRange string) bool {
	if price == nil {
		return priceRange == models.PriceBudget
	}

	p := *price
	switch priceRange {
	case models.PriceBudget:
		return p <= 10
	case models.PriceModerate:
		return p > 10 && p <= 25
	case models.PriceExpensive:
		return p > 25 && p <= 45
	case models.PriceLuxury:
		return p > 45
	}
	return true
}
