package sale

import "github.com/shopspring/decimal"

type PriceCalculator struct {
	places int32
}

// NewPriceCalculator rounds to places decimal digits, half away from zero.
func NewPriceCalculator(places int32) *PriceCalculator {
	return &PriceCalculator{places: places}
}

// Calculate folds the takeoffs of sales into original in order. Each takeoff is
// computed from the original price and added to the running price.
func (c *PriceCalculator) Calculate(original decimal.Decimal, sales []*Sale) decimal.Decimal {
	price := original
	for _, s := range sales {
		price = price.Add(s.CalculateTakeoff(original)).Round(c.places)
		if price.IsNegative() {
			price = decimal.Zero
		}
	}
	return price
}
