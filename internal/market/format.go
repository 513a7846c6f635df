package market

import (
	"fmt"
	"math"
)

// NotAvailable is shown when no price could be resolved.
const NotAvailable = "N/A"

// FormatPrice renders a price for display. Tiers, in order: zero is free,
// sub-cent collapses to "<$0.01", under a hundred dollars keeps cents,
// under a thousand rounds to whole dollars, anything above shows thousands
// with one decimal.
func FormatPrice(price float64) string {
	switch {
	case price == 0:
		return "Free"
	case price < 0.01:
		return "<$0.01"
	case price < 100:
		return fmt.Sprintf("$%.2f", price)
	case price < 1000:
		return fmt.Sprintf("$%.0f", price)
	default:
		return fmt.Sprintf("$%.1fk", price/1000)
	}
}

// FormatOptionalPrice renders a possibly missing price.
func FormatOptionalPrice(price *float64) string {
	if price == nil {
		return NotAvailable
	}
	return FormatPrice(*price)
}

// FormatRange renders a min-max spread, collapsing to a single value when
// the bounds are effectively equal. The average is preferred for the
// collapsed form.
func FormatRange(minPrice, maxPrice, avgPrice float64) string {
	if math.Abs(maxPrice-minPrice) < 0.01 {
		value := avgPrice
		if value == 0 {
			value = minPrice
		}
		return FormatPrice(value)
	}
	return FormatPrice(minPrice) + " - " + FormatPrice(maxPrice)
}
