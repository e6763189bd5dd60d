package catalog

import (
	"fmt"
	"math"
)

// DiscountPct returns the rounded percentage saved against the "was" price.
// A nil, zero, or not-higher compareAt means no discount, never an error.
func DiscountPct(price float64, compareAt *float64) int {
	if compareAt == nil || *compareAt <= 0 || *compareAt <= price {
		return 0
	}
	return int(math.Round((*compareAt - price) / *compareAt * 100))
}

// DiscountLabel derives the card badge for a price pair: deep discounts
// get the "Min." prefix, small ones a plain percentage, everything else
// no badge at all.
func DiscountLabel(price float64, compareAt *float64) string {
	pct := DiscountPct(price, compareAt)
	switch {
	case pct >= 50:
		return fmt.Sprintf("Min. %d%% Off", pct)
	case pct > 0:
		return fmt.Sprintf("%d%% Off", pct)
	default:
		return ""
	}
}
