package catalog

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/evoljewels/evolcli/internal/api"
)

// Synthesis ranges per canonical category, [min, max) in whole rupees.
var priceRanges = map[string][2]int{
	Necklaces: {25000, 85000},
	Earrings:  {15000, 45000},
	Rings:     {20000, 60000},
	Bracelets: {18000, 50000},
	Pendants:  {12000, 35000},
}

var defaultPriceRange = [2]int{15000, 50000}

// ResolvePrice converts whatever the service sent into a displayable
// integer price. Numbers pass through (truncated toward zero), strings
// are stripped to their digits, and anything absent or unparseable gets
// a category-plausible price drawn from rng. The external data is too
// unreliable to let a missing price block rendering.
func ResolvePrice(raw api.RawPrice, category string, rng *rand.Rand) int {
	if v, ok := raw.Number(); ok {
		return int(v)
	}
	if s, ok := raw.Text(); ok {
		if digits := stripNonDigits(s); digits != "" {
			if v, err := strconv.Atoi(digits); err == nil {
				return v
			}
		}
	}
	return SynthesizePrice(category, rng)
}

// SynthesizePrice draws a uniform price from the category's range. The
// category label may be raw; it is canonicalized before lookup.
func SynthesizePrice(category string, rng *rand.Rand) int {
	bounds, ok := priceRanges[NormalizeCategory(category)]
	if !ok {
		bounds = defaultPriceRange
	}
	return bounds[0] + rng.Intn(bounds[1]-bounds[0])
}

// PriceRange returns the synthesis bounds for a (raw or canonical)
// category label.
func PriceRange(category string) (min, max int) {
	bounds, ok := priceRanges[NormalizeCategory(category)]
	if !ok {
		bounds = defaultPriceRange
	}
	return bounds[0], bounds[1]
}

// stripNonDigits drops every rune that is not an ASCII digit, which
// removes currency symbols, thousands separators, and stray words like
// "INR" in one pass.
func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
