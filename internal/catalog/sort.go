package catalog

import (
	"sort"
	"strings"
)

// Sort modes accepted by SortProducts and the --sort flag.
const (
	SortMatch     = ""
	SortPriceAsc  = "price"
	SortPriceDesc = "price-desc"
)

// NormalizeSortMode maps user-facing sort spellings to a canonical mode.
// Unknown values fall back to the default match ordering.
func NormalizeSortMode(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "price", "price-asc", "cheapest":
		return SortPriceAsc
	case "price-desc", "priciest", "expensive":
		return SortPriceDesc
	default:
		return SortMatch
	}
}

// ValidSortMode reports whether raw is an accepted sort spelling.
func ValidSortMode(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "match", "relevance", "price", "price-asc", "cheapest", "price-desc", "priciest", "expensive":
		return true
	default:
		return false
	}
}

// SortProducts returns a sorted copy. The default mode keeps the
// normalizer's match ordering; price modes reorder stably so equal-price
// products keep their match rank.
func SortProducts(products []Product, mode string) []Product {
	out := append([]Product(nil), products...)

	switch NormalizeSortMode(mode) {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].MatchScore > out[j].MatchScore })
	}
	return out
}
