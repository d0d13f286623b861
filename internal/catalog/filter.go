package catalog

import "strings"

// FilterOptions holds all browse filter criteria.
type FilterOptions struct {
	Category string // raw or canonical label; canonicalized before matching
	Occasion string
	Query    string
	MaxPrice int
	Sort     string
	Limit    int
}

// Filter narrows and orders a product collection according to the given
// options. The input slice is never mutated.
func Filter(products []Product, opts FilterOptions) []Product {
	result := products

	if opts.Category != "" {
		wanted := NormalizeCategory(opts.Category)
		result = where(result, func(p Product) bool {
			return p.Category == wanted
		})
	}

	if opts.Occasion != "" {
		result = where(result, func(p Product) bool {
			return ContainsIgnoreCase(p.Occasions, opts.Occasion)
		})
	}

	if opts.Query != "" {
		q := strings.ToLower(opts.Query)
		result = where(result, func(p Product) bool {
			return strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Description), q) ||
				strings.Contains(strings.ToLower(p.Material), q) ||
				strings.Contains(strings.ToLower(p.VibeDescription), q)
		})
	}

	if opts.MaxPrice > 0 {
		result = where(result, func(p Product) bool {
			return p.Price <= opts.MaxPrice
		})
	}

	result = SortProducts(result, opts.Sort)

	if opts.Limit > 0 && opts.Limit < len(result) {
		result = result[:opts.Limit]
	}

	return result
}

// CountByCategory returns a map of canonical category tag to product count.
func CountByCategory(products []Product) map[string]int {
	counts := make(map[string]int)
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		counts[p.Category]++
	}
	return counts
}

// ContainsIgnoreCase reports whether any element in slice matches val
// case-insensitively.
func ContainsIgnoreCase(slice []string, val string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, val) {
			return true
		}
	}
	return false
}

func where(products []Product, fn func(Product) bool) []Product {
	var result []Product
	for _, p := range products {
		if fn(p) {
			result = append(result, p)
		}
	}
	return result
}
