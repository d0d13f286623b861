package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoljewels/evolcli/internal/catalog"
)

func sampleProducts() []catalog.Product {
	return []catalog.Product{
		{
			ID:         "r1",
			Name:       "Eterna Solitaire Ring",
			Category:   catalog.Rings,
			Material:   "18K White Gold",
			Price:      45000,
			Occasions:  []string{"Weddings", "Engagement/Anniversary"},
			MatchScore: 0.91,
		},
		{
			ID:              "e1",
			Name:            "Noor Drop Earrings",
			Category:        catalog.Earrings,
			Material:        "Rose Gold",
			Price:           32500,
			Occasions:       []string{"Cocktail Parties"},
			VibeDescription: "Playful evening sparkle",
			MatchScore:      0.84,
		},
		{
			ID:          "n1",
			Name:        "Celeste Layered Necklace",
			Category:    catalog.Necklaces,
			Description: "Delicate layered chain for daily wear",
			Price:       58000,
			Occasions:   []string{"Daily Wear", "Office/Professional"},
			MatchScore:  0.79,
		},
		{
			ID:         "r2",
			Name:       "Aria Stacking Band",
			Category:   catalog.Rings,
			Price:      21000,
			Occasions:  []string{"Daily Wear"},
			MatchScore: 0.72,
		},
	}
}

func TestFilter_NoOptionsKeepsAllInMatchOrder(t *testing.T) {
	result := catalog.Filter(sampleProducts(), catalog.FilterOptions{})
	require.Len(t, result, 4)
	assert.Equal(t, "r1", result[0].ID)
	assert.Equal(t, "r2", result[3].ID)
}

func TestFilter_CategoryAcceptsRawLabels(t *testing.T) {
	for _, label := range []string{catalog.Rings, "rings", "RING", "band"} {
		result := catalog.Filter(sampleProducts(), catalog.FilterOptions{Category: label})
		assert.Len(t, result, 2, "label=%q", label)
	}
}

func TestFilter_Occasion(t *testing.T) {
	result := catalog.Filter(sampleProducts(), catalog.FilterOptions{Occasion: "daily wear"})
	require.Len(t, result, 2)
	assert.Equal(t, "n1", result[0].ID)
	assert.Equal(t, "r2", result[1].ID)
}

func TestFilter_QuerySearchesTextFields(t *testing.T) {
	result := catalog.Filter(sampleProducts(), catalog.FilterOptions{Query: "solitaire"})
	require.Len(t, result, 1)
	assert.Equal(t, "r1", result[0].ID)

	result = catalog.Filter(sampleProducts(), catalog.FilterOptions{Query: "rose gold"})
	require.Len(t, result, 1)
	assert.Equal(t, "e1", result[0].ID, "material is searchable")

	result = catalog.Filter(sampleProducts(), catalog.FilterOptions{Query: "evening"})
	require.Len(t, result, 1)
	assert.Equal(t, "e1", result[0].ID, "vibe description is searchable")
}

func TestFilter_MaxPrice(t *testing.T) {
	result := catalog.Filter(sampleProducts(), catalog.FilterOptions{MaxPrice: 33000})
	require.Len(t, result, 2)
	assert.Equal(t, "e1", result[0].ID)
	assert.Equal(t, "r2", result[1].ID)
}

func TestFilter_SortAndLimit(t *testing.T) {
	result := catalog.Filter(sampleProducts(), catalog.FilterOptions{Sort: "price", Limit: 2})
	require.Len(t, result, 2)
	assert.Equal(t, "r2", result[0].ID)
	assert.Equal(t, "e1", result[1].ID)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	catalog.Filter(products, catalog.FilterOptions{Sort: "price-desc"})
	assert.Equal(t, "r1", products[0].ID)
	assert.Equal(t, "r2", products[3].ID)
}

func TestSortProducts_PriceModes(t *testing.T) {
	asc := catalog.SortProducts(sampleProducts(), "price")
	assert.Equal(t, "r2", asc[0].ID)
	assert.Equal(t, "n1", asc[3].ID)

	desc := catalog.SortProducts(sampleProducts(), "priciest")
	assert.Equal(t, "n1", desc[0].ID)
	assert.Equal(t, "r2", desc[3].ID)
}

func TestSortProducts_StableOnEqualPrices(t *testing.T) {
	products := []catalog.Product{
		{ID: "a", Price: 30000, MatchScore: 0.9},
		{ID: "b", Price: 30000, MatchScore: 0.8},
		{ID: "c", Price: 30000, MatchScore: 0.7},
	}
	sorted := catalog.SortProducts(products, "price")
	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", sorted[1].ID)
	assert.Equal(t, "c", sorted[2].ID)
}

func TestNormalizeSortMode(t *testing.T) {
	assert.Equal(t, catalog.SortPriceAsc, catalog.NormalizeSortMode("cheapest"))
	assert.Equal(t, catalog.SortPriceAsc, catalog.NormalizeSortMode(" Price-Asc "))
	assert.Equal(t, catalog.SortPriceDesc, catalog.NormalizeSortMode("expensive"))
	assert.Equal(t, catalog.SortMatch, catalog.NormalizeSortMode("match"))
	assert.Equal(t, catalog.SortMatch, catalog.NormalizeSortMode("bogus"))
}

func TestValidSortMode(t *testing.T) {
	for _, mode := range []string{"", "match", "relevance", "price", "price-desc", "cheapest"} {
		assert.True(t, catalog.ValidSortMode(mode), mode)
	}
	assert.False(t, catalog.ValidSortMode("alphabetical"))
}

func TestCountByCategory(t *testing.T) {
	counts := catalog.CountByCategory(sampleProducts())
	assert.Equal(t, 2, counts[catalog.Rings])
	assert.Equal(t, 1, counts[catalog.Earrings])
	assert.Equal(t, 1, counts[catalog.Necklaces])
	assert.NotContains(t, counts, catalog.Pendants)
}

func TestContainsIgnoreCase(t *testing.T) {
	assert.True(t, catalog.ContainsIgnoreCase([]string{"Weddings", "Daily Wear"}, "daily wear"))
	assert.False(t, catalog.ContainsIgnoreCase([]string{"Weddings"}, "wedding"))
	assert.False(t, catalog.ContainsIgnoreCase(nil, "anything"))
}
