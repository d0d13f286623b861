package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evoljewels/evolcli/internal/catalog"
)

func TestNormalizeCategory_Synonyms(t *testing.T) {
	cases := map[string]string{
		"necklace":         catalog.Necklaces,
		"Chokers":          catalog.Necklaces,
		"chain":            catalog.Necklaces,
		"studs":            catalog.Earrings,
		"Hoops":            catalog.Earrings,
		"chandelier":       catalog.Earrings,
		"band":             catalog.Rings,
		"solitaire":        catalog.Rings,
		"engagement rings": catalog.Rings,
		"bangles":          catalog.Bracelets,
		"cuff":             catalog.Bracelets,
		"locket":           catalog.Pendants,
		"charms":           catalog.Pendants,
	}
	for raw, want := range cases {
		assert.Equal(t, want, catalog.NormalizeCategory(raw), "raw=%q", raw)
	}
}

func TestNormalizeCategory_CaseAndWhitespace(t *testing.T) {
	assert.Equal(t, catalog.Rings, catalog.NormalizeCategory("  RiNgS  "))
	assert.Equal(t, catalog.Necklaces, catalog.NormalizeCategory("NECKLACE"))
}

func TestNormalizeCategory_SubstringHeuristics(t *testing.T) {
	assert.Equal(t, catalog.Earrings, catalog.NormalizeCategory("statement ear cuffs"))
	assert.Equal(t, catalog.Rings, catalog.NormalizeCategory("cocktail ring set"))
	assert.Equal(t, catalog.Bracelets, catalog.NormalizeCategory("tennis bracelet collection"))
	assert.Equal(t, catalog.Pendants, catalog.NormalizeCategory("gold charm piece"))
	assert.Equal(t, catalog.Necklaces, catalog.NormalizeCategory("layered neckpiece"))
}

// "ear" is checked before "ring" so earring-adjacent labels never land
// in RINGS.
func TestNormalizeCategory_EarBeatsRing(t *testing.T) {
	assert.Equal(t, catalog.Earrings, catalog.NormalizeCategory("diamond earring"))
}

func TestNormalizeCategory_UnknownUppercased(t *testing.T) {
	assert.Equal(t, "BROOCH", catalog.NormalizeCategory("Brooch"))
	assert.Equal(t, "MAANG TIKKA", catalog.NormalizeCategory("  maang tikka "))
}

func TestNormalizeCategory_Empty(t *testing.T) {
	assert.Equal(t, "", catalog.NormalizeCategory(""))
	assert.Equal(t, "", catalog.NormalizeCategory("   "))
}

func TestIsCanonicalCategory(t *testing.T) {
	for _, tag := range catalog.Categories {
		assert.True(t, catalog.IsCanonicalCategory(tag), tag)
	}
	assert.False(t, catalog.IsCanonicalCategory("BROOCH"))
	assert.False(t, catalog.IsCanonicalCategory("rings"))
	assert.False(t, catalog.IsCanonicalCategory(""))
}
