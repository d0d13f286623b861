package catalog

import "strings"

// Canonical category tags used throughout the UI.
const (
	Necklaces = "NECKLACES"
	Earrings  = "EARRINGS"
	Rings     = "RINGS"
	Bracelets = "BRACELETS"
	Pendants  = "PENDANTS"
)

// Categories lists the canonical tags in display order.
var Categories = []string{Necklaces, Earrings, Rings, Bracelets, Pendants}

var categorySynonyms = map[string]string{
	"necklace":  Necklaces,
	"necklaces": Necklaces,
	"choker":    Necklaces,
	"chokers":   Necklaces,
	"chain":     Necklaces,
	"chains":    Necklaces,

	"earring":     Earrings,
	"earrings":    Earrings,
	"stud":        Earrings,
	"studs":       Earrings,
	"hoop":        Earrings,
	"hoops":       Earrings,
	"drop":        Earrings,
	"drops":       Earrings,
	"chandelier":  Earrings,
	"chandeliers": Earrings,

	"ring":             Rings,
	"rings":            Rings,
	"band":             Rings,
	"bands":            Rings,
	"solitaire":        Rings,
	"solitaires":       Rings,
	"engagement ring":  Rings,
	"engagement rings": Rings,

	"bracelet":  Bracelets,
	"bracelets": Bracelets,
	"bangle":    Bracelets,
	"bangles":   Bracelets,
	"cuff":      Bracelets,
	"cuffs":     Bracelets,

	"pendant":  Pendants,
	"pendants": Pendants,
	"locket":   Pendants,
	"lockets":  Pendants,
	"charm":    Pendants,
	"charms":   Pendants,
}

// NormalizeCategory maps a free-text category label to a canonical tag.
// Exact synonym matches win; otherwise ordered substring heuristics fire,
// first hit wins. Unrecognized labels come back uppercased so they still
// group consistently; empty input stays empty.
func NormalizeCategory(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	if tag, ok := categorySynonyms[s]; ok {
		return tag
	}

	switch {
	case strings.Contains(s, "ear"):
		return Earrings
	case strings.Contains(s, "ring"):
		return Rings
	case strings.Contains(s, "bracelet"), strings.Contains(s, "bangle"):
		return Bracelets
	case strings.Contains(s, "pendant"), strings.Contains(s, "charm"):
		return Pendants
	case strings.Contains(s, "neck"), strings.Contains(s, "chain"):
		return Necklaces
	}
	return strings.ToUpper(strings.TrimSpace(raw))
}

// IsCanonicalCategory reports whether tag is one of the five fixed tags.
func IsCanonicalCategory(tag string) bool {
	switch tag {
	case Necklaces, Earrings, Rings, Bracelets, Pendants:
		return true
	default:
		return false
	}
}
