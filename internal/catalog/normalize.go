package catalog

import (
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/evoljewels/evolcli/internal/api"
)

// Normalizer flattens the service's celebrity/product groups into the
// two ranked collections the UI consumes. The random source only feeds
// price synthesis; pass a seeded rng for deterministic tests.
type Normalizer struct {
	rng *rand.Rand
	now func() time.Time
}

// NewNormalizer creates a Normalizer. A nil rng gets a time-seeded one.
func NewNormalizer(rng *rand.Rand) *Normalizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Normalizer{rng: rng, now: time.Now}
}

// Normalize converts a raw response into a Result. A response without
// groups is a valid empty outcome, not an error.
func (n *Normalizer) Normalize(resp *api.RecommendationResponse) *Result {
	result := EmptyResult(StatusSuccess, n.now())
	if resp == nil || resp.CelebrityProductGroups == nil {
		return result
	}

	flat := make([]Product, 0, len(resp.CelebrityProductGroups)*4)
	for _, group := range resp.CelebrityProductGroups {
		result.Celebrities = append(result.Celebrities, normalizeCelebrity(group.Celebrity))
		for _, product := range group.Products {
			flat = append(flat, n.normalizeProduct(product))
		}
	}

	// First occurrence wins across groups; a product recommended through
	// several celebrities must appear once.
	seen := make(map[string]struct{}, len(flat))
	unique := make([]Product, 0, len(flat))
	for _, product := range flat {
		if _, ok := seen[product.ID]; ok {
			continue
		}
		seen[product.ID] = struct{}{}
		unique = append(unique, product)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].MatchScore > unique[j].MatchScore
	})

	result.Products = unique
	result.Metadata.TotalRecommendations = len(unique)
	return result
}

func normalizeCelebrity(raw api.CelebrityMatch) Celebrity {
	score := raw.SimilarityScore
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	vibeTags := make([]string, 0, len(raw.PrimaryVibeTags)+len(raw.SecondaryVibeTags))
	vibeTags = append(vibeTags, raw.PrimaryVibeTags...)
	vibeTags = append(vibeTags, raw.SecondaryVibeTags...)

	image := deref(raw.ImageURL)
	if image == "" {
		image = celebrityImagePath(raw.Name)
	}

	return Celebrity{
		ID:              raw.ID.String(),
		Name:            raw.Name,
		Image:           image,
		SimilarityScore: score,
		MatchPercentage: int(math.Round(score * 100)),
		VibeTags:        vibeTags,
		Description:     deref(raw.VibeDescription),
	}
}

func (n *Normalizer) normalizeProduct(raw api.ProductMatch) Product {
	styleTags := make([]string, 0, len(raw.PrimaryStyleTags)+len(raw.SecondaryStyleTags))
	styleTags = append(styleTags, raw.PrimaryStyleTags...)
	styleTags = append(styleTags, raw.SecondaryStyleTags...)

	occasions := raw.Occasions
	if occasions == nil {
		occasions = []string{}
	}

	matchScore := 0.0
	if raw.MatchScore != nil {
		matchScore = *raw.MatchScore
	}

	rawCategory := deref(raw.Category)

	return Product{
		ID:              raw.ID.String(),
		Name:            raw.Name,
		Description:     deref(raw.Description),
		Price:           ResolvePrice(raw.Price, rawCategory, n.rng),
		Image:           deref(raw.ImageURL),
		Category:        NormalizeCategory(rawCategory),
		Material:        deref(raw.Material),
		StyleTags:       styleTags,
		Occasions:       occasions,
		VibeDescription: deref(raw.VibeDescription),
		MatchScore:      matchScore,
		DeliveryTime:    DeliveryTime,
	}
}

// celebrityImagePath derives the deterministic asset path used when the
// service supplies no image URL.
func celebrityImagePath(name string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(name)), "-")
	return "/images/celebrities/" + slug + ".jpg"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
