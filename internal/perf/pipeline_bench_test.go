package perf_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evoljewels/evolcli/internal/api"
	"github.com/evoljewels/evolcli/internal/catalog"
	"github.com/evoljewels/evolcli/internal/display"
	"github.com/evoljewels/evolcli/internal/recommend"
	"github.com/evoljewels/evolcli/internal/survey"
)

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

func benchmarkGroups(celebrityCount, productsPerCelebrity int) []api.CelebrityProductGroup {
	categories := []string{"rings", "earrings", "necklace", "bangles", "pendant"}

	groups := make([]api.CelebrityProductGroup, 0, celebrityCount)
	for c := 0; c < celebrityCount; c++ {
		products := make([]api.ProductMatch, 0, productsPerCelebrity)
		for p := 0; p < productsPerCelebrity; p++ {
			// a third of the ids repeat across celebrities to exercise dedup
			id := fmt.Sprintf("piece-%d-%d", c, p)
			if p%3 == 0 {
				id = fmt.Sprintf("shared-piece-%d", p)
			}
			price := api.NumberPrice(float64(15000 + (p*937)%60000))
			if p%5 == 0 {
				price = api.TextPrice(fmt.Sprintf("₹%d,500", 20+p))
			}
			if p%11 == 0 {
				price = api.RawPrice{}
			}
			products = append(products, api.ProductMatch{
				ID:               api.ID(id),
				Name:             fmt.Sprintf("Sparkling piece %d-%d", c, p),
				Description:      strPtr("A finely crafted piece for every occasion"),
				Price:            price,
				Category:         strPtr(categories[p%len(categories)]),
				Material:         strPtr("18K Gold"),
				PrimaryStyleTags: []string{"elegant", "modern"},
				Occasions:        []string{"Weddings", "Daily Wear"},
				MatchScore:       floatPtr(float64((p*7919)%1000) / 1000),
			})
		}
		groups = append(groups, api.CelebrityProductGroup{
			Celebrity: api.CelebrityMatch{
				ID:              api.ID(fmt.Sprintf("celeb-%d", c)),
				Name:            fmt.Sprintf("Celebrity %d", c),
				SimilarityScore: float64(c%10) / 10,
				PrimaryVibeTags: []string{"elegant"},
			},
			Products:      products,
			TotalProducts: len(products),
		})
	}
	return groups
}

func setupPipelineServer(b *testing.B, celebrityCount, productsPerCelebrity int) *api.Client {
	b.Helper()

	payload, err := json.Marshal(api.RecommendationResponse{
		Status:                 "success",
		CelebrityProductGroups: benchmarkGroups(celebrityCount, productsPerCelebrity),
	})
	if err != nil {
		b.Fatalf("marshal recommendations payload: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/recommendations":
			_, _ = w.Write(payload)
		default:
			http.NotFound(w, r)
		}
	}))
	b.Cleanup(server.Close)

	return api.NewClientWithBaseURL(server.URL)
}

func benchmarkAnswers() survey.Answers {
	return survey.Answers{
		survey.IndexStyle:     survey.SingleAnswer("Modern and minimal - Clean lines and understated elegance"),
		survey.IndexOccasions: survey.MultiAnswer("Weddings", "Daily Wear"),
		survey.IndexBudget:    survey.SingleAnswer("Under ₹50,000 (Accessible luxury)"),
	}
}

func runPipeline(b *testing.B, client *api.Client, normalizer *catalog.Normalizer) {
	b.Helper()

	resp, err := client.FetchRecommendations(
		context.Background(),
		recommend.BuildRequest(benchmarkAnswers(), recommend.Options{}),
	)
	if err != nil {
		b.Fatalf("fetch recommendations: %v", err)
	}

	result := normalizer.Normalize(resp)
	if len(result.Products) == 0 {
		b.Fatalf("normalize returned no products")
	}

	filtered := catalog.Filter(result.Products, catalog.FilterOptions{
		Category: "rings",
		Occasion: "weddings",
		Query:    "sparkling",
		Sort:     catalog.SortPriceAsc,
		Limit:    50,
	})
	if len(filtered) == 0 {
		b.Fatalf("filter returned no products")
	}

	trimmed := *result
	trimmed.Products = filtered
	if err := display.PrintResultJSON(io.Discard, &trimmed); err != nil {
		b.Fatalf("print result json: %v", err)
	}
}

func BenchmarkRecommendationPipeline_1kPieces(b *testing.B) {
	client := setupPipelineServer(b, 20, 50)
	normalizer := catalog.NewNormalizer(rand.New(rand.NewSource(1)))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runPipeline(b, client, normalizer)
	}
}
