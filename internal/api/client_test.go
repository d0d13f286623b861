package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoljewels/evolcli/internal/api"
)

func newTestRecommendationServer(t *testing.T, resp api.RecommendationResponse) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/recommendations", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.RecommendationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.IncludeScores)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func sampleRequest() api.RecommendationRequest {
	return api.RecommendationRequest{
		Survey: api.SurveyPayload{
			StylePreference: "Modern and minimal - Clean lines and understated elegance",
			Occasions:       []string{"Weddings"},
		},
		TopN:               15,
		CelebrityThreshold: 0.4,
		IncludeScores:      true,
	}
}

func TestFetchRecommendations(t *testing.T) {
	desc := "Effortless grace"
	srv := newTestRecommendationServer(t, api.RecommendationResponse{
		Status: "success",
		CelebrityProductGroups: []api.CelebrityProductGroup{
			{
				Celebrity: api.CelebrityMatch{
					ID:              "c1",
					Name:            "Deepika Padukone",
					SimilarityScore: 0.85,
					VibeDescription: &desc,
				},
				Products: []api.ProductMatch{
					{ID: "p1", Name: "Eterna Solitaire Ring", Price: api.NumberPrice(45000)},
				},
				TotalProducts: 1,
			},
		},
		TotalRecommendations: 1,
	})
	defer srv.Close()

	client := api.NewClientWithBaseURL(srv.URL)
	resp, err := client.FetchRecommendations(context.Background(), sampleRequest())

	require.NoError(t, err)
	require.Len(t, resp.CelebrityProductGroups, 1)
	group := resp.CelebrityProductGroups[0]
	assert.Equal(t, "Deepika Padukone", group.Celebrity.Name)
	require.Len(t, group.Products, 1)
	assert.Equal(t, "Eterna Solitaire Ring", group.Products[0].Name)
	price, ok := group.Products[0].Price.Number()
	require.True(t, ok)
	assert.Equal(t, 45000.0, price)
}

func TestFetchRecommendations_MixedIDAndPriceShapes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"celebrity_product_groups": [
				{
					"celebrity": {"id": 7, "name": "Alia Bhatt", "similarity_score": 0.7},
					"products": [
						{"id": 101, "name": "Mira Pendant", "price": "₹12,500"},
						{"id": "p-2", "name": "Noor Earrings", "price": 32500.5},
						{"id": "p-3", "name": "Aria Band", "price": null}
					]
				}
			]
		}`))
	}))
	defer srv.Close()

	client := api.NewClientWithBaseURL(srv.URL)
	resp, err := client.FetchRecommendations(context.Background(), sampleRequest())
	require.NoError(t, err)

	group := resp.CelebrityProductGroups[0]
	assert.Equal(t, "7", group.Celebrity.ID.String())
	require.Len(t, group.Products, 3)

	assert.Equal(t, "101", group.Products[0].ID.String())
	text, ok := group.Products[0].Price.Text()
	require.True(t, ok)
	assert.Equal(t, "₹12,500", text)

	number, ok := group.Products[1].Price.Number()
	require.True(t, ok)
	assert.Equal(t, 32500.5, number)

	assert.False(t, group.Products[2].Price.Present())
}

func TestFetchRecommendations_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail": "model not loaded"}`))
	}))
	defer srv.Close()

	client := api.NewClientWithBaseURL(srv.URL)
	_, err := client.FetchRecommendations(context.Background(), sampleRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching recommendations")
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestFetchRecommendations_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status": "success", "celebrity_product_groups": [`))
	}))
	defer srv.Close()

	client := api.NewClientWithBaseURL(srv.URL)
	_, err := client.FetchRecommendations(context.Background(), sampleRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestFetchRecommendations_TrailingContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status": "success"} {"extra": true}`))
	}))
	defer srv.Close()

	client := api.NewClientWithBaseURL(srv.URL)
	_, err := client.FetchRecommendations(context.Background(), sampleRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "trailing JSON content")
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(api.HealthResponse{
			Status:            "healthy",
			Version:           "1.4.2",
			RecommenderLoaded: true,
		})
	}))
	defer srv.Close()

	client := api.NewClientWithBaseURL(srv.URL)
	health, err := client.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.True(t, health.RecommenderLoaded)
}

func TestHealth_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := api.NewClientWithBaseURL(srv.URL)
	_, err := client.Health(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "checking health")
	assert.Contains(t, err.Error(), "503")
}
