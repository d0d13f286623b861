package recommend_test

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoljewels/evolcli/internal/api"
	"github.com/evoljewels/evolcli/internal/catalog"
	"github.com/evoljewels/evolcli/internal/recommend"
	"github.com/evoljewels/evolcli/internal/survey"
)

type stubFetcher struct {
	lastRequest api.RecommendationRequest
	resp        *api.RecommendationResponse
	err         error
}

func (s *stubFetcher) FetchRecommendations(_ context.Context, req api.RecommendationRequest) (*api.RecommendationResponse, error) {
	s.lastRequest = req
	return s.resp, s.err
}

func fullAnswers() survey.Answers {
	return survey.Answers{
		survey.IndexStyle:       survey.SingleAnswer("Modern and minimal - Clean lines and understated elegance"),
		survey.IndexOccasions:   survey.MultiAnswer("Weddings", "Daily Wear"),
		survey.IndexJewelryType: survey.SingleAnswer("Solitaire diamonds - Simple and stunning"),
		survey.IndexSparkle:     survey.SingleAnswer("Subtle sparkle - Just a hint of shine"),
		survey.IndexBudget:      survey.SingleAnswer("Under ₹50,000 (Accessible luxury)"),
		survey.IndexCelebrity:   survey.SingleAnswer("Elegant like Deepika Padukone"),
		survey.IndexExtra:       survey.SingleAnswer("Prefer rose gold"),
	}
}

func TestBuildRequest_MapsAllAnswers(t *testing.T) {
	req := recommend.BuildRequest(fullAnswers(), recommend.Options{TopN: 25, CelebrityThreshold: 0.3})

	assert.Equal(t, "Modern and minimal - Clean lines and understated elegance", req.Survey.StylePreference)
	assert.Equal(t, []string{"Weddings", "Daily Wear"}, req.Survey.Occasions)
	assert.Equal(t, "Solitaire diamonds - Simple and stunning", req.Survey.JewelryType)
	assert.Equal(t, "Subtle sparkle - Just a hint of shine", req.Survey.SparkleLevel)
	assert.Equal(t, "Under ₹50,000 (Accessible luxury)", req.Survey.Budget)
	assert.Equal(t, "Elegant like Deepika Padukone", req.Survey.CelebrityInspiration)
	assert.Equal(t, "Prefer rose gold", req.Survey.AdditionalPreferences)
	assert.Equal(t, 25, req.TopN)
	assert.Equal(t, 0.3, req.CelebrityThreshold)
	assert.True(t, req.IncludeScores)
}

func TestBuildRequest_SparseAnswersStaySparse(t *testing.T) {
	answers := survey.Answers{
		survey.IndexStyle: survey.SingleAnswer("Bold and statement-making - I want to stand out"),
	}
	req := recommend.BuildRequest(answers, recommend.Options{})

	assert.NotEmpty(t, req.Survey.StylePreference)
	assert.Empty(t, req.Survey.Occasions)
	assert.Empty(t, req.Survey.Budget)
	assert.Empty(t, req.Survey.CelebrityInspiration)
}

func TestBuildRequest_Defaults(t *testing.T) {
	req := recommend.BuildRequest(nil, recommend.Options{})
	assert.Equal(t, recommend.DefaultTopN, req.TopN)
	assert.Equal(t, recommend.DefaultCelebrityThreshold, req.CelebrityThreshold)

	req = recommend.BuildRequest(nil, recommend.Options{TopN: -5, CelebrityThreshold: -1})
	assert.Equal(t, recommend.DefaultTopN, req.TopN)
	assert.Equal(t, recommend.DefaultCelebrityThreshold, req.CelebrityThreshold)
}

func TestGetRecommendations_Success(t *testing.T) {
	score := 0.9
	fetcher := &stubFetcher{
		resp: &api.RecommendationResponse{
			Status: "success",
			CelebrityProductGroups: []api.CelebrityProductGroup{
				{
					Celebrity: api.CelebrityMatch{ID: "c1", Name: "Deepika Padukone", SimilarityScore: 0.85},
					Products: []api.ProductMatch{
						{ID: "p1", Name: "Eterna Solitaire Ring", Price: api.NumberPrice(45000), MatchScore: &score},
					},
				},
			},
		},
	}
	svc := recommend.NewService(fetcher, catalog.NewNormalizer(rand.New(rand.NewSource(1))), nil)

	result := svc.GetRecommendations(context.Background(), fullAnswers(), recommend.Options{})

	require.NotNil(t, result)
	assert.Equal(t, catalog.StatusSuccess, result.Metadata.Status)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "Eterna Solitaire Ring", result.Products[0].Name)
	assert.Equal(t, 1, result.Metadata.TotalRecommendations)
}

func TestGetRecommendations_NeverFails(t *testing.T) {
	var logs bytes.Buffer
	fetcher := &stubFetcher{err: errors.New("fetching recommendations: executing request: connection refused")}
	svc := recommend.NewService(fetcher, nil, &logs)

	result := svc.GetRecommendations(context.Background(), fullAnswers(), recommend.Options{})

	require.NotNil(t, result, "a dead service still yields a renderable result")
	assert.Equal(t, catalog.StatusError, result.Metadata.Status)
	assert.Contains(t, result.Metadata.Error, "connection refused")
	assert.NotNil(t, result.Celebrities)
	assert.NotNil(t, result.Products)
	assert.Empty(t, result.Products)
	assert.Zero(t, result.Metadata.TotalRecommendations)
	assert.False(t, result.Metadata.Timestamp.IsZero())

	assert.Contains(t, logs.String(), "recommendations unavailable")
}

func TestGetRecommendations_EmptyResponseIsSuccess(t *testing.T) {
	fetcher := &stubFetcher{resp: &api.RecommendationResponse{Status: "success"}}
	svc := recommend.NewService(fetcher, nil, nil)

	result := svc.GetRecommendations(context.Background(), fullAnswers(), recommend.Options{})

	assert.Equal(t, catalog.StatusSuccess, result.Metadata.Status)
	assert.Empty(t, result.Products)
}

func TestGetRecommendations_PassesOptionsThrough(t *testing.T) {
	fetcher := &stubFetcher{resp: &api.RecommendationResponse{Status: "success"}}
	svc := recommend.NewService(fetcher, nil, nil)

	svc.GetRecommendations(context.Background(), fullAnswers(), recommend.Options{TopN: 40, CelebrityThreshold: 0.25})

	assert.Equal(t, 40, fetcher.lastRequest.TopN)
	assert.Equal(t, 0.25, fetcher.lastRequest.CelebrityThreshold)
}
