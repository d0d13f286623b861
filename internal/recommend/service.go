// Package recommend is the never-fails boundary in front of the
// recommendation service: transport and decoding problems are absorbed
// into an empty, error-shaped result so the UI always has something
// well-formed to render.
package recommend

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/evoljewels/evolcli/internal/api"
	"github.com/evoljewels/evolcli/internal/catalog"
	"github.com/evoljewels/evolcli/internal/survey"
)

// Request defaults, matching what the service was tuned for.
const (
	DefaultTopN               = 15
	DefaultCelebrityThreshold = 0.4
)

// Options tune a recommendation request. Zero values take the defaults.
type Options struct {
	TopN               int
	CelebrityThreshold float64
}

// Fetcher is the transport dependency; *api.Client satisfies it.
type Fetcher interface {
	FetchRecommendations(ctx context.Context, req api.RecommendationRequest) (*api.RecommendationResponse, error)
}

// Service issues recommendation requests and normalizes the outcome.
type Service struct {
	fetcher    Fetcher
	normalizer *catalog.Normalizer
	logw       io.Writer
	now        func() time.Time
}

// NewService creates a Service. logw receives the raw text of absorbed
// failures; pass nil to discard it.
func NewService(fetcher Fetcher, normalizer *catalog.Normalizer, logw io.Writer) *Service {
	if normalizer == nil {
		normalizer = catalog.NewNormalizer(nil)
	}
	if logw == nil {
		logw = io.Discard
	}
	return &Service{
		fetcher:    fetcher,
		normalizer: normalizer,
		logw:       logw,
		now:        time.Now,
	}
}

// GetRecommendations sends the survey and returns the normalized result.
// It never fails: network errors, non-2xx statuses, and malformed bodies
// all come back as an empty result with error metadata.
func (s *Service) GetRecommendations(ctx context.Context, answers survey.Answers, opts Options) *catalog.Result {
	resp, err := s.fetcher.FetchRecommendations(ctx, BuildRequest(answers, opts))
	if err != nil {
		fmt.Fprintf(s.logw, "recommendations unavailable: %v\n", err)
		return catalog.ErrorResult(err.Error(), s.now())
	}
	return s.normalizer.Normalize(resp)
}

// BuildRequest maps the positional survey answers to the named request
// fields. Absent indices are omitted from the payload, not defaulted.
func BuildRequest(answers survey.Answers, opts Options) api.RecommendationRequest {
	var payload api.SurveyPayload

	if a, ok := answers[survey.IndexStyle]; ok {
		payload.StylePreference = a.Choice
	}
	if a, ok := answers[survey.IndexOccasions]; ok {
		payload.Occasions = a.List()
	}
	if a, ok := answers[survey.IndexJewelryType]; ok {
		payload.JewelryType = a.Choice
	}
	if a, ok := answers[survey.IndexSparkle]; ok {
		payload.SparkleLevel = a.Choice
	}
	if a, ok := answers[survey.IndexBudget]; ok {
		payload.Budget = a.Choice
	}
	if a, ok := answers[survey.IndexCelebrity]; ok {
		payload.CelebrityInspiration = a.Choice
	}
	if a, ok := answers[survey.IndexExtra]; ok {
		payload.AdditionalPreferences = a.Choice
	}

	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	threshold := opts.CelebrityThreshold
	if threshold <= 0 {
		threshold = DefaultCelebrityThreshold
	}

	return api.RecommendationRequest{
		Survey:             payload,
		TopN:               topN,
		CelebrityThreshold: threshold,
		IncludeScores:      true,
	}
}
