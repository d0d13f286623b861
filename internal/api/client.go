package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL      = "https://evol-45609451577.asia-south1.run.app"
	recommendationsPath = "/api/v1/recommendations"
	healthPath          = "/health"

	// baseURLEnv overrides the service base URL, mainly for scripting
	// against a locally running recommender.
	baseURLEnv = "EVOL_API_URL"
)

// Client is an HTTP client for the EVOL recommendation service.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client against the production service, honoring the
// EVOL_API_URL override.
func NewClient() *Client {
	base := strings.TrimRight(strings.TrimSpace(os.Getenv(baseURLEnv)), "/")
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		baseURL:    base,
	}
}

// NewClientWithBaseURL creates a client with a custom base URL (for testing).
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) postAndDecode(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, path, errorSnippet(resp.Body))
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if err := dec.Decode(new(struct{})); !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding response: trailing JSON content")
	}
	return nil
}

// FetchRecommendations asks the service for celebrity and product matches
// for the given survey payload. Any non-2xx status is an error; callers
// that need the never-fails contract wrap this in recommend.Service.
func (c *Client) FetchRecommendations(ctx context.Context, req RecommendationRequest) (*RecommendationResponse, error) {
	var resp RecommendationResponse
	if err := c.postAndDecode(ctx, recommendationsPath, req, &resp); err != nil {
		return nil, fmt.Errorf("fetching recommendations: %w", err)
	}
	return &resp, nil
}

// Health probes the service health endpoint.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("checking health: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("checking health: unexpected status %d", resp.StatusCode)
	}

	var out HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("checking health: decoding response: %w", err)
	}
	return &out, nil
}

// errorSnippet reads a short prefix of an error body for diagnostics.
func errorSnippet(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 256))
	if err != nil {
		return "unreadable body"
	}
	snippet := strings.Join(strings.Fields(string(raw)), " ")
	if snippet == "" {
		return "empty body"
	}
	return snippet
}
