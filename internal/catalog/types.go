// Package catalog turns the recommendation service's loosely shaped
// payloads into the flat, deduplicated collections the rest of the
// program renders, and provides filtering and sorting over them.
package catalog

import "time"

// Result statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// DeliveryTime is the quoted made-to-order delivery window, the same for
// every product.
const DeliveryTime = "15-17 DAYS"

// Celebrity is a normalized celebrity match.
type Celebrity struct {
	ID              string
	Name            string
	Image           string
	SimilarityScore float64
	MatchPercentage int
	VibeTags        []string
	Description     string
}

// Product is a normalized product recommendation. Price is in whole
// rupees; MatchScore drives the default ordering.
type Product struct {
	ID              string
	Name            string
	Description     string
	Price           int
	Image           string
	Category        string
	Material        string
	StyleTags       []string
	Occasions       []string
	VibeDescription string
	MatchScore      float64
	DeliveryTime    string
}

// Metadata describes how a Result was produced.
type Metadata struct {
	Status               string
	Timestamp            time.Time
	TotalRecommendations int
	Error                string
}

// Result is one complete recommendation outcome. It always carries
// non-nil collections, even on failure.
type Result struct {
	Celebrities []Celebrity
	Products    []Product
	Metadata    Metadata
}

// EmptyResult builds a well-formed result with no matches.
func EmptyResult(status string, now time.Time) *Result {
	return &Result{
		Celebrities: []Celebrity{},
		Products:    []Product{},
		Metadata: Metadata{
			Status:    status,
			Timestamp: now,
		},
	}
}

// ErrorResult builds the empty error-shaped result used when the service
// cannot be reached or returns garbage.
func ErrorResult(message string, now time.Time) *Result {
	result := EmptyResult(StatusError, now)
	result.Metadata.Error = message
	return result
}
