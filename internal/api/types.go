package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RecommendationRequest is the request body for the recommendations endpoint.
type RecommendationRequest struct {
	Survey             SurveyPayload `json:"survey"`
	TopN               int           `json:"top_n"`
	CelebrityThreshold float64       `json:"celebrity_threshold"`
	IncludeScores      bool          `json:"include_scores"`
}

// SurveyPayload carries the named survey fields. Unanswered questions are
// omitted from the wire payload entirely, never sent as empty values.
type SurveyPayload struct {
	StylePreference       string   `json:"style_preference,omitempty"`
	Occasions             []string `json:"occasions,omitempty"`
	JewelryType           string   `json:"jewelry_type,omitempty"`
	SparkleLevel          string   `json:"sparkle_level,omitempty"`
	Budget                string   `json:"budget,omitempty"`
	CelebrityInspiration  string   `json:"celebrity_inspiration,omitempty"`
	AdditionalPreferences string   `json:"additional_preferences,omitempty"`
}

// RecommendationResponse is the top-level response from the recommendation
// service. Every field beyond the grouping list is advisory; the client
// derives its own totals after deduplication.
type RecommendationResponse struct {
	Status                 string                  `json:"status"`
	Timestamp              string                  `json:"timestamp"`
	CelebrityProductGroups []CelebrityProductGroup `json:"celebrity_product_groups"`
	TotalRecommendations   int                     `json:"total_recommendations"`
}

// CelebrityProductGroup is the service's unit of output: one matched
// celebrity paired with the products recommended through that match.
type CelebrityProductGroup struct {
	Celebrity     CelebrityMatch `json:"celebrity"`
	Products      []ProductMatch `json:"products"`
	TotalProducts int            `json:"total_products"`
}

// CelebrityMatch is a raw celebrity record.
type CelebrityMatch struct {
	ID                ID       `json:"id"`
	Name              string   `json:"name"`
	ImageURL          *string  `json:"image_url"`
	SimilarityScore   float64  `json:"similarity_score"`
	PrimaryVibeTags   []string `json:"primary_vibe_tags"`
	SecondaryVibeTags []string `json:"secondary_vibe_tags"`
	VibeDescription   *string  `json:"vibe_description"`
}

// ProductMatch is a raw product record.
type ProductMatch struct {
	ID                 ID       `json:"id"`
	Name               string   `json:"name"`
	Description        *string  `json:"description"`
	Price              RawPrice `json:"price"`
	ImageURL           *string  `json:"image_url"`
	Category           *string  `json:"category"`
	Material           *string  `json:"material"`
	PrimaryStyleTags   []string `json:"primary_style_tags"`
	SecondaryStyleTags []string `json:"secondary_style_tags"`
	Occasions          []string `json:"occasions"`
	VibeDescription    *string  `json:"vibe_description"`
	MatchScore         *float64 `json:"match_score"`
}

// HealthResponse is the response from the service health endpoint.
type HealthResponse struct {
	Status            string `json:"status"`
	Version           string `json:"version"`
	RecommenderLoaded bool   `json:"recommender_loaded"`
	Timestamp         string `json:"timestamp"`
}

// ID accepts either a JSON number or a JSON string, since the service has
// shipped both shapes for product and celebrity identifiers.
type ID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON implements json.Marshaler.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }

// RawPrice is a price exactly as the service sends it: a number, a
// currency-formatted string, or absent. The zero value means absent.
type RawPrice struct {
	present  bool
	isNumber bool
	number   float64
	text     string
}

// NumberPrice builds a numeric price value.
func NumberPrice(v float64) RawPrice {
	return RawPrice{present: true, isNumber: true, number: v}
}

// TextPrice builds a string price value.
func TextPrice(s string) RawPrice {
	return RawPrice{present: true, text: s}
}

// Number returns the numeric value, if the price arrived as a JSON number.
// An explicit numeric 0 counts as present.
func (p RawPrice) Number() (float64, bool) {
	return p.number, p.present && p.isNumber
}

// Text returns the string value, if the price arrived as a JSON string.
func (p RawPrice) Text() (string, bool) {
	return p.text, p.present && !p.isNumber
}

// Present reports whether any price value was supplied.
func (p RawPrice) Present() bool { return p.present }

// UnmarshalJSON implements json.Unmarshaler.
func (p *RawPrice) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*p = RawPrice{}
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = TextPrice(s)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("price must be a string or number: %w", err)
	}
	*p = NumberPrice(v)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p RawPrice) MarshalJSON() ([]byte, error) {
	switch {
	case !p.present:
		return []byte("null"), nil
	case p.isNumber:
		return json.Marshal(p.number)
	default:
		return json.Marshal(p.text)
	}
}
