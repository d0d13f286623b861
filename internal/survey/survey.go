// Package survey holds the style-survey answer model and the static
// question catalog that drives the interactive survey.
package survey

import "strings"

// Positions of the seven survey questions. The recommendation request
// is built from these indices; unanswered indices are simply omitted.
const (
	IndexStyle = iota
	IndexOccasions
	IndexJewelryType
	IndexSparkle
	IndexBudget
	IndexCelebrity
	IndexExtra

	QuestionCount
)

// Kind describes how a question is answered.
type Kind int

const (
	// Single is a pick-one question.
	Single Kind = iota
	// Multiple is a pick-many question; selection order is preserved.
	Multiple
	// FreeText is a typed answer.
	FreeText
)

// Question is one entry of the survey catalog.
type Question struct {
	Prompt      string
	Kind        Kind
	Optional    bool
	Options     []string
	Placeholder string
}

// Answer is one recorded survey answer: a single choice, an ordered
// multi-select, or free text. The zero value means "not answered".
type Answer struct {
	Choice  string
	Choices []string
}

// Single wraps a single-choice or free-text answer.
func SingleAnswer(choice string) Answer {
	return Answer{Choice: strings.TrimSpace(choice)}
}

// MultiAnswer wraps a multi-select answer, dropping blank entries.
func MultiAnswer(choices ...string) Answer {
	out := make([]string, 0, len(choices))
	for _, c := range choices {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return Answer{Choices: out}
}

// IsZero reports whether the answer carries no content.
func (a Answer) IsZero() bool {
	return a.Choice == "" && len(a.Choices) == 0
}

// List returns the answer as an ordered list, coercing a single choice
// into a one-element list the way the occasions question expects.
func (a Answer) List() []string {
	if len(a.Choices) > 0 {
		return append([]string(nil), a.Choices...)
	}
	if a.Choice != "" {
		return []string{a.Choice}
	}
	return nil
}

// Answers maps question index to answer. Sparse: skipped questions are
// absent, not zero-valued.
type Answers map[int]Answer

// Clone returns an independent copy.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for i, ans := range a {
		out[i] = Answer{Choice: ans.Choice, Choices: append([]string(nil), ans.Choices...)}
	}
	return out
}

// Questions returns the ordered survey catalog. Index i of the returned
// slice answers position i of Answers.
func Questions() []Question {
	return []Question{
		{
			Prompt: "How would you describe your overall style?",
			Kind:   Single,
			Options: []string{
				"Classic and timeless - I love pieces that never go out of style",
				"Modern and minimal - Clean lines and understated elegance",
				"Bold and statement-making - I want to stand out",
				"Elegant and sophisticated - Refined with subtle luxury",
				"Playful and eclectic - I like to mix and experiment",
				"Romantic and delicate - Soft, feminine designs",
			},
		},
		{
			Prompt: "What occasions are you shopping for?",
			Kind:   Multiple,
			Options: []string{
				"Weddings",
				"Engagement/Anniversary",
				"Formal Events",
				"Daily Wear",
				"Office/Professional",
				"Cocktail Parties",
				"Special Celebrations",
				"Casual Events",
			},
		},
		{
			Prompt: "What type of jewelry speaks to you most?",
			Kind:   Single,
			Options: []string{
				"Solitaire diamonds - Simple and stunning",
				"Multi-stone pieces - Intricate and detailed",
				"Geometric designs - Modern and architectural",
				"Nature-inspired - Floral, organic motifs",
				"Vintage-inspired - Heritage and tradition",
				"Contemporary art pieces - Unique and fashion-forward",
			},
		},
		{
			Prompt: "How much sparkle do you prefer?",
			Kind:   Single,
			Options: []string{
				"Subtle sparkle - Just a hint of shine",
				"Moderate sparkle - Noticeable but balanced",
				"Maximum sparkle - I want all the brilliance",
				"It depends on the occasion",
			},
		},
		{
			Prompt: "What's your budget range?",
			Kind:   Single,
			Options: []string{
				"Under ₹50,000 (Accessible luxury)",
				"₹50,000 - ₹1,50,000 (Premium)",
				"₹1,50,000 - ₹3,00,000 (Luxury)",
				"Above ₹3,00,000 (Ultra-luxury)",
			},
		},
		{
			Prompt:      "Any celebrity style inspirations?",
			Kind:        FreeText,
			Optional:    true,
			Placeholder: "e.g., Elegant like Deepika Padukone",
		},
		{
			Prompt:      "Any other preferences?",
			Kind:        FreeText,
			Optional:    true,
			Placeholder: "Metal color, gemstone preferences, etc.",
		},
	}
}
