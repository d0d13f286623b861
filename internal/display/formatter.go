// Package display renders normalized catalog data for the terminal and
// for JSON pipelines.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/evoljewels/evolcli/internal/api"
	"github.com/evoljewels/evolcli/internal/catalog"
	"github.com/evoljewels/evolcli/internal/store"
)

// Styles for terminal output.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	priceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	matchStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	dimStyle      = lipgloss.NewStyle().Faint(true)
	cyanStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// CelebrityJSON is the JSON output shape for a celebrity match.
type CelebrityJSON struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Image           string   `json:"image"`
	SimilarityScore float64  `json:"similarityScore"`
	MatchPercentage int      `json:"matchPercentage"`
	VibeTags        []string `json:"vibeTags"`
	Description     string   `json:"description"`
}

// ProductJSON is the JSON output shape for a product.
type ProductJSON struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           int      `json:"price"`
	PriceFormatted  string   `json:"priceFormatted"`
	Image           string   `json:"image"`
	Category        string   `json:"category"`
	Material        string   `json:"material"`
	StyleTags       []string `json:"styleTags"`
	Occasions       []string `json:"occasions"`
	VibeDescription string   `json:"vibeDescription"`
	MatchScore      float64  `json:"matchScore"`
	DeliveryTime    string   `json:"deliveryTime"`
}

// MetadataJSON is the JSON output shape for result metadata.
type MetadataJSON struct {
	Status               string `json:"status"`
	Timestamp            string `json:"timestamp"`
	TotalRecommendations int    `json:"totalRecommendations"`
	Error                string `json:"error,omitempty"`
}

// ResultJSON is the JSON output shape for a full recommendation run.
type ResultJSON struct {
	Celebrities []CelebrityJSON `json:"celebrities"`
	Products    []ProductJSON   `json:"products"`
	Metadata    MetadataJSON    `json:"metadata"`
}

// HealthJSON is the JSON output shape for a health probe.
type HealthJSON struct {
	Status            string `json:"status"`
	Version           string `json:"version"`
	RecommenderLoaded bool   `json:"recommenderLoaded"`
}

// FormatPrice renders a rupee amount with Indian digit grouping, e.g.
// 120000 -> "₹1,20,000".
func FormatPrice(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.Itoa(amount)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	groups := []string{tail}
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return sign + "₹" + strings.Join(groups, ",")
}

// PrintResult renders celebrities and products from one recommendation run.
func PrintResult(w io.Writer, result *catalog.Result) {
	if result.Metadata.Status == catalog.StatusError {
		PrintWarning(w, "Recommendations unavailable: "+result.Metadata.Error)
	}
	if len(result.Celebrities) > 0 {
		PrintCelebrities(w, result.Celebrities)
	}
	PrintProducts(w, result.Products)
}

// PrintResultJSON renders a full recommendation run as JSON.
func PrintResultJSON(w io.Writer, result *catalog.Result) error {
	return json.NewEncoder(w).Encode(toResultJSON(result))
}

// PrintCelebrities renders the matched celebrities.
func PrintCelebrities(w io.Writer, celebrities []catalog.Celebrity) {
	fmt.Fprintf(w, "\n%s — %s\n\n",
		headerStyle.Render("Celebrity Style Matches"),
		cyanStyle.Render(fmt.Sprintf("%d matches", len(celebrities))),
	)
	for _, c := range celebrities {
		fmt.Fprintf(w, "  %s  %s\n",
			matchStyle.Render(fmt.Sprintf("%3d%%", c.MatchPercentage)),
			titleStyle.Render(c.Name),
		)
		if len(c.VibeTags) > 0 {
			fmt.Fprintf(w, "        %s\n", categoryStyle.Render(strings.Join(c.VibeTags, ", ")))
		}
		if c.Description != "" {
			fmt.Fprintf(w, "        %s\n", dimStyle.Render(wordWrap(c.Description, 72, "        ")))
		}
		fmt.Fprintln(w)
	}
}

// PrintCelebritiesJSON renders celebrities as JSON.
func PrintCelebritiesJSON(w io.Writer, celebrities []catalog.Celebrity) error {
	out := make([]CelebrityJSON, 0, len(celebrities))
	for _, c := range celebrities {
		out = append(out, toCelebrityJSON(c))
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintProducts renders a product list.
func PrintProducts(w io.Writer, products []catalog.Product) {
	fmt.Fprintf(w, "\n%s — %s\n\n",
		headerStyle.Render("Recommended Pieces"),
		cyanStyle.Render(fmt.Sprintf("%d items", len(products))),
	)
	for _, p := range products {
		printProduct(w, p)
		fmt.Fprintln(w)
	}
}

// PrintProductsJSON renders products as JSON.
func PrintProductsJSON(w io.Writer, products []catalog.Product) error {
	out := make([]ProductJSON, 0, len(products))
	for _, p := range products {
		out = append(out, toProductJSON(p))
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintCategories renders canonical category counts.
func PrintCategories(w io.Writer, counts map[string]int) {
	type catCount struct {
		Name  string
		Count int
	}
	sorted := make([]catCount, 0, len(counts))
	for k, v := range counts {
		sorted = append(sorted, catCount{k, v})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Name < sorted[j].Name
	})

	fmt.Fprintf(w, "\n%s\n\n", titleStyle.Render("Recommended categories:"))
	for _, c := range sorted {
		fmt.Fprintf(w, "  %s: %d pieces\n", cyanStyle.Render(c.Name), c.Count)
	}
	fmt.Fprintln(w)
}

// PrintCategoriesJSON renders category counts as JSON.
func PrintCategoriesJSON(w io.Writer, counts map[string]int) error {
	return json.NewEncoder(w).Encode(counts)
}

// PrintCart renders cart contents with a subtotal line.
func PrintCart(w io.Writer, items []store.CartItem, subtotal int) {
	fmt.Fprintf(w, "\n%s — %s\n\n",
		headerStyle.Render("Your Bag"),
		cyanStyle.Render(fmt.Sprintf("%d items", len(items))),
	)
	for _, item := range items {
		fmt.Fprintf(w, "  %s ×%d  %s\n",
			titleStyle.Render(item.Name),
			item.Quantity,
			priceStyle.Render(FormatPrice(item.Price*item.Quantity)),
		)
	}
	fmt.Fprintf(w, "\n  %s %s\n\n",
		titleStyle.Render("Subtotal:"),
		priceStyle.Render(FormatPrice(subtotal)),
	)
}

// PrintHealth renders a health probe outcome.
func PrintHealth(w io.Writer, health *api.HealthResponse) {
	state := errorStyle.Render(health.Status)
	if health.Status == "healthy" || health.Status == "ok" {
		state = headerStyle.Render(health.Status)
	}
	fmt.Fprintf(w, "\nrecommendation service: %s", state)
	if health.Version != "" {
		fmt.Fprintf(w, " %s", dimStyle.Render("(v"+health.Version+")"))
	}
	fmt.Fprintln(w)
	if !health.RecommenderLoaded {
		PrintWarning(w, "recommender model is not loaded yet")
	}
	fmt.Fprintln(w)
}

// PrintHealthJSON renders a health probe outcome as JSON.
func PrintHealthJSON(w io.Writer, health *api.HealthResponse) error {
	return json.NewEncoder(w).Encode(HealthJSON{
		Status:            health.Status,
		Version:           health.Version,
		RecommenderLoaded: health.RecommenderLoaded,
	})
}

// PrintError prints a styled error message.
func PrintError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(msg))
}

// PrintWarning prints a styled warning message.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warningStyle.Render(msg))
}

func printProduct(w io.Writer, p catalog.Product) {
	name := p.Name
	if name == "" {
		name = "Unnamed piece"
	}
	fmt.Fprintf(w, "  %s\n", titleStyle.Render(name))

	parts := []string{priceStyle.Render(FormatPrice(p.Price))}
	if p.Category != "" {
		parts = append(parts, categoryStyle.Render(p.Category))
	}
	if p.MatchScore > 0 {
		parts = append(parts, matchStyle.Render(fmt.Sprintf("match %.2f", p.MatchScore)))
	}
	fmt.Fprintf(w, "    %s\n", strings.Join(parts, " | "))

	if p.Description != "" {
		fmt.Fprintf(w, "    %s\n", dimStyle.Render(wordWrap(p.Description, 72, "    ")))
	}

	var meta []string
	if p.Material != "" {
		meta = append(meta, p.Material)
	}
	if len(p.Occasions) > 0 {
		meta = append(meta, strings.Join(p.Occasions, ", "))
	}
	meta = append(meta, "delivery "+p.DeliveryTime)
	fmt.Fprintf(w, "    %s\n", dimStyle.Render(strings.Join(meta, " | ")))
}

func toCelebrityJSON(c catalog.Celebrity) CelebrityJSON {
	tags := c.VibeTags
	if tags == nil {
		tags = []string{}
	}
	return CelebrityJSON{
		ID:              c.ID,
		Name:            c.Name,
		Image:           c.Image,
		SimilarityScore: c.SimilarityScore,
		MatchPercentage: c.MatchPercentage,
		VibeTags:        tags,
		Description:     c.Description,
	}
}

func toProductJSON(p catalog.Product) ProductJSON {
	styleTags := p.StyleTags
	if styleTags == nil {
		styleTags = []string{}
	}
	occasions := p.Occasions
	if occasions == nil {
		occasions = []string{}
	}
	return ProductJSON{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		PriceFormatted:  FormatPrice(p.Price),
		Image:           p.Image,
		Category:        p.Category,
		Material:        p.Material,
		StyleTags:       styleTags,
		Occasions:       occasions,
		VibeDescription: p.VibeDescription,
		MatchScore:      p.MatchScore,
		DeliveryTime:    p.DeliveryTime,
	}
}

func toResultJSON(result *catalog.Result) ResultJSON {
	out := ResultJSON{
		Celebrities: make([]CelebrityJSON, 0, len(result.Celebrities)),
		Products:    make([]ProductJSON, 0, len(result.Products)),
		Metadata: MetadataJSON{
			Status:               result.Metadata.Status,
			Timestamp:            result.Metadata.Timestamp.Format(time.RFC3339),
			TotalRecommendations: result.Metadata.TotalRecommendations,
			Error:                result.Metadata.Error,
		},
	}
	for _, c := range result.Celebrities {
		out.Celebrities = append(out.Celebrities, toCelebrityJSON(c))
	}
	for _, p := range result.Products {
		out.Products = append(out.Products, toProductJSON(p))
	}
	return out
}

func wordWrap(text string, width int, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n"+indent)
}
