package cmd

import (
	"encoding/json"
	"sort"

	"github.com/spf13/cobra"

	"github.com/evoljewels/evolcli/internal/catalog"
	"github.com/evoljewels/evolcli/internal/display"
)

type celebrityRanking struct {
	Rank            int      `json:"rank"`
	Name            string   `json:"name"`
	MatchPercentage int      `json:"matchPercentage"`
	VibeTags        []string `json:"vibeTags"`
	MatchedPieces   int      `json:"matchedPieces"`
}

var celebritiesCmd = &cobra.Command{
	Use:   "celebrities",
	Short: "Rank celebrity style matches for your answers",
	Example: `  evolcli celebrities --style "Elegant and sophisticated"
  evolcli celebrities --style "Romantic and delicate" --json`,
	RunE: runCelebrities,
}

func init() {
	rootCmd.AddCommand(celebritiesCmd)
	registerSurveyFlags(celebritiesCmd.Flags())
	registerRequestFlags(celebritiesCmd.Flags())
}

func runCelebrities(cmd *cobra.Command, _ []string) error {
	result, err := fetchResult(cmd)
	if err != nil {
		return err
	}
	if len(result.Celebrities) == 0 {
		return notFoundError(
			"no celebrity matches for these answers",
			"Lower --threshold to widen the match pool.",
		)
	}

	rankings := rankCelebrities(result)

	if flagJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(rankings)
	}
	display.PrintCelebrities(cmd.OutOrStdout(), result.Celebrities)
	return nil
}

// rankCelebrities orders matches by similarity and counts how many of
// the deduplicated products carry each celebrity's vibe tags.
func rankCelebrities(result *catalog.Result) []celebrityRanking {
	celebrities := append([]catalog.Celebrity(nil), result.Celebrities...)
	sort.SliceStable(celebrities, func(i, j int) bool {
		return celebrities[i].SimilarityScore > celebrities[j].SimilarityScore
	})

	rankings := make([]celebrityRanking, 0, len(celebrities))
	for i, c := range celebrities {
		matched := 0
		for _, p := range result.Products {
			if sharesTag(c.VibeTags, p.StyleTags) {
				matched++
			}
		}
		tags := c.VibeTags
		if tags == nil {
			tags = []string{}
		}
		rankings = append(rankings, celebrityRanking{
			Rank:            i + 1,
			Name:            c.Name,
			MatchPercentage: c.MatchPercentage,
			VibeTags:        tags,
			MatchedPieces:   matched,
		})
	}
	return rankings
}

func sharesTag(a, b []string) bool {
	for _, tag := range a {
		if catalog.ContainsIgnoreCase(b, tag) {
			return true
		}
	}
	return false
}
