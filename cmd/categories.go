package cmd

import (
	"github.com/spf13/cobra"

	"github.com/evoljewels/evolcli/internal/catalog"
	"github.com/evoljewels/evolcli/internal/display"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show how recommendations spread across the jewelry categories",
	Example: `  evolcli categories --style "Classic and timeless"
  evolcli categories --style "Bold and statement-making" --json`,
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	registerSurveyFlags(categoriesCmd.Flags())
	registerRequestFlags(categoriesCmd.Flags())
}

func runCategories(cmd *cobra.Command, _ []string) error {
	result, err := fetchResult(cmd)
	if err != nil {
		return err
	}
	if result.Metadata.TotalRecommendations == 0 {
		return notFoundError(
			"no recommendations for these answers",
			"Try broader answers, or lower --threshold.",
		)
	}

	counts := catalog.CountByCategory(result.Products)

	if flagJSON {
		return display.PrintCategoriesJSON(cmd.OutOrStdout(), counts)
	}
	display.PrintCategories(cmd.OutOrStdout(), counts)
	return nil
}
