package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/evoljewels/evolcli/internal/api"
	"github.com/evoljewels/evolcli/internal/catalog"
	"github.com/evoljewels/evolcli/internal/display"
	"github.com/evoljewels/evolcli/internal/recommend"
	"github.com/evoljewels/evolcli/internal/survey"
)

var (
	flagStyle     string
	flagOccasions []string
	flagType      string
	flagSparkle   string
	flagBudget    string
	flagCelebrity string
	flagNotes     string

	flagTop       int
	flagThreshold float64

	flagCategory string
	flagWear     string
	flagQuery    string
	flagMaxPrice int
	flagSort     string
	flagLimit    int

	flagJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "evolcli",
	Short: "Personalized jewelry recommendations from the terminal",
	Long: "Terminal storefront for the EVOL jewels recommendation service.\n" +
		"Answer the style survey through flags (or interactively with `evolcli tui`)\n" +
		"and browse celebrity matches and recommended pieces.\n\n" +
		"Agent-friendly mode: minor syntax issues are auto-corrected when intent is clear " +
		"(for example: -style classic, style=classic, --styel classic).",
	Example: `  evolcli tui
  evolcli --style "Modern and minimal" --occasion Weddings --occasion "Daily Wear"
  evolcli --style "Classic and timeless" --category rings --sort price
  evolcli categories --style "Bold and statement-making"
  evolcli ping --json`,
	RunE: runRecommend,
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")

	registerSurveyFlags(rootCmd.Flags())
	registerRequestFlags(rootCmd.Flags())
	registerBrowseFlags(rootCmd.Flags())
}

// Execute runs the root command.
func Execute() {
	os.Exit(runCLI(os.Args[1:], os.Stdout, os.Stderr))
}

func runCLI(args []string, stdout, stderr io.Writer) int {
	resetCLIState()

	normalizedArgs, notes := normalizeCLIArgs(args)
	for _, note := range notes {
		fmt.Fprintf(stderr, "note: %s\n", note)
	}

	if len(normalizedArgs) == 0 {
		if err := printQuickStart(stdout, !isTTY(stdout)); err != nil {
			cliErr := classifyCLIError(err)
			fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
			return cliErr.ExitCode
		}
		return ExitSuccess
	}

	if shouldAutoJSON(normalizedArgs, isTTY(stdout)) {
		normalizedArgs = append(normalizedArgs, "--json")
	}

	setCommandIO(rootCmd, stdout, stderr)
	rootCmd.SetArgs(normalizedArgs)

	if err := rootCmd.Execute(); err != nil {
		cliErr := classifyCLIError(err)
		if hasJSONPreference(normalizedArgs) {
			if jerr := printCLIErrorJSON(stderr, cliErr); jerr != nil {
				fmt.Fprintln(stderr, formatCLIErrorText(classifyCLIError(jerr)))
				return ExitInternal
			}
		} else {
			fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
		}
		return cliErr.ExitCode
	}
	return ExitSuccess
}

func setCommandIO(cmd *cobra.Command, stdout, stderr io.Writer) {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	for _, child := range cmd.Commands() {
		setCommandIO(child, stdout, stderr)
	}
}

func resetCLIState() {
	resetCommandFlags(rootCmd)
	flagStyle = ""
	flagOccasions = nil
	flagType = ""
	flagSparkle = ""
	flagBudget = ""
	flagCelebrity = ""
	flagNotes = ""
	flagTop = recommend.DefaultTopN
	flagThreshold = recommend.DefaultCelebrityThreshold
	flagCategory = ""
	flagWear = ""
	flagQuery = ""
	flagMaxPrice = 0
	flagSort = ""
	flagLimit = 0
	flagJSON = false
}

// resetCommandFlags clears parse state left behind by a previous
// Execute so repeated runCLI calls (as in tests) start fresh; on the
// first run of a process it is a no-op.
func resetCommandFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "help" {
			_ = f.Value.Set("false")
		}
		f.Changed = false
	})
	for _, child := range cmd.Commands() {
		resetCommandFlags(child)
	}
}

func registerSurveyFlags(f *pflag.FlagSet) {
	f.StringVarP(&flagStyle, "style", "s", "", "Overall style preference")
	f.StringArrayVarP(&flagOccasions, "occasion", "o", nil, "Occasion you are shopping for (repeatable)")
	f.StringVarP(&flagType, "type", "t", "", "Preferred jewelry type")
	f.StringVar(&flagSparkle, "sparkle", "", "Preferred sparkle level")
	f.StringVarP(&flagBudget, "budget", "b", "", "Budget range")
	f.StringVar(&flagCelebrity, "celebrity", "", "Celebrity style inspiration (optional)")
	f.StringVar(&flagNotes, "notes", "", "Additional preferences (optional)")
}

func registerRequestFlags(f *pflag.FlagSet) {
	f.IntVar(&flagTop, "top", recommend.DefaultTopN, "Number of product recommendations to request")
	f.Float64Var(&flagThreshold, "threshold", recommend.DefaultCelebrityThreshold, "Minimum celebrity similarity (0-1)")
}

func registerBrowseFlags(f *pflag.FlagSet) {
	f.StringVarP(&flagCategory, "category", "c", "", "Filter by category (e.g., rings, earrings, choker)")
	f.StringVar(&flagWear, "wear", "", "Filter by occasion tag (e.g., Weddings)")
	f.StringVarP(&flagQuery, "query", "q", "", "Search pieces by keyword")
	f.IntVar(&flagMaxPrice, "max-price", 0, "Only show pieces at or under this price in rupees (0 = all)")
	f.StringVar(&flagSort, "sort", "", "Sort pieces by match, price, or price-desc")
	f.IntVarP(&flagLimit, "limit", "n", 0, "Limit number of results (0 = all)")
}

func validateSortMode() error {
	if catalog.ValidSortMode(flagSort) {
		return nil
	}
	return invalidArgsError(
		"invalid value for --sort (use match, price, or price-desc)",
		"evolcli --style \"Modern and minimal\" --sort price",
		"evolcli --style \"Modern and minimal\" --sort price-desc",
	)
}

// answersFromFlags builds the sparse answer collection; flags that were
// not provided leave their question unanswered.
func answersFromFlags() survey.Answers {
	answers := make(survey.Answers)
	if flagStyle != "" {
		answers[survey.IndexStyle] = survey.SingleAnswer(flagStyle)
	}
	if len(flagOccasions) > 0 {
		answers[survey.IndexOccasions] = survey.MultiAnswer(flagOccasions...)
	}
	if flagType != "" {
		answers[survey.IndexJewelryType] = survey.SingleAnswer(flagType)
	}
	if flagSparkle != "" {
		answers[survey.IndexSparkle] = survey.SingleAnswer(flagSparkle)
	}
	if flagBudget != "" {
		answers[survey.IndexBudget] = survey.SingleAnswer(flagBudget)
	}
	if flagCelebrity != "" {
		answers[survey.IndexCelebrity] = survey.SingleAnswer(flagCelebrity)
	}
	if flagNotes != "" {
		answers[survey.IndexExtra] = survey.SingleAnswer(flagNotes)
	}
	return answers
}

func requestOptions() recommend.Options {
	return recommend.Options{TopN: flagTop, CelebrityThreshold: flagThreshold}
}

func browseOptions() catalog.FilterOptions {
	return catalog.FilterOptions{
		Category: flagCategory,
		Occasion: flagWear,
		Query:    flagQuery,
		MaxPrice: flagMaxPrice,
		Sort:     flagSort,
		Limit:    flagLimit,
	}
}

func newRecommendService(cmd *cobra.Command) *recommend.Service {
	return recommend.NewService(api.NewClient(), catalog.NewNormalizer(nil), cmd.ErrOrStderr())
}

// fetchResult runs the survey answers through the recommendation
// pipeline, turning an error-shaped result back into a CLI error so
// one-shot runs exit nonzero instead of printing an empty storefront.
func fetchResult(cmd *cobra.Command) (*catalog.Result, error) {
	answers := answersFromFlags()
	if len(answers) == 0 {
		return nil, invalidArgsError(
			"provide at least one survey flag, or run the interactive survey",
			"evolcli --style \"Modern and minimal\" --occasion Weddings",
			"evolcli tui",
		)
	}

	svc := newRecommendService(cmd)
	result := svc.GetRecommendations(cmd.Context(), answers, requestOptions())
	if result.Metadata.Status == catalog.StatusError {
		return nil, upstreamError("fetching recommendations", errors.New(result.Metadata.Error))
	}
	return result, nil
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	if err := validateSortMode(); err != nil {
		return err
	}

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

	products := catalog.Filter(result.Products, browseOptions())
	if len(products) == 0 {
		return notFoundError(
			"no products match your filters",
			"Relax filters like --category/--query/--max-price.",
		)
	}

	filtered := *result
	filtered.Products = products

	if flagJSON {
		return display.PrintResultJSON(cmd.OutOrStdout(), &filtered)
	}
	display.PrintResult(cmd.OutOrStdout(), &filtered)
	return nil
}
