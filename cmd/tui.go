package cmd

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/evoljewels/evolcli/internal/catalog"
	"github.com/evoljewels/evolcli/internal/store"
	"github.com/evoljewels/evolcli/internal/survey"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Take the style survey and browse your matches interactively",
	Example: `  evolcli tui
  evolcli tui --top 25 --threshold 0.3`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	registerRequestFlags(tuiCmd.Flags())
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isInteractiveSession(cmd.InOrStdin(), cmd.OutOrStdout()) {
		return invalidArgsError(
			"`evolcli tui` requires an interactive terminal",
			"Use `evolcli --style \"Modern and minimal\" --json` in pipelines.",
		)
	}

	svc := newRecommendService(cmd)
	opts := requestOptions()
	st := store.New(store.RecommenderFunc(func(ctx context.Context, answers survey.Answers) (*catalog.Result, error) {
		return svc.GetRecommendations(ctx, answers, opts), nil
	}))

	prog := tea.NewProgram(
		newStorefrontModel(st),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	final, err := prog.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(storefrontModel); ok && m.fatalErr != nil {
		return m.fatalErr
	}
	return nil
}

func isInteractiveSession(stdin io.Reader, stdout io.Writer) bool {
	inputFile, ok := stdin.(*os.File)
	if !ok {
		return false
	}
	if !term.IsTerminal(int(inputFile.Fd())) {
		return false
	}
	return isTTY(stdout)
}
