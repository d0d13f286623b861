package cmd

import (
	"github.com/spf13/cobra"

	"github.com/evoljewels/evolcli/internal/api"
	"github.com/evoljewels/evolcli/internal/display"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check whether the recommendation service is reachable",
	Example: `  evolcli ping
  evolcli ping --json`,
	RunE: runPing,
}

func init() {
	rootCmd.AddCommand(pingCmd)
}

func runPing(cmd *cobra.Command, _ []string) error {
	client := api.NewClient()

	health, err := client.Health(cmd.Context())
	if err != nil {
		return upstreamError("pinging service", err)
	}

	if flagJSON {
		return display.PrintHealthJSON(cmd.OutOrStdout(), health)
	}
	display.PrintHealth(cmd.OutOrStdout(), health)
	return nil
}
