package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mbdb/rlbp-gissmo-check/internal/validation"
	"github.com/mbdb/rlbp-gissmo-check/pkg/gissmo"
)

var (
	checkSta     string
	checkNoColor bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the inventory records of one station",
	Long: `Check fetches every inventory record of a station from the Gissmo
API and prints a completeness and consistency report.

Validation findings are printed as [error] and [warning] lines and do
not affect the exit status; only a failed API request does.

Examples:
  gissmo-check check --sta CHMF
  gissmo-check check -s CHMF --no-color`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkSta, "sta", "s", "", "station code (required)")
	checkCmd.Flags().BoolVar(&checkNoColor, "no-color", false, "disable colored output")

	// The flag is defined right above
	_ = checkCmd.MarkFlagRequired("sta") //nolint:errcheck
}

func runCheck(cmd *cobra.Command, args []string) error {
	client := gissmo.NewClient(gissmo.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	})

	rep := validation.NewReporter(os.Stdout, !checkNoColor)
	runner := validation.NewRunner(client, rep, logger)

	return runner.Check(cmd.Context(), checkSta)
}
