package cmd

import (
	"github.com/huangsam/weightlog/core"
	"github.com/huangsam/weightlog/internal/contract"
	"github.com/spf13/cobra"
)

// addCmd records one weight sample.
var addCmd = &cobra.Command{
	Use:   "add [value]",
	Short: "Record a weight sample in the preferred unit",
	Long: `Record a weight measurement.

The value is read in the preferred unit and accepts either '.' or ','
as decimal separator. Without a value, the last recorded weight is repeated.

Examples:
  weightlog add 80.4
  weightlog add 80,4 --date yesterday
  weightlog add 177.5 --unit imperial --date 2025-01-31`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		raw := ""
		if len(args) == 1 {
			raw = args[0]
		}
		if err := core.ExecuteAdd(rootCtx, cfg, storeManager, raw); err != nil {
			contract.LogFatal("Cannot record sample", err)
		}
	},
}
