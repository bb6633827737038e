package cmd

import (
	"github.com/huangsam/weightlog/core"
	"github.com/huangsam/weightlog/internal/contract"
	"github.com/spf13/cobra"
)

// chartCmd draws the averaged weight series for one window.
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Chart averaged weights for a week, month, year or all time",
	Long: `Group the samples of one calendar window into buckets and show their averages.

Periods:
  week  - one bucket per day, ticks on every day
  month - one bucket per day, ticks every week
  year  - one bucket per month, ticks every month
  total - one bucket per month over all samples

The window is anchored on the latest sample. Use --offset to page backwards
or forwards in whole periods; total ignores the offset.

Examples:
  # Current week
  weightlog chart

  # Previous month in imperial units
  weightlog chart --period month --offset -1 --unit imperial

  # Whole history as a PNG image
  weightlog chart --period total --image weight.png`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChart(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot draw chart", err)
		}
	},
}

// statsCmd summarizes one window.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show min, max and latest weight for a window",
	Long: `Summarize the raw samples of one calendar window.

Accepts the same --period, --offset and --unit flags as chart.

Examples:
  weightlog stats --period year
  weightlog stats --period total --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStats(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot compute stats", err)
		}
	},
}

// samplesCmd lists recorded samples.
var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "List the most recent weight samples",
	Long: `Show recorded samples, newest first, in the preferred unit.

Examples:
  weightlog samples --limit 10
  weightlog samples --output csv --output-file samples.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSamples(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot list samples", err)
		}
	},
}
