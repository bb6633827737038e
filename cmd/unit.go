package cmd

import (
	"github.com/huangsam/weightlog/core"
	"github.com/huangsam/weightlog/internal/contract"
	"github.com/spf13/cobra"
)

// unitCmd shows the preferred display unit.
var unitCmd = &cobra.Command{
	Use:   "unit",
	Short: "Show or change the preferred unit system",
	Long: `Show the unit system used to read and display weights.

Samples are always stored in kilograms; the unit only affects input and display.

Examples:
  weightlog unit show
  weightlog unit set imperial`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteUnitShow(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot show unit", err)
		}
	},
}

// unitShowCmd is the explicit form of unitCmd.
var unitShowCmd = &cobra.Command{
	Use:     "show",
	Short:   "Show the preferred unit system",
	PreRunE: sharedSetupWrapper,
	Run:     unitCmd.Run,
}

// unitSetCmd persists the preferred unit.
var unitSetCmd = &cobra.Command{
	Use:     "set <metric|imperial>",
	Short:   "Store the preferred unit system",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteUnitSet(rootCtx, storeManager, args[0]); err != nil {
			contract.LogFatal("Cannot set unit", err)
		}
	},
}
