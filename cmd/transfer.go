package cmd

import (
	"github.com/huangsam/weightlog/core"
	"github.com/huangsam/weightlog/internal/contract"
	"github.com/spf13/cobra"
)

// importCmd loads samples from a file.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import samples from a .json or .parquet file",
	Long: `Load weight samples from a file into the store.

Supported formats:
  .json    - array of {id, date, value} objects with values in kilograms
  .parquet - columns sample_id, taken_at, value_kg

Samples whose id already exists are skipped unless --replace is given,
in which case the stored samples are replaced entirely.

Examples:
  weightlog import backup.json
  weightlog import history.parquet --replace`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteImport(rootCtx, cfg, storeManager, args[0]); err != nil {
			contract.LogFatal("Cannot import samples", err)
		}
	},
}

// exportCmd writes every stored sample to a file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all samples to a .json, .csv or .parquet file",
	Long: `Write every stored sample to the file named by --output-file.
The format follows the file extension.

Examples:
  weightlog export --output-file backup.json
  weightlog export --output-file history.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot export samples", err)
		}
	},
}
