// Package cmd defines the command-line interface for weightlog.
package cmd

import (
	"github.com/huangsam/weightlog/internal/contract"
	"github.com/huangsam/weightlog/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(samplesCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(unitCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the unit subcommands to the parent unit command
	unitCmd.AddCommand(unitShowCmd)
	unitCmd.AddCommand(unitSetCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("period", "p", string(schema.WeekPeriod), "Chart period: week or month or year or total")
	rootCmd.PersistentFlags().Int("offset", 0, "Whole periods to move from the latest sample (e.g. -1 for the previous week)")
	rootCmd.PersistentFlags().String("unit", "", "Display unit override: metric or imperial (empty = stored preference)")
	rootCmd.PersistentFlags().String("week-start", contract.DefaultWeekStart, "First day of the week (e.g. monday, sunday)")
	rootCmd.PersistentFlags().String("timezone", contract.DefaultTimezone, "IANA time zone for calendar boundaries (e.g. Europe/Berlin)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for weights")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string (file path for sqlite, DSN for mysql/postgresql)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of chartCmd to Viper
	chartCmd.Flags().String("image", "", "Also render the chart to a .png or .svg file")
	if err := viper.BindPFlags(chartCmd.Flags()); err != nil {
		contract.LogFatal("Error binding chart flags", err)
	}

	// Bind all flags of samplesCmd to Viper
	samplesCmd.Flags().IntP("limit", "l", contract.DefaultSampleLimit, "Number of samples to display")
	if err := viper.BindPFlags(samplesCmd.Flags()); err != nil {
		contract.LogFatal("Error binding samples flags", err)
	}

	// Bind all flags of addCmd to Viper
	addCmd.Flags().String("date", "", "When the weight was measured (ISO8601, 'yesterday' or time ago)")
	if err := viper.BindPFlags(addCmd.Flags()); err != nil {
		contract.LogFatal("Error binding add flags", err)
	}

	// Bind all flags of importCmd to Viper
	importCmd.Flags().Bool("replace", false, "Replace all stored samples instead of merging")
	if err := viper.BindPFlags(importCmd.Flags()); err != nil {
		contract.LogFatal("Error binding import flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target schema version (-1 = latest)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding migrate flags", err)
	}
}
