package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/weightlog/internal/contract"
	"github.com/huangsam/weightlog/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeBackendSetup loads the backend settings without opening any store.
// Clearing and migrating must work on a missing or outdated database.
func storeBackendSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	connStr := viper.GetString("store-db-connect")
	backend, err := contract.ProcessBackend(viper.GetString("store-backend"), connStr)
	if err != nil {
		return err
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	return nil
}

// storeSetup loads minimal configuration needed for store inspection.
func storeSetup() error {
	if err := storeBackendSetup(); err != nil {
		return err
	}
	if err := store.InitStores(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return fmt.Errorf("failed to initialize persistence: %w", err)
	}
	return nil
}

// storeCmd focused on sample storage management.
//
// Note: Store subcommands use minimal initialization instead of the full
// sharedSetup so that a broken calendar or output setting never blocks them.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the weight sample store",
	Long: `Inspect and maintain the database that holds weight samples and preferences.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (in-memory)

Subcommands:
  status  - Show sample counts and connection info
  clear   - Remove all samples and preferences
  migrate - Run database schema migrations`,
}

// storeStatusCmd shows store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return storeSetup()
	},
	Run: func(_ *cobra.Command, _ []string) {
		status, err := storeManager.GetSampleStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		store.PrintStoreStatus(os.Stdout, status)
	},
}

// storeClearCmd clears the store.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all weight samples and preferences",
	Long: `Delete every stored sample and preference from the configured backend.

WARNING: This action cannot be undone. Consider exporting data first.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the tables

Examples:
  weightlog export --output-file backup.json
  weightlog store clear`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return storeBackendSetup()
	},
	Run: func(_ *cobra.Command, _ []string) {
		dbFilePath := cfg.StoreDBConnect
		if dbFilePath == "" {
			dbFilePath = contract.GetDBFilePath()
		}
		if err := store.ClearStore(cfg.StoreBackend, dbFilePath, cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear store", err)
		}
		fmt.Println("Store cleared successfully.")
	},
}

// storeMigrateCmd runs database migrations for the sample store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the sample store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  weightlog store migrate

  # Rollback everything
  weightlog store migrate --target-version 0`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return storeBackendSetup()
	},
	Run: func(_ *cobra.Command, _ []string) {
		msg, err := store.Migrate(cfg.StoreBackend, cfg.StoreDBConnect, viper.GetInt("target-version"))
		if err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
		fmt.Println(msg)
	},
}
