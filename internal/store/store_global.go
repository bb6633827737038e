package store

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/huangsam/weightlog/schema"
)

// Table names for sample and preference storage.
const (
	samplesTable     = "weight_samples"
	preferencesTable = "weight_preferences"
	migrationsTable  = "schema_migrations"
)

// Global Manager instance for main logic.
var (
	Manager   = &StoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitStores initializes the global manager with a sample store and a preference store.
func InitStores(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		samples, err := NewSampleStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize sample store: %w", err)
			return
		}

		prefs, err := NewPrefStore(backend, connStr)
		if err != nil {
			_ = samples.Close()
			initErr = fmt.Errorf("failed to initialize preference store: %w", err)
			return
		}

		Manager.Lock()
		defer Manager.Unlock()
		Manager.samples = samples
		Manager.prefs = prefs
	})

	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.samples != nil {
			_ = Manager.samples.Close()
		}
		if Manager.prefs != nil {
			_ = Manager.prefs.Close()
		}
	})
}

// ClearStore removes all persisted data for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the tables.
// For NoneBackend, it does nothing.
func ClearStore(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend, schema.PostgreSQLBackend:
		db, err := openDB(backend, connStr)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		for _, table := range []string{samplesTable, preferencesTable, migrationsTable} {
			if err := dropTable(db, backend, table); err != nil {
				return err
			}
		}
		return nil

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported store backend for clearing: %s", backend)
	}
}

// dropTable drops the table if it exists.
func dropTable(db *sql.DB, backend schema.DatabaseBackend, tableName string) error {
	if err := validateTableName(tableName); err != nil {
		return err
	}
	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteTableName(tableName, backend))
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}
	return nil
}
