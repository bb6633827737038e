package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/huangsam/weightlog/internal/contract"
	"github.com/huangsam/weightlog/schema"
)

// PrefStoreImpl is a key-value store for user preferences.
type PrefStoreImpl struct {
	db        *sql.DB
	tableName string
	backend   schema.DatabaseBackend
}

var _ contract.PrefStore = &PrefStoreImpl{} // Compile-time check

// NewPrefStore initializes and returns a new PrefStore based on the backend type.
// The none backend keeps preferences in memory only.
func NewPrefStore(backend schema.DatabaseBackend, connStr string) (contract.PrefStore, error) {
	if backend == schema.NoneBackend {
		return NewMemoryPrefStore(), nil
	}

	db, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}
	if err := ensureSchema(db, backend); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PrefStoreImpl{db: db, tableName: preferencesTable, backend: backend}, nil
}

// Get retrieves a value by key from the store.
func (ps *PrefStoreImpl) Get(ctx context.Context, key string) (string, error) {
	query := fmt.Sprintf(`SELECT pref_value FROM %s WHERE pref_key = %s`,
		quoteTableName(ps.tableName, ps.backend), placeholder(ps.backend, 1))
	var value string
	if err := ps.db.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		return "", err
	}
	return value, nil
}

// Set inserts or replaces a key/value pair in the store.
func (ps *PrefStoreImpl) Set(ctx context.Context, key string, value string) error {
	_, err := ps.db.ExecContext(ctx, ps.getUpsertQuery(), key, value)
	if err != nil {
		return fmt.Errorf("failed to set preference %s: %w", key, err)
	}
	return nil
}

// getUpsertQuery returns the UPSERT query for the backend.
func (ps *PrefStoreImpl) getUpsertQuery() string {
	quotedTableName := quoteTableName(ps.tableName, ps.backend)
	switch ps.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (pref_key, pref_value) VALUES (?, ?) AS new
			ON DUPLICATE KEY UPDATE pref_value = new.pref_value`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (pref_key, pref_value) VALUES ($1, $2)
			ON CONFLICT (pref_key) DO UPDATE SET pref_value = EXCLUDED.pref_value`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (pref_key, pref_value) VALUES (?, ?)`, quotedTableName)
	}
}

// Close closes the underlying DB connection.
func (ps *PrefStoreImpl) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}
