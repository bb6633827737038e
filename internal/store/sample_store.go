package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/huangsam/weightlog/internal/contract"
	"github.com/huangsam/weightlog/schema"
)

// SampleStoreImpl stores weight samples in a SQL database.
type SampleStoreImpl struct {
	db        *sql.DB
	tableName string
	backend   schema.DatabaseBackend
	connStr   string
}

var _ contract.SampleStore = &SampleStoreImpl{} // Compile-time check

// NewSampleStore initializes and returns a new SampleStore based on the backend type.
// The none backend keeps samples in memory only.
func NewSampleStore(backend schema.DatabaseBackend, connStr string) (contract.SampleStore, error) {
	if backend == schema.NoneBackend {
		return NewMemorySampleStore(), nil
	}

	db, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}
	if err := ensureSchema(db, backend); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SampleStoreImpl{
		db:        db,
		tableName: samplesTable,
		backend:   backend,
		connStr:   connStr,
	}, nil
}

// Add inserts one sample. Duplicate ids are rejected by the primary key.
func (ss *SampleStoreImpl) Add(ctx context.Context, sample schema.Sample) error {
	query := fmt.Sprintf(`INSERT INTO %s (sample_id, taken_at, value_kg) VALUES (%s)`,
		quoteTableName(ss.tableName, ss.backend), placeholders(ss.backend, 3))
	if _, err := ss.db.ExecContext(ctx, query, sample.ID, formatTime(sample.Date, ss.backend), sample.Value); err != nil {
		return fmt.Errorf("failed to insert sample %s: %w", sample.ID, err)
	}
	return nil
}

// List returns every sample ordered by date ascending.
func (ss *SampleStoreImpl) List(ctx context.Context) ([]schema.Sample, error) {
	query := fmt.Sprintf(`SELECT sample_id, taken_at, value_kg FROM %s ORDER BY taken_at, sample_id`,
		quoteTableName(ss.tableName, ss.backend))
	rows, err := ss.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query samples: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.Sample
	for rows.Next() {
		var sample schema.Sample
		switch ss.backend {
		case schema.SQLiteBackend:
			var takenAt string
			if err := rows.Scan(&sample.ID, &takenAt, &sample.Value); err != nil {
				return nil, fmt.Errorf("failed to scan sample: %w", err)
			}
			if sample.Date, err = parseSQLiteTime(takenAt); err != nil {
				return nil, err
			}
		default: // MySQL and PostgreSQL store as native datetime
			if err := rows.Scan(&sample.ID, &sample.Date, &sample.Value); err != nil {
				return nil, fmt.Errorf("failed to scan sample: %w", err)
			}
		}
		results = append(results, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating samples: %w", err)
	}
	return results, nil
}

// ReplaceAll swaps the full sample list in a single transaction.
func (ss *SampleStoreImpl) ReplaceAll(ctx context.Context, samples []schema.Sample) error {
	tx, err := ss.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	quotedTableName := quoteTableName(ss.tableName, ss.backend)
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", quotedTableName)); err != nil {
		return fmt.Errorf("failed to delete samples: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`INSERT INTO %s (sample_id, taken_at, value_kg) VALUES (%s)`,
		quotedTableName, placeholders(ss.backend, 3)))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, sample := range samples {
		if _, err := stmt.ExecContext(ctx, sample.ID, formatTime(sample.Date, ss.backend), sample.Value); err != nil {
			return fmt.Errorf("failed to insert sample %s: %w", sample.ID, err)
		}
	}
	return tx.Commit()
}

// Close closes the underlying DB connection.
func (ss *SampleStoreImpl) Close() error {
	if ss.db != nil {
		return ss.db.Close()
	}
	return nil
}

// GetStatus returns status information about the sample store.
func (ss *SampleStoreImpl) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(ss.backend),
		Connected: ss.db != nil,
	}
	if ss.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(ss.tableName, ss.backend)
	status.SchemaVersion = ss.schemaVersion()

	row := ss.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName))
	if err := row.Scan(&status.TotalSamples); err != nil {
		return status, fmt.Errorf("failed to get total samples: %w", err)
	}
	if status.TotalSamples == 0 {
		return status, nil
	}

	rangeQuery := fmt.Sprintf("SELECT MIN(taken_at), MAX(taken_at) FROM %s", quotedTableName)
	switch ss.backend {
	case schema.SQLiteBackend:
		var first, last string
		if err := ss.db.QueryRow(rangeQuery).Scan(&first, &last); err != nil {
			return status, fmt.Errorf("failed to get sample range: %w", err)
		}
		status.FirstSampleTime, _ = parseSQLiteTime(first)
		status.LastSampleTime, _ = parseSQLiteTime(last)
	default:
		var first, last time.Time
		if err := ss.db.QueryRow(rangeQuery).Scan(&first, &last); err != nil {
			return status, fmt.Errorf("failed to get sample range: %w", err)
		}
		status.FirstSampleTime, status.LastSampleTime = first, last
	}

	status.TableSizeBytes = ss.tableSize(status.TotalSamples)
	return status, nil
}

// schemaVersion reads the migration version, or 0 when migrations never ran.
func (ss *SampleStoreImpl) schemaVersion() int {
	var version int
	query := fmt.Sprintf("SELECT version FROM %s LIMIT 1", quoteTableName(migrationsTable, ss.backend))
	if err := ss.db.QueryRow(query).Scan(&version); err != nil {
		return 0
	}
	return version
}

// tableSize estimates the storage used by samples.
func (ss *SampleStoreImpl) tableSize(total int) int64 {
	estimate := int64(total) * 64 // Rough estimate
	var size int64

	switch ss.backend {
	case schema.SQLiteBackend:
		// For SQLite, use page_count * page_size of the whole file
		row := ss.db.QueryRow("SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()")
		if err := row.Scan(&size); err != nil {
			return estimate
		}
	case schema.MySQLBackend:
		dbName := mysqlDatabaseName(ss.connStr)
		if dbName == "" {
			return estimate
		}
		row := ss.db.QueryRow("SELECT data_length + index_length FROM information_schema.tables WHERE table_schema = ? AND table_name = ?", dbName, ss.tableName)
		if err := row.Scan(&size); err != nil {
			return estimate
		}
	case schema.PostgreSQLBackend:
		row := ss.db.QueryRow("SELECT pg_total_relation_size($1)", ss.tableName)
		if err := row.Scan(&size); err != nil {
			return estimate
		}
	default:
		return estimate
	}
	return size
}
