package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/huangsam/weightlog/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefStore_SQLite(t *testing.T) {
	ctx := context.Background()
	dbPath := tempDBPath(t)

	ps, err := NewPrefStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = ps.Close() }()

	t.Run("missing key", func(t *testing.T) {
		_, err := ps.Get(ctx, schema.UnitSystemKey)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, ps.Set(ctx, schema.UnitSystemKey, string(schema.ImperialUnits)))
		value, err := ps.Get(ctx, schema.UnitSystemKey)
		require.NoError(t, err)
		assert.Equal(t, "imperial", value)
	})

	t.Run("upsert behavior", func(t *testing.T) {
		require.NoError(t, ps.Set(ctx, schema.UnitSystemKey, string(schema.MetricUnits)))
		value, err := ps.Get(ctx, schema.UnitSystemKey)
		require.NoError(t, err)
		assert.Equal(t, "metric", value)
	})

	t.Run("multiple keys", func(t *testing.T) {
		require.NoError(t, ps.Set(ctx, schema.LastWeightValueKey, "81.4"))
		require.NoError(t, ps.Set(ctx, schema.LastWeightDateKey, "2025-01-02T08:00:00Z"))

		value, err := ps.Get(ctx, schema.LastWeightValueKey)
		require.NoError(t, err)
		assert.Equal(t, "81.4", value)

		value, err = ps.Get(ctx, schema.LastWeightDateKey)
		require.NoError(t, err)
		assert.Equal(t, "2025-01-02T08:00:00Z", value)
	})
}

func TestPrefStore_SharesFileWithSamples(t *testing.T) {
	ctx := context.Background()
	dbPath := tempDBPath(t)

	samples, err := NewSampleStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = samples.Close() }()

	ps, err := NewPrefStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = ps.Close() }()

	require.NoError(t, ps.Set(ctx, "k", "v"))
	status, err := samples.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 0, status.TotalSamples)
}

func TestGetUpsertQuery(t *testing.T) {
	tests := []struct {
		backend  schema.DatabaseBackend
		contains string
	}{
		{schema.SQLiteBackend, "INSERT OR REPLACE INTO \"weight_preferences\""},
		{schema.MySQLBackend, "ON DUPLICATE KEY UPDATE"},
		{schema.PostgreSQLBackend, "ON CONFLICT (pref_key) DO UPDATE"},
	}
	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			ps := &PrefStoreImpl{tableName: preferencesTable, backend: tt.backend}
			assert.Contains(t, ps.getUpsertQuery(), tt.contains)
		})
	}
}
