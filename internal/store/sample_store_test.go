package store

import (
	"context"
	"testing"
	"time"

	"github.com/huangsam/weightlog/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAt(id string, date time.Time, value float64) schema.Sample {
	return schema.Sample{ID: id, Date: date, Value: value}
}

func TestSampleStore_SQLite(t *testing.T) {
	ctx := context.Background()
	dbPath := tempDBPath(t)

	s, err := NewSampleStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	t.Run("empty list", func(t *testing.T) {
		samples, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, samples)
	})

	jan := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	t.Run("add and list ordered by date", func(t *testing.T) {
		require.NoError(t, s.Add(ctx, sampleAt("c", jan.Add(50*time.Hour), 82.0)))
		require.NoError(t, s.Add(ctx, sampleAt("a", jan.Add(2*time.Hour), 80.5)))
		require.NoError(t, s.Add(ctx, sampleAt("b", jan.Add(2*time.Hour+500*time.Millisecond), 81.25)))

		samples, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, samples, 3)
		assert.Equal(t, []string{"a", "b", "c"}, []string{samples[0].ID, samples[1].ID, samples[2].ID})
		assert.True(t, samples[1].Date.Equal(jan.Add(2*time.Hour+500*time.Millisecond)))
		assert.InDelta(t, 81.25, samples[1].Value, 1e-9)
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		assert.Error(t, s.Add(ctx, sampleAt("a", jan, 70)))
	})

	t.Run("non UTC dates are stored as the same instant", func(t *testing.T) {
		zone := time.FixedZone("UTC-5", -5*60*60)
		local := time.Date(2025, time.January, 10, 23, 30, 0, 0, zone)
		require.NoError(t, s.Add(ctx, sampleAt("d", local, 83)))

		samples, err := s.List(ctx)
		require.NoError(t, err)
		last := samples[len(samples)-1]
		assert.Equal(t, "d", last.ID)
		assert.True(t, last.Date.Equal(local))
	})

	t.Run("status", func(t *testing.T) {
		status, err := s.GetStatus()
		require.NoError(t, err)
		assert.Equal(t, "sqlite", status.Backend)
		assert.True(t, status.Connected)
		assert.Equal(t, 4, status.TotalSamples)
		assert.True(t, status.FirstSampleTime.Equal(jan.Add(2*time.Hour)))
		assert.Positive(t, status.TableSizeBytes)
		assert.Equal(t, 0, status.SchemaVersion)
	})

	t.Run("replace all", func(t *testing.T) {
		replacement := []schema.Sample{
			sampleAt("x", jan.AddDate(0, 1, 0), 90),
			sampleAt("y", jan.AddDate(0, 0, 5), 91),
		}
		require.NoError(t, s.ReplaceAll(ctx, replacement))

		samples, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, samples, 2)
		assert.Equal(t, "y", samples[0].ID)
		assert.Equal(t, "x", samples[1].ID)
	})

	t.Run("replace all is atomic", func(t *testing.T) {
		bad := []schema.Sample{
			sampleAt("dup", jan, 70),
			sampleAt("dup", jan, 71),
		}
		assert.Error(t, s.ReplaceAll(ctx, bad))

		samples, err := s.List(ctx)
		require.NoError(t, err)
		assert.Len(t, samples, 2, "failed replace must keep the previous samples")
	})

	t.Run("replace with empty list", func(t *testing.T) {
		require.NoError(t, s.ReplaceAll(ctx, nil))
		status, err := s.GetStatus()
		require.NoError(t, err)
		assert.Equal(t, 0, status.TotalSamples)
	})
}

func TestSampleStore_Persistence(t *testing.T) {
	ctx := context.Background()
	dbPath := tempDBPath(t)
	day := time.Date(2025, time.June, 1, 7, 0, 0, 0, time.UTC)

	s, err := NewSampleStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Add(ctx, sampleAt("persist", day, 77.7)))
	require.NoError(t, s.Close())

	reopened, err := NewSampleStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	samples, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "persist", samples[0].ID)
	assert.True(t, samples[0].Date.Equal(day))
}

func TestNewSampleStoreErrors(t *testing.T) {
	_, err := NewSampleStore(schema.DatabaseBackend("redis"), "")
	assert.Error(t, err)

	_, err = NewSampleStore(schema.MySQLBackend, "not a dsn")
	assert.Error(t, err)
}

func TestSampleStore_NoneBackend(t *testing.T) {
	s, err := NewSampleStore(schema.NoneBackend, "")
	require.NoError(t, err)
	assert.IsType(t, &MemorySampleStore{}, s)
	assert.NoError(t, s.Close())
}
