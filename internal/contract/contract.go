// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/weightlog/schema"
)

// StoreManager defines the interface for managing the persistence stores.
// This allows the store layer to be mocked for testing.
type StoreManager interface {
	GetSampleStore() SampleStore
	GetPrefStore() PrefStore
}

// SampleStore defines the interface for weight sample storage.
type SampleStore interface {
	// Add appends one sample. Samples are never edited in place.
	Add(ctx context.Context, sample schema.Sample) error

	// List returns every sample ordered by date ascending.
	List(ctx context.Context) ([]schema.Sample, error)

	// ReplaceAll swaps the full sample list in a single transaction.
	ReplaceAll(ctx context.Context, samples []schema.Sample) error

	// GetStatus returns status information about the sample store.
	GetStatus() (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// PrefStore defines the interface for key-value preference storage.
type PrefStore interface {
	// Get returns the value for key, or sql.ErrNoRows when it is not set.
	Get(ctx context.Context, key string) (string, error)

	// Set inserts or replaces the value for key.
	Set(ctx context.Context, key string, value string) error

	// Close closes the underlying connection.
	Close() error
}
