package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/huangsam/weightlog/internal/contract"
	"github.com/huangsam/weightlog/schema"
)

// MemorySampleStore keeps samples for the lifetime of the process.
type MemorySampleStore struct {
	mu      sync.RWMutex
	samples []schema.Sample
}

var _ contract.SampleStore = &MemorySampleStore{} // Compile-time check

// NewMemorySampleStore returns an empty in-memory sample store.
func NewMemorySampleStore() *MemorySampleStore {
	return &MemorySampleStore{}
}

// Add appends a sample unless its id is already present.
func (ms *MemorySampleStore) Add(_ context.Context, sample schema.Sample) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for _, s := range ms.samples {
		if s.ID == sample.ID {
			return fmt.Errorf("sample %s already exists", sample.ID)
		}
	}
	ms.samples = append(ms.samples, sample)
	return nil
}

// List returns a copy of the samples ordered by date ascending.
func (ms *MemorySampleStore) List(_ context.Context) ([]schema.Sample, error) {
	ms.mu.RLock()
	out := slices.Clone(ms.samples)
	ms.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// ReplaceAll swaps the sample list.
func (ms *MemorySampleStore) ReplaceAll(_ context.Context, samples []schema.Sample) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.samples = slices.Clone(samples)
	return nil
}

// GetStatus reports the in-memory contents.
func (ms *MemorySampleStore) GetStatus() (schema.StoreStatus, error) {
	samples, _ := ms.List(context.Background())
	status := schema.StoreStatus{
		Backend:      string(schema.NoneBackend),
		Connected:    false,
		TotalSamples: len(samples),
	}
	if n := len(samples); n > 0 {
		status.FirstSampleTime = samples[0].Date
		status.LastSampleTime = samples[n-1].Date
	}
	return status, nil
}

// Close is a no-op.
func (ms *MemorySampleStore) Close() error {
	return nil
}

// MemoryPrefStore keeps preferences for the lifetime of the process.
type MemoryPrefStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ contract.PrefStore = &MemoryPrefStore{} // Compile-time check

// NewMemoryPrefStore returns an empty in-memory preference store.
func NewMemoryPrefStore() *MemoryPrefStore {
	return &MemoryPrefStore{values: make(map[string]string)}
}

// Get returns sql.ErrNoRows for unknown keys, like the SQL store.
func (mp *MemoryPrefStore) Get(_ context.Context, key string) (string, error) {
	mp.mu.RLock()
	defer mp.mu.RUnlock()
	value, ok := mp.values[key]
	if !ok {
		return "", sql.ErrNoRows
	}
	return value, nil
}

// Set stores value under key.
func (mp *MemoryPrefStore) Set(_ context.Context, key string, value string) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	mp.values[key] = value
	return nil
}

// Close is a no-op.
func (mp *MemoryPrefStore) Close() error {
	return nil
}
