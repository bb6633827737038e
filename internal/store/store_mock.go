package store

import (
	"context"

	"github.com/huangsam/weightlog/internal/contract"
	"github.com/huangsam/weightlog/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetSampleStore implements the StoreManager interface.
func (m *MockStoreManager) GetSampleStore() contract.SampleStore {
	ret := m.Called()
	s, _ := ret.Get(0).(contract.SampleStore)
	return s
}

// GetPrefStore implements the StoreManager interface.
func (m *MockStoreManager) GetPrefStore() contract.PrefStore {
	ret := m.Called()
	s, _ := ret.Get(0).(contract.PrefStore)
	return s
}

// MockSampleStore is a mock implementation of SampleStore for testing.
type MockSampleStore struct {
	mock.Mock
}

var _ contract.SampleStore = &MockSampleStore{} // Compile-time check

// Add implements the SampleStore interface.
func (m *MockSampleStore) Add(ctx context.Context, sample schema.Sample) error {
	args := m.Called(ctx, sample)
	return args.Error(0)
}

// List implements the SampleStore interface.
func (m *MockSampleStore) List(ctx context.Context) ([]schema.Sample, error) {
	args := m.Called(ctx)
	samples, _ := args.Get(0).([]schema.Sample)
	return samples, args.Error(1)
}

// ReplaceAll implements the SampleStore interface.
func (m *MockSampleStore) ReplaceAll(ctx context.Context, samples []schema.Sample) error {
	args := m.Called(ctx, samples)
	return args.Error(0)
}

// GetStatus implements the SampleStore interface.
func (m *MockSampleStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the SampleStore interface.
func (m *MockSampleStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockPrefStore is a mock implementation of PrefStore for testing.
type MockPrefStore struct {
	mock.Mock
}

var _ contract.PrefStore = &MockPrefStore{} // Compile-time check

// Get implements the PrefStore interface.
func (m *MockPrefStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

// Set implements the PrefStore interface.
func (m *MockPrefStore) Set(ctx context.Context, key string, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// Close implements the PrefStore interface.
func (m *MockPrefStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
