// Package store persists weight samples and preferences.
package store

import (
	"sync"

	"github.com/huangsam/weightlog/internal/contract"
)

// StoreManager manages the sample and preference stores.
type StoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	samples      contract.SampleStore
	prefs        contract.PrefStore
}

var _ contract.StoreManager = &StoreManager{} // Compile-time check

// NewStoreManager wraps already opened stores.
func NewStoreManager(samples contract.SampleStore, prefs contract.PrefStore) *StoreManager {
	return &StoreManager{samples: samples, prefs: prefs}
}

// GetSampleStore returns the SampleStore.
func (mgr *StoreManager) GetSampleStore() contract.SampleStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.samples
}

// GetPrefStore returns the PrefStore.
func (mgr *StoreManager) GetPrefStore() contract.PrefStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.prefs
}
