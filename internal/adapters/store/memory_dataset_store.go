package store

import (
	"sync"

	"shipment-insights-service/internal/domain"
)

// In-memory implementation of the DatasetStore port.
//
// The service keeps exactly one dataset at a time and re-ingesting fully
// replaces prior derived state; nothing survives a process restart. The
// RWMutex only guards the pointer handoff, since datasets themselves are
// immutable once built.
type MemoryDatasetStore struct {
	mu      sync.RWMutex
	current *domain.Dataset
}

func NewMemoryDatasetStore() *MemoryDatasetStore {
	return &MemoryDatasetStore{}
}

// Replace swaps in the dataset from the latest ingestion run.
func (s *MemoryDatasetStore) Replace(ds *domain.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = ds
}

// Current returns the active dataset, or nil before the first ingestion.
func (s *MemoryDatasetStore) Current() *domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
