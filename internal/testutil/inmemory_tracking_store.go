package testutil

import (
	"context"
	"sync"

	"github.com/runforua/donorboard/internal/domain/tracking"
)

// InMemoryTrackingStore implements tracking.Repository over a fixture set.
type InMemoryTrackingStore struct {
	mu      sync.RWMutex
	records []tracking.Record

	ListCalls int
	Err       error
}

func NewInMemoryTrackingStore() *InMemoryTrackingStore {
	return &InMemoryTrackingStore{}
}

func (s *InMemoryTrackingStore) Add(records ...tracking.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, records...)
}

func (s *InMemoryTrackingStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.ListCalls = 0
	s.Err = nil
}

func (s *InMemoryTrackingStore) ListAll(_ context.Context) ([]tracking.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ListCalls++
	if s.Err != nil {
		return nil, s.Err
	}

	out := make([]tracking.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}
