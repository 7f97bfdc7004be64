package store

import "sync"

// MemoryStore is an in-memory Store, used in tests and anywhere persistence
// across restarts is not wanted.
type MemoryStore struct {
	mu     sync.Mutex
	cached *AnalysisResult
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get returns the stored result, or ok=false when none exists.
func (s *MemoryStore) Get() (*AnalysisResult, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached == nil {
		return nil, false, nil
	}
	return copyResult(s.cached), true, nil
}

// Set replaces the stored result.
func (s *MemoryStore) Set(result *AnalysisResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = copyResult(result)
	return nil
}

// Clear removes the stored result.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
	return nil
}
