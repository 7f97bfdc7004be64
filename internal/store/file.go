package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps the analysis blob in a JSON file under a data directory.
// The file is read once at construction; reads afterwards are served from
// memory and writes replace the file wholesale.
type FileStore struct {
	path string

	mu     sync.Mutex
	cached *AnalysisResult
}

// NewFileStore creates a file-backed store rooted at dir, loading any
// previously persisted result. A blob that fails to parse or validate is
// removed rather than surfaced as an error, matching the load-on-start
// behavior of the original client store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	s := &FileStore{path: filepath.Join(dir, Key+".json")}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis result: %w", err)
	}

	var result AnalysisResult
	if verr := validateBlob(data); verr != nil {
		log.Printf("Removing corrupt analysis result: %v", verr)
		_ = os.Remove(s.path)
		return s, nil
	}
	if uerr := json.Unmarshal(data, &result); uerr != nil {
		log.Printf("Removing unreadable analysis result: %v", uerr)
		_ = os.Remove(s.path)
		return s, nil
	}

	s.cached = &result
	return s, nil
}

// Get returns the stored result, or ok=false when none exists.
func (s *FileStore) Get() (*AnalysisResult, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached == nil {
		return nil, false, nil
	}
	return copyResult(s.cached), true, nil
}

// Set replaces the stored result and its backing file.
func (s *FileStore) Set(result *AnalysisResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write analysis result: %w", err)
	}

	s.cached = copyResult(result)
	return nil
}

// Clear removes the stored result and its backing file.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove analysis result: %w", err)
	}
	s.cached = nil
	return nil
}
