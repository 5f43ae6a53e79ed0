// ABOUTME: Unified Storage layer that wraps the SQLite dataset store
// ABOUTME: Satisfies storage.Store for the sqlite backend
package sqlite

import (
	"fmt"
	"sync"

	"github.com/harper/corpusprep/internal/models"
)

// Storage manages the dataset store using SQLite
type Storage struct {
	db       *DB
	datasets *DatasetStore
	mu       sync.RWMutex
}

// NewStorage initializes storage at the default XDG path
func NewStorage() (*Storage, error) {
	return NewStorageWithPath(DefaultDBPath())
}

// NewStorageWithPath initializes storage with a custom database path
func NewStorageWithPath(dbPath string) (*Storage, error) {
	db, err := Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Storage{
		db:       db,
		datasets: NewDatasetStore(db),
	}, nil
}

// NewStorageInMemory creates an in-memory storage (for testing)
func NewStorageInMemory() (*Storage, error) {
	db, err := OpenInMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}

	return &Storage{
		db:       db,
		datasets: NewDatasetStore(db),
	}, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file path
func (s *Storage) Path() string {
	return s.db.Path()
}

// GetDataset returns the full ordered example collection for name.
func (s *Storage) GetDataset(name string) ([]models.Example, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.datasets.Examples(name)
}

// AddExamples appends examples to name, creating the dataset if needed.
func (s *Storage) AddExamples(name string, examples []models.Example) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.datasets.Append(name, examples)
}

// ListDatasets returns every dataset with its example count.
func (s *Storage) ListDatasets() ([]models.DatasetInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.datasets.List()
}

// DropDataset deletes a dataset and its examples.
func (s *Storage) DropDataset(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.datasets.Drop(name)
}
