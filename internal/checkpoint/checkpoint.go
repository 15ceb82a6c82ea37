// Package checkpoint persists acquisition progress so an interrupted run
// can resume. The file exists only mid-run; successful completion removes it.
package checkpoint

import (
	"encoding/json/v2"
	"fmt"
	"os"
	"path/filepath"

	"github.com/loftlist/seedkit/internal/domain"
)

// Store reads and writes the progress checkpoint at a fixed path.
type Store struct {
	path string
}

// New creates a store for the checkpoint file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the checkpoint file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the checkpoint. A missing file is not an error; it returns
// (nil, nil) so callers can distinguish a fresh start from a corrupt file.
func (s *Store) Load() (*domain.AcquisitionProgress, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open checkpoint: %w", err)
	}
	defer file.Close()

	var progress domain.AcquisitionProgress
	if err := json.UnmarshalRead(file, &progress); err != nil {
		return nil, fmt.Errorf("parse checkpoint: %w", err)
	}
	return &progress, nil
}

// Save overwrites the checkpoint atomically: write to a temp file in the
// same directory, then rename over the target. A crash between pages
// loses at most one page of progress.
func (s *Store) Save(progress *domain.AcquisitionProgress) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create checkpoint dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".checkpoint-*.json")
	if err != nil {
		return fmt.Errorf("create temp checkpoint: %w", err)
	}

	if err := json.MarshalWrite(tmp, progress); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write checkpoint: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp checkpoint: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace checkpoint: %w", err)
	}
	return nil
}

// Clear removes the checkpoint. Idempotent: a missing file is success.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove checkpoint: %w", err)
	}
	return nil
}
