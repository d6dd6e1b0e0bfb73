package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Document persists a single optional record, such as the signed-in user.
// Absence of the file means absence of the record.
type Document[T any] struct {
	mu   sync.Mutex
	path string
}

func NewDocument[T any](path string) *Document[T] {
	return &Document[T]{path: path}
}

// Load returns the stored record, or nil when none is stored.
func (d *Document[T]) Load() (*T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := os.ReadFile(d.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(d.path), err)
	}
	return &value, nil
}

func (d *Document[T]) Save(value T) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	tmp := d.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, d.path)
}

// Clear removes the stored record. Clearing an absent record is a no-op.
func (d *Document[T]) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	err := os.Remove(d.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
