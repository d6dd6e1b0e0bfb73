package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrVersionConflict is returned when another writer advanced a snapshot
// between load and save of a mutation.
var ErrVersionConflict = errors.New("snapshot version conflict")

// snapshot is the on-disk shape of one collection: a version stamp, the
// collection's monotonic serial sequence and the full record set.
type snapshot[T any] struct {
	Version uint64 `json:"version"`
	Serial  uint64 `json:"serial"`
	Records []T    `json:"records"`
}

// Collection is a whole-file JSON record store. Reads load the complete
// collection; every mutation rewrites it synchronously. The version stamp
// closes the last-writer-wins window against a second process sharing the
// same data directory.
type Collection[T any] struct {
	mu   sync.Mutex
	path string
}

func NewCollection[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

func (c *Collection[T]) Path() string { return c.path }

// Load returns every record in stored order. A missing file is an empty
// collection; malformed content propagates as a decode error.
func (c *Collection[T]) Load() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap, err := readSnapshot[T](c.path)
	if err != nil {
		return nil, err
	}
	return snap.Records, nil
}

// Txn is the mutable view handed to a Mutate callback.
type Txn[T any] struct {
	Records []T
	serial  uint64
}

// NextSerial advances the collection's monotonic sequence. The value is
// persisted with the snapshot and never derived from the record count, so
// deletions cannot cause a serial to be reissued.
func (t *Txn[T]) NextSerial() uint64 {
	t.serial++
	return t.serial
}

// Mutate runs fn over the loaded collection and writes the result back as a
// new snapshot version. If the on-disk version moved while fn ran, nothing
// is written and ErrVersionConflict is returned.
func (c *Collection[T]) Mutate(fn func(*Txn[T]) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap, err := readSnapshot[T](c.path)
	if err != nil {
		return err
	}

	txn := &Txn[T]{Records: snap.Records, serial: snap.Serial}
	if err := fn(txn); err != nil {
		return err
	}

	current, err := readSnapshot[T](c.path)
	if err != nil {
		return err
	}
	if current.Version != snap.Version {
		return fmt.Errorf("%w: %s moved from version %d to %d",
			ErrVersionConflict, filepath.Base(c.path), snap.Version, current.Version)
	}

	return writeSnapshot(c.path, snapshot[T]{
		Version: snap.Version + 1,
		Serial:  txn.serial,
		Records: txn.Records,
	})
}

func readSnapshot[T any](path string) (snapshot[T], error) {
	var snap snapshot[T]
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return snap, nil
	}
	if err != nil {
		return snap, err
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return snap, nil
}

func writeSnapshot[T any](path string, snap snapshot[T]) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
