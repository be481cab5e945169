// Package jsonstore provides a JSON file-based implementation of domain.Slot.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/tasklist/internal/domain"
)

// errCorruptFile marks a slot file that exists but is not valid JSON.
var errCorruptFile = errors.New("parse store file")

// storeData represents the JSON file structure.
type storeData struct {
	Slots map[string]string `json:"slots"`
}

// Store implements domain.Slot using a JSON file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the slot file path.
func (s *Store) Path() string {
	return s.path
}

// CorruptPath returns where an unparseable slot file is kept after a write replaces it.
func (s *Store) CorruptPath() string {
	return s.path + ".corrupt"
}

// Read returns the value stored under key.
func (s *Store) Read(key string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := s.withLock(func(data *storeData) error {
		value, found = data.Slots[key]
		return nil
	})
	return value, found, err
}

// Write overwrites the value stored under key.
func (s *Store) Write(key, value string) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Slots[key] = value
		return nil
	})
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
// A corrupt slot file is moved aside to CorruptPath and replaced.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if errors.Is(err, errCorruptFile) {
		if err := os.Rename(s.path, s.CorruptPath()); err != nil {
			return fmt.Errorf("move corrupt store file aside: %w", err)
		}
		data = &storeData{Slots: make(map[string]string)}
	} else if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// read loads the slot file. A missing file is an empty store.
func (s *Store) read() (*storeData, error) {
	data := &storeData{Slots: make(map[string]string)}

	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	if err := json.Unmarshal(content, data); err != nil {
		return nil, fmt.Errorf("%w: %v", errCorruptFile, err)
	}
	if data.Slots == nil {
		data.Slots = make(map[string]string)
	}

	return data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements Slot.
var _ domain.Slot = (*Store)(nil)
