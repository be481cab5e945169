// Package gitstore provides a Git plumbing-based implementation of domain.Slot.
package gitstore

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/runoshun/tasklist/internal/domain"
)

// Store implements domain.Slot using Git refs and blobs.
//
// Data structure:
//
//	refs/<namespace>/
//	  slots/
//	    <key>  → blob (slot value)
type Store struct {
	repo      *git.Repository
	namespace string // e.g., "tasklist"
	mu        sync.RWMutex
}

// New opens the repository at repoPath (or any parent directory) and creates a Store.
func New(repoPath, namespace string) (*Store, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	return NewWithRepo(repo, namespace), nil
}

// NewWithRepo creates a new Store with an existing repository instance.
func NewWithRepo(repo *git.Repository, namespace string) *Store {
	if namespace == "" {
		namespace = domain.DefaultNamespace
	}
	return &Store{
		repo:      repo,
		namespace: namespace,
	}
}

// slotRef returns the ref name for a slot key.
func (s *Store) slotRef(key string) plumbing.ReferenceName {
	return plumbing.ReferenceName("refs/" + s.namespace + "/slots/" + key)
}

// Read returns the value stored under key.
func (s *Store) Read(key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, err := s.repo.Reference(s.slotRef(key), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get slot ref: %w", err)
	}

	data, err := s.readBlob(ref.Hash())
	if err != nil {
		return "", false, fmt.Errorf("read slot: %w", err)
	}
	return string(data), true, nil
}

// Write stores value as a new blob and points the slot ref at it.
func (s *Store) Write(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hash, err := s.writeBlob([]byte(value))
	if err != nil {
		return err
	}

	ref := plumbing.NewHashReference(s.slotRef(key), hash)
	if err := s.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("set slot ref: %w", err)
	}
	return nil
}

func (s *Store) writeBlob(data []byte) (plumbing.Hash, error) {
	obj := s.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(int64(len(data)))

	writer, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("create blob writer: %w", err)
	}

	if _, writeErr := writer.Write(data); writeErr != nil {
		_ = writer.Close()
		return plumbing.ZeroHash, fmt.Errorf("write blob: %w", writeErr)
	}
	_ = writer.Close()

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store blob: %w", err)
	}

	return hash, nil
}

func (s *Store) readBlob(hash plumbing.Hash) ([]byte, error) {
	blob, err := s.repo.BlobObject(hash)
	if err != nil {
		return nil, fmt.Errorf("get blob: %w", err)
	}

	reader, err := blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read blob data: %w", err)
	}
	return data, nil
}

// validateKey rejects keys that would escape the slots ref directory.
func validateKey(key string) error {
	if key == "" || strings.Contains(key, "/") || strings.Contains(key, "..") {
		return fmt.Errorf("invalid slot key %q", key)
	}
	return nil
}

// Ensure Store implements Slot.
var _ domain.Slot = (*Store)(nil)
