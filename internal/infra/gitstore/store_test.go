package gitstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) (*git.Repository, string) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Test"), 0o644)
	require.NoError(t, err)

	_, err = wt.Add("README.md")
	require.NoError(t, err)

	_, err = wt.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return repo, dir
}

func TestStore_ReadMissing(t *testing.T) {
	repo, _ := setupTestRepo(t)
	store := NewWithRepo(repo, "tasklist-test")

	value, found, err := store.Read("tasks")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestStore_WriteAndRead(t *testing.T) {
	repo, _ := setupTestRepo(t)
	store := NewWithRepo(repo, "tasklist-test")

	payload := `[{"id":1,"text":"Buy milk","completed":false,"createdDate":"2026-10-01"}]`
	require.NoError(t, store.Write("tasks", payload))

	value, found, err := store.Read("tasks")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload, value)

	// Stored under the namespaced slot ref
	_, err = repo.Reference(plumbing.ReferenceName("refs/tasklist-test/slots/tasks"), true)
	assert.NoError(t, err)
}

func TestStore_WriteOverwrites(t *testing.T) {
	repo, _ := setupTestRepo(t)
	store := NewWithRepo(repo, "tasklist-test")

	require.NoError(t, store.Write("tasks", "first"))
	require.NoError(t, store.Write("tasks", "second"))

	value, _, err := store.Read("tasks")
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}

func TestStore_EmptyValue(t *testing.T) {
	repo, _ := setupTestRepo(t)
	store := NewWithRepo(repo, "tasklist-test")

	require.NoError(t, store.Write("tasks", ""))

	value, found, err := store.Read("tasks")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, value)
}

func TestStore_NamespacesAreIsolated(t *testing.T) {
	repo, _ := setupTestRepo(t)
	a := NewWithRepo(repo, "ns-a")
	b := NewWithRepo(repo, "ns-b")

	require.NoError(t, a.Write("tasks", "from a"))

	_, found, err := b.Read("tasks")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_InvalidKey(t *testing.T) {
	repo, _ := setupTestRepo(t)
	store := NewWithRepo(repo, "tasklist-test")

	for _, key := range []string{"", "a/b", ".."} {
		assert.Error(t, store.Write(key, "x"), "key %q", key)
		_, _, err := store.Read(key)
		assert.Error(t, err, "key %q", key)
	}
}

func TestNew_OpensFromSubdirectory(t *testing.T) {
	_, dir := setupTestRepo(t)
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	store, err := New(sub, "")
	require.NoError(t, err)
	require.NoError(t, store.Write("tasks", "x"))
}

func TestNew_NotARepository(t *testing.T) {
	_, err := New(t.TempDir(), "tasklist")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "open git repository")
}
