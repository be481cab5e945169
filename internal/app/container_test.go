package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T, projectConfig string) *Container {
	t.Helper()
	projectDir := t.TempDir()
	if projectConfig != "" {
		require.NoError(t, os.WriteFile(domain.ProjectConfigPath(projectDir), []byte(projectConfig), 0o644))
	}
	c, err := NewWithOptions(projectDir, Options{
		GlobalConfigDir: t.TempDir(),
		DataDir:         t.TempDir(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNew_FileBackendDefaults(t *testing.T) {
	c := newTestContainer(t, "")

	assert.Equal(t, domain.StorePath(c.Config.DataDir), c.Config.StorePath)
	assert.Empty(t, c.Config.RepoPath)
	assert.Empty(t, c.AppConfig.Warnings)
}

func TestNew_FileBackendPersistsAcrossContainers(t *testing.T) {
	projectDir := t.TempDir()
	opts := Options{GlobalConfigDir: t.TempDir(), DataDir: t.TempDir()}
	ctx := context.Background()

	first, err := NewWithOptions(projectDir, opts)
	require.NoError(t, err)
	loaded, err := first.LoadBoardUseCase().Execute(ctx, usecase.LoadBoardInput{})
	require.NoError(t, err)
	_, err = first.AddTaskUseCase().Execute(ctx, usecase.AddTaskInput{Board: loaded.Board, Text: "persist me"})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewWithOptions(projectDir, opts)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()
	reloaded, err := second.LoadBoardUseCase().Execute(ctx, usecase.LoadBoardInput{})
	require.NoError(t, err)

	tasks := reloaded.Board.List.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "persist me", tasks[0].Text)
	assert.Equal(t, domain.TaskID(1), tasks[0].ID)
}

func TestNew_RelativeStorePath(t *testing.T) {
	c := newTestContainer(t, "[storage]\npath = \"data/list.json\"\n")

	assert.Equal(t, filepath.Join(c.Config.ProjectDir, "data", "list.json"), c.Config.StorePath)
}

func TestNew_GitBackend(t *testing.T) {
	projectDir := t.TempDir()
	_, err := git.PlainInit(projectDir, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(domain.ProjectConfigPath(projectDir), []byte("[storage]\nbackend = \"git\"\n"), 0o644))

	c, err := NewWithOptions(projectDir, Options{GlobalConfigDir: t.TempDir(), DataDir: t.TempDir()})
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Equal(t, projectDir, c.Config.RepoPath)
	require.NoError(t, c.Slot.Write(domain.StorageKey, "[]"))
	value, found, err := c.Slot.Read(domain.StorageKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", value)
}

func TestNew_GitBackendOutsideRepo(t *testing.T) {
	projectDir := t.TempDir()
	require.NoError(t, os.WriteFile(domain.ProjectConfigPath(projectDir), []byte("[storage]\nbackend = \"git\"\n"), 0o644))

	_, err := NewWithOptions(projectDir, Options{GlobalConfigDir: t.TempDir(), DataDir: t.TempDir()})

	assert.ErrorContains(t, err, "open git storage")
}

func TestNew_UnknownBackend(t *testing.T) {
	projectDir := t.TempDir()
	require.NoError(t, os.WriteFile(domain.ProjectConfigPath(projectDir), []byte("[storage]\nbackend = \"s3\"\n"), 0o644))

	_, err := NewWithOptions(projectDir, Options{GlobalConfigDir: t.TempDir(), DataDir: t.TempDir()})

	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
}

func TestNew_BrokenConfigFallsBack(t *testing.T) {
	c := newTestContainer(t, "[storage\n")

	require.Len(t, c.AppConfig.Warnings, 1)
	assert.Contains(t, c.AppConfig.Warnings[0], "config ignored")
	assert.Equal(t, domain.BackendFile, c.AppConfig.Storage.Backend)
}
