package config

import (
	"os"
	"testing"

	"github.com/runoshun/tasklist/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetConfigInfo(t *testing.T) {
	projectDir := t.TempDir()
	globalDir := t.TempDir()
	writeFile(t, domain.ProjectConfigPath(projectDir), "[log]\nlevel = \"debug\"\n")

	m := NewManagerWithGlobalDir(projectDir, globalDir)

	project := m.GetProjectConfigInfo()
	assert.True(t, project.Exists)
	assert.Contains(t, project.Content, "debug")

	global := m.GetGlobalConfigInfo()
	assert.False(t, global.Exists)
	assert.NotEmpty(t, global.Path)
}

func TestManager_InitProjectConfig(t *testing.T) {
	projectDir := t.TempDir()
	m := NewManagerWithGlobalDir(projectDir, t.TempDir())

	path, err := m.InitProjectConfig(domain.NewDefaultConfig(), false)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectConfigPath(projectDir), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[storage]")

	// Second call refuses to overwrite
	_, err = m.InitProjectConfig(domain.NewDefaultConfig(), false)
	assert.ErrorIs(t, err, domain.ErrConfigExists)

	// Force overwrites
	_, err = m.InitProjectConfig(domain.NewDefaultConfig(), true)
	assert.NoError(t, err)
}
