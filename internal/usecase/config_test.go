package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/testutil"
	"github.com/runoshun/tasklist/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_Execute(t *testing.T) {
	manager := testutil.NewMockConfigManager()
	manager.GlobalConfigInfo = domain.ConfigInfo{Path: "/home/u/.config/tasklist/config.toml"}
	manager.ProjectConfigInfo = domain.ConfigInfo{Path: "/w/.tasklist.toml", Exists: true, Content: "[log]\n"}
	cfg := domain.NewDefaultConfig()
	cfg.Share.BaseURL = "https://todo.example.com/"
	loader := &testutil.MockConfigLoader{Config: cfg}

	out, err := usecase.NewShowConfig(manager, loader).Execute(context.Background(), usecase.ShowConfigInput{})

	require.NoError(t, err)
	assert.Equal(t, "https://todo.example.com/", out.Effective.Share.BaseURL)
	assert.True(t, out.ProjectConfig.Exists)
	assert.Equal(t, "/home/u/.config/tasklist/config.toml", out.GlobalConfig.Path)
}

func TestShowConfig_Execute_LoadError(t *testing.T) {
	loader := &testutil.MockConfigLoader{Err: assert.AnError}

	_, err := usecase.NewShowConfig(testutil.NewMockConfigManager(), loader).Execute(context.Background(), usecase.ShowConfigInput{})

	assert.ErrorIs(t, err, assert.AnError)
}

func TestInitConfig_Execute(t *testing.T) {
	t.Run("creates project config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.ProjectConfigInfo = domain.ConfigInfo{Path: "/w/.tasklist.toml"}

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, "/w/.tasklist.toml", out.Path)
		assert.True(t, manager.InitCalled)
		assert.NotNil(t, manager.InitConfig)
		assert.False(t, manager.InitForce)
	})

	t.Run("passes force and surfaces exists error", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.InitErr = domain.ErrConfigExists

		_, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{Force: true})

		assert.ErrorIs(t, err, domain.ErrConfigExists)
		assert.True(t, manager.InitForce)
	})
}
