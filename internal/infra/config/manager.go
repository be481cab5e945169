package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/tasklist/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	projectDir    string // Directory holding the project config
	globalConfDir string // Path to global config directory
}

// NewManager creates a new Manager.
func NewManager(projectDir string) *Manager {
	return &Manager{
		projectDir:    projectDir,
		globalConfDir: DefaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(projectDir, globalConfDir string) *Manager {
	return &Manager{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return getConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// GetProjectConfigInfo returns information about the project config file.
func (m *Manager) GetProjectConfigInfo() domain.ConfigInfo {
	return getConfigInfo(domain.ProjectConfigPath(m.projectDir))
}

// InitProjectConfig writes the rendered config template to the project config path.
// Returns domain.ErrConfigExists unless force is set.
func (m *Manager) InitProjectConfig(cfg *domain.Config, force bool) (string, error) {
	path := domain.ProjectConfigPath(m.projectDir)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, domain.ErrConfigExists
		}
	}

	content := domain.RenderConfigTemplate(cfg)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return path, fmt.Errorf("write config: %w", err)
	}
	return path, nil
}

// getConfigInfo reads a config file and returns its info.
func getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}
