package usecase

import (
	"context"

	"github.com/runoshun/tasklist/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct {
	Config *domain.Config // Values rendered into the template; nil means defaults
	Force  bool           // Overwrite an existing project config
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig generates a project configuration file from the template.
type InitConfig struct {
	configManager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager) *InitConfig {
	return &InitConfig{
		configManager: configManager,
	}
}

// Execute creates the project config file.
// Returns domain.ErrConfigExists if it exists and Force is false.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	cfg := in.Config
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	path, err := uc.configManager.InitProjectConfig(cfg, in.Force)
	if err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: path}, nil
}
