// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/infra/clipboard"
	"github.com/runoshun/tasklist/internal/infra/config"
	"github.com/runoshun/tasklist/internal/infra/draftfile"
	"github.com/runoshun/tasklist/internal/infra/gitstore"
	"github.com/runoshun/tasklist/internal/infra/jsonstore"
	"github.com/runoshun/tasklist/internal/infra/logging"
	"github.com/runoshun/tasklist/internal/infra/persist"
	"github.com/runoshun/tasklist/internal/infra/sharecode"
	"github.com/runoshun/tasklist/internal/usecase"
)

// Config holds the resolved application paths.
type Config struct {
	ProjectDir      string // Working directory; holds .tasklist.toml
	GlobalConfigDir string // Path to global config directory
	DataDir         string // Path to data directory (default store, logs)
	StorePath       string // File backend path (empty for other backends)
	RepoPath        string // Git backend repository path (empty for other backends)
}

// Options overrides the default directories. Empty fields use defaults.
type Options struct {
	GlobalConfigDir string
	DataDir         string
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store         domain.TaskListStore
	Slot          domain.Slot
	Codec         domain.ShareCodec
	Clock         domain.Clock
	Clipboard     domain.Clipboard
	DraftParser   domain.DraftParser
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Pointer fields
	AppConfig *domain.Config
	closeLog  func() error

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory with default directories.
func New(dir string) (*Container, error) {
	return NewWithOptions(dir, Options{})
}

// NewWithOptions creates a new Container, overriding default directories.
func NewWithOptions(dir string, opts Options) (*Container, error) {
	cfg := Config{
		ProjectDir:      dir,
		GlobalConfigDir: opts.GlobalConfigDir,
		DataDir:         opts.DataDir,
	}
	if cfg.GlobalConfigDir == "" {
		cfg.GlobalConfigDir = config.DefaultGlobalConfigDir()
	}
	if cfg.DataDir == "" {
		cfg.DataDir = config.DefaultDataDir()
	}

	configLoader := config.NewLoaderWithGlobalDir(dir, cfg.GlobalConfigDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		// Unreadable config falls back to defaults so the list stays usable
		appConfig = domain.NewDefaultConfig()
		appConfig.Warnings = append(appConfig.Warnings, fmt.Sprintf("config ignored: %v", err))
	}

	fileLogger := logging.New(cfg.DataDir, logging.ParseLevel(appConfig.Log.Level))

	slot, err := openSlot(&cfg, appConfig.Storage)
	if err != nil {
		_ = fileLogger.Close()
		return nil, err
	}
	fileLogger.Debug("app", fmt.Sprintf("storage backend %q", appConfig.Storage.Backend))

	return &Container{
		Store:         persist.New(slot, fileLogger),
		Slot:          slot,
		Codec:         sharecode.New(),
		Clock:         domain.RealClock{},
		Clipboard:     clipboard.New(),
		DraftParser:   draftfile.New(),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManagerWithGlobalDir(dir, cfg.GlobalConfigDir),
		Logger:        fileLogger,
		AppConfig:     appConfig,
		closeLog:      fileLogger.Close,
		Config:        cfg,
	}, nil
}

// openSlot creates the slot backend named in the storage config and records
// its resolved location in cfg.
func openSlot(cfg *Config, storage domain.StorageConfig) (domain.Slot, error) {
	switch storage.Backend {
	case "", domain.BackendFile:
		path := storage.Path
		if path == "" {
			path = domain.StorePath(cfg.DataDir)
		} else if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.ProjectDir, path)
		}
		cfg.StorePath = path
		return jsonstore.New(path), nil
	case domain.BackendGit:
		repo := storage.Repo
		if repo == "" {
			repo = domain.DefaultRepo
		}
		if !filepath.IsAbs(repo) {
			repo = filepath.Join(cfg.ProjectDir, repo)
		}
		cfg.RepoPath = repo
		store, err := gitstore.New(repo, storage.Namespace)
		if err != nil {
			return nil, fmt.Errorf("open git storage: %w", err)
		}
		return store, nil
	}
	return nil, fmt.Errorf("%w: %q (want %s or %s)", domain.ErrUnknownBackend, storage.Backend, domain.BackendFile, domain.BackendGit)
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, store domain.TaskListStore, clock domain.Clock, logger domain.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Store:         store,
		Codec:         sharecode.New(),
		Clock:         clock,
		DraftParser:   draftfile.New(),
		ConfigLoader:  config.NewLoaderWithGlobalDir(cfg.ProjectDir, cfg.GlobalConfigDir),
		ConfigManager: config.NewManagerWithGlobalDir(cfg.ProjectDir, cfg.GlobalConfigDir),
		Logger:        logger,
		AppConfig:     appConfig,
		Config:        cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closeLog == nil {
		return nil
	}
	return c.closeLog()
}

// UseCase factory methods

// LoadBoardUseCase returns a new LoadBoard use case.
func (c *Container) LoadBoardUseCase() *usecase.LoadBoard {
	return usecase.NewLoadBoard(c.Store, c.Codec, c.Clock, c.Logger)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Store, c.Clock, c.Logger)
}

// AddTasksFromFileUseCase returns a new AddTasksFromFile use case.
func (c *Container) AddTasksFromFileUseCase() *usecase.AddTasksFromFile {
	return usecase.NewAddTasksFromFile(c.Store, c.DraftParser, c.Clock, c.Logger)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Store, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Store, c.Logger)
}

// SetFilterUseCase returns a new SetFilter use case.
func (c *Container) SetFilterUseCase() *usecase.SetFilter {
	return usecase.NewSetFilter()
}

// ListVisibleUseCase returns a new ListVisible use case.
func (c *Container) ListVisibleUseCase() *usecase.ListVisible {
	return usecase.NewListVisible(c.Clock)
}

// ExportListUseCase returns a new ExportList use case.
func (c *Container) ExportListUseCase() *usecase.ExportList {
	return usecase.NewExportList(c.Codec, c.Clipboard, c.Logger, c.AppConfig.Share.BaseURL)
}

// ImportListUseCase returns a new ImportList use case.
func (c *Container) ImportListUseCase() *usecase.ImportList {
	return usecase.NewImportList(c.Store, c.Codec, c.Clock, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
