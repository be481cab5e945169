package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Storage  StorageConfig `toml:"storage"`
	Share    ShareConfig   `toml:"share"`
	Log      LogConfig     `toml:"log"`
}

// StorageConfig holds settings for the durable slot from [storage] section.
type StorageConfig struct {
	Backend   string `toml:"backend,omitempty"`   // Slot backend: "file" (default) or "git"
	Path      string `toml:"path,omitempty"`      // File backend path (default: <data dir>/tasks.json)
	Repo      string `toml:"repo,omitempty"`      // Git backend repository path (default: ".")
	Namespace string `toml:"namespace,omitempty"` // Git backend ref namespace (default: "tasklist")
}

// ShareConfig holds share code settings from [share] section.
type ShareConfig struct {
	BaseURL string `toml:"base_url,omitempty"` // Page URL that share links are built on
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// Storage backends.
const (
	BackendFile = "file"
	BackendGit  = "git"
)

// Default configuration values.
const (
	DefaultLogLevel  = "info"
	DefaultBackend   = BackendFile
	DefaultNamespace = "tasklist"
	DefaultRepo      = "."
)

// NewDefaultConfig returns a Config with default values.
// Storage.Path is left empty; the container resolves it against the data directory.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:   DefaultBackend,
			Repo:      DefaultRepo,
			Namespace: DefaultNamespace,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// RenderConfigTemplate renders the commented config template with the values of cfg.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
