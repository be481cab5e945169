package domain

import "time"

// Slot is a durable key-value string store.
type Slot interface {
	// Read returns the value under key. found is false if the key was never written.
	Read(key string) (value string, found bool, err error)

	// Write overwrites the value under key.
	Write(key, value string) error
}

// TaskListStore persists the whole task list.
type TaskListStore interface {
	// Load returns the saved list, or an empty list if nothing usable is stored.
	// Load never fails; unreadable or corrupt data is logged and treated as empty.
	Load() *TaskList

	// Save serializes the full list, overwriting any prior value.
	Save(list *TaskList) error
}

// ShareCodec converts a task list to and from a URL-safe share code.
type ShareCodec interface {
	// Encode serializes tasks into a share code.
	Encode(tasks []Task) (string, error)

	// Decode reverses Encode and validates the result.
	// Missing fields are defaulted; today is used for a missing createdDate.
	// Errors wrap ErrDecode, ErrParse or ErrValidation.
	Decode(token, today string) ([]Task, error)

	// Link returns base with the token set as the share query parameter.
	// Returns ErrNoShareBaseURL when base is empty.
	Link(base, token string) (string, error)

	// TokenFromInput extracts a share code from a bare code or a share URL.
	TokenFromInput(input string) string
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (global + project).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigInfo describes a config file location.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager inspects and initializes config files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetProjectConfigInfo returns information about the project config file.
	GetProjectConfigInfo() ConfigInfo

	// InitProjectConfig writes the config template to the project config path.
	InitProjectConfig(cfg *Config, force bool) (string, error)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Logger writes leveled log lines tagged with a category.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all log lines.
type NopLogger struct{}

// Debug discards the message.
func (NopLogger) Debug(string, string) {}

// Info discards the message.
func (NopLogger) Info(string, string) {}

// Warn discards the message.
func (NopLogger) Warn(string, string) {}

// Error discards the message.
func (NopLogger) Error(string, string) {}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
