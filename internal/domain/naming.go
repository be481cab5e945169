package domain

import "path/filepath"

// Directory and file names.
const (
	AppDirName            = "tasklist"       // Directory name under XDG config/data homes
	ConfigFileName        = "config.toml"    // Global config file name
	ProjectConfigFileName = ".tasklist.toml" // Project config file name (current directory)
	StoreFileName         = "tasks.json"     // File backend slot file name
	LogFileName           = "tasklist.log"   // Log file name
)

// StorageKey is the fixed slot key the task list is saved under.
const StorageKey = "tasks"

// ShareQueryParam is the URL query parameter carrying a share code.
const ShareQueryParam = "list"

// AppDir returns the application directory under an XDG home
// (XDG_CONFIG_HOME or XDG_DATA_HOME, resolved by caller).
func AppDir(home string) string {
	return filepath.Join(home, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(AppDir(configHome), ConfigFileName)
}

// ProjectConfigPath returns the project config path inside dir.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigFileName)
}

// StorePath returns the default file backend path inside the data directory.
func StorePath(dataDir string) string {
	return filepath.Join(dataDir, StoreFileName)
}

// LogPath returns the log file path inside the data directory.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", LogFileName)
}
