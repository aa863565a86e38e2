package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/swman/pkg/errors"
)

// Environment variable names
const (
	// EnvSwmanConfigDir overrides the XDG config directory for swman
	EnvSwmanConfigDir = "SWMAN_CONFIG_DIR"

	// EnvXDGStateHome is checked directly, adrg/xdg caches it at init
	EnvXDGStateHome = "XDG_STATE_HOME"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name for swman-specific files
	AppDirName = "swman"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "swman.log"
)

// ConfigDir returns the directory holding the user configuration file.
func ConfigDir() string {
	if dir := os.Getenv(EnvSwmanConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFilePath returns the default location of the user configuration file.
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the swman state directory. XDG_STATE_HOME is read on every
// call so tests and wrappers can redirect it after process start.
func StateDir() string {
	if stateHome := os.Getenv(EnvXDGStateHome); stateHome != "" {
		return filepath.Join(stateHome, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the path to the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// HomeDir returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
func HomeDir() (string, error) {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home, nil
	}
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	return "", errors.New(errors.ErrNotFound, "unable to determine home directory")
}

// ExpandHome expands a leading ~ to the current user's home directory.
// Paths that cannot be expanded are returned unchanged.
func ExpandHome(path string) string {
	home, err := HomeDir()
	if err != nil {
		return path
	}
	return ExpandHomeWith(path, home)
}

// ExpandHomeWith expands a leading ~ using the given home directory.
func ExpandHomeWith(path, home string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	// ~otheruser is left alone
	return path
}
