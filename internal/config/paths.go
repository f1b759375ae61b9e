// ABOUTME: Standard filesystem paths for pi-vlist configuration
// ABOUTME: Resolves ~/.pi-vlist/ for global and .pi-vlist/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".pi-vlist"
	projectDirName = ".pi-vlist"
)

// GlobalDir returns the user-global config directory (~/.pi-vlist/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.pi-vlist/ in cwd).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.json")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "config.json")
}

// GlobalKeybindingsFile returns the path to the global keybindings file.
func GlobalKeybindingsFile() string {
	return filepath.Join(GlobalDir(), "keybindings.json")
}

// ProjectKeybindingsFile returns the path to the project keybindings file.
func ProjectKeybindingsFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "keybindings.json")
}

// DefaultLogFile returns where interactive modes log when no log file is set.
func DefaultLogFile() string {
	return filepath.Join(GlobalDir(), "pi-vlist.log")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
