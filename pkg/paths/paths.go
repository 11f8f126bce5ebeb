// Package paths provides centralized path handling for figgo. It
// implements XDG Base Directory specification compliance and gives the
// rest of the codebase one consistent API for locating configuration,
// fonts, templates, and logs.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for figgo
	EnvConfigDir = "FIGGO_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory for figgo
	EnvDataDir = "FIGGO_DATA_DIR"

	// EnvStateDir overrides the XDG state directory for figgo
	EnvStateDir = "FIGGO_STATE_DIR"
)

// Directory and file names. These are not user-configurable; the
// user-facing overrides live in pkg/config.
const (
	// AppDirName is the directory name for figgo-specific files
	AppDirName = "figgo"

	// ConfigFileName is the name of the configuration file
	ConfigFileName = "config.toml"

	// TemplatesDirName is the subdirectory for user templates
	TemplatesDirName = "templates"

	// FontsDirName is the subdirectory for custom fonts
	FontsDirName = "fonts"

	// LogFileName is the name of the log file
	LogFileName = "figgo.log"
)

// ConfigDir returns the figgo configuration directory. The environment
// variables are consulted directly because xdg resolves its paths once
// at startup.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// DataDir returns the figgo data directory
func DataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.DataHome, AppDirName)
}

// StateDir returns the figgo state directory
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// ConfigFile returns the user config file location
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// TemplatesDir returns the user template directory
func TemplatesDir() string {
	return filepath.Join(ConfigDir(), TemplatesDirName)
}

// FontsDir returns the custom font directory
func FontsDir() string {
	return filepath.Join(DataDir(), FontsDirName)
}

// LogFile returns the log file location
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}
