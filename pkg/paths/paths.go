package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvTemplatesDir names the local template directory
	EnvTemplatesDir = "GIG_TEMPLATES_DIR"

	// EnvConfigFile overrides the configuration file location
	EnvConfigFile = "GIG_CONFIG"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under every XDG base directory
	AppDirName = "gig"

	// TemplatesDirName is the data subdirectory holding local templates
	TemplatesDirName = "templates"

	// LogFileName is the name of the log file
	LogFileName = "gig.log"
)

// ConfigFileNames are the configuration file names looked up in the config
// directory, in order.
var ConfigFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// ConfigDir returns the gig configuration directory
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the configuration file to load. GIG_CONFIG wins;
// otherwise the first existing file of ConfigFileNames in ConfigDir is
// returned, and the TOML location when none exists.
func ConfigFile() string {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return ExpandHome(path)
	}

	dir := ConfigDir()
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(dir, ConfigFileNames[0])
}

// DataDir returns the gig data directory
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.DataHome, AppDirName)
}

// DefaultTemplatesDir returns the local template directory used when neither
// GIG_TEMPLATES_DIR nor the configuration name one.
func DefaultTemplatesDir() string {
	return filepath.Join(DataDir(), TemplatesDirName)
}

// StateDir returns the gig state directory
func StateDir() string {
	// xdg.StateHome is resolved once at init, check the variable first so
	// callers that change it at runtime are honored
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the path of the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
