package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/arthur-debert/gig/pkg/filesystem"
	"github.com/arthur-debert/gig/pkg/paths"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // templates live in an afero MemMapFs
	EnvIsolated                  // templates live on disk in a temp directory
)

// variables that would leak configuration from the developer's shell
var clearedVars = []string{
	paths.EnvConfigFile,
	paths.EnvTemplatesDir,
	"GIG_SOURCES",
	"GIG_REMOTE__SERVER_URL",
	"GIG_REMOTE__GENERATOR_PATH",
	"GIG_REMOTE__LISTER_PATH",
	"GIG_HTTP__TIMEOUT",
	"GIG_HTTP__TIMEOUT_UNIT",
	"GIG_LOCAL__DIR",
	"GIG_LOCAL__EXTENSION",
	"GIG_OUTPUT__FORMAT",
}

// TestEnvironment is an isolated process environment for one test
type TestEnvironment struct {
	FS           afero.Fs
	TemplatesDir string
	ConfigDir    string
	StateDir     string
	DataDir      string
	Type         EnvType

	t *testing.T
}

// NewTestEnvironment points the XDG base directories at temp directories,
// clears GIG_ variables and disables colors.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		ConfigDir: t.TempDir(),
		StateDir:  t.TempDir(),
		DataDir:   t.TempDir(),
		Type:      envType,
		t:         t,
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigDir)
	t.Setenv("XDG_STATE_HOME", env.StateDir)
	t.Setenv("XDG_DATA_HOME", env.DataDir)
	t.Setenv("NO_COLOR", "1")
	for _, name := range clearedVars {
		Unsetenv(t, name)
	}

	switch envType {
	case EnvIsolated:
		env.FS = filesystem.NewOS()
		env.TemplatesDir = filepath.Join(t.TempDir(), "templates")
	default:
		env.FS = filesystem.NewMemory()
		env.TemplatesDir = "/templates"
	}

	return env
}

// Unsetenv removes name for the duration of the test
func Unsetenv(t *testing.T, name string) {
	t.Helper()
	t.Setenv(name, "")
	if err := os.Unsetenv(name); err != nil {
		t.Fatalf("Failed to unset %s: %v", name, err)
	}
}

// WithTemplates writes files into TemplatesDir and exports it as
// GIG_TEMPLATES_DIR. Keys are file names including their extension.
func (env *TestEnvironment) WithTemplates(files map[string]string) *TestEnvironment {
	env.t.Helper()

	if err := env.FS.MkdirAll(env.TemplatesDir, 0755); err != nil {
		env.t.Fatalf("Failed to create templates dir: %v", err)
	}
	for name, content := range files {
		path := filepath.Join(env.TemplatesDir, name)
		if err := afero.WriteFile(env.FS, path, []byte(content), 0644); err != nil {
			env.t.Fatalf("Failed to write template %s: %v", name, err)
		}
	}

	env.t.Setenv(paths.EnvTemplatesDir, env.TemplatesDir)
	return env
}

// WriteConfig writes a configuration file under the XDG config directory
// and returns its path. The file always lives on disk.
func (env *TestEnvironment) WriteConfig(name, content string) string {
	env.t.Helper()

	dir := filepath.Join(env.ConfigDir, paths.AppDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		env.t.Fatalf("Failed to create config dir: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write config %s: %v", name, err)
	}
	return path
}
