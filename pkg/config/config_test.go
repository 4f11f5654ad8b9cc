package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/gig/pkg/httpclient"
	"github.com/arthur-debert/gig/pkg/paths"
	"github.com/arthur-debert/gig/pkg/testutil"
	"github.com/arthur-debert/gig/pkg/types"
)

// isolate points every config lookup at empty temp directories
func isolate(t *testing.T) *testutil.TestEnvironment {
	t.Helper()
	return testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
}

func TestLoadDefaults(t *testing.T) {
	env := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []types.Source{types.SourceRemote}, cfg.SourceList())
	assert.Equal(t, "https://www.toptal.com", cfg.Remote.ServerURL)
	assert.Equal(t, "/developers/gitignore/api", cfg.Remote.GeneratorPath)
	assert.Equal(t, "/developers/gitignore/api/list?format=lines", cfg.Remote.ListerPath)
	assert.Equal(t, httpclient.UnitSecond, cfg.HTTP.TimeoutUnit)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, "txt", cfg.Local.Extension)
	assert.Equal(t, filepath.Join(env.DataDir, "gig", "templates"), cfg.LocalDir())
	assert.Equal(t, "auto", cfg.Output.Format)
}

func TestLoadTOMLFile(t *testing.T) {
	env := isolate(t)
	env.WriteConfig("config.toml", `
sources = ["local", "remote"]

[remote]
server_url = "http://localhost:8080"

[http]
timeout = 1500
timeout_unit = "ms"

[local]
dir = "/srv/templates"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"local", "remote"}, cfg.Sources)
	assert.Equal(t, "http://localhost:8080", cfg.Remote.ServerURL)
	// Keys absent from the file keep their defaults
	assert.Equal(t, "/developers/gitignore/api", cfg.Remote.GeneratorPath)
	assert.Equal(t, httpclient.UnitMillisecond, cfg.HTTP.TimeoutUnit)
	assert.Equal(t, 1500*time.Millisecond, cfg.Timeout())
	assert.Equal(t, "/srv/templates", cfg.LocalDir())
}

func TestLoadYAMLFile(t *testing.T) {
	env := isolate(t)
	env.WriteConfig("config.yaml", `
sources: [local]
local:
  extension: gitignore
`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"local"}, cfg.Sources)
	assert.Equal(t, "gitignore", cfg.Local.Extension)
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)

	t.Run("existing_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.toml")
		require.NoError(t, os.WriteFile(path, []byte("[http]\ntimeout = 9\n"), 0644))
		t.Setenv(paths.EnvConfigFile, path)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 9*time.Second, cfg.Timeout())
	})

	t.Run("missing_file_is_an_error", func(t *testing.T) {
		t.Setenv(paths.EnvConfigFile, filepath.Join(t.TempDir(), "nope.toml"))

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unsupported_extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.ini")
		require.NoError(t, os.WriteFile(path, []byte("x=1"), 0644))
		t.Setenv(paths.EnvConfigFile, path)

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported config file format")
	})
}

func TestLoadEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("GIG_SOURCES", "local,remote")
	t.Setenv("GIG_REMOTE__SERVER_URL", "http://env.example")
	t.Setenv("GIG_HTTP__TIMEOUT", "12")
	t.Setenv(paths.EnvTemplatesDir, "/not/a/config/key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"local", "remote"}, cfg.Sources)
	assert.Equal(t, "http://env.example", cfg.Remote.ServerURL)
	assert.Equal(t, 12*time.Second, cfg.Timeout())
}

func TestLoadWithOverrides(t *testing.T) {
	env := isolate(t)
	env.WriteConfig("config.toml", "[http]\ntimeout = 3\n")
	t.Setenv("GIG_HTTP__TIMEOUT", "4")

	cfg, err := LoadWithOverrides(map[string]interface{}{
		"http.timeout":      uint64(250),
		"http.timeout_unit": "millisecond",
		"sources":           []string{"local"},
	})
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Timeout())
	assert.Equal(t, []string{"local"}, cfg.Sources)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]interface{}
		wantErr   string
	}{
		{"unknown_source", map[string]interface{}{"sources": []string{"ftp"}}, "unknown template source"},
		{"duplicate_source", map[string]interface{}{"sources": []string{"remote", "remote"}}, "listed twice"},
		{"no_source", map[string]interface{}{"sources": []string{}}, "no template source"},
		{"unknown_unit", map[string]interface{}{"http.timeout_unit": "minute"}, "unknown timeout unit"},
		{"empty_server", map[string]interface{}{"remote.server_url": ""}, "server_url"},
		{"empty_extension", map[string]interface{}{"sources": []string{"local"}, "local.extension": ""}, "extension"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := LoadWithOverrides(tt.overrides)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "remote.server_url", envKey("GIG_REMOTE__SERVER_URL"))
	assert.Equal(t, "sources", envKey("GIG_SOURCES"))
	assert.Equal(t, "", envKey(paths.EnvTemplatesDir))
	assert.Equal(t, "", envKey(paths.EnvConfigFile))
}

func TestRender(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	require.NoError(t, err)

	t.Run("toml", func(t *testing.T) {
		out, err := Render(cfg, "toml")
		require.NoError(t, err)
		assert.Contains(t, out, "server_url = ")
		assert.Contains(t, out, "https://www.toptal.com")
		assert.Contains(t, out, "[http]")
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := Render(cfg, "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "server_url: https://www.toptal.com")
		assert.Contains(t, out, "timeout_unit: second")
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Render(cfg, "json")
		assert.Error(t, err)
	})
}

func TestDefaultsContent(t *testing.T) {
	assert.Contains(t, DefaultsContent(), "sources = [\"remote\"]")
}
