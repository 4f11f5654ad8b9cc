package config

import (
	"fmt"
	"time"

	"github.com/arthur-debert/gig/pkg/httpclient"
	"github.com/arthur-debert/gig/pkg/paths"
	"github.com/arthur-debert/gig/pkg/types"
)

// Config is the effective gig configuration
type Config struct {
	Sources []string `koanf:"sources" toml:"sources" yaml:"sources"`
	Remote  Remote   `koanf:"remote" toml:"remote" yaml:"remote"`
	HTTP    HTTP     `koanf:"http" toml:"http" yaml:"http"`
	Local   Local    `koanf:"local" toml:"local" yaml:"local"`
	Output  Output   `koanf:"output" toml:"output" yaml:"output"`
}

// Remote holds the template service location
type Remote struct {
	ServerURL     string `koanf:"server_url" toml:"server_url" yaml:"server_url"`
	GeneratorPath string `koanf:"generator_path" toml:"generator_path" yaml:"generator_path"`
	ListerPath    string `koanf:"lister_path" toml:"lister_path" yaml:"lister_path"`
}

// HTTP holds client settings
type HTTP struct {
	Timeout     uint64                 `koanf:"timeout" toml:"timeout" yaml:"timeout"`
	TimeoutUnit httpclient.TimeoutUnit `koanf:"timeout_unit" toml:"timeout_unit" yaml:"timeout_unit"`
}

// Local holds the local template directory settings
type Local struct {
	Dir       string `koanf:"dir" toml:"dir" yaml:"dir"`
	Extension string `koanf:"extension" toml:"extension" yaml:"extension"`
}

// Output holds console output settings
type Output struct {
	Format string `koanf:"format" toml:"format" yaml:"format"`
}

// SourceList returns the configured sources in order
func (c *Config) SourceList() []types.Source {
	sources := make([]types.Source, 0, len(c.Sources))
	for _, s := range c.Sources {
		sources = append(sources, types.Source(s))
	}
	return sources
}

// Timeout returns the HTTP timeout as a duration
func (c *Config) Timeout() time.Duration {
	return c.HTTP.TimeoutUnit.Duration(c.HTTP.Timeout)
}

// LocalDir returns the default local template directory
func (c *Config) LocalDir() string {
	if c.Local.Dir != "" {
		return paths.ExpandHome(c.Local.Dir)
	}
	return paths.DefaultTemplatesDir()
}

// Validate checks values that decoding cannot
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("no template source configured")
	}
	seen := make(map[string]bool, len(c.Sources))
	for _, s := range c.Sources {
		switch types.Source(s) {
		case types.SourceLocal, types.SourceRemote:
		default:
			return fmt.Errorf("unknown template source: %q (expected local or remote)", s)
		}
		if seen[s] {
			return fmt.Errorf("template source %q listed twice", s)
		}
		seen[s] = true
	}

	if seen[string(types.SourceRemote)] && c.Remote.ServerURL == "" {
		return fmt.Errorf("remote.server_url must not be empty")
	}
	if seen[string(types.SourceLocal)] && c.Local.Extension == "" {
		return fmt.Errorf("local.extension must not be empty")
	}

	if _, err := httpclient.ParseTimeoutUnit(string(c.HTTP.TimeoutUnit)); err != nil {
		return err
	}
	return nil
}
