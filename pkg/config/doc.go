// Package config handles configuration management for gig.
// It layers the embedded defaults, the user's configuration file (TOML or
// YAML), GIG_* environment variables and command-line overrides with koanf,
// then decodes the result into Config.
package config
