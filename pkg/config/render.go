package config

import (
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Render serializes the configuration as "toml" or "yaml"
func Render(cfg *Config, format string) (string, error) {
	switch strings.ToLower(format) {
	case "toml", "":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return "", fmt.Errorf("failed to render config as toml: %w", err)
		}
		return string(data), nil
	case "yaml", "yml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return "", fmt.Errorf("failed to render config as yaml: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown config format: %q (expected toml or yaml)", format)
	}
}
