package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/gig/pkg/httpclient"
	"github.com/arthur-debert/gig/pkg/logging"
	"github.com/arthur-debert/gig/pkg/paths"
)

// EnvPrefix is the prefix of configuration environment variables
const EnvPrefix = "GIG_"

// envIgnored lists GIG_ variables that are read elsewhere and are not
// configuration keys
var envIgnored = map[string]bool{
	paths.EnvTemplatesDir: true,
	paths.EnvConfigFile:   true,
}

// Load returns the configuration built from defaults, the user's file and
// the environment
func Load() (*Config, error) {
	return LoadWithOverrides(nil)
}

// LoadWithOverrides loads the configuration and applies overrides last.
// Override keys use dotted paths such as "http.timeout".
func LoadWithOverrides(overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. User configuration file
	configPath := paths.ConfigFile()
	if _, err := os.Stat(configPath); err == nil {
		parser, err := parserFor(configPath)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(configPath), parser); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		logger.Debug().Str("path", configPath).Msg("Loaded configuration file")
	} else if os.Getenv(paths.EnvConfigFile) != "" {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}

	// 3. Environment variables
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Command-line overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load overrides: %w", err)
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				timeoutUnitHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Debug().
		Strs("sources", cfg.Sources).
		Str("server", cfg.Remote.ServerURL).
		Dur("timeout", cfg.Timeout()).
		Msg("Configuration loaded")
	return &cfg, nil
}

// envKey maps GIG_REMOTE__SERVER_URL to remote.server_url. Variables that
// are not configuration keys map to "" and are skipped.
func envKey(s string) string {
	if envIgnored[s] {
		return ""
	}
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", path)
	}
}

func timeoutUnitHookFunc() mapstructure.DecodeHookFunc {
	unitType := reflect.TypeOf(httpclient.TimeoutUnit(""))
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != unitType || f.Kind() != reflect.String {
			return data, nil
		}
		return httpclient.ParseTimeoutUnit(reflect.ValueOf(data).String())
	}
}
