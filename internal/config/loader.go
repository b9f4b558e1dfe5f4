package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults, then config file, then environment (env wins).
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a configuration loader rooted at rootDir. The config
// file, when present, lives at <rootDir>/.srcmeta/config.yml.
func NewLoader(rootDir string) Loader {
	return &loader{rootDir: rootDir}
}

func (l *loader) Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(l.rootDir, ".srcmeta"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// No config file: defaults plus environment overrides apply.
	}
	return unmarshal(v)
}

// LoadFile loads configuration from an explicit file path, with the same
// defaults and environment overrides as Load.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("SRCMETA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("analyzer.unknown_type_sentinel")
	v.BindEnv("analyzer.missing_return_sentinel")
	v.BindEnv("analyzer.on_parse_error")
	v.BindEnv("gemini.model")
	v.BindEnv("gemini.timeout_seconds")

	defaults := Default()
	v.SetDefault("analyzer.unknown_type_sentinel", defaults.Analyzer.UnknownTypeSentinel)
	v.SetDefault("analyzer.missing_return_sentinel", defaults.Analyzer.MissingReturnSentinel)
	v.SetDefault("analyzer.on_parse_error", defaults.Analyzer.OnParseError)
	v.SetDefault("gemini.model", defaults.Gemini.Model)
	v.SetDefault("gemini.timeout_seconds", defaults.Gemini.TimeoutSeconds)
	v.SetDefault("paths.include", defaults.Paths.Include)
	v.SetDefault("paths.ignore", defaults.Paths.Ignore)

	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
