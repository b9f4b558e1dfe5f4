package config

// Config is the complete srcmeta configuration. It can be loaded from
// .srcmeta/config.yml with environment variable overrides.
type Config struct {
	Analyzer AnalyzerConfig `yaml:"analyzer" mapstructure:"analyzer"`
	Gemini   GeminiConfig   `yaml:"gemini" mapstructure:"gemini"`
	Paths    PathsConfig    `yaml:"paths" mapstructure:"paths"`
}

// AnalyzerConfig pins the behaviors the historical analysis variants
// disagreed on. Empty sentinels mean "use the entry point's own default":
// unknown/None for the flat shape, Any/Any for the file-keyed shape.
type AnalyzerConfig struct {
	UnknownTypeSentinel   string `yaml:"unknown_type_sentinel" mapstructure:"unknown_type_sentinel"`
	MissingReturnSentinel string `yaml:"missing_return_sentinel" mapstructure:"missing_return_sentinel"`
	OnParseError          string `yaml:"on_parse_error" mapstructure:"on_parse_error"` // "empty" or "propagate"
}

// GeminiConfig configures the LLM client.
type GeminiConfig struct {
	Model          string `yaml:"model" mapstructure:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// PathsConfig defines which files batch analysis includes and ignores.
type PathsConfig struct {
	Include []string `yaml:"include" mapstructure:"include"` // glob patterns
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`   // glob patterns
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Analyzer: AnalyzerConfig{
			OnParseError: "empty",
		},
		Gemini: GeminiConfig{
			Model:          "gemini-1.5-flash",
			TimeoutSeconds: 60,
		},
		Paths: PathsConfig{
			Include: []string{"**/*.py"},
			Ignore: []string{
				"**/.git/**",
				"**/__pycache__/**",
				"**/node_modules/**",
				"**/venv/**",
			},
		},
	}
}
