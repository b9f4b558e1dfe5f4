package config

import (
	"errors"
	"fmt"

	"github.com/gobwas/glob"
)

var (
	// ErrInvalidParseErrorMode indicates an unrecognized on_parse_error value
	ErrInvalidParseErrorMode = errors.New("invalid on_parse_error mode")

	// ErrEmptyModel indicates a missing Gemini model identifier
	ErrEmptyModel = errors.New("empty gemini model")

	// ErrInvalidTimeout indicates a non-positive Gemini timeout
	ErrInvalidTimeout = errors.New("invalid gemini timeout")

	// ErrNoIncludePatterns indicates an empty include pattern list
	ErrNoIncludePatterns = errors.New("no include patterns configured")

	// ErrBadPattern indicates a glob pattern that does not compile
	ErrBadPattern = errors.New("invalid glob pattern")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if mode := cfg.Analyzer.OnParseError; mode != "empty" && mode != "propagate" {
		errs = append(errs, fmt.Errorf("%w: must be 'empty' or 'propagate', got %q", ErrInvalidParseErrorMode, mode))
	}

	if cfg.Gemini.Model == "" {
		errs = append(errs, ErrEmptyModel)
	}
	if cfg.Gemini.TimeoutSeconds <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d seconds", ErrInvalidTimeout, cfg.Gemini.TimeoutSeconds))
	}

	if len(cfg.Paths.Include) == 0 {
		errs = append(errs, ErrNoIncludePatterns)
	}
	for _, pattern := range cfg.Paths.Include {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: include %q: %v", ErrBadPattern, pattern, err))
		}
	}
	for _, pattern := range cfg.Paths.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: ignore %q: %v", ErrBadPattern, pattern, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
