package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gobwas/glob"

	"github.com/ecortina/srcmeta/internal/analyzer"
	"github.com/ecortina/srcmeta/internal/config"
)

// loadConfig resolves the effective configuration for a command run: the
// --config file when given, otherwise .srcmeta/config.yml under the
// working directory, otherwise defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFile(cfgFile)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return config.NewLoader(wd).Load()
}

func newAnalyzer(cfg *config.Config) *analyzer.Analyzer {
	return analyzer.New(logger, analyzer.Options{
		UnknownTypeSentinel:   cfg.Analyzer.UnknownTypeSentinel,
		MissingReturnSentinel: cfg.Analyzer.MissingReturnSentinel,
		OnParseError:          analyzer.ParseErrorMode(cfg.Analyzer.OnParseError),
	})
}

// printJSON writes v pretty-printed with the same conventions as the
// store: four-space indent, non-ASCII intact.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}

// compiledPattern holds a compiled glob plus, for patterns with a "**/"
// prefix, a variant without it. Plain "**/*.py" does not match a path in
// the root because the glob wants a literal slash; the stripped variant
// makes it match "foo.py" as users expect.
type compiledPattern struct {
	glob     glob.Glob
	stripped glob.Glob
}

func compilePatterns(patterns []string) ([]compiledPattern, error) {
	compiled := make([]compiledPattern, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		cp := compiledPattern{glob: g}
		if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
			if s, err := glob.Compile(rest, '/'); err == nil {
				cp.stripped = s
			}
		}
		compiled = append(compiled, cp)
	}
	return compiled, nil
}

func matchAny(patterns []compiledPattern, path string) bool {
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
		if cp.stripped != nil && cp.stripped.Match(path) {
			return true
		}
	}
	return false
}
