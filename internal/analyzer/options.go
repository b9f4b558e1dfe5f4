package analyzer

// ParseErrorMode controls what the tolerant entry points do with source
// that does not parse.
type ParseErrorMode string

const (
	// ParseErrorEmpty makes Analyze and AnalyzeFunctions log the syntax
	// error and return an empty result.
	ParseErrorEmpty ParseErrorMode = "empty"

	// ParseErrorPropagate makes them return the *ParseError instead.
	ParseErrorPropagate ParseErrorMode = "propagate"
)

// Sentinel defaults. The flat shape historically reported "unknown"
// parameter types and a "None" return type; the file-keyed shape reported
// "Any" for both.
const (
	DefaultUnknownType   = "unknown"
	DefaultMissingReturn = "None"
	MappingSentinel      = "Any"

	// DefaultFileKey is the placeholder file key used by AnalyzeFunctions
	// when the caller supplies none.
	DefaultFileKey = "source.py"
)

// Options pins the behaviors that the historical analysis variants
// disagreed on. Zero values mean "use the entry point's own default":
// Analyze and ExtractFunctions fall back to unknown/None, AnalyzeFunctions
// to Any/Any, and parse errors yield an empty result.
type Options struct {
	UnknownTypeSentinel   string
	MissingReturnSentinel string
	OnParseError          ParseErrorMode
}

func (a *Analyzer) sentinels(defUnknown, defMissing string) (unknown, missing string) {
	unknown, missing = a.opts.UnknownTypeSentinel, a.opts.MissingReturnSentinel
	if unknown == "" {
		unknown = defUnknown
	}
	if missing == "" {
		missing = defMissing
	}
	return unknown, missing
}

func (a *Analyzer) onParseError() ParseErrorMode {
	if a.opts.OnParseError == "" {
		return ParseErrorEmpty
	}
	return a.opts.OnParseError
}
