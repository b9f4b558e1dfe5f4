package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the result shapes and language dispatch:
// - File-keyed shape: default file key, name(type) parameter rendering,
//   "Any" sentinels
// - Explicit file keys and sentinel overrides carry through
// - Tolerant file-keyed analysis returns an empty record list on bad input
// - JavaScript and unknown languages are stubs returning empty results

func TestAnalyzeFunctions_DefaultFileKey(t *testing.T) {
	t.Parallel()

	source := "def ejemplo(param1: int, param2: str) -> bool:\n" +
		"    return True\n" +
		"\n" +
		"def bare(param):\n" +
		"    return param\n"

	an := newTestAnalyzer(Options{})
	result, err := an.AnalyzeFunctions(source, "")

	require.NoError(t, err)
	records, ok := result[DefaultFileKey]
	require.True(t, ok, "missing placeholder file key")
	require.Len(t, records, 2)

	ejemplo, ok := records[0]["ejemplo"]
	require.True(t, ok)
	assert.Equal(t, 1, ejemplo.StartLine)
	assert.Equal(t, 2, ejemplo.EndLine)
	assert.Equal(t, []string{"param1(int)", "param2(str)"}, ejemplo.Parameters)
	assert.Equal(t, "bool", ejemplo.ReturnType)

	bare, ok := records[1]["bare"]
	require.True(t, ok)
	assert.Equal(t, 4, bare.StartLine)
	assert.Equal(t, 5, bare.EndLine)
	assert.Equal(t, []string{"param(Any)"}, bare.Parameters)
	assert.Equal(t, "Any", bare.ReturnType)
}

func TestAnalyzeFunctions_ExplicitKeyAndSentinels(t *testing.T) {
	t.Parallel()

	an := newTestAnalyzer(Options{UnknownTypeSentinel: "?", MissingReturnSentinel: "?"})
	result, err := an.AnalyzeFunctions("def f(x):\n    pass\n", "pkg/mod.py")

	require.NoError(t, err)
	records := result["pkg/mod.py"]
	require.Len(t, records, 1)
	details := records[0]["f"]
	assert.Equal(t, []string{"x(?)"}, details.Parameters)
	assert.Equal(t, "?", details.ReturnType)
}

func TestAnalyzeFunctions_SyntaxErrorYieldsEmptyList(t *testing.T) {
	t.Parallel()

	an := newTestAnalyzer(Options{})
	result, err := an.AnalyzeFunctions("def broken(:\n", "bad.py")

	require.NoError(t, err)
	records, ok := result["bad.py"]
	require.True(t, ok)
	assert.Empty(t, records)
}

func TestAnalyzeLanguage_Python(t *testing.T) {
	t.Parallel()

	an := newTestAnalyzer(Options{})
	result, err := an.AnalyzeLanguage("def f():\n    pass\n", "Python")

	require.NoError(t, err)
	assert.Len(t, result.Functions, 1)
}

func TestAnalyzeLanguage_JavaScriptStub(t *testing.T) {
	t.Parallel()

	an := newTestAnalyzer(Options{})
	result, err := an.AnalyzeLanguage("function f(a, b) { return a + b; }", "javascript")

	require.NoError(t, err)
	assert.Empty(t, result.Functions)
	assert.Empty(t, result.Classes)
}

func TestAnalyzeLanguage_UnsupportedLanguage(t *testing.T) {
	t.Parallel()

	an := newTestAnalyzer(Options{})
	result, err := an.AnalyzeLanguage("fn main() {}", "rust")

	require.NoError(t, err)
	assert.Empty(t, result.Functions)
	assert.Empty(t, result.Classes)
}
