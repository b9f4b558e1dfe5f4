package analyzer

import (
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the Python analysis:
// - Extract annotated functions with exact line ranges
// - Resolve parameter types from docstring :param tags when unannotated
// - Retain every declared parameter (regression for the historical
//   last-parameter-only accumulation bug)
// - Report nested definitions as flat entries
// - Extract classes: identifier bases only, direct-child methods and
//   simple assignment attributes, literal self in method args
// - Honor sentinel and parse-error options
// - Tolerant entry points return empty results on syntax errors; the
//   strict one returns *ParseError

func newTestAnalyzer(opts Options) *Analyzer {
	return New(log.New(&strings.Builder{}, "", 0), opts)
}

func TestAnalyze_AnnotatedFunction(t *testing.T) {
	t.Parallel()

	an := newTestAnalyzer(Options{})
	result, err := an.Analyze("def f(a: int, b: str) -> bool:\n    return True\n")

	require.NoError(t, err)
	require.Len(t, result.Functions, 1)
	assert.Empty(t, result.Classes)

	fn := result.Functions[0]
	assert.Equal(t, "f", fn.Name)
	assert.Equal(t, 1, fn.StartLine)
	assert.Equal(t, 2, fn.EndLine)
	assert.Equal(t, "bool", fn.ReturnType)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, ParameterInfo{Name: "a", Type: "int"}, fn.Parameters[0])
	assert.Equal(t, ParameterInfo{Name: "b", Type: "str"}, fn.Parameters[1])
}

func TestAnalyze_DocstringParamFallback(t *testing.T) {
	t.Parallel()

	source := "def g(a, b):\n" +
		"    \"\"\"Add two values.\n" +
		"\n" +
		"    :param a: int\n" +
		"    \"\"\"\n" +
		"    return a\n"

	an := newTestAnalyzer(Options{})
	result, err := an.Analyze(source)

	require.NoError(t, err)
	require.Len(t, result.Functions, 1)
	fn := result.Functions[0]
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, ParameterInfo{Name: "a", Type: "int"}, fn.Parameters[0])
	assert.Equal(t, ParameterInfo{Name: "b", Type: "unknown"}, fn.Parameters[1])
	assert.Equal(t, "None", fn.ReturnType)
	assert.Equal(t, 1, fn.StartLine)
	assert.Equal(t, 6, fn.EndLine)
}

func TestExtractFunctions_AllParametersRetained(t *testing.T) {
	t.Parallel()

	// One historical variant kept only the last parameter processed.
	an := newTestAnalyzer(Options{})
	functions, err := an.ExtractFunctions("def h(a, b, c):\n    pass\n")

	require.NoError(t, err)
	require.Len(t, functions, 1)
	require.Len(t, functions[0].Parameters, 3)
	assert.Equal(t, "a", functions[0].Parameters[0].Name)
	assert.Equal(t, "b", functions[0].Parameters[1].Name)
	assert.Equal(t, "c", functions[0].Parameters[2].Name)
}

func TestAnalyze_DefaultParameters(t *testing.T) {
	t.Parallel()

	an := newTestAnalyzer(Options{})
	result, err := an.Analyze("def d(a=1, b: int = 2):\n    pass\n")

	require.NoError(t, err)
	require.Len(t, result.Functions, 1)
	params := result.Functions[0].Parameters
	require.Len(t, params, 2)
	assert.Equal(t, ParameterInfo{Name: "a", Type: "unknown"}, params[0])
	assert.Equal(t, ParameterInfo{Name: "b", Type: "int"}, params[1])
}

func TestAnalyze_NestedFunctionFlattened(t *testing.T) {
	t.Parallel()

	source := "def outer():\n" +
		"    def inner():\n" +
		"        pass\n" +
		"    return inner\n"

	an := newTestAnalyzer(Options{})
	result, err := an.Analyze(source)

	require.NoError(t, err)
	require.Len(t, result.Functions, 2)
	assert.Equal(t, "outer", result.Functions[0].Name)
	assert.Equal(t, "inner", result.Functions[1].Name)
	assert.Equal(t, 2, result.Functions[1].StartLine)
	assert.Equal(t, 3, result.Functions[1].EndLine)
}

func TestAnalyze_ClassExtraction(t *testing.T) {
	t.Parallel()

	source := "class C(Base):\n" +
		"    x = 1\n" +
		"    y: int = 2\n" +
		"    def m(self, v):\n" +
		"        self.z = v\n"

	an := newTestAnalyzer(Options{})
	result, err := an.Analyze(source)

	require.NoError(t, err)
	require.Len(t, result.Classes, 1)

	class := result.Classes[0]
	assert.Equal(t, "C", class.Name)
	assert.Equal(t, []string{"Base"}, class.Bases)
	// Annotated assignments and attribute-path targets do not count.
	assert.Equal(t, []string{"x"}, class.Attributes)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "m", class.Methods[0].Name)
	assert.Equal(t, []string{"self", "v"}, class.Methods[0].Args)

	// The recursive walk also reports the method as a flat function entry.
	require.Len(t, result.Functions, 1)
	assert.Equal(t, "m", result.Functions[0].Name)
}

func TestAnalyze_NonIdentifierBaseDropped(t *testing.T) {
	t.Parallel()

	an := newTestAnalyzer(Options{})
	result, err := an.Analyze("class C(module.Base):\n    pass\n")

	require.NoError(t, err)
	require.Len(t, result.Classes, 1)
	assert.Empty(t, result.Classes[0].Bases)
}

func TestAnalyze_ClassWithoutBases(t *testing.T) {
	t.Parallel()

	an := newTestAnalyzer(Options{})
	result, err := an.Analyze("class E:\n    pass\n")

	require.NoError(t, err)
	require.Len(t, result.Classes, 1)
	assert.Empty(t, result.Classes[0].Bases)
	assert.Empty(t, result.Classes[0].Methods)
	assert.Empty(t, result.Classes[0].Attributes)
}

func TestAnalyze_DecoratedMethod(t *testing.T) {
	t.Parallel()

	source := "class D:\n" +
		"    @staticmethod\n" +
		"    def s(x):\n" +
		"        return x\n"

	an := newTestAnalyzer(Options{})
	result, err := an.Analyze(source)

	require.NoError(t, err)
	require.Len(t, result.Classes, 1)
	require.Len(t, result.Classes[0].Methods, 1)
	assert.Equal(t, "s", result.Classes[0].Methods[0].Name)
	assert.Equal(t, []string{"x"}, result.Classes[0].Methods[0].Args)
}

func TestAnalyze_ChainedAssignmentIgnored(t *testing.T) {
	t.Parallel()

	source := "class K:\n" +
		"    a = b = 1\n" +
		"    x = 2\n"

	an := newTestAnalyzer(Options{})
	result, err := an.Analyze(source)

	require.NoError(t, err)
	require.Len(t, result.Classes, 1)
	assert.Equal(t, []string{"x"}, result.Classes[0].Attributes)
}

func TestAnalyze_SyntaxErrorYieldsEmptyResult(t *testing.T) {
	t.Parallel()

	an := newTestAnalyzer(Options{})
	result, err := an.Analyze("def f(:\n")

	require.NoError(t, err)
	assert.Empty(t, result.Functions)
	assert.Empty(t, result.Classes)
}

func TestAnalyze_SyntaxErrorPropagates(t *testing.T) {
	t.Parallel()

	an := newTestAnalyzer(Options{OnParseError: ParseErrorPropagate})
	result, err := an.Analyze("def f(:\n")

	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.GreaterOrEqual(t, perr.Line, 1)
	assert.Empty(t, result.Functions)
}

func TestExtractFunctions_SyntaxErrorIsParseError(t *testing.T) {
	t.Parallel()

	an := newTestAnalyzer(Options{})
	functions, err := an.ExtractFunctions("class (:\n")

	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Nil(t, functions)
	assert.Contains(t, err.Error(), "syntax error")
}

func TestAnalyze_SentinelOverrides(t *testing.T) {
	t.Parallel()

	an := newTestAnalyzer(Options{
		UnknownTypeSentinel:   "?",
		MissingReturnSentinel: "void",
	})
	result, err := an.Analyze("def f(a):\n    pass\n")

	require.NoError(t, err)
	require.Len(t, result.Functions, 1)
	assert.Equal(t, "?", result.Functions[0].Parameters[0].Type)
	assert.Equal(t, "void", result.Functions[0].ReturnType)
}
