package analyzer

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Analyze parses source and returns every function and class definition
// found in it. The walk is recursive with no depth filter: a function
// defined inside another function or class body is reported as its own
// flat entry, exactly as this analysis has always behaved.
//
// With the default options an unparseable input yields an empty result and
// a logged diagnostic rather than an error.
func (a *Analyzer) Analyze(source string) (*Result, error) {
	result := emptyResult()
	src := []byte(source)

	tree, perr := a.parse(src)
	if perr != nil {
		if a.onParseError() == ParseErrorPropagate {
			return result, perr
		}
		a.logger.Printf("analyze: %v", perr)
		return result, nil
	}
	defer tree.Close()

	unknown, missing := a.sentinels(DefaultUnknownType, DefaultMissingReturn)
	walkTree(tree.RootNode(), func(n *sitter.Node) bool {
		switch n.Kind() {
		case "function_definition":
			result.Functions = append(result.Functions, a.extractFunction(n, src, unknown, missing))
		case "class_definition":
			result.Classes = append(result.Classes, a.extractClass(n, src))
		}
		return true
	})
	return result, nil
}

// AnalyzeFunctions parses source and returns the file-keyed shape: one
// record per function definition, keyed by function name, listed under
// fileKey. An empty fileKey falls back to DefaultFileKey. Unresolved types
// default to the "Any" sentinel unless the Options override it.
func (a *Analyzer) AnalyzeFunctions(source, fileKey string) (FileFunctions, error) {
	if fileKey == "" {
		fileKey = DefaultFileKey
	}
	records := []FunctionRecord{}
	src := []byte(source)

	tree, perr := a.parse(src)
	if perr != nil {
		if a.onParseError() == ParseErrorPropagate {
			return FileFunctions{fileKey: records}, perr
		}
		a.logger.Printf("analyze functions: %v", perr)
		return FileFunctions{fileKey: records}, nil
	}
	defer tree.Close()

	unknown, missing := a.sentinels(MappingSentinel, MappingSentinel)
	walkTree(tree.RootNode(), func(n *sitter.Node) bool {
		if n.Kind() == "function_definition" {
			fi := a.extractFunction(n, src, unknown, missing)
			records = append(records, FunctionRecord{fi.Name: detailsOf(fi)})
		}
		return true
	})
	return FileFunctions{fileKey: records}, nil
}

// ExtractFunctions is the strict variant of the flat function analysis: it
// returns a *ParseError when the source does not parse instead of
// swallowing it.
func (a *Analyzer) ExtractFunctions(source string) ([]FunctionInfo, error) {
	src := []byte(source)
	tree, perr := a.parse(src)
	if perr != nil {
		return nil, perr
	}
	defer tree.Close()

	unknown, missing := a.sentinels(DefaultUnknownType, DefaultMissingReturn)
	functions := []FunctionInfo{}
	walkTree(tree.RootNode(), func(n *sitter.Node) bool {
		if n.Kind() == "function_definition" {
			functions = append(functions, a.extractFunction(n, src, unknown, missing))
		}
		return true
	})
	return functions, nil
}

// AnalyzeLanguage dispatches on the source language. Python gets the full
// analysis; javascript is an explicit stub; anything else logs and returns
// an empty result.
func (a *Analyzer) AnalyzeLanguage(source, language string) (*Result, error) {
	switch strings.ToLower(language) {
	case "python":
		return a.Analyze(source)
	case "javascript":
		return a.AnalyzeJavaScript(source), nil
	default:
		a.logger.Printf("unsupported language %q; returning empty result", language)
		return emptyResult(), nil
	}
}

// AnalyzeJavaScript is a stub. JavaScript analysis would need a JS grammar
// and type inference this tool does not carry.
func (a *Analyzer) AnalyzeJavaScript(string) *Result {
	a.logger.Printf("javascript analysis is not implemented; returning empty result")
	return emptyResult()
}

func detailsOf(fi FunctionInfo) FunctionDetails {
	params := make([]string, 0, len(fi.Parameters))
	for _, p := range fi.Parameters {
		params = append(params, fmt.Sprintf("%s(%s)", p.Name, p.Type))
	}
	return FunctionDetails{
		StartLine:  fi.StartLine,
		EndLine:    fi.EndLine,
		Parameters: params,
		ReturnType: fi.ReturnType,
	}
}
