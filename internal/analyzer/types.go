package analyzer

// FunctionInfo describes one function definition found in the source.
type FunctionInfo struct {
	Name       string          `json:"name"`
	StartLine  int             `json:"start_line"`
	EndLine    int             `json:"end_line"`
	Parameters []ParameterInfo `json:"parameters"`
	ReturnType string          `json:"return_type"`
}

// ParameterInfo is a declared parameter. Type is the annotation's literal
// text, a type recovered from the docstring, or a sentinel when neither
// is available.
type ParameterInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// MethodInfo is a method found directly inside a class body. Args lists
// parameter names in source order, including a literal self when the
// source declares one.
type MethodInfo struct {
	Name string   `json:"name"`
	Args []string `json:"args"`
}

// ClassInfo describes one class definition. Bases only lists bases written
// as bare identifiers; qualified or parameterized base expressions are
// dropped. Attributes lists names assigned by simple single-target
// assignments directly in the class body.
type ClassInfo struct {
	Name       string       `json:"name"`
	Methods    []MethodInfo `json:"methods"`
	Attributes []string     `json:"attributes"`
	Bases      []string     `json:"bases"`
}

// Result is the dual-entity analysis shape: every function and class
// definition found in one source text.
type Result struct {
	Functions []FunctionInfo `json:"functions"`
	Classes   []ClassInfo    `json:"classes"`
}

// FunctionDetails is the per-function payload of the file-keyed shape.
// Parameters are rendered as "name(type)" strings.
type FunctionDetails struct {
	StartLine  int      `json:"startLine"`
	EndLine    int      `json:"endLine"`
	Parameters []string `json:"parameters"`
	ReturnType string   `json:"returnType"`
}

// FunctionRecord maps a single function name to its details.
type FunctionRecord map[string]FunctionDetails

// FileFunctions is the file-keyed analysis shape: file key to the list of
// function records extracted from that file.
type FileFunctions map[string][]FunctionRecord

func emptyResult() *Result {
	return &Result{Functions: []FunctionInfo{}, Classes: []ClassInfo{}}
}
