package analyzer

import (
	"log"
	"regexp"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// Analyzer extracts structural metadata from Python source text.
type Analyzer struct {
	language *sitter.Language
	logger   *log.Logger
	opts     Options
}

// New creates an Analyzer. A nil logger falls back to the standard logger.
func New(logger *log.Logger, opts Options) *Analyzer {
	if logger == nil {
		logger = log.Default()
	}
	return &Analyzer{
		language: sitter.NewLanguage(python.Language()),
		logger:   logger,
		opts:     opts,
	}
}

// parse parses source and rejects trees containing syntax errors. The
// returned tree must be closed by the caller.
func (a *Analyzer) parse(source []byte) (*sitter.Tree, *ParseError) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(a.language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, &ParseError{Line: 1, Column: 1}
	}

	root := tree.RootNode()
	if root.HasError() {
		perr := firstSyntaxError(root)
		if perr == nil {
			perr = &ParseError{Line: 1, Column: 1}
		}
		tree.Close()
		return nil, perr
	}
	return tree, nil
}

// extractFunction derives a FunctionInfo from a function_definition node.
// Parameter types resolve in priority order: explicit annotation, docstring
// ":param name: type" tag, then the unknown-type sentinel.
func (a *Analyzer) extractFunction(node *sitter.Node, source []byte, unknownType, missingReturn string) FunctionInfo {
	fn := FunctionInfo{
		Name:       nodeText(node.ChildByFieldName("name"), source),
		StartLine:  int(node.StartPosition().Row) + 1,
		EndLine:    int(node.EndPosition().Row) + 1,
		Parameters: []ParameterInfo{},
		ReturnType: missingReturn,
	}

	doc := docstring(node, source)
	if params := node.ChildByFieldName("parameters"); params != nil {
		for i := uint(0); i < params.NamedChildCount(); i++ {
			name, typ := extractParameter(params.NamedChild(i), source)
			if name == "" {
				continue
			}
			if typ == "" {
				typ = docstringParamType(doc, name)
			}
			if typ == "" {
				typ = unknownType
			}
			fn.Parameters = append(fn.Parameters, ParameterInfo{Name: name, Type: typ})
		}
	}

	if ret := node.ChildByFieldName("return_type"); ret != nil {
		fn.ReturnType = nodeText(ret, source)
	}
	return fn
}

// extractParameter returns a parameter's name and annotated type, if any.
// Splat parameters and bare separators yield an empty name and are skipped
// by the caller.
func extractParameter(node *sitter.Node, source []byte) (name, typ string) {
	switch node.Kind() {
	case "identifier":
		return nodeText(node, source), ""
	case "typed_parameter":
		// The name is the first identifier child; it is not a field.
		for i := uint(0); i < node.NamedChildCount(); i++ {
			if c := node.NamedChild(i); c.Kind() == "identifier" {
				name = nodeText(c, source)
				break
			}
		}
		if name == "" {
			return "", ""
		}
		return name, nodeText(node.ChildByFieldName("type"), source)
	case "default_parameter":
		n := node.ChildByFieldName("name")
		if n == nil || n.Kind() != "identifier" {
			return "", ""
		}
		return nodeText(n, source), ""
	case "typed_default_parameter":
		n := node.ChildByFieldName("name")
		if n == nil || n.Kind() != "identifier" {
			return "", ""
		}
		return nodeText(n, source), nodeText(node.ChildByFieldName("type"), source)
	}
	return "", ""
}

// docstring returns the function's docstring with quotes stripped, or ""
// when the body does not start with a string literal.
func docstring(node *sitter.Node, source []byte) string {
	body := node.ChildByFieldName("body")
	if body == nil || body.NamedChildCount() == 0 {
		return ""
	}
	first := body.NamedChild(0)
	if first.Kind() != "expression_statement" || first.NamedChildCount() == 0 {
		return ""
	}
	str := first.NamedChild(0)
	if str.Kind() != "string" {
		return ""
	}
	var sb strings.Builder
	for i := uint(0); i < str.NamedChildCount(); i++ {
		if c := str.NamedChild(i); c.Kind() == "string_content" {
			sb.WriteString(nodeText(c, source))
		}
	}
	return sb.String()
}

// docstringParamType searches a docstring for ":param <name>: <type>" and
// returns the first whitespace-delimited token after the colon.
func docstringParamType(doc, name string) string {
	if doc == "" {
		return ""
	}
	re := regexp.MustCompile(`:param ` + regexp.QuoteMeta(name) + `:\s*(\S+)`)
	if m := re.FindStringSubmatch(doc); m != nil {
		return m[1]
	}
	return ""
}

// extractClass derives a ClassInfo from a class_definition node. Only
// direct children of the class body are inspected for methods and
// attributes.
func (a *Analyzer) extractClass(node *sitter.Node, source []byte) ClassInfo {
	ci := ClassInfo{
		Name:       nodeText(node.ChildByFieldName("name"), source),
		Methods:    []MethodInfo{},
		Attributes: []string{},
		Bases:      []string{},
	}

	if supers := node.ChildByFieldName("superclasses"); supers != nil {
		for i := uint(0); i < supers.NamedChildCount(); i++ {
			// Qualified and parameterized bases are dropped without
			// diagnostic; only bare identifiers count.
			if base := supers.NamedChild(i); base.Kind() == "identifier" {
				ci.Bases = append(ci.Bases, nodeText(base, source))
			}
		}
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return ci
	}
	for i := uint(0); i < body.NamedChildCount(); i++ {
		child := body.NamedChild(i)
		switch child.Kind() {
		case "function_definition":
			ci.Methods = append(ci.Methods, extractMethod(child, source))
		case "decorated_definition":
			if def := child.ChildByFieldName("definition"); def != nil && def.Kind() == "function_definition" {
				ci.Methods = append(ci.Methods, extractMethod(def, source))
			}
		case "expression_statement":
			if name := simpleAssignTarget(child, source); name != "" {
				ci.Attributes = append(ci.Attributes, name)
			}
		}
	}
	return ci
}

// extractMethod collects a method's name and parameter names in source
// order, including a literal self when present.
func extractMethod(node *sitter.Node, source []byte) MethodInfo {
	m := MethodInfo{
		Name: nodeText(node.ChildByFieldName("name"), source),
		Args: []string{},
	}
	if params := node.ChildByFieldName("parameters"); params != nil {
		for i := uint(0); i < params.NamedChildCount(); i++ {
			if name, _ := extractParameter(params.NamedChild(i), source); name != "" {
				m.Args = append(m.Args, name)
			}
		}
	}
	return m
}

// simpleAssignTarget returns the assigned name for a plain single-target
// assignment statement, or "" for anything else: tuple targets, attribute
// paths, annotated or chained assignments.
func simpleAssignTarget(stmt *sitter.Node, source []byte) string {
	if stmt.NamedChildCount() == 0 {
		return ""
	}
	assign := stmt.NamedChild(0)
	if assign.Kind() != "assignment" {
		return ""
	}
	if assign.ChildByFieldName("type") != nil {
		return ""
	}
	if right := assign.ChildByFieldName("right"); right != nil && right.Kind() == "assignment" {
		return ""
	}
	left := assign.ChildByFieldName("left")
	if left == nil || left.Kind() != "identifier" {
		return ""
	}
	return nodeText(left, source)
}
