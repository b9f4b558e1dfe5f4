package analyzer

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ParseError reports source that failed to parse, with the position of the
// first syntax error tree-sitter found (1-indexed).
type ParseError struct {
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("python source failed to parse: syntax error at line %d, column %d", e.Line, e.Column)
}

// walkTree recursively walks a tree-sitter tree in pre-order and calls the
// visitor for each node. Returning false skips the node's children.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		walkTree(node.Child(i), visitor)
	}
}

// nodeText extracts the text content of a tree-sitter node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// firstSyntaxError locates the first ERROR or missing node in the tree.
// Only subtrees that contain an error are descended into.
func firstSyntaxError(root *sitter.Node) *ParseError {
	var perr *ParseError
	walkTree(root, func(n *sitter.Node) bool {
		if perr != nil {
			return false
		}
		if n.IsError() || n.IsMissing() {
			pos := n.StartPosition()
			perr = &ParseError{Line: int(pos.Row) + 1, Column: int(pos.Column) + 1}
			return false
		}
		return n.HasError()
	})
	return perr
}
