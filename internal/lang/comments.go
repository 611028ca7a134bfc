package lang

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// DocCommentFor returns the raw JSDoc block comment attached to a
// declaration node, or "" when there is none. The comment is looked up
// on the top-level statement that carries the declaration, so a comment
// written above `export const x` is found from the declarator node.
func (f *SourceFile) DocCommentFor(node *sitter.Node) string {
	stmt := f.topLevelStatementOf(node)
	if stmt == nil {
		return ""
	}
	prev := stmt.PrevSibling()
	if prev == nil || prev.Kind() != "comment" {
		return ""
	}
	text := f.Text(prev)
	if !strings.HasPrefix(text, "/**") {
		return ""
	}
	return text
}

// FirstStatementComment returns the raw JSDoc comment attached to the
// first statement in the file, used for module-level documentation.
func (f *SourceFile) FirstStatementComment() string {
	for i := uint(0); i < uint(f.root.ChildCount()); i++ {
		child := f.root.Child(i)
		if child.Kind() == "comment" {
			continue
		}
		return f.DocCommentFor(child)
	}
	return ""
}

// topLevelStatementOf climbs from a node to its enclosing top-level
// statement (the ancestor whose parent is the program root).
func (f *SourceFile) topLevelStatementOf(node *sitter.Node) *sitter.Node {
	for node != nil {
		parent := node.Parent()
		if parent == nil {
			return nil
		}
		if parent.Kind() == "program" {
			return node
		}
		node = parent
	}
	return nil
}
