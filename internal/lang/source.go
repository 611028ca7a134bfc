// Package lang provides the TypeScript/JavaScript AST access layer used by
// the extractor: parsed source file handles, export statement
// classification, exported-name enumeration, and module specifier
// resolution. It is built on tree-sitter with the TypeScript grammar,
// which also parses plain JavaScript.
package lang

import (
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// SourceFile is a parsed source file handle. The underlying tree-sitter
// tree stays alive for the lifetime of the handle; nodes returned by its
// methods must not be used after Close.
type SourceFile struct {
	// Path is the file's path relative to the project root, with slash
	// separators. It is the module's identity for cycle detection.
	Path string

	source []byte
	tree   *sitter.Tree
	root   *sitter.Node
}

// ParseSource parses TypeScript/JavaScript source into a SourceFile.
// relPath selects the grammar dialect (.tsx uses the TSX grammar) and
// becomes the handle's Path.
func ParseSource(relPath string, source []byte) (*SourceFile, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(languageFor(relPath)); err != nil {
		return nil, fmt.Errorf("failed to set language for %s: %w", relPath, err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse %s", relPath)
	}

	return &SourceFile{
		Path:   filepath.ToSlash(relPath),
		source: source,
		tree:   tree,
		root:   tree.RootNode(),
	}, nil
}

// Close releases the parsed tree.
func (f *SourceFile) Close() {
	if f.tree != nil {
		f.tree.Close()
		f.tree = nil
	}
}

// Root returns the root node of the parse tree.
func (f *SourceFile) Root() *sitter.Node {
	return f.root
}

// Text returns the source text of a node.
func (f *SourceFile) Text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return string(f.source[n.StartByte():n.EndByte()])
}

// Line returns the 1-indexed start line of a node.
func (f *SourceFile) Line(n *sitter.Node) int {
	if n == nil {
		return 0
	}
	return int(n.StartPosition().Row) + 1
}

// languageFor picks the grammar dialect by file extension.
func languageFor(path string) *sitter.Language {
	if strings.HasSuffix(path, ".tsx") || strings.HasSuffix(path, ".jsx") {
		return sitter.NewLanguage(typescript.LanguageTSX())
	}
	return sitter.NewLanguage(typescript.LanguageTypescript())
}

// walkChildren invokes visitor over a node's direct children, in order.
func walkChildren(node *sitter.Node, visitor func(*sitter.Node)) {
	if node == nil {
		return
	}
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		visitor(node.Child(i))
	}
}

// findChildByKind finds the first direct child with the given kind.
func findChildByKind(node *sitter.Node, kind string) *sitter.Node {
	if node == nil {
		return nil
	}
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

// hasChildOfKind reports whether a node has a direct child with the given kind.
func hasChildOfKind(node *sitter.Node, kind string) bool {
	return findChildByKind(node, kind) != nil
}

// stringContent extracts the unquoted content of a string literal node.
func (f *SourceFile) stringContent(node *sitter.Node) string {
	if node == nil {
		return ""
	}
	if frag := findChildByKind(node, "string_fragment"); frag != nil {
		return f.Text(frag)
	}
	return strings.Trim(f.Text(node), `"'`)
}
