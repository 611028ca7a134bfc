package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// StatementKind classifies an export-declaration statement.
type StatementKind int

const (
	// StatementOther covers export statements without a target file
	// reference: direct declarations, local export clauses, defaults,
	// and named re-exports (which bind individual names, not modules).
	StatementOther StatementKind = iota

	// StatementNamespaceReexport is `export * as Name from "./mod"`.
	StatementNamespaceReexport

	// StatementWildcardReexport is `export * from "./mod"`.
	StatementWildcardReexport
)

// ExportStatement is one top-level export-declaration statement, in
// declaration order.
type ExportStatement struct {
	Node      *sitter.Node
	Kind      StatementKind
	Alias     string // namespace re-export alias, empty otherwise
	Specifier string // module specifier for re-export forms, empty otherwise
	Line      int
}

// ExportedName binds one published name to its declaration nodes. A name
// may carry several declarations when TypeScript declaration merging is
// in play (e.g. an interface and a const sharing a name).
type ExportedName struct {
	Name  string
	Decls []*sitter.Node
}

// ExportStatements returns the file's top-level export statements in
// declaration order, classified into the three forms the extractor
// distinguishes.
func (f *SourceFile) ExportStatements() []ExportStatement {
	var stmts []ExportStatement
	walkChildren(f.root, func(n *sitter.Node) {
		if n.Kind() != "export_statement" {
			return
		}
		stmts = append(stmts, f.classifyExport(n))
	})
	return stmts
}

// classifyExport classifies a single export_statement node.
func (f *SourceFile) classifyExport(n *sitter.Node) ExportStatement {
	stmt := ExportStatement{Node: n, Kind: StatementOther, Line: f.Line(n)}

	source := n.ChildByFieldName("source")
	if source == nil {
		return stmt
	}
	stmt.Specifier = f.stringContent(source)

	if nsExport := findChildByKind(n, "namespace_export"); nsExport != nil {
		stmt.Kind = StatementNamespaceReexport
		stmt.Alias = f.namespaceExportAlias(nsExport)
		return stmt
	}
	if hasChildOfKind(n, "*") {
		stmt.Kind = StatementWildcardReexport
		return stmt
	}
	// Named re-export (`export { A } from "./x"`): binds individual
	// names, handled with the direct declarations.
	return stmt
}

// namespaceExportAlias extracts the alias from a `* as Name` clause.
func (f *SourceFile) namespaceExportAlias(nsExport *sitter.Node) string {
	for i := uint(0); i < uint(nsExport.ChildCount()); i++ {
		child := nsExport.Child(i)
		switch child.Kind() {
		case "identifier", "module_export_name":
			return f.Text(child)
		case "string":
			return f.stringContent(child)
		}
	}
	return ""
}

// ExportedNames enumerates the file's exported names in declaration
// order, excluding namespace and wildcard re-export forms (those are
// resolved from ExportStatements). Each name maps to every declaration
// node bound to it.
func (f *SourceFile) ExportedNames() []ExportedName {
	order := []string{}
	decls := map[string][]*sitter.Node{}

	add := func(name string, node *sitter.Node) {
		if name == "" || node == nil {
			return
		}
		if _, seen := decls[name]; !seen {
			order = append(order, name)
		}
		decls[name] = append(decls[name], node)
	}

	walkChildren(f.root, func(n *sitter.Node) {
		if n.Kind() != "export_statement" {
			return
		}
		if findChildByKind(n, "namespace_export") != nil {
			return
		}
		if n.ChildByFieldName("source") != nil && hasChildOfKind(n, "*") {
			// Wildcard re-export, resolved from ExportStatements.
			return
		}

		if hasChildOfKind(n, "default") {
			add("default", n)
			return
		}

		if decl := n.ChildByFieldName("declaration"); decl != nil {
			f.addDeclarationNames(decl, add)
			return
		}

		if clause := findChildByKind(n, "export_clause"); clause != nil {
			f.addClauseNames(clause, n.ChildByFieldName("source") != nil, add)
		}
	})

	result := make([]ExportedName, 0, len(order))
	for _, name := range order {
		result = append(result, ExportedName{Name: name, Decls: decls[name]})
	}
	return result
}

// addDeclarationNames extracts the names bound by an exported declaration.
func (f *SourceFile) addDeclarationNames(decl *sitter.Node, add func(string, *sitter.Node)) {
	switch decl.Kind() {
	case "lexical_declaration", "variable_declaration":
		walkChildren(decl, func(c *sitter.Node) {
			if c.Kind() == "variable_declarator" {
				add(f.Text(c.ChildByFieldName("name")), c)
			}
		})
	default:
		// function, class, interface, type alias, enum, namespace:
		// all carry a name field.
		add(f.Text(decl.ChildByFieldName("name")), decl)
	}
}

// addClauseNames extracts names from an export clause. For local clauses
// (`export { A as B }`) the declarations are looked up at the top level
// of the file; for named re-exports the specifier node itself stands in
// as the declaration.
func (f *SourceFile) addClauseNames(clause *sitter.Node, hasSource bool, add func(string, *sitter.Node)) {
	walkChildren(clause, func(spec *sitter.Node) {
		if spec.Kind() != "export_specifier" {
			return
		}
		local := f.Text(spec.ChildByFieldName("name"))
		published := local
		if alias := spec.ChildByFieldName("alias"); alias != nil {
			published = f.Text(alias)
		}
		if hasSource {
			add(published, spec)
			return
		}
		locals := f.topLevelDeclarations(local)
		if len(locals) == 0 {
			add(published, spec)
			return
		}
		for _, d := range locals {
			add(published, d)
		}
	})
}

// topLevelDeclarations finds every top-level declaration bound to name,
// in source order. Declaration merging means there may be several.
func (f *SourceFile) topLevelDeclarations(name string) []*sitter.Node {
	var found []*sitter.Node
	collect := func(decl *sitter.Node) {
		switch decl.Kind() {
		case "lexical_declaration", "variable_declaration":
			walkChildren(decl, func(c *sitter.Node) {
				if c.Kind() == "variable_declarator" && f.Text(c.ChildByFieldName("name")) == name {
					found = append(found, c)
				}
			})
		case "function_declaration", "generator_function_declaration",
			"class_declaration", "abstract_class_declaration",
			"interface_declaration", "type_alias_declaration",
			"enum_declaration", "internal_module", "module", "function_signature":
			if f.Text(decl.ChildByFieldName("name")) == name {
				found = append(found, decl)
			}
		}
	}
	walkChildren(f.root, func(n *sitter.Node) {
		if decl := unwrapStatement(n); decl != nil {
			collect(decl)
		}
	})
	return found
}

// LocalNamespace finds a top-level `namespace Name {}` (or `module Name
// {}`) declaration with the given name, exported or not. Used to locate
// shadow-override documentation at a re-export site.
func (f *SourceFile) LocalNamespace(name string) *sitter.Node {
	var found *sitter.Node
	walkChildren(f.root, func(n *sitter.Node) {
		if found != nil {
			return
		}
		candidate := unwrapStatement(n)
		if candidate == nil {
			return
		}
		switch candidate.Kind() {
		case "internal_module", "module":
			if f.Text(candidate.ChildByFieldName("name")) == name {
				found = candidate
			}
		}
	})
	return found
}

// unwrapStatement peels the statement wrappers the grammar puts around
// declarations: export statements, ambient `declare` blocks, and the
// expression statement a bare `namespace X {}` parses as.
func unwrapStatement(n *sitter.Node) *sitter.Node {
	for n != nil {
		switch n.Kind() {
		case "export_statement":
			n = n.ChildByFieldName("declaration")
		case "ambient_declaration", "expression_statement":
			n = n.NamedChild(0)
		default:
			return n
		}
	}
	return nil
}
