package extract

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/docsurf/docsurf/internal/lang"
)

// ExtractSignature turns a declaration node into a tagged signature
// description. The extractor treats the result as opaque.
func ExtractSignature(name string, f *lang.SourceFile, node *sitter.Node) (*Signature, error) {
	if node == nil {
		return nil, fmt.Errorf("no declaration node for %s", name)
	}

	switch node.Kind() {
	case "function_declaration", "generator_function_declaration", "function_signature":
		return &Signature{Kind: SignatureFunction, Text: functionSignature(name, f, node)}, nil
	case "class_declaration", "abstract_class_declaration":
		kind := SignatureClass
		if isBuilderClass(name, f, node) {
			kind = SignatureBuilder
		}
		return &Signature{Kind: kind, Text: classSignature(name, f, node)}, nil
	case "interface_declaration":
		return &Signature{Kind: SignatureInterface, Text: headerLine(f.Text(node))}, nil
	case "type_alias_declaration":
		return &Signature{Kind: SignatureType, Text: collapse(f.Text(node))}, nil
	case "enum_declaration":
		return &Signature{Kind: SignatureEnum, Text: headerLine(f.Text(node))}, nil
	case "internal_module", "module":
		return &Signature{Kind: SignatureNamespace, Text: "namespace " + name}, nil
	case "variable_declarator":
		return variableSignature(name, f, node), nil
	case "export_specifier":
		return &Signature{Kind: SignatureValue, Text: name}, nil
	case "export_statement":
		// Default exports carry the statement itself.
		return &Signature{Kind: SignatureValue, Text: headerLine(f.Text(node))}, nil
	}
	return nil, fmt.Errorf("unsupported declaration kind %q for %s", node.Kind(), name)
}

// functionSignature builds `name(params): ret` from a function node.
func functionSignature(name string, f *lang.SourceFile, node *sitter.Node) string {
	sig := name
	if tp := node.ChildByFieldName("type_parameters"); tp != nil {
		sig += f.Text(tp)
	}
	if params := node.ChildByFieldName("parameters"); params != nil {
		sig += collapse(f.Text(params))
	} else {
		sig += "()"
	}
	if ret := node.ChildByFieldName("return_type"); ret != nil {
		sig += ": " + strings.TrimSpace(strings.TrimPrefix(collapse(f.Text(ret)), ":"))
	}
	return sig
}

// classSignature builds the class header including heritage clauses.
func classSignature(name string, f *lang.SourceFile, node *sitter.Node) string {
	sig := "class " + name
	if tp := node.ChildByFieldName("type_parameters"); tp != nil {
		sig += f.Text(tp)
	}
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		if child := node.Child(i); child.Kind() == "class_heritage" {
			sig += " " + collapse(f.Text(child))
		}
	}
	return sig
}

// variableSignature builds a signature for a const/let/var declarator.
// Declarators initialized with arrow functions read as functions.
func variableSignature(name string, f *lang.SourceFile, node *sitter.Node) *Signature {
	if value := node.ChildByFieldName("value"); value != nil && value.Kind() == "arrow_function" {
		sig := name
		if params := value.ChildByFieldName("parameters"); params != nil {
			sig += collapse(f.Text(params))
		} else if param := value.ChildByFieldName("parameter"); param != nil {
			sig += "(" + collapse(f.Text(param)) + ")"
		} else {
			sig += "()"
		}
		if ret := value.ChildByFieldName("return_type"); ret != nil {
			sig += ": " + strings.TrimSpace(strings.TrimPrefix(collapse(f.Text(ret)), ":"))
		}
		return &Signature{Kind: SignatureFunction, Text: sig}
	}

	sig := name
	if typ := node.ChildByFieldName("type"); typ != nil {
		sig += collapse(f.Text(typ))
	}
	return &Signature{Kind: SignatureValue, Text: sig}
}

// isBuilderClass reports whether a class follows the fluent builder
// pattern: two or more methods returning the class type or `this`.
func isBuilderClass(name string, f *lang.SourceFile, node *sitter.Node) bool {
	body := node.ChildByFieldName("body")
	if body == nil {
		return false
	}
	fluent := 0
	for i := uint(0); i < uint(body.ChildCount()); i++ {
		method := body.Child(i)
		if method.Kind() != "method_definition" {
			continue
		}
		ret := method.ChildByFieldName("return_type")
		if ret == nil {
			continue
		}
		retType := strings.TrimSpace(strings.TrimPrefix(collapse(f.Text(ret)), ":"))
		base, _, _ := strings.Cut(retType, "<")
		if base == name || base == "this" {
			fluent++
		}
	}
	return fluent >= 2
}

// headerLine returns the declaration text up to its body.
func headerLine(text string) string {
	if idx := strings.IndexAny(text, "{\n"); idx >= 0 {
		return strings.TrimSpace(text[:idx])
	}
	return strings.TrimSpace(text)
}

// collapse flattens multi-line text into a single line.
func collapse(text string) string {
	fields := strings.Fields(text)
	return strings.Join(fields, " ")
}
