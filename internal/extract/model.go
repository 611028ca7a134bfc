// Package extract builds a structured, serializable model of a
// TypeScript module's public surface: exported names, kinds, signatures,
// and documentation, with re-export chains resolved and documentation
// precedence applied. The result is an immutable tree plus a list of
// diagnostics; nothing in this package logs or prints.
package extract

// Provenance identifies which mechanism produced a documentation field.
type Provenance string

const (
	// ProvenanceComment marks documentation from an inline comment at
	// the declaration site.
	ProvenanceComment Provenance = "comment"

	// ProvenanceShadowComment marks documentation from an inline
	// comment attached at a re-export site, overriding the target
	// module's own documentation.
	ProvenanceShadowComment Provenance = "shadow-comment"

	// ProvenanceDocFile marks documentation sourced from an associated
	// doc file.
	ProvenanceDocFile Provenance = "doc-file"
)

// Docs holds the resolved documentation fields of a module or export.
type Docs struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Guide       string `json:"guide,omitempty" yaml:"guide,omitempty"`
}

// DocsProvenance records, per documentation field, where the resolved
// value came from. Empty when the corresponding field is absent.
type DocsProvenance struct {
	Description Provenance `json:"description,omitempty" yaml:"description,omitempty"`
	Guide       Provenance `json:"guide,omitempty" yaml:"guide,omitempty"`
}

// SourceLocation points at the declaration or re-export statement that
// introduced an export.
type SourceLocation struct {
	File string `json:"file" yaml:"file"`
	Line int    `json:"line" yaml:"line"`
}

// SignatureKind tags a signature description. The extractor does not
// interpret signatures beyond carrying them.
type SignatureKind string

const (
	SignatureFunction  SignatureKind = "function"
	SignatureClass     SignatureKind = "class"
	SignatureInterface SignatureKind = "interface"
	SignatureType      SignatureKind = "type"
	SignatureEnum      SignatureKind = "enum"
	SignatureValue     SignatureKind = "value"
	SignatureNamespace SignatureKind = "namespace"
	SignatureBuilder   SignatureKind = "builder"
)

// Signature is an opaque, tagged description of a declaration's shape.
// Merged declarations contribute one line of Text each.
type Signature struct {
	Kind SignatureKind `json:"kind" yaml:"kind"`
	Text string        `json:"text" yaml:"text"`
}

// ExportKind distinguishes plain value exports from namespace exports
// that wrap a nested module.
type ExportKind string

const (
	ExportValue     ExportKind = "value"
	ExportNamespace ExportKind = "namespace"
)

// Export is one published name of a module.
type Export struct {
	Name           string            `json:"name" yaml:"name"`
	Kind           ExportKind        `json:"kind" yaml:"kind"`
	Signature      *Signature        `json:"signature,omitempty" yaml:"signature,omitempty"`
	Docs           *Docs             `json:"docs,omitempty" yaml:"docs,omitempty"`
	DocsProvenance *DocsProvenance   `json:"docsProvenance,omitempty" yaml:"docsProvenance,omitempty"`
	Examples       []string          `json:"examples,omitempty" yaml:"examples,omitempty"`
	Deprecated     bool              `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Category       string            `json:"category,omitempty" yaml:"category,omitempty"`
	Tags           map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
	SourceLocation SourceLocation    `json:"sourceLocation" yaml:"sourceLocation"`

	// Module is the nested module a namespace export refers to; nil for
	// value exports. It is owned exclusively by this export.
	Module *Module `json:"module,omitempty" yaml:"module,omitempty"`
}

// Module is one source file's resolved public surface.
type Module struct {
	// Location is the module's root-relative path, its identity for
	// cycle detection and recursive keys.
	Location       string          `json:"location" yaml:"location"`
	Docs           *Docs           `json:"docs,omitempty" yaml:"docs,omitempty"`
	DocsProvenance *DocsProvenance `json:"docsProvenance,omitempty" yaml:"docsProvenance,omitempty"`
	Category       string          `json:"category,omitempty" yaml:"category,omitempty"`

	// Exports preserves declaration order; order matters for generated
	// documentation.
	Exports []Export `json:"exports" yaml:"exports"`
}

// Result is the outcome of one extraction: a best-effort module tree
// plus every diagnostic accumulated along the way.
type Result struct {
	Module      *Module      `json:"module" yaml:"module"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}
