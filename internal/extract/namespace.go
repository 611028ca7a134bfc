package extract

import (
	"github.com/docsurf/docsurf/internal/lang"
)

// Override is documentation attached at a re-export edge that takes
// precedence over the target module's own documentation.
type Override struct {
	// Comment is the shadow comment from a local namespace block at the
	// re-export site; nil for doc-file overrides.
	Comment *Comment

	// Guide is doc-file content found for a pure-wrapper file; empty
	// for shadow-comment overrides.
	Guide string

	// Source tags which mechanism produced the override.
	Source Provenance
}

// OverrideResolver finds documentation overrides for aliased namespace
// re-exports. Documentation for a re-exported namespace conceptually
// belongs to the edge, not only to the target module, so two placements
// are supported: a local namespace block sharing the alias name, and a
// doc file next to a pure wrapper.
type OverrideResolver struct {
	docs DocLookup
}

// NewOverrideResolver creates a resolver backed by the given doc lookup.
func NewOverrideResolver(docs DocLookup) *OverrideResolver {
	return &OverrideResolver{docs: docs}
}

// Find searches for an override for the re-export of aliasName declared
// in file. Returns nil when the nested module's own docs should be used.
func (r *OverrideResolver) Find(file *lang.SourceFile, aliasName string) *Override {
	if ns := file.LocalNamespace(aliasName); ns != nil {
		if comment := ParseComment(file.DocCommentFor(ns)); comment != nil {
			return &Override{Comment: comment, Source: ProvenanceShadowComment}
		}
	}

	if r.docs != nil && IsPureWrapper(file) {
		if content, ok := r.docs.Find(file.Path); ok {
			return &Override{Guide: content, Source: ProvenanceDocFile}
		}
	}

	return nil
}

// IsPureWrapper reports whether a file's only export is a single aliased
// namespace re-export: exactly one such statement and zero other
// exports of any form.
func IsPureWrapper(f *lang.SourceFile) bool {
	namespaceReexports := 0
	otherExports := 0
	for _, stmt := range f.ExportStatements() {
		switch stmt.Kind {
		case lang.StatementNamespaceReexport:
			namespaceReexports++
		case lang.StatementWildcardReexport:
			otherExports++
		}
	}
	otherExports += len(f.ExportedNames())
	return namespaceReexports == 1 && otherExports == 0
}
