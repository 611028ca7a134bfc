package extract

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/docsurf/docsurf/internal/lang"
)

// Extractor builds Module trees from parsed source files. It is safe to
// reuse across extractions of independent roots as long as each call
// gets its own traversal state, which Extract guarantees.
type Extractor struct {
	resolver  *lang.Resolver
	docs      DocLookup
	overrides *OverrideResolver

	// Collaborator hooks; replaceable in tests.
	parseComment     func(raw string) *Comment
	extractSignature func(name string, f *lang.SourceFile, node *sitter.Node) (*Signature, error)
}

// NewExtractor creates an extractor using the given resolver and doc
// lookup. docs may be nil when no doc-file convention applies.
func NewExtractor(resolver *lang.Resolver, docs DocLookup) *Extractor {
	return &Extractor{
		resolver:         resolver,
		docs:             docs,
		overrides:        NewOverrideResolver(docs),
		parseComment:     ParseComment,
		extractSignature: ExtractSignature,
	}
}

// Extract builds the Module tree for the file at the given root-relative
// location. The returned tree is immutable; diagnostics for every
// recoverable problem found along the way ride on the Result. Only a
// failure to load the root itself is an error.
func (e *Extractor) Extract(location string, opts Options) (*Result, error) {
	f, err := e.resolver.Load(location)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", location, err)
	}

	t := &traversal{
		e:        e,
		opts:     opts,
		visiting: map[string]bool{},
	}
	module := t.extractModule(f)
	return &Result{Module: module, Diagnostics: t.diags}, nil
}

// traversal carries the per-extraction state: options, the visited-path
// set for cycle detection, and the diagnostics accumulator. It is local
// to one root so concurrent extractions never share state.
type traversal struct {
	e        *Extractor
	opts     Options
	visiting map[string]bool
	stack    []string
	diags    []Diagnostic
}

func (t *traversal) diag(code DiagnosticCode, file string, line int, format string, args ...any) {
	t.diags = append(t.diags, Diagnostic{
		Code:    code,
		File:    file,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}

// extractModule builds the Module for one file. Re-exports are resolved
// before direct declarations, both in declaration order.
func (t *traversal) extractModule(f *lang.SourceFile) *Module {
	t.visiting[f.Path] = true
	t.stack = append(t.stack, f.Path)
	defer func() {
		delete(t.visiting, f.Path)
		t.stack = t.stack[:len(t.stack)-1]
	}()

	m := &Module{Location: f.Path, Exports: []Export{}}
	emitted := map[string]bool{}
	moduleAliases := map[string]bool{}

	for _, stmt := range f.ExportStatements() {
		switch stmt.Kind {
		case lang.StatementNamespaceReexport:
			moduleAliases[stmt.Alias] = true
			loc := SourceLocation{File: f.Path, Line: stmt.Line}
			t.resolveNamespace(f, stmt, loc, m, emitted)

		case lang.StatementWildcardReexport:
			target, err := t.e.resolver.Resolve(f, stmt.Specifier)
			if err != nil {
				t.diag(DiagDanglingReexport, f.Path, stmt.Line, "cannot resolve %q: %v", stmt.Specifier, err)
				continue
			}
			// Flattening: namespace re-exports declared inside the
			// target surface here as if declared directly, one level
			// deep. Their overrides still resolve against the target,
			// where the re-export edge actually lives.
			for _, inner := range target.ExportStatements() {
				if inner.Kind != lang.StatementNamespaceReexport {
					continue
				}
				moduleAliases[inner.Alias] = true
				loc := SourceLocation{File: f.Path, Line: stmt.Line}
				t.resolveNamespace(target, inner, loc, m, emitted)
			}
		}
	}

	for _, en := range f.ExportedNames() {
		if en.Name == "default" {
			continue
		}
		// A name denoting a whole other file is never a value export,
		// even when the namespace export itself was filtered out.
		if moduleAliases[en.Name] {
			continue
		}
		if emitted[en.Name] {
			continue
		}
		if ex, ok := t.valueExport(f, en); ok {
			m.Exports = append(m.Exports, ex)
			emitted[en.Name] = true
		}
	}

	t.moduleDocs(f, m)
	return m
}

// resolveNamespace resolves one aliased namespace re-export declared in
// site and appends the namespace export to m. loc is the statement that
// introduced the export in the module under construction.
func (t *traversal) resolveNamespace(site *lang.SourceFile, stmt lang.ExportStatement, loc SourceLocation, m *Module, emitted map[string]bool) {
	target, err := t.e.resolver.Resolve(site, stmt.Specifier)
	if err != nil {
		t.diag(DiagDanglingReexport, site.Path, stmt.Line, "cannot resolve %q: %v", stmt.Specifier, err)
		return
	}

	if t.visiting[target.Path] {
		t.diag(DiagCycle, site.Path, stmt.Line, "re-export cycle: %s -> %s",
			strings.Join(t.stack, " -> "), target.Path)
		return
	}

	nested := t.extractModule(target)

	override := t.e.overrides.Find(site, stmt.Alias)
	var shadow *Comment
	if override != nil {
		shadow = override.Comment
	}
	if ShouldFilter(stmt.Alias, shadow, t.opts) {
		return
	}
	if emitted[stmt.Alias] {
		return
	}

	ex := Export{
		Name:           stmt.Alias,
		Kind:           ExportNamespace,
		Signature:      &Signature{Kind: SignatureNamespace, Text: "namespace " + stmt.Alias},
		SourceLocation: loc,
		Module:         nested,
		Category:       nested.Category,
	}

	docs := Docs{}
	prov := DocsProvenance{}
	if nested.Docs != nil {
		docs = *nested.Docs
	}
	if nested.DocsProvenance != nil {
		prov = *nested.DocsProvenance
	}

	if override != nil {
		switch override.Source {
		case ProvenanceShadowComment:
			c := override.Comment
			if c.Description != "" {
				docs.Description = c.Description
				prov.Description = ProvenanceShadowComment
			}
			if c.Guide != "" {
				docs.Guide = c.Guide
				prov.Guide = ProvenanceShadowComment
			}
			ex.Examples = c.Examples
			ex.Deprecated = c.Deprecated
			ex.Tags = c.Tags
			if c.Category != "" {
				ex.Category = c.Category
			}
		case ProvenanceDocFile:
			docs.Guide = override.Guide
			prov.Guide = ProvenanceDocFile
		}
	}

	if docs != (Docs{}) {
		ex.Docs = &docs
		ex.DocsProvenance = &prov
	}

	m.Exports = append(m.Exports, ex)
	emitted[stmt.Alias] = true
}

// valueExport processes every declaration bound to an exported name and
// merges them into one value export. Declarations that fail signature
// extraction are dropped individually with a diagnostic; the export is
// omitted only when none survive.
func (t *traversal) valueExport(f *lang.SourceFile, en lang.ExportedName) (Export, bool) {
	var (
		comments []*Comment
		sigTexts []string
		sigKind  SignatureKind
		loc      SourceLocation
	)

	for _, decl := range en.Decls {
		comments = append(comments, t.e.parseComment(f.DocCommentFor(decl)))

		sig, err := t.e.extractSignature(en.Name, f, decl)
		if err != nil {
			t.diag(DiagDeclarationFailed, f.Path, f.Line(decl), "skipping declaration of %s: %v", en.Name, err)
			continue
		}
		if len(sigTexts) == 0 {
			sigKind = sig.Kind
			loc = SourceLocation{File: f.Path, Line: f.Line(decl)}
		}
		sigTexts = append(sigTexts, sig.Text)
	}

	if len(sigTexts) == 0 {
		return Export{}, false
	}

	merged := mergeComments(comments)
	if ShouldFilter(en.Name, merged, t.opts) {
		return Export{}, false
	}

	ex := Export{
		Name:           en.Name,
		Kind:           ExportValue,
		Signature:      &Signature{Kind: sigKind, Text: strings.Join(sigTexts, "\n")},
		SourceLocation: loc,
	}
	if merged != nil {
		docs := Docs{Description: merged.Description, Guide: merged.Guide}
		if docs != (Docs{}) {
			prov := DocsProvenance{}
			if docs.Description != "" {
				prov.Description = ProvenanceComment
			}
			if docs.Guide != "" {
				prov.Guide = ProvenanceComment
			}
			ex.Docs = &docs
			ex.DocsProvenance = &prov
		}
		ex.Examples = merged.Examples
		ex.Deprecated = merged.Deprecated
		ex.Category = merged.Category
		ex.Tags = merged.Tags
	}
	return ex, true
}

// mergeComments folds the comments of merged declarations into one:
// first non-empty text fields win, examples concatenate, boolean flags
// OR together. Returns nil when every input is nil.
func mergeComments(comments []*Comment) *Comment {
	var merged *Comment
	for _, c := range comments {
		if c == nil {
			continue
		}
		if merged == nil {
			merged = &Comment{Tags: map[string]string{}}
		}
		if merged.Description == "" {
			merged.Description = c.Description
		}
		if merged.Guide == "" {
			merged.Guide = c.Guide
		}
		if merged.Category == "" {
			merged.Category = c.Category
		}
		merged.Examples = append(merged.Examples, c.Examples...)
		merged.Deprecated = merged.Deprecated || c.Deprecated
		merged.Internal = merged.Internal || c.Internal
		for k, v := range c.Tags {
			if _, ok := merged.Tags[k]; !ok {
				merged.Tags[k] = v
			}
		}
	}
	if merged != nil && len(merged.Tags) == 0 {
		merged.Tags = nil
	}
	return merged
}

// moduleDocs resolves module-level documentation. The guide prefers the
// doc file; the description comes only from the first statement's
// inline comment.
func (t *traversal) moduleDocs(f *lang.SourceFile, m *Module) {
	comment := t.e.parseComment(f.FirstStatementComment())

	docs := Docs{}
	prov := DocsProvenance{}

	if comment != nil {
		if comment.Description != "" {
			docs.Description = comment.Description
			prov.Description = ProvenanceComment
		}
		m.Category = comment.Category
	}

	var fileContent string
	var haveFile bool
	if t.e.docs != nil {
		fileContent, haveFile = t.e.docs.Find(f.Path)
	}

	switch {
	case haveFile:
		if comment != nil && comment.Guide != "" {
			t.diag(DiagDocConflict, f.Path, 0, "both a doc file and an inline guide exist; using the doc file")
		}
		docs.Guide = fileContent
		prov.Guide = ProvenanceDocFile
	case comment != nil && comment.Guide != "":
		docs.Guide = comment.Guide
		prov.Guide = ProvenanceComment
	}

	if docs != (Docs{}) {
		m.Docs = &docs
		m.DocsProvenance = &prov
	}
}
