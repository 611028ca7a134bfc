package extract

import "fmt"

// DiagnosticCode classifies a recoverable extraction problem.
type DiagnosticCode string

const (
	// DiagDanglingReexport: a re-export's target file cannot be
	// resolved; the edge is skipped.
	DiagDanglingReexport DiagnosticCode = "dangling-reexport"

	// DiagCycle: a module transitively re-exports itself; recursion
	// stops at the repeated location.
	DiagCycle DiagnosticCode = "reexport-cycle"

	// DiagDocConflict: a doc file and an inline guide tag both exist;
	// the doc file wins.
	DiagDocConflict DiagnosticCode = "doc-conflict"

	// DiagDeclarationFailed: signature or comment extraction failed for
	// one declaration; that declaration is omitted.
	DiagDeclarationFailed DiagnosticCode = "declaration-failed"
)

// Diagnostic is a non-fatal problem found during extraction. Diagnostics
// are accumulated on the Result, never printed, so concurrent callers do
// not interleave unrelated streams.
type Diagnostic struct {
	Code    DiagnosticCode `json:"code" yaml:"code"`
	File    string         `json:"file" yaml:"file"`
	Line    int            `json:"line,omitempty" yaml:"line,omitempty"`
	Message string         `json:"message" yaml:"message"`
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %s", d.File, d.Line, d.Code, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.File, d.Code, d.Message)
}
