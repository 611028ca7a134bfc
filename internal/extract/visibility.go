package extract

import "strings"

// Options configures an extraction pass. It is passed by value at the
// top-level call and threaded unchanged through all recursive calls.
type Options struct {
	// FilterInternal drops exports whose comment carries @internal.
	FilterInternal bool

	// FilterUnderscoreExports drops exports whose name starts with an
	// underscore.
	FilterUnderscoreExports bool
}

// DefaultOptions returns the default filtering configuration.
func DefaultOptions() Options {
	return Options{FilterInternal: true}
}

// ShouldFilter reports whether a named export should be dropped. Either
// condition alone suffices; the predicate is pure and order-independent.
func ShouldFilter(name string, comment *Comment, opts Options) bool {
	if opts.FilterInternal && comment != nil && comment.Internal {
		return true
	}
	if opts.FilterUnderscoreExports && strings.HasPrefix(name, "_") {
		return true
	}
	return false
}
