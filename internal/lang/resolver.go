package lang

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrUnresolvable is returned when a module specifier cannot be mapped
// to a file under the project root.
var ErrUnresolvable = errors.New("unresolvable module specifier")

// Resolver loads and caches parsed source file handles under a project
// root, and resolves re-export module specifiers between them. It owns
// the handles it creates; Close releases all of them.
type Resolver struct {
	rootDir string
	files   map[string]*SourceFile
}

// NewResolver creates a resolver rooted at rootDir.
func NewResolver(rootDir string) *Resolver {
	return &Resolver{
		rootDir: rootDir,
		files:   make(map[string]*SourceFile),
	}
}

// Load parses the file at the given root-relative path, reusing a cached
// handle when the file was loaded before.
func (r *Resolver) Load(relPath string) (*SourceFile, error) {
	relPath = path.Clean(filepath.ToSlash(relPath))
	if f, ok := r.files[relPath]; ok {
		return f, nil
	}

	source, err := os.ReadFile(filepath.Join(r.rootDir, filepath.FromSlash(relPath)))
	if err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}

	f, err := ParseSource(relPath, source)
	if err != nil {
		return nil, err
	}
	r.files[relPath] = f
	return f, nil
}

// Resolve maps a re-export's module specifier, relative to the file that
// contains it, to a parsed file handle. Only relative specifiers are
// resolvable; package imports yield ErrUnresolvable.
func (r *Resolver) Resolve(from *SourceFile, specifier string) (*SourceFile, error) {
	if !strings.HasPrefix(specifier, ".") {
		return nil, fmt.Errorf("%w: %q", ErrUnresolvable, specifier)
	}

	base := path.Join(path.Dir(from.Path), specifier)
	for _, candidate := range specifierCandidates(base) {
		if r.exists(candidate) {
			return r.Load(candidate)
		}
	}
	return nil, fmt.Errorf("%w: %q from %s", ErrUnresolvable, specifier, from.Path)
}

// specifierCandidates lists the file paths a specifier may denote, in
// probing order: exact, source extensions, then the directory index.
func specifierCandidates(base string) []string {
	candidates := []string{}
	if ext := path.Ext(base); ext == ".ts" || ext == ".tsx" || ext == ".js" || ext == ".jsx" {
		candidates = append(candidates, base)
	}
	// `./mod.js` specifiers in ESM TypeScript refer to `./mod.ts`.
	if strings.HasSuffix(base, ".js") {
		candidates = append(candidates, strings.TrimSuffix(base, ".js")+".ts")
	}
	for _, ext := range []string{".ts", ".tsx", ".js", ".jsx"} {
		candidates = append(candidates, base+ext)
	}
	for _, ext := range []string{".ts", ".tsx", ".js", ".jsx"} {
		candidates = append(candidates, path.Join(base, "index"+ext))
	}
	return candidates
}

func (r *Resolver) exists(relPath string) bool {
	if _, ok := r.files[path.Clean(relPath)]; ok {
		return true
	}
	info, err := os.Stat(filepath.Join(r.rootDir, filepath.FromSlash(relPath)))
	return err == nil && !info.IsDir()
}

// RootDir returns the project root the resolver is anchored at.
func (r *Resolver) RootDir() string {
	return r.rootDir
}

// Close releases every handle the resolver has loaded.
func (r *Resolver) Close() {
	for _, f := range r.files {
		f.Close()
	}
	r.files = make(map[string]*SourceFile)
}
