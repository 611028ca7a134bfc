package extract

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DocLookup finds long-form documentation associated with a source file.
// Find is keyed by the file's root-relative path.
type DocLookup interface {
	Find(sourcePath string) (content string, ok bool)
}

// DocFileLookup resolves doc files by naming convention: first a sibling
// file sharing the source's base name, then a directory-level default.
// First match wins; candidates are never merged.
type DocFileLookup struct {
	rootDir     string
	siblingExt  string
	defaultName string
}

// NewDocFileLookup creates a lookup rooted at rootDir. siblingExt and
// defaultName fall back to ".md" and "README.md" when empty.
func NewDocFileLookup(rootDir, siblingExt, defaultName string) *DocFileLookup {
	if siblingExt == "" {
		siblingExt = ".md"
	}
	if defaultName == "" {
		defaultName = "README.md"
	}
	return &DocFileLookup{
		rootDir:     rootDir,
		siblingExt:  siblingExt,
		defaultName: defaultName,
	}
}

// Find returns the content of the doc file associated with sourcePath,
// if one exists.
func (l *DocFileLookup) Find(sourcePath string) (string, bool) {
	dir := path.Dir(sourcePath)
	base := strings.TrimSuffix(path.Base(sourcePath), path.Ext(sourcePath))

	candidates := []string{
		path.Join(dir, base+l.siblingExt),
		path.Join(dir, l.defaultName),
	}
	for _, candidate := range candidates {
		data, err := os.ReadFile(filepath.Join(l.rootDir, filepath.FromSlash(candidate)))
		if err != nil {
			continue
		}
		content := strings.TrimSpace(string(data))
		if content == "" {
			continue
		}
		return content, true
	}
	return "", false
}
