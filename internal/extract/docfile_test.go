package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDocFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestDocFileLookup(t *testing.T) {
	t.Parallel()

	t.Run("sibling file wins over directory default", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeDocFile(t, root, "shapes/circle.md", "Circle docs.\n")
		writeDocFile(t, root, "shapes/README.md", "Directory docs.\n")

		lookup := NewDocFileLookup(root, ".md", "README.md")
		content, ok := lookup.Find("shapes/circle.ts")
		require.True(t, ok)
		assert.Equal(t, "Circle docs.", content)
	})

	t.Run("falls back to directory default", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeDocFile(t, root, "shapes/README.md", "Directory docs.\n")

		lookup := NewDocFileLookup(root, ".md", "README.md")
		content, ok := lookup.Find("shapes/circle.ts")
		require.True(t, ok)
		assert.Equal(t, "Directory docs.", content)
	})

	t.Run("no doc file", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeDocFile(t, root, "shapes/circle.ts", "export const r = 1;")

		lookup := NewDocFileLookup(root, ".md", "README.md")
		_, ok := lookup.Find("shapes/circle.ts")
		assert.False(t, ok)
	})

	t.Run("empty doc file is skipped", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeDocFile(t, root, "shapes/circle.md", "  \n\t\n")
		writeDocFile(t, root, "shapes/README.md", "Directory docs.")

		lookup := NewDocFileLookup(root, ".md", "README.md")
		content, ok := lookup.Find("shapes/circle.ts")
		require.True(t, ok)
		assert.Equal(t, "Directory docs.", content)
	})

	t.Run("custom convention", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeDocFile(t, root, "api/index.docs.md", "Custom sibling.")

		lookup := NewDocFileLookup(root, ".docs.md", "MODULE.md")
		content, ok := lookup.Find("api/index.ts")
		require.True(t, ok)
		assert.Equal(t, "Custom sibling.", content)
	})

	t.Run("empty settings use defaults", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeDocFile(t, root, "entry.md", "Sibling via defaults.")

		lookup := NewDocFileLookup(root, "", "")
		content, ok := lookup.Find("entry.ts")
		require.True(t, ok)
		assert.Equal(t, "Sibling via defaults.", content)
	})
}
