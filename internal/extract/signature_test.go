package extract

// Test Plan:
// - Each supported declaration kind maps to the expected signature kind
//   and rendered text.
// - Arrow-function consts read as functions; plain consts as values.
// - Classes with two or more fluent methods are tagged as builders.
// - Unsupported nodes return an error instead of a junk signature.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/docsurf/docsurf/internal/lang"
)

// parseDecl parses source and returns the first declaration node bound to
// the named export.
func parseDecl(t *testing.T, source, name string) (*lang.SourceFile, *sitter.Node) {
	t.Helper()
	f, err := lang.ParseSource("test.ts", []byte(source))
	require.NoError(t, err)
	t.Cleanup(f.Close)

	for _, exp := range f.ExportedNames() {
		if exp.Name == name {
			require.NotEmpty(t, exp.Decls)
			return f, exp.Decls[0]
		}
	}
	t.Fatalf("export %q not found", name)
	return nil, nil
}

func TestExtractSignature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		export   string
		wantKind SignatureKind
		wantText string
	}{
		{
			name:     "function with return type",
			source:   `export function area(radius: number): number { return 0; }`,
			export:   "area",
			wantKind: SignatureFunction,
			wantText: "area(radius: number): number",
		},
		{
			name:     "generic function",
			source:   `export function identity<T>(value: T): T { return value; }`,
			export:   "identity",
			wantKind: SignatureFunction,
			wantText: "identity<T>(value: T): T",
		},
		{
			name:     "arrow function const",
			source:   `export const double = (n: number): number => n * 2;`,
			export:   "double",
			wantKind: SignatureFunction,
			wantText: "double(n: number): number",
		},
		{
			name:     "typed const",
			source:   `export const SCALE: number = 1.5;`,
			export:   "SCALE",
			wantKind: SignatureValue,
			wantText: "SCALE: number",
		},
		{
			name:     "untyped const",
			source:   `export const RED = "#f00";`,
			export:   "RED",
			wantKind: SignatureValue,
			wantText: "RED",
		},
		{
			name:     "interface header only",
			source:   `export interface Circle { radius: number; }`,
			export:   "Circle",
			wantKind: SignatureInterface,
			wantText: "interface Circle",
		},
		{
			name:     "type alias collapsed",
			source:   "export type Pair =\n  [number, number];",
			export:   "Pair",
			wantKind: SignatureType,
			wantText: "type Pair = [number, number];",
		},
		{
			name:     "enum header only",
			source:   `export enum Color { Red, Green }`,
			export:   "Color",
			wantKind: SignatureEnum,
			wantText: "enum Color",
		},
		{
			name:     "class with heritage",
			source:   `export class Sprite extends Shape implements Drawable { draw(): void {} }`,
			export:   "Sprite",
			wantKind: SignatureClass,
			wantText: "class Sprite extends Shape implements Drawable",
		},
		{
			name: "builder class",
			source: `export class CircleBuilder {
  radius(r: number): this { return this; }
  color(c: string): CircleBuilder { return this; }
  build(): Circle { return new Circle(); }
}`,
			export:   "CircleBuilder",
			wantKind: SignatureBuilder,
			wantText: "class CircleBuilder",
		},
		{
			name: "single fluent method is not a builder",
			source: `export class Config {
  set(key: string): this { return this; }
  get(key: string): string { return ""; }
}`,
			export:   "Config",
			wantKind: SignatureClass,
			wantText: "class Config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, node := parseDecl(t, tt.source, tt.export)
			sig, err := ExtractSignature(tt.export, f, node)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, sig.Kind)
			assert.Equal(t, tt.wantText, sig.Text)
		})
	}
}

func TestExtractSignatureErrors(t *testing.T) {
	t.Parallel()

	_, err := ExtractSignature("x", nil, nil)
	assert.Error(t, err)

	f, err := lang.ParseSource("test.ts", []byte(`export const a = 1;`))
	require.NoError(t, err)
	defer f.Close()

	// The program root is not a declaration kind.
	_, err = ExtractSignature("a", f, f.Root())
	assert.Error(t, err)
}
