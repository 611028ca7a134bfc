package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComment_DescriptionOnly(t *testing.T) {
	t.Parallel()

	c := ParseComment(`/**
 * Computes the area.
 */`)
	require.NotNil(t, c)
	assert.Equal(t, "Computes the area.", c.Description)
	assert.Empty(t, c.Guide)
	assert.False(t, c.Internal)
	assert.False(t, c.Deprecated)
	assert.Nil(t, c.Tags)
}

func TestParseComment_AllFields(t *testing.T) {
	t.Parallel()

	c := ParseComment(`/**
 * Short description
 * over two lines.
 *
 * @guide A longer guide
 * spanning lines.
 * @example area(2)
 * @example area(4)
 * @deprecated
 * @category math
 * @internal
 * @see https://example.com
 */`)
	require.NotNil(t, c)
	assert.Equal(t, "Short description\nover two lines.", c.Description)
	assert.Equal(t, "A longer guide\nspanning lines.", c.Guide)
	assert.Equal(t, []string{"area(2)", "area(4)"}, c.Examples)
	assert.True(t, c.Deprecated)
	assert.True(t, c.Internal)
	assert.Equal(t, "math", c.Category)
	assert.Equal(t, map[string]string{"see": "https://example.com"}, c.Tags)
}

func TestParseComment_GroupAliasesCategory(t *testing.T) {
	t.Parallel()

	c := ParseComment("/** @group utilities */")
	require.NotNil(t, c)
	assert.Equal(t, "utilities", c.Category)
}

func TestParseComment_Empty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ParseComment(""))
	assert.Nil(t, ParseComment("   "))
}

func TestParseComment_TagOnly(t *testing.T) {
	t.Parallel()

	c := ParseComment("/** @internal */")
	require.NotNil(t, c)
	assert.True(t, c.Internal)
	assert.Empty(t, c.Description)
}
