package grid

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestRenderSingleCell(t *testing.T) {
	g, err := New(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "┌─┐\n└─┘\n", g.Render())
}

func TestRenderCorridor(t *testing.T) {
	g, err := New(2, 1)
	require.NoError(t, err)
	assert.Equal(t, "┌─┬─┐\n└─┴─┘\n", g.Render())

	require.NoError(t, g.OpenEdgeAt(0, 0, Right))
	assert.Equal(t, "┌───┐\n└───┘\n", g.Render())
}

func TestRenderVerticalPassage(t *testing.T) {
	g, err := New(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "┌─┐\n├─┤\n└─┘\n", g.Render())

	// The horizontal wall in between the 2 cells disappears, and so do the stubs of the junctions.
	require.NoError(t, g.OpenEdgeAt(0, 1, Up))
	assert.Equal(t, "┌─┐\n│ │\n└─┘\n", g.Render())
}

func TestRenderFullyOpen(t *testing.T) {
	// 2x2 grid with all internal passages open: the center junction has no walls.
	g, err := New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.OpenEdgeAt(0, 0, Right))
	require.NoError(t, g.OpenEdgeAt(0, 1, Right))
	require.NoError(t, g.OpenEdgeAt(0, 0, Down))
	require.NoError(t, g.OpenEdgeAt(1, 0, Down))
	want := "" +
		"┌───┐\n" +
		"│   │\n" +
		"└───┘\n"
	assert.Equal(t, want, g.Render())
}

func TestRenderShape(t *testing.T) {
	g, err := New(7, 4)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(g.Render(), "\n"), "\n")
	require.Len(t, lines, g.Height()+1)
	for _, line := range lines {
		assert.Equal(t, 2*g.Width()+1, len([]rune(line)), "line %q", line)
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.OpenEdgeAt(1, 1, Left))
	require.NoError(t, g.OpenEdgeAt(1, 1, Down))
	before := g.edges.Clone()
	first := g.Render()
	assert.True(t, before.Equal(g.edges))
	assert.Equal(t, first, g.Render())
	assert.Equal(t, first, g.String())

	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, first, buf.String())
}

func TestJunctionGlyphs(t *testing.T) {
	// Every glyph is distinct and only the empty junction renders as a space.
	seen := make(map[rune]bool)
	for walls, glyph := range junctionGlyphs {
		assert.False(t, seen[glyph], "glyph %q repeated", glyph)
		seen[glyph] = true
		assert.Equal(t, walls == 0, glyph == ' ')
	}
}
