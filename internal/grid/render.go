package grid

import (
	"bufio"
	"github.com/pkg/errors"
	"io"
	"strings"
)

// Wall segments radiating from a junction: bit set means the segment is drawn.
const (
	wallUp    = 0b0001
	wallRight = 0b0010
	wallDown  = 0b0100
	wallLeft  = 0b1000
	allWalls  = wallUp | wallRight | wallDown | wallLeft
)

// junctionGlyphs is indexed by the set of wall segments drawn from a junction.
var junctionGlyphs = [16]rune{
	0b0000: ' ',
	0b0001: '╵',
	0b0010: '╶',
	0b0100: '╷',
	0b1000: '╴',
	0b0011: '└',
	0b0101: '│',
	0b1001: '┘',
	0b0110: '┌',
	0b1010: '─',
	0b1100: '┐',
	0b0111: '├',
	0b1011: '┴',
	0b1101: '┤',
	0b1110: '┬',
	0b1111: '┼',
}

const (
	horizontalWall = '─'
	noWall         = ' '
)

// junctionGlyph returns the glyph for the junction in between the 4 given cells: left-up, right-up,
// right-down and left-down. Any of them may be NoVertex.
func (g *Grid) junctionGlyph(luv, ruv, rdv, ldv Vertex) rune {
	walls := allWalls
	if g.HasEdge(luv, Right) && g.HasEdge(ruv, Left) {
		walls &^= wallUp
	}
	if g.HasEdge(ruv, Down) && g.HasEdge(rdv, Up) {
		walls &^= wallRight
	}
	if g.HasEdge(rdv, Left) && g.HasEdge(ldv, Right) {
		walls &^= wallDown
	}
	if g.HasEdge(ldv, Up) && g.HasEdge(luv, Down) {
		walls &^= wallLeft
	}
	return junctionGlyphs[walls]
}

// renderLine appends to buf the junction line below upRow (which can be -1, for the top border).
func (g *Grid) renderLine(buf []rune, upRow int) []rune {
	downRow := upRow + 1
	for col := -1; col < g.width; col++ {
		buf = append(buf, g.junctionGlyph(
			g.VertexAt(col, upRow), g.VertexAt(col+1, upRow),
			g.VertexAt(col+1, downRow), g.VertexAt(col, downRow)))
		if col == g.width-1 {
			break
		}
		if g.HasEdgeAt(col+1, upRow, Down) && g.HasEdgeAt(col+1, downRow, Up) {
			buf = append(buf, noWall)
		} else {
			buf = append(buf, horizontalWall)
		}
	}
	return append(buf, '\n')
}

// WriteTo writes the rendered maze to w, one line at a time. It implements io.WriterTo.
func (g *Grid) WriteTo(w io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(w)
	line := make([]rune, 0, 2*(g.width+1)+1)
	for upRow := -1; upRow < g.height; upRow++ {
		line = g.renderLine(line[:0], upRow)
		var written int
		written, err = bw.WriteString(string(line))
		n += int64(written)
		if err != nil {
			return n, errors.Wrap(err, "failed to write maze")
		}
	}
	if err = bw.Flush(); err != nil {
		return n, errors.Wrap(err, "failed to write maze")
	}
	return n, nil
}

// Render returns the maze drawn with box-drawing characters.
//
// Each line holds the wall junctions at the corners of the cells of a row, with the
// horizontal walls in between. There are height+1 lines, each with width+1 junctions.
// The grid is not modified.
func (g *Grid) Render() string {
	var sb strings.Builder
	_, _ = g.WriteTo(&sb)
	return sb.String()
}

// String implements fmt.Stringer, and returns the rendered maze.
func (g *Grid) String() string {
	return g.Render()
}
