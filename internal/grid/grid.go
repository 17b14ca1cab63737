// Package grid holds the topology of a rectangular maze: cells connected by passages, with the
// passages encoded as one bit per cell and direction.
//
// It also renders the maze with Unicode box-drawing characters, see Grid.Render.
package grid

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Vertex identifies a cell of the grid: row*width + col.
type Vertex int

// NoVertex represents a position outside the grid.
const NoVertex Vertex = -1

// ErrOutOfRange is returned (wrapped) for dimensions or coordinates outside the valid range.
var ErrOutOfRange = errors.New("out of range")

// Grid of width x height cells. The open passages are stored in a flat bitset indexed
// by 4*vertex + direction.
//
// The bitset is always symmetric: if a passage is open from a cell towards a neighbor,
// it is also open from the neighbor back. Only OpenEdge sets bits.
//
// A Grid is not safe for concurrent mutation. Read-only methods (HasEdge, Render, ...) can be
// called concurrently once it is no longer mutated.
type Grid struct {
	width, height int
	edges         *bitset.BitSet
}

// New creates a Grid with all passages closed. It returns ErrOutOfRange if width or height
// are not positive.
func New(width, height int) (*Grid, error) {
	if width <= 0 {
		return nil, errors.Wrapf(ErrOutOfRange, "grid width=%d", width)
	}
	if height <= 0 {
		return nil, errors.Wrapf(ErrOutOfRange, "grid height=%d", height)
	}
	return &Grid{
		width:  width,
		height: height,
		edges:  bitset.New(uint(width * height * NumDirections)),
	}, nil
}

// Width of the grid, in cells.
func (g *Grid) Width() int { return g.width }

// Height of the grid, in cells.
func (g *Grid) Height() int { return g.height }

// NumVertices is width*height.
func (g *Grid) NumVertices() int { return g.width * g.height }

func bit(v Vertex, dir Direction) uint {
	return uint(NumDirections*int(v) + int(dir))
}

func (g *Grid) isColInRange(col int) bool { return col >= 0 && col < g.width }
func (g *Grid) isRowInRange(row int) bool { return row >= 0 && row < g.height }

// VertexAt returns the vertex at the given column and row, or NoVertex if outside the grid.
func (g *Grid) VertexAt(col, row int) Vertex {
	if !g.isColInRange(col) || !g.isRowInRange(row) {
		return NoVertex
	}
	return Vertex(row*g.width + col)
}

// ColRow returns the column and row of a vertex. v must be in the grid.
func (g *Grid) ColRow(v Vertex) (col, row int) {
	return int(v) % g.width, int(v) / g.width
}

// Neighbor returns the vertex next to v in the given direction, or NoVertex if it falls outside the grid.
// v must be in the grid.
func (g *Grid) Neighbor(v Vertex, dir Direction) Vertex {
	col, row := g.ColRow(v)
	deltaCol, deltaRow := dir.Delta()
	return g.VertexAt(col+deltaCol, row+deltaRow)
}

// OpenEdge opens the passage from v in the given direction, and the one from the neighbor
// back to v, if there is a neighbor.
//
// It panics if v is not a vertex of the grid or dir is invalid: use OpenEdgeAt for checked access.
func (g *Grid) OpenEdge(v Vertex, dir Direction) {
	if v < 0 || int(v) >= g.NumVertices() {
		exceptions.Panicf("grid.OpenEdge(%d, %s): vertex outside of %dx%d grid", v, dir, g.width, g.height)
	}
	if !dir.IsValid() {
		exceptions.Panicf("grid.OpenEdge(%d, %s): invalid direction", v, dir)
	}
	g.edges.Set(bit(v, dir))
	if neighbor := g.Neighbor(v, dir); neighbor != NoVertex {
		g.edges.Set(bit(neighbor, dir.Opposite()))
	}
}

// OpenEdgeAt is the checked version of OpenEdge, taking the cell column and row.
// It returns ErrOutOfRange if col, row or dir are not valid.
func (g *Grid) OpenEdgeAt(col, row int, dir Direction) error {
	if !g.isColInRange(col) {
		return errors.Wrapf(ErrOutOfRange, "col=%d for grid of width %d", col, g.width)
	}
	if !g.isRowInRange(row) {
		return errors.Wrapf(ErrOutOfRange, "row=%d for grid of height %d", row, g.height)
	}
	if !dir.IsValid() {
		return errors.Wrapf(ErrOutOfRange, "direction %s", dir)
	}
	g.OpenEdge(g.VertexAt(col, row), dir)
	return nil
}

// HasEdge returns whether the passage from v in the given direction is open.
//
// NoVertex behaves as if all its passages were open: this simplifies drawing the outer border.
func (g *Grid) HasEdge(v Vertex, dir Direction) bool {
	return v == NoVertex || g.edges.Test(bit(v, dir))
}

// HasEdgeAt is like HasEdge, but takes the cell column and row.
func (g *Grid) HasEdgeAt(col, row int, dir Direction) bool {
	return g.HasEdge(g.VertexAt(col, row), dir)
}

// NumEdges returns the number of open passages between two cells of the grid.
// Passages opened towards the outside of the grid are not counted.
func (g *Grid) NumEdges() int {
	var count int
	for v := Vertex(0); int(v) < g.NumVertices(); v++ {
		// Count each passage once, from its upper or left cell.
		for _, dir := range [2]Direction{Right, Down} {
			if g.Neighbor(v, dir) != NoVertex && g.HasEdge(v, dir) {
				count++
			}
		}
	}
	return count
}
