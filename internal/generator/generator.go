// Package generator builds perfect mazes (exactly one path between any two cells) over a grid.Grid,
// using randomized depth-first backtracking.
package generator

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/janpfeifer/mazeGo/internal/grid"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"math/rand/v2"
)

// RandomSource used to pick directions. *rand.Rand (from math/rand/v2) implements it.
type RandomSource interface {
	// IntN returns a uniformly distributed number in [0, n).
	IntN(n int) int
}

// NewRandomSource returns a deterministic RandomSource for the given seed.
func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed))
}

// Stats about one generation.
type Stats struct {
	// Visited is the number of cells reached from the start cell: all cells of the grid.
	Visited int

	// Edges is the number of passages opened, always Visited-1.
	Edges int

	// MaxDepth is the largest number of cells in the backtracking stack.
	MaxDepth int
}

// Generate a maze of width x height cells, starting the depth-first traversal at (startCol, startRow).
//
// It returns grid.ErrOutOfRange (wrapped) for invalid dimensions or a start outside the grid.
func Generate(width, height, startCol, startRow int, rng RandomSource) (*grid.Grid, error) {
	g, _, err := GenerateWithStats(width, height, startCol, startRow, rng)
	return g, err
}

// GenerateWithStats is like Generate, but also returns statistics of the generation.
func GenerateWithStats(width, height, startCol, startRow int, rng RandomSource) (*grid.Grid, Stats, error) {
	var stats Stats
	g, err := grid.New(width, height)
	if err != nil {
		return nil, stats, errors.WithMessage(err, "failed to generate maze")
	}
	start := g.VertexAt(startCol, startRow)
	if start == grid.NoVertex {
		return nil, stats, errors.Wrapf(grid.ErrOutOfRange,
			"start position (%d, %d) outside of %dx%d maze", startCol, startRow, width, height)
	}
	stats = carve(g, start, rng)
	if klog.V(1).Enabled() {
		klog.Infof("Generated %dx%d maze from (%d, %d): %d cells visited, %d passages, max depth %d",
			width, height, startCol, startRow, stats.Visited, stats.Edges, stats.MaxDepth)
	}
	return g, stats, nil
}

// unvisitedDirection picks uniformly one of the directions from v leading to an unvisited neighbor.
// Candidates are collected in the canonical order of grid.Directions.
// It returns false if there are no unvisited neighbors.
func unvisitedDirection(g *grid.Grid, v grid.Vertex, visited *bitset.BitSet, rng RandomSource) (grid.Direction, bool) {
	var candidates [grid.NumDirections]grid.Direction
	numCandidates := 0
	for _, dir := range grid.Directions {
		neighbor := g.Neighbor(v, dir)
		if neighbor != grid.NoVertex && !visited.Test(uint(neighbor)) {
			candidates[numCandidates] = dir
			numCandidates++
		}
	}
	if numCandidates == 0 {
		return 0, false
	}
	return candidates[rng.IntN(numCandidates)], true
}

// carve opens passages with a depth-first traversal starting at start.
//
// It keeps an explicit stack of cells instead of recursing, so the depth is only bounded by memory.
// The order of traversal, and of the random draws, is the same as the recursive version: visit the
// cell, and while it has unvisited neighbors, pick one, open the passage and visit it.
func carve(g *grid.Grid, start grid.Vertex, rng RandomSource) (stats Stats) {
	visited := bitset.New(uint(g.NumVertices()))
	visited.Set(uint(start))
	stack := []grid.Vertex{start}
	stats.Visited, stats.MaxDepth = 1, 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		dir, found := unvisitedDirection(g, v, visited, rng)
		if !found {
			// Backtrack.
			stack = stack[:len(stack)-1]
			continue
		}
		g.OpenEdge(v, dir)
		next := g.Neighbor(v, dir)
		if klog.V(2).Enabled() {
			klog.Infof("carve: %d -> %s -> %d (depth %d)", v, dir, next, len(stack))
		}
		visited.Set(uint(next))
		stack = append(stack, next)
		stats.Visited++
		stats.Edges++
		stats.MaxDepth = max(stats.MaxDepth, len(stack))
	}
	return
}
