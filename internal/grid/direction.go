package grid

import "fmt"

// Direction from a cell to one of its 4 neighbors.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left

	// NumDirections is the number of neighbors of a cell in a rectangular grid.
	NumDirections = 4
)

var (
	// Directions enumerates all directions in the canonical order.
	Directions = [NumDirections]Direction{Up, Right, Down, Left}

	directionNames = [NumDirections]string{"Up", "Right", "Down", "Left"}
	opposites      = [NumDirections]Direction{Down, Left, Up, Right}
	deltaCols      = [NumDirections]int{0, 1, 0, -1}
	deltaRows      = [NumDirections]int{-1, 0, 1, 0}
)

// IsValid returns whether dir is one of the 4 directions.
func (dir Direction) IsValid() bool {
	return dir < NumDirections
}

// Opposite returns the direction pointing back.
func (dir Direction) Opposite() Direction {
	return opposites[dir]
}

// Delta returns the column and row displacement of the direction.
func (dir Direction) Delta() (deltaCol, deltaRow int) {
	return deltaCols[dir], deltaRows[dir]
}

// String implements fmt.Stringer.
func (dir Direction) String() string {
	if !dir.IsValid() {
		return fmt.Sprintf("Direction(%d)", uint8(dir))
	}
	return directionNames[dir]
}
