package core

import "fmt"

// Coord represents a position on the board.
// R increases downward, C increases to the right.
type Coord struct {
	R int
	C int
}

// C is a convenience constructor for Coord.
func C(r, c int) Coord {
	return Coord{R: r, C: c}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.R, c.C)
}

// InBounds returns true if the coordinate lies on the board.
func (c Coord) InBounds() bool {
	return c.R >= 0 && c.R < BoardN && c.C >= 0 && c.C < BoardN
}

// Add returns a new Coord offset by (dr, dc). The result may be off the board.
func (c Coord) Add(dr, dc int) Coord {
	return Coord{R: c.R + dr, C: c.C + dc}
}

// Step returns the coordinate one step in direction d and whether it is on the board.
// There is no wrap-around at the edges.
func (c Coord) Step(d Dir) (Coord, bool) {
	dr, dc := d.Delta()
	next := c.Add(dr, dc)
	return next, next.InBounds()
}

// AtGoal reports whether the coordinate is on the goal row.
func (c Coord) AtGoal() bool {
	return c.R == GoalRow
}
