package grid

import (
	"fmt"
	"math"
)

// Position is an integer cell coordinate. Two positions are equal when both
// components are equal, so Position is usable as a map key.
type Position struct {
	X, Y int
}

// MinPosition is the lowest representable position. Trackers use it as the
// "nothing recorded yet" value.
var MinPosition = Position{X: math.MinInt, Y: math.MinInt}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Distance returns the Euclidean distance between p and q.
func (p Position) Distance(q Position) float64 {
	return Distance(p, q)
}

// String formats the position as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Distance returns the Euclidean distance between a and b.
// Complexity: O(1).
func Distance(a, b Position) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
