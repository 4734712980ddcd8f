package grid

import "fmt"

// Bounds is an inclusive logical rectangle [MinX..MaxX]×[MinY..MaxY].
// It is independent of the physical buffer indexing: a buffer cell (i, j)
// holds the logical cell (i+MinX, j+MinY).
// Invariant: MaxX ≥ MinX and MaxY ≥ MinY.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

// NewBounds builds bounds starting at (minX, minY) spanning sizeX×sizeY cells.
// Returns ErrInvalidSize if either size is not positive.
func NewBounds(minX, minY, sizeX, sizeY int) (Bounds, error) {
	if sizeX <= 0 || sizeY <= 0 {
		return Bounds{}, fmt.Errorf("%w: bounds size (%d, %d)", ErrInvalidSize, sizeX, sizeY)
	}
	return Bounds{
		MinX: minX,
		MinY: minY,
		MaxX: minX + sizeX - 1,
		MaxY: minY + sizeY - 1,
	}, nil
}

// SizedBounds returns bounds anchored at (0,0) covering sizeX×sizeY cells.
// This is the window used when a traversal gets no explicit bounds.
func SizedBounds(sizeX, sizeY int) Bounds {
	return Bounds{MaxX: sizeX - 1, MaxY: sizeY - 1}
}

// SizeX returns the number of columns in the window.
func (b Bounds) SizeX() int { return b.MaxX - b.MinX + 1 }

// SizeY returns the number of rows in the window.
func (b Bounds) SizeY() int { return b.MaxY - b.MinY + 1 }

// Contains reports whether (x, y) lies inside the window.
// Complexity: O(1).
func (b Bounds) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Offset returns the translation that maps logical coordinates to 0-based
// physical indices: physical = logical + offset.
func (b Bounds) Offset() (dx, dy int) {
	return -b.MinX, -b.MinY
}

// String describes the window by its origin and size.
func (b Bounds) String() string {
	return fmt.Sprintf("(minX %d, minY %d, sizeX %d, sizeY %d)", b.MinX, b.MinY, b.SizeX(), b.SizeY())
}
