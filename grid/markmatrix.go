package grid

import (
	"fmt"
	"math"
)

// Unvisited is the mark of a cell the flood has not reached.
const Unvisited = math.MaxInt

// MarkMatrix is a SizeX×SizeY buffer of marks addressed by physical (x, y),
// both 0-based. Storage is a flat slice indexed y*SizeX + x.
// The flood engine borrows a MarkMatrix for one call and never keeps it.
type MarkMatrix struct {
	sizeX, sizeY int
	data         []int // len == sizeX*sizeY
}

// NewMarkMatrix allocates a sizeX×sizeY matrix with every cell set to Unvisited.
// Returns ErrInvalidSize if either dimension is not positive.
// Complexity: O(sizeX×sizeY) time and memory.
func NewMarkMatrix(sizeX, sizeY int) (*MarkMatrix, error) {
	if sizeX <= 0 || sizeY <= 0 {
		return nil, fmt.Errorf("%w: mark matrix size (%d, %d)", ErrInvalidSize, sizeX, sizeY)
	}
	m := &MarkMatrix{sizeX: sizeX, sizeY: sizeY, data: make([]int, sizeX*sizeY)}
	m.Fill(Unvisited)

	return m, nil
}

// SizeX returns the number of columns.
func (m *MarkMatrix) SizeX() int { return m.sizeX }

// SizeY returns the number of rows.
func (m *MarkMatrix) SizeY() int { return m.sizeY }

// index maps (x, y) to the flat offset. No range check.
func (m *MarkMatrix) index(x, y int) int {
	return y*m.sizeX + x
}

// inRange reports whether (x, y) addresses a cell of m.
func (m *MarkMatrix) inRange(x, y int) bool {
	return x >= 0 && x < m.sizeX && y >= 0 && y < m.sizeY
}

// At returns the mark at (x, y) or ErrOutOfRange.
func (m *MarkMatrix) At(x, y int) (int, error) {
	if !m.inRange(x, y) {
		return 0, fmt.Errorf("MarkMatrix.At(%d,%d): %w", x, y, ErrOutOfRange)
	}
	return m.data[m.index(x, y)], nil
}

// Set stores mark at (x, y) or returns ErrOutOfRange.
func (m *MarkMatrix) Set(x, y, mark int) error {
	if !m.inRange(x, y) {
		return fmt.Errorf("MarkMatrix.Set(%d,%d): %w", x, y, ErrOutOfRange)
	}
	m.data[m.index(x, y)] = mark
	return nil
}

// Get returns the mark at (x, y) without a range check.
// The caller guarantees 0 ≤ x < SizeX and 0 ≤ y < SizeY.
func (m *MarkMatrix) Get(x, y int) int {
	return m.data[m.index(x, y)]
}

// Put stores mark at (x, y) without a range check.
func (m *MarkMatrix) Put(x, y, mark int) {
	m.data[m.index(x, y)] = mark
}

// Fill overwrites every cell with mark.
func (m *MarkMatrix) Fill(mark int) {
	for i := range m.data {
		m.data[i] = mark
	}
}

// Reached reports whether (x, y) is inside m and holds a mark other than Unvisited.
func (m *MarkMatrix) Reached(x, y int) bool {
	return m.inRange(x, y) && m.data[m.index(x, y)] != Unvisited
}

// CountReached returns how many cells hold a mark other than Unvisited.
func (m *MarkMatrix) CountReached() int {
	n := 0
	for _, v := range m.data {
		if v != Unvisited {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of m.
func (m *MarkMatrix) Clone() *MarkMatrix {
	data := make([]int, len(m.data))
	copy(data, m.data)

	return &MarkMatrix{sizeX: m.sizeX, sizeY: m.sizeY, data: data}
}
