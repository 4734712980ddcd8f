package grid

import (
	"fmt"
	"math"
)

// Terrain is a SizeX×SizeY walkability map addressed by physical (x, y),
// both 0-based. Its Walkable method is a ready-made flood qualifier.
type Terrain struct {
	sizeX, sizeY int
	blocked      []bool // len == sizeX*sizeY, indexed y*sizeX + x
}

// NewTerrain returns an all-walkable sizeX×sizeY terrain.
// Returns ErrInvalidSize if either dimension is not positive.
func NewTerrain(sizeX, sizeY int) (*Terrain, error) {
	if sizeX <= 0 || sizeY <= 0 {
		return nil, fmt.Errorf("%w: terrain size (%d, %d)", ErrInvalidSize, sizeX, sizeY)
	}
	return &Terrain{sizeX: sizeX, sizeY: sizeY, blocked: make([]bool, sizeX*sizeY)}, nil
}

// CirclesTerrain tiles a size×size terrain with repeatedArea×repeatedArea
// squares, each holding a blocked disc of the given radius around its
// center. With area 20 and radius 8 roughly half of the cells are blocked.
func CirclesTerrain(size, repeatedArea, radius int) (*Terrain, error) {
	if repeatedArea <= 0 {
		return nil, fmt.Errorf("%w: repeated area %d", ErrInvalidSize, repeatedArea)
	}
	t, err := NewTerrain(size, size)
	if err != nil {
		return nil, err
	}

	center := repeatedArea / 2
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			dx := float64(x%repeatedArea - center)
			dy := float64(y%repeatedArea - center)
			if math.Hypot(dx, dy) <= float64(radius) {
				t.Block(x, y)
			}
		}
	}
	return t, nil
}

// PillarsTerrain blocks one cell in every 3×3 square: (x%3 == 2 && y%3 == 2).
func PillarsTerrain(size int) (*Terrain, error) {
	t, err := NewTerrain(size, size)
	if err != nil {
		return nil, err
	}
	for x := 2; x < size; x += 3 {
		for y := 2; y < size; y += 3 {
			t.Block(x, y)
		}
	}
	return t, nil
}

// ParseTerrain builds a terrain from text rows of '#' (blocked) and '.'
// (walkable). The first row is the top one, y = len(rows)-1; every row must
// have the same length.
func ParseTerrain(rows []string) (*Terrain, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no terrain rows", ErrInvalidSize)
	}
	t, err := NewTerrain(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if len(row) != t.sizeX {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidTerrain, i, len(row), t.sizeX)
		}
		y := t.sizeY - 1 - i
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '#':
				t.Block(x, y)
			case '.':
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d, column %d", ErrInvalidTerrain, row[x], i, x)
			}
		}
	}
	return t, nil
}

// SizeX returns the number of columns.
func (t *Terrain) SizeX() int { return t.sizeX }

// SizeY returns the number of rows.
func (t *Terrain) SizeY() int { return t.sizeY }

// Block marks (x, y) as not walkable. Out-of-range cells are ignored.
func (t *Terrain) Block(x, y int) {
	if x >= 0 && x < t.sizeX && y >= 0 && y < t.sizeY {
		t.blocked[y*t.sizeX+x] = true
	}
}

// Walkable reports whether (x, y) is inside t and not blocked.
func (t *Terrain) Walkable(x, y int) bool {
	return x >= 0 && x < t.sizeX && y >= 0 && y < t.sizeY && !t.blocked[y*t.sizeX+x]
}

// CountWalkable returns the number of walkable cells.
func (t *Terrain) CountWalkable() int {
	n := 0
	for _, b := range t.blocked {
		if !b {
			n++
		}
	}
	return n
}
