package regions

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/floodspill/flood"
	"github.com/katalvlaran/floodspill/grid"
)

var (
	// ErrNilTerrain indicates a nil terrain was passed to Find.
	ErrNilTerrain = errors.New("regions: terrain is nil")
	// ErrRegionIndex indicates a requested region id is out of range.
	ErrRegionIndex = errors.New("regions: region index out of range")
)

// NoRegion is the id of blocked cells and of cells outside the map.
const NoRegion = -1

// Walkability is the terrain view Find needs. *grid.Terrain implements it.
type Walkability interface {
	SizeX() int
	SizeY() int
	Walkable(x, y int) bool
}

// Options configures Find.
type Options struct {
	// Conn chooses 4- or 8-directional adjacency. Default Conn4.
	Conn flood.Connectivity
	// Spiller runs the floods. Default flood.NewSpiller().
	Spiller flood.FloodSpiller
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns Conn4 with the base flood engine.
func DefaultOptions() Options {
	return Options{Conn: flood.Conn4, Spiller: flood.NewSpiller()}
}

// WithConnectivity selects Conn4 or Conn8.
func WithConnectivity(c flood.Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// WithSpiller selects the flood engine; nil keeps the default.
func WithSpiller(s flood.FloodSpiller) Option {
	return func(o *Options) {
		if s != nil {
			o.Spiller = s
		}
	}
}

// Region is one connected set of walkable cells, in flood order.
type Region struct {
	ID    int
	Cells []grid.Position
}

// Map labels every cell of a terrain with its region id.
type Map struct {
	sizeX, sizeY int
	ids          []int // NoRegion or index into Regions, indexed y*sizeX + x
	Regions      []Region
}

// Find labels the connected walkable regions of t. Regions are numbered in
// the order their first cell is met scanning y, then x, from (0, 0).
func Find(t Walkability, opts ...Option) (*Map, error) {
	if t == nil {
		return nil, ErrNilTerrain
	}
	if tr, ok := t.(*grid.Terrain); ok && tr == nil {
		return nil, ErrNilTerrain
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	marks, err := grid.NewMarkMatrix(t.SizeX(), t.SizeY())
	if err != nil {
		return nil, err
	}
	m := &Map{sizeX: t.SizeX(), sizeY: t.SizeY(), ids: make([]int, t.SizeX()*t.SizeY())}
	for i := range m.ids {
		m.ids[i] = NoRegion
	}

	for y := 0; y < m.sizeY; y++ {
		for x := 0; x < m.sizeX; x++ {
			if !t.Walkable(x, y) || m.ids[m.index(x, y)] != NoRegion {
				continue
			}

			region := Region{ID: len(m.Regions)}
			p := flood.NewParameters(x, y,
				flood.WithConnectivity(o.Conn),
				flood.WithStartAsFirstNeighbor(),
				flood.WithQualifier(t.Walkable),
				flood.WithNeighborProcessor(func(cx, cy, _ int) {
					m.ids[m.index(cx, cy)] = region.ID
					region.Cells = append(region.Cells, grid.Pos(cx, cy))
				}),
			)
			if _, err := o.Spiller.SpillFlood(p, marks); err != nil {
				return nil, fmt.Errorf("regions: flood from (%d, %d): %w", x, y, err)
			}
			m.Regions = append(m.Regions, region)
		}
	}
	return m, nil
}

func (m *Map) index(x, y int) int { return y*m.sizeX + x }

// At returns the region id of (x, y), or NoRegion for blocked or outside cells.
func (m *Map) At(x, y int) int {
	if x < 0 || x >= m.sizeX || y < 0 || y >= m.sizeY {
		return NoRegion
	}
	return m.ids[m.index(x, y)]
}

// Connected reports whether a and b lie in the same region.
func (m *Map) Connected(a, b grid.Position) bool {
	id := m.At(a.X, a.Y)
	return id != NoRegion && id == m.At(b.X, b.Y)
}

// Region returns the region with the given id or ErrRegionIndex.
func (m *Map) Region(id int) (Region, error) {
	if id < 0 || id >= len(m.Regions) {
		return Region{}, fmt.Errorf("%w: %d (have %d)", ErrRegionIndex, id, len(m.Regions))
	}
	return m.Regions[id], nil
}

// Largest returns the region with the most cells, the lowest id on ties.
// ok is false when the terrain has no walkable cell.
func (m *Map) Largest() (r Region, ok bool) {
	for _, reg := range m.Regions {
		if !ok || len(reg.Cells) > len(r.Cells) {
			r, ok = reg, true
		}
	}
	return r, ok
}
