package collect

import "github.com/katalvlaran/floodspill/grid"

// NeighborList records every processed neighbor in processing order.
type NeighborList struct {
	Positions []grid.Position
}

// Process appends (x, y). It has the flood neighbor processor signature.
func (l *NeighborList) Process(x, y, _ int) {
	l.Positions = append(l.Positions, grid.Pos(x, y))
}

// VisitList records every visited spreading position in visiting order.
type VisitList struct {
	Positions []grid.Position
}

// Visit appends (x, y). It has the flood spreading visitor signature.
func (l *VisitList) Visit(x, y int) {
	l.Positions = append(l.Positions, grid.Pos(x, y))
}

// HighestMark tracks the largest mark processed so far and the cell that got
// it first. Create it with NewHighestMark.
type HighestMark struct {
	Mark     int
	Position grid.Position
}

// NewHighestMark returns a tracker at mark 0 with grid.MinPosition, meaning
// no positive mark has been seen yet.
func NewHighestMark() *HighestMark {
	return &HighestMark{Position: grid.MinPosition}
}

// Process keeps (x, y) if mark is strictly greater than the current highest.
func (h *HighestMark) Process(x, y, mark int) {
	if mark > h.Mark {
		h.Mark = mark
		h.Position = grid.Pos(x, y)
	}
}

// Found reports whether any positive mark was seen.
func (h *HighestMark) Found() bool {
	return h.Position != grid.MinPosition
}

// Processors fans one neighbor processor call out to every non-nil fn, in
// order. It returns nil when no fn is given, which a flood skips.
func Processors(fns ...func(x, y, mark int)) func(x, y, mark int) {
	var live []func(x, y, mark int)
	for _, fn := range fns {
		if fn != nil {
			live = append(live, fn)
		}
	}
	if len(live) == 0 {
		return nil
	}
	return func(x, y, mark int) {
		for _, fn := range live {
			fn(x, y, mark)
		}
	}
}
