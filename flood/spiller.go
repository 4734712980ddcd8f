package flood

import (
	"fmt"

	"github.com/katalvlaran/floodspill/grid"
	"github.com/katalvlaran/floodspill/queue"
)

// FloodSpiller is implemented by both engines.
type FloodSpiller interface {
	SpillFlood(p Parameters, marks MarkBuffer) (bool, error)
}

// expander spreads from the cell (x, y) taken from the frontier, giving
// markToGive to every cell it reaches. It reports whether a neighbor stop
// predicate fired.
type expander interface {
	spread(w *walker, x, y, markToGive int) bool
}

// Spiller runs floods with one expansion strategy. It holds no per-call
// state, so one Spiller may serve concurrent calls that use distinct
// frontiers and buffers.
type Spiller struct {
	expand expander
}

// NewSpiller returns the base engine: each spreading cell processes its 4 or
// 8 adjacent neighbors one by one.
func NewSpiller() *Spiller {
	return &Spiller{expand: neighborExpander{}}
}

// NewScanlineSpiller returns the scanline engine: each spreading cell
// processes the whole vertical run of valid cells through it and queues only
// the first cell of every run found on the side columns. It reaches exactly
// the cells NewSpiller reaches, with fewer queue operations.
func NewScanlineSpiller() *Spiller {
	return &Spiller{expand: scanlineExpander{}}
}

// SpillFlood runs the flood described by p with the base engine.
func SpillFlood(p Parameters, marks MarkBuffer) (bool, error) {
	return NewSpiller().SpillFlood(p, marks)
}

// SpillFlood resets marks to grid.Unvisited and floods it from
// (p.StartX, p.StartY).
//
// Definitions:
//
//   - Visiting a spreading position: operating on a cell just taken from
//     the frontier (SpreadingVisitor, then SpreadingStop).
//   - Processing a neighbor: operating on a cell reached while spreading
//     (mark, NeighborProcessor, then NeighborStop). A processed neighbor
//     may be pushed to the frontier.
//
// Cells are marked when they are processed, before they are spread from, so
// a stopped flood leaves queued cells marked.
//
// Returns true if a stop predicate fired, false if the frontier ran out.
// Precondition failures are returned before marks is touched:
// ErrOptionViolation, ErrNilFrontier, ErrNilBuffer, ErrFrontierNotEmpty,
// ErrBufferTooSmall, ErrStartOutOfBounds.
// A panicking hook propagates and leaves marks partially written.
//
// Complexity: O(SizeX×SizeY) to reset the buffer plus O(R×d) frontier
// operations for R reached cells (d = 4 or 8; fewer with the scanline engine).
func (s *Spiller) SpillFlood(p Parameters, marks MarkBuffer) (bool, error) {
	w, err := newWalker(p, marks)
	if err != nil {
		return false, err
	}
	// drop the buffer reference once the call returns
	defer w.release()

	w.marks.Fill(grid.Unvisited)

	return w.run(s.expand), nil
}

// walker encapsulates the state of one SpillFlood call.
type walker struct {
	frontier queue.Frontier
	marks    MarkBuffer
	conn     Connectivity

	startX, startY  int
	startAsNeighbor bool

	minX, minY       int
	maxX, maxY       int
	offsetX, offsetY int

	qualifier         func(x, y int) bool
	neighborProcessor func(x, y, mark int)
	neighborStop      func(x, y int) bool
	spreadingVisitor  func(x, y int)
	spreadingStop     func(x, y int) bool
}

// newWalker validates p and marks in documented order and snapshots p.
func newWalker(p Parameters, marks MarkBuffer) (*walker, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.Frontier == nil {
		return nil, ErrNilFrontier
	}
	if marks == nil {
		return nil, ErrNilBuffer
	}
	if !p.Frontier.Empty() {
		return nil, ErrFrontierNotEmpty
	}

	bounds := grid.SizedBounds(marks.SizeX(), marks.SizeY())
	if p.Bounds != nil {
		bounds = *p.Bounds
	}
	if marks.SizeX() < bounds.SizeX() || marks.SizeY() < bounds.SizeY() {
		return nil, fmt.Errorf("%w: mark buffer size (%d, %d), bounds size (%d, %d)",
			ErrBufferTooSmall, marks.SizeX(), marks.SizeY(), bounds.SizeX(), bounds.SizeY())
	}
	if !bounds.Contains(p.StartX, p.StartY) {
		return nil, fmt.Errorf("%w: start position (%d, %d), bounds %s",
			ErrStartOutOfBounds, p.StartX, p.StartY, bounds)
	}

	offsetX, offsetY := bounds.Offset()
	return &walker{
		frontier:          p.Frontier,
		marks:             marks,
		conn:              p.Conn,
		startX:            p.StartX,
		startY:            p.StartY,
		startAsNeighbor:   p.ProcessStartAsFirstNeighbor,
		minX:              bounds.MinX,
		minY:              bounds.MinY,
		maxX:              bounds.MaxX,
		maxY:              bounds.MaxY,
		offsetX:           offsetX,
		offsetY:           offsetY,
		qualifier:         p.Qualifier,
		neighborProcessor: p.NeighborProcessor,
		neighborStop:      p.NeighborStop,
		spreadingVisitor:  p.SpreadingVisitor,
		spreadingStop:     p.SpreadingStop,
	}, nil
}

// release forgets the buffer and frontier.
func (w *walker) release() {
	w.marks = nil
	w.frontier = nil
}

// run is the main loop: take cells from the frontier, visit them and spread
// from them. Returns true if a stop predicate fired.
func (w *walker) run(expand expander) bool {
	if w.operateOnStart() {
		return true
	}

	for !w.frontier.Empty() {
		x, y := w.frontier.Pop()

		if w.spreadingVisitor != nil {
			w.spreadingVisitor(x, y)
		}
		if w.spreadingStop != nil && w.spreadingStop(x, y) {
			return true
		}

		if expand.spread(w, x, y, w.mark(x, y)+1) {
			return true
		}
	}
	return false
}

// operateOnStart marks the start cell 0 and queues it, either directly or
// by processing it as a neighbor. An invalid start leaves the flood empty.
func (w *walker) operateOnStart() bool {
	if !w.isValid(w.startX, w.startY) {
		return false
	}
	if w.startAsNeighbor {
		return w.processNeighbor(w.startX, w.startY, 0, true)
	}
	w.setMark(w.startX, w.startY, 0)
	w.frontier.Push(w.startX, w.startY)
	return false
}

// isValid reports whether (x, y) is inside bounds, still unvisited and
// accepted by the qualifier.
func (w *walker) isValid(x, y int) bool {
	return x >= w.minX && x <= w.maxX && y >= w.minY && y <= w.maxY &&
		w.mark(x, y) == grid.Unvisited &&
		(w.qualifier == nil || w.qualifier(x, y))
}

// processNeighborIfValid processes (x, y) and queues it when it is valid.
// Returns true if its stop predicate fired.
func (w *walker) processNeighborIfValid(x, y, markToGive int) bool {
	if !w.isValid(x, y) {
		return false
	}
	return w.processNeighbor(x, y, markToGive, true)
}

// processNeighbor marks (x, y), runs the neighbor hooks and, unless the stop
// predicate fires, queues the cell when enqueue is set.
func (w *walker) processNeighbor(x, y, markToGive int, enqueue bool) bool {
	w.setMark(x, y, markToGive)
	if w.neighborProcessor != nil {
		w.neighborProcessor(x, y, markToGive)
	}
	if w.neighborStop != nil && w.neighborStop(x, y) {
		return true
	}
	if enqueue {
		w.frontier.Push(x, y)
	}
	return false
}

// mark reads the logical cell (x, y) through the bounds offset.
func (w *walker) mark(x, y int) int {
	return w.marks.Get(x+w.offsetX, y+w.offsetY)
}

// setMark writes the logical cell (x, y) through the bounds offset.
func (w *walker) setMark(x, y, mark int) {
	w.marks.Put(x+w.offsetX, y+w.offsetY, mark)
}
