package flood

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/floodspill/grid"
	"github.com/katalvlaran/floodspill/queue"
)

// Sentinel errors for SpillFlood preconditions.
var (
	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("flood: invalid option supplied")

	// ErrNilFrontier is returned when Parameters carry no frontier.
	ErrNilFrontier = errors.New("flood: frontier is nil")

	// ErrNilBuffer is returned when the mark buffer is nil.
	ErrNilBuffer = errors.New("flood: mark buffer is nil")

	// ErrFrontierNotEmpty is returned when the frontier already holds cells.
	ErrFrontierNotEmpty = errors.New("flood: frontier must be empty at the beginning of flood spilling")

	// ErrBufferTooSmall is returned when the mark buffer cannot hold the bounds window.
	ErrBufferTooSmall = errors.New("flood: mark buffer is smaller than bounds")

	// ErrStartOutOfBounds is returned when the start cell lies outside the bounds.
	ErrStartOutOfBounds = errors.New("flood: start position is not contained in bounds")
)

// Connectivity selects which cells count as neighbors: orthogonal only
// (Conn4) or orthogonal and diagonal (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "4"
	case Conn8:
		return "8"
	}
	return fmt.Sprintf("Connectivity(%d)", int(c))
}

// MarkBuffer is the caller-owned physical buffer a flood writes marks into.
// Indices are 0-based: 0 ≤ x < SizeX(), 0 ≤ y < SizeY().
// *grid.MarkMatrix implements it.
type MarkBuffer interface {
	SizeX() int
	SizeY() int
	Get(x, y int) int
	Put(x, y, mark int)
	Fill(mark int)
}

// Parameters configures one SpillFlood call. Every hook is optional; a nil
// hook is skipped. Parameters must not be reused: the frontier is drained.
type Parameters struct {
	// StartX, StartY is the logical cell the flood starts from.
	StartX, StartY int

	// Frontier orders the cells waiting to be spread from. It must be empty
	// when SpillFlood is called and belongs to that call only.
	Frontier queue.Frontier

	// Conn chooses 4- or 8-directional spreading.
	Conn Connectivity

	// ProcessStartAsFirstNeighbor makes the start cell go through
	// NeighborProcessor and NeighborStop with mark 0, as if some implicit
	// predecessor had reached it. Otherwise it is just marked 0 and queued.
	ProcessStartAsFirstNeighbor bool

	// Bounds restricts the flood to a logical window. Nil means the whole
	// buffer, anchored at (0,0).
	Bounds *grid.Bounds

	// Qualifier must hold for a cell to ever be marked.
	Qualifier func(x, y int) bool

	// NeighborProcessor is called once per cell, right after it is marked.
	NeighborProcessor func(x, y, mark int)

	// NeighborStop is checked after NeighborProcessor; true stops the flood.
	NeighborStop func(x, y int) bool

	// SpreadingVisitor is called for every cell taken from the frontier.
	SpreadingVisitor func(x, y int)

	// SpreadingStop is checked after SpreadingVisitor; true stops the flood
	// before spreading from that cell.
	SpreadingStop func(x, y int) bool

	// internal error recorded during option parsing
	err error
}

// Option configures Parameters via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by SpillFlood.
type Option func(*Parameters)

// NewParameters returns Parameters starting at (startX, startY) with defaults:
//   - a fresh FIFO frontier
//   - Conn8 connectivity
//   - no bounds (the whole buffer)
//   - no hooks
func NewParameters(startX, startY int, opts ...Option) Parameters {
	p := Parameters{
		StartX:   startX,
		StartY:   startY,
		Frontier: queue.NewFIFO(),
		Conn:     Conn8,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithFrontier replaces the default FIFO frontier.
func WithFrontier(f queue.Frontier) Option {
	return func(p *Parameters) {
		if f == nil {
			p.err = fmt.Errorf("%w: frontier cannot be nil", ErrOptionViolation)
			return
		}
		p.Frontier = f
	}
}

// WithConnectivity selects Conn4 or Conn8.
func WithConnectivity(c Connectivity) Option {
	return func(p *Parameters) {
		if c != Conn4 && c != Conn8 {
			p.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, int(c))
			return
		}
		p.Conn = c
	}
}

// WithBounds restricts the flood to b.
func WithBounds(b grid.Bounds) Option {
	return func(p *Parameters) {
		p.Bounds = &b
	}
}

// WithStartAsFirstNeighbor sets ProcessStartAsFirstNeighbor.
func WithStartAsFirstNeighbor() Option {
	return func(p *Parameters) {
		p.ProcessStartAsFirstNeighbor = true
	}
}

// WithQualifier sets the eligibility predicate.
func WithQualifier(fn func(x, y int) bool) Option {
	return func(p *Parameters) {
		p.Qualifier = fn
	}
}

// WithNeighborProcessor sets the hook run on every newly marked cell.
func WithNeighborProcessor(fn func(x, y, mark int)) Option {
	return func(p *Parameters) {
		p.NeighborProcessor = fn
	}
}

// WithNeighborStop sets the stop predicate checked on every newly marked cell.
func WithNeighborStop(fn func(x, y int) bool) Option {
	return func(p *Parameters) {
		p.NeighborStop = fn
	}
}

// WithSpreadingVisitor sets the hook run on every cell taken from the frontier.
func WithSpreadingVisitor(fn func(x, y int)) Option {
	return func(p *Parameters) {
		p.SpreadingVisitor = fn
	}
}

// WithSpreadingStop sets the stop predicate checked on every cell taken
// from the frontier.
func WithSpreadingStop(fn func(x, y int) bool) Option {
	return func(p *Parameters) {
		p.SpreadingStop = fn
	}
}
