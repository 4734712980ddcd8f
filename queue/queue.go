package queue

import "github.com/katalvlaran/floodspill/grid"

// Frontier orders the cells that were discovered but not yet expanded.
type Frontier interface {
	// Empty reports whether no cells are waiting.
	Empty() bool
	// Push adds the cell (x, y).
	Push(x, y int)
	// Pop removes and returns the next cell. It panics when Empty is true.
	Pop() (x, y int)
}

// minCompact is the head length from which FIFO reclaims popped slots.
const minCompact = 64

// FIFO is a first-in first-out frontier.
type FIFO struct {
	items []grid.Position
	head  int // index of the oldest live item
}

// NewFIFO returns an empty FIFO frontier.
func NewFIFO() *FIFO {
	return &FIFO{items: make([]grid.Position, 0, 32)}
}

// Empty reports whether the queue holds no cells.
func (q *FIFO) Empty() bool { return q.head == len(q.items) }

// Len returns the number of waiting cells.
func (q *FIFO) Len() int { return len(q.items) - q.head }

// Push appends (x, y) at the tail.
func (q *FIFO) Push(x, y int) {
	q.items = append(q.items, grid.Position{X: x, Y: y})
}

// Pop removes the oldest cell.
func (q *FIFO) Pop() (x, y int) {
	if q.Empty() {
		panic("queue: Pop on empty FIFO")
	}
	p := q.items[q.head]
	q.head++
	switch {
	case q.head == len(q.items):
		// drained: reuse the whole backing array
		q.items = q.items[:0]
		q.head = 0
	case q.head >= minCompact && q.head*2 >= len(q.items):
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return p.X, p.Y
}

// LIFO is a last-in first-out frontier (a stack).
type LIFO struct {
	items []grid.Position
}

// NewLIFO returns an empty LIFO frontier.
func NewLIFO() *LIFO {
	return &LIFO{items: make([]grid.Position, 0, 32)}
}

// Empty reports whether the stack holds no cells.
func (s *LIFO) Empty() bool { return len(s.items) == 0 }

// Len returns the number of waiting cells.
func (s *LIFO) Len() int { return len(s.items) }

// Push places (x, y) on top.
func (s *LIFO) Push(x, y int) {
	s.items = append(s.items, grid.Position{X: x, Y: y})
}

// Pop removes the most recently pushed cell.
func (s *LIFO) Pop() (x, y int) {
	n := len(s.items)
	if n == 0 {
		panic("queue: Pop on empty LIFO")
	}
	p := s.items[n-1]
	s.items = s.items[:n-1]
	return p.X, p.Y
}
