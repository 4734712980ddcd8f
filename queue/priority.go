package queue

import (
	"cmp"
	"container/heap"

	"github.com/katalvlaran/floodspill/grid"
)

// Comparator ranks two positions: negative if a pops before b, positive if b
// pops before a, zero if either order is acceptable.
type Comparator func(a, b grid.Position) int

// Priority is a frontier that always pops the lowest-ranked cell.
type Priority struct {
	h positionHeap
}

// NewPriority returns an empty Priority frontier ordered by compare.
// A nil compare orders by X, then by Y.
func NewPriority(compare Comparator) *Priority {
	if compare == nil {
		compare = Lexicographic
	}
	return &Priority{h: positionHeap{compare: compare, items: make([]grid.Position, 0, 32)}}
}

// NewPriorityXY is NewPriority for comparators over raw coordinates
// (x1, y1) and (x2, y2).
func NewPriorityXY(compare func(x1, y1, x2, y2 int) int) *Priority {
	if compare == nil {
		return NewPriority(nil)
	}
	return NewPriority(func(a, b grid.Position) int {
		return compare(a.X, a.Y, b.X, b.Y)
	})
}

// Empty reports whether the heap holds no cells.
func (q *Priority) Empty() bool { return len(q.h.items) == 0 }

// Len returns the number of waiting cells.
func (q *Priority) Len() int { return len(q.h.items) }

// Push inserts (x, y). Duplicates are kept.
func (q *Priority) Push(x, y int) {
	heap.Push(&q.h, grid.Position{X: x, Y: y})
}

// Pop removes the lowest-ranked cell.
func (q *Priority) Pop() (x, y int) {
	if q.Empty() {
		panic("queue: Pop on empty Priority")
	}
	p := heap.Pop(&q.h).(grid.Position)
	return p.X, p.Y
}

// Lexicographic orders positions by X, then by Y.
func Lexicographic(a, b grid.Position) int {
	if a.X != b.X {
		return cmp.Compare(a.X, b.X)
	}
	return cmp.Compare(a.Y, b.Y)
}

// ByDistanceTo returns a comparator favouring positions closer to center.
func ByDistanceTo(center grid.Position) Comparator {
	return func(a, b grid.Position) int {
		return cmp.Compare(squaredDistance(a, center), squaredDistance(b, center))
	}
}

func squaredDistance(a, b grid.Position) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// positionHeap implements heap.Interface over positions ranked by compare.
type positionHeap struct {
	compare Comparator
	items   []grid.Position
}

// Len returns the number of items in the heap.
func (h positionHeap) Len() int { return len(h.items) }

// Less reports whether item i pops before item j.
func (h positionHeap) Less(i, j int) bool { return h.compare(h.items[i], h.items[j]) < 0 }

// Swap swaps two elements in the heap.
func (h positionHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push adds x onto the heap. Called by heap.Push; x must be a grid.Position.
func (h *positionHeap) Push(x any) { h.items = append(h.items, x.(grid.Position)) }

// Pop removes the last element. Called by heap.Pop.
func (h *positionHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]

	return item
}
