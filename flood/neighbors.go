package flood

// neighborExpander processes the adjacent cells of a spreading position one
// by one. Every neighbor of the step is processed even after a stop
// predicate fires; the flood then ends.
type neighborExpander struct{}

// spread visits neighbors in a fixed order.
//
//	Conn4: up, down, left, right.
//	Conn8: left column (y-1, y, y+1), same column (y-1, y+1),
//	       right column (y-1, y, y+1).
func (neighborExpander) spread(w *walker, x, y, markToGive int) bool {
	stopped := false

	if w.conn == Conn8 {
		stopped = w.processNeighborIfValid(x-1, y-1, markToGive) || stopped
		stopped = w.processNeighborIfValid(x-1, y, markToGive) || stopped
		stopped = w.processNeighborIfValid(x-1, y+1, markToGive) || stopped

		stopped = w.processNeighborIfValid(x, y-1, markToGive) || stopped
		stopped = w.processNeighborIfValid(x, y+1, markToGive) || stopped

		stopped = w.processNeighborIfValid(x+1, y-1, markToGive) || stopped
		stopped = w.processNeighborIfValid(x+1, y, markToGive) || stopped
		stopped = w.processNeighborIfValid(x+1, y+1, markToGive) || stopped
		return stopped
	}

	stopped = w.processNeighborIfValid(x, y-1, markToGive) || stopped
	stopped = w.processNeighborIfValid(x, y+1, markToGive) || stopped
	stopped = w.processNeighborIfValid(x-1, y, markToGive) || stopped
	stopped = w.processNeighborIfValid(x+1, y, markToGive) || stopped
	return stopped
}
