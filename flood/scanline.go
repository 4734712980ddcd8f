package flood

// scanlineExpander processes the longest vertical run of valid cells through
// the spreading position as one span. Span cells are marked and reported but
// never queued; they need no spreading of their own because the span already
// covers their column and the side probes cover their left and right
// neighbors. On each side only the first valid cell of a run is queued: when
// popped it scans its own span and reaches the rest of that run.
//
// Span rows are processed with ascending y; on every row the left side is
// probed before the right side.
type scanlineExpander struct{}

func (scanlineExpander) spread(w *walker, x, y, markToGive int) bool {
	lineMinY := y
	for w.isValid(x, lineMinY-1) {
		lineMinY--
	}
	lineMaxY := y
	for w.isValid(x, lineMaxY+1) {
		lineMaxY++
	}

	return w.processLine(x, y, lineMinY, lineMaxY, markToGive)
}

// sideStreaks remembers, per side column, whether the previous probed row
// already belonged to a run of valid cells.
type sideStreaks struct {
	left, right bool
}

// processLine marks the span x×[lineMinY..lineMaxY] (except the spreading
// cell at parentY, which is already marked) and probes both side columns on
// every row. With Conn8 the rows just above and below the span are probed
// too, which covers the diagonal neighbors of the span ends.
func (w *walker) processLine(x, parentY, lineMinY, lineMaxY, markToGive int) bool {
	stopped := false
	var streaks sideStreaks

	diagonal := w.conn == Conn8
	if diagonal {
		stopped = w.processSides(x, lineMinY-1, markToGive, &streaks) || stopped
	}
	for lineY := lineMinY; lineY <= lineMaxY; lineY++ {
		if lineY != parentY {
			stopped = w.processNeighbor(x, lineY, markToGive, false) || stopped
		}
		stopped = w.processSides(x, lineY, markToGive, &streaks) || stopped
	}
	if diagonal {
		stopped = w.processSides(x, lineMaxY+1, markToGive, &streaks) || stopped
	}
	return stopped
}

// processSides probes (x-1, lineY) and (x+1, lineY). A valid cell that
// starts a new streak is processed and queued; an invalid cell ends the
// streak on its side.
func (w *walker) processSides(x, lineY, markToGive int, streaks *sideStreaks) bool {
	left := w.processSide(x-1, lineY, markToGive, &streaks.left)
	right := w.processSide(x+1, lineY, markToGive, &streaks.right)
	return left || right
}

func (w *walker) processSide(sideX, lineY, markToGive int, streak *bool) bool {
	if !w.isValid(sideX, lineY) {
		*streak = false
		return false
	}
	if *streak {
		return false
	}
	*streak = true
	return w.processNeighbor(sideX, lineY, markToGive, true)
}
