// Package flood spreads a flood over a 2-D integer grid from a start cell,
// giving every reached cell a growing mark (hop distance by default) while
// the caller steers the order, the eligible cells and when to stop.
//
// What
//
//   - Spreads from (StartX, StartY) through cells accepted by a Qualifier,
//     inside an optional logical Bounds window that may start anywhere,
//     negative coordinates included.
//   - Writes marks into a caller-owned MarkBuffer (a *grid.MarkMatrix);
//     grid.Unvisited marks cells that were never reached.
//   - The frontier strategy (queue.FIFO, queue.LIFO, queue.Priority) decides
//     the spreading order; Conn4 or Conn8 decides adjacency.
//   - Two engines: NewSpiller processes adjacent cells one by one;
//     NewScanlineSpiller processes whole vertical runs and queues far fewer
//     cells. Both reach exactly the same cells.
//   - Hooks at two stages:
//   - SpreadingVisitor / SpreadingStop for each cell taken from the frontier
//   - NeighborProcessor / NeighborStop for each cell as soon as it is marked
//
// Why
//
//   - Reachability, distance maps and region detection on tile maps.
//   - "Fill a lake uphill until it would overflow" style searches with a
//     priority frontier.
//   - Early exit as soon as a target is reached.
//
// Call order
//
//	visitor → spreading stop → for every neighbor: mark → processor → neighbor stop.
//	When a stop predicate fires the remaining neighbors of the current step
//	are still processed, then SpillFlood returns true. The scanline engine
//	runs fewer spreading visits: span cells are never queued.
//
// Complexity (W×H buffer, R reached cells, d = 4 or 8)
//
//   - Time:   O(W×H) reset + O(R×d) probes and frontier operations
//   - Memory: O(frontier), no allocation proportional to the grid
//
// Usage
//
//	marks, _ := grid.NewMarkMatrix(64, 64)
//	p := flood.NewParameters(3, 3,
//	    flood.WithConnectivity(flood.Conn4),
//	    flood.WithQualifier(func(x, y int) bool { return !walls[y][x] }),
//	    flood.WithNeighborStop(func(x, y int) bool { return x == tx && y == ty }),
//	)
//	found, err := flood.NewScanlineSpiller().SpillFlood(p, marks)
//
// Errors
//
//   - ErrOptionViolation   if an Option received invalid input.
//   - ErrNilFrontier       if Parameters carry no frontier.
//   - ErrNilBuffer         if the mark buffer is nil.
//   - ErrFrontierNotEmpty  if the frontier already holds cells.
//   - ErrBufferTooSmall    if the buffer is smaller than the bounds window.
//   - ErrStartOutOfBounds  if the start cell lies outside the bounds.
//
// Concurrency
//
//	A call runs synchronously to completion on the calling goroutine.
//	Spillers are stateless and may be shared; concurrent calls need their
//	own frontier and buffer. Hooks may start nested floods with fresh ones.
package flood
