// Package queue provides the frontier strategies a flood spills through.
//
// What:
//
//   - Frontier is the ordering contract: Empty, Push, Pop over (x, y) pairs.
//   - FIFO pops the oldest pushed cell, giving breadth-first expansion where
//     marks grow with hop distance from the start.
//   - LIFO pops the newest pushed cell, giving depth-first-like expansion.
//     Use it when only the final reachable set matters.
//   - Priority pops the cell ranked lowest by a caller comparator, e.g. the
//     lowest terrain height or the cell nearest to a target.
//
// Determinism:
//
//	FIFO and LIFO are fully deterministic. Priority admits duplicates and
//	leaves the order of equally ranked cells unspecified; callers must not
//	rely on it.
//
// Complexity:
//
//   - FIFO, LIFO: Push and Pop amortized O(1).
//   - Priority:   Push and Pop O(log n).
//
// A frontier belongs to one flood call. Pop on an empty frontier panics;
// check Empty first.
package queue
