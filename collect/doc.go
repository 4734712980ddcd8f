// Package collect provides ready-made flood hooks that record what a flood
// did: every processed neighbor, every visited spreading position, or the
// highest mark seen and where.
//
// Each collector exposes a method value with the exact hook signature, so it
// plugs straight into flood options:
//
//	var seen collect.NeighborList
//	top := collect.NewHighestMark()
//	p := flood.NewParameters(0, 0,
//	    flood.WithNeighborProcessor(collect.Processors(seen.Process, top.Process)),
//	)
//
// Collectors are not safe for concurrent use; a flood calls its hooks from a
// single goroutine.
package collect
