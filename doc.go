// Package floodspill spreads floods over 2-D integer grids: from a start
// cell it marks every reachable cell with a growing number, while the caller
// decides the order, the eligible cells, the window and when to stop.
//
// 🚀 What is floodspill?
//
//	A small, dependency-light flood fill toolkit:
//		• grid      Position, Bounds (any origin, negative too), MarkMatrix, Terrain
//		• queue     FIFO, LIFO and comparator-driven priority frontiers
//		• flood     the engine: neighbor-by-neighbor and scanline strategies,
//		            qualifiers, hooks and stop conditions
//		• collect   ready-made hooks: neighbor and visit lists, highest mark
//		• regions   connected-region labelling of a terrain, one flood per region
//		• render    text and colored visualisation, gonum/plot heat maps
//		• cmd/floodspill  CLI running TOML scenarios (examples/) and engine benchmarks
//
// ✨ Why floodspill?
//
//   - Game and simulation maps: reachability, distance fields, regions.
//   - "Fill the lake until it overflows" searches with a priority frontier.
//   - Early exit the moment a target is reached, without walking the rest.
//   - World coordinates: flood a window at (-100, -100) into a compact buffer.
//
// Quick ASCII example (4-connectivity, '#' never reached):
//
//	34#678
//	23#567
//	12#456
//	012345
//
//	the start sits in the bottom-left corner and the flood goes round the wall.
//
//	go get github.com/katalvlaran/floodspill
package floodspill
