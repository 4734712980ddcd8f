// Package regions splits the walkable cells of a terrain into connected
// regions ("islands") by running one flood per region.
//
// What:
//
//   - Find scans the terrain row by row (y, then x) and floods from every
//     walkable cell not yet labelled; each flood becomes one Region.
//   - Map answers which region a cell belongs to and which region is largest.
//   - Connectivity and the flood engine are options; every engine yields
//     the same regions.
//
// Why:
//
//   - Game maps: which areas can reach each other, where the islands are.
//   - Sanity checks before a path search: start and goal in one region.
//
// Complexity:
//
//   - Find: O(R×W×H) for R regions on a W×H terrain, since every flood
//     resets its mark buffer; O(W×H) memory.
//   - Map.At: O(1). Map.Largest: O(R).
//
// Errors:
//
//   - ErrNilTerrain: Find was given a nil terrain.
//   - ErrRegionIndex: Map.Region was asked for an id that does not exist.
//   - flood.ErrOptionViolation: an invalid connectivity was supplied.
package regions
