// Package grid holds the coordinate primitives shared by the flood engine:
// positions, logical bounds and the physical mark matrix.
//
// What:
//
//   - Position is an (X, Y) integer pair with value equality.
//   - Bounds is a logical rectangle (MinX, MinY, MaxX, MaxY). It may start at
//     any origin, including negative coordinates, and maps onto a 0-based
//     physical buffer through Offset.
//   - MarkMatrix is a caller-owned SizeX×SizeY buffer of int marks stored in
//     a flat slice. Unvisited is the sentinel meaning "not reached".
//   - Terrain is a walkability map whose Walkable method serves as a flood
//     qualifier; it can be parsed from '#'/'.' rows or generated (circles,
//     pillars) for benchmarks.
//
// Why:
//
//   - Game maps and terrain tiles are rarely anchored at (0,0); Bounds lets a
//     traversal run over world coordinates while writing into a compact buffer.
//   - A flat slice keeps the hot loop of a flood cache friendly.
//
// Complexity:
//
//   - NewMarkMatrix, Fill, CountReached, Clone: O(SizeX×SizeY).
//   - NewTerrain, ParseTerrain, CirclesTerrain, PillarsTerrain: O(SizeX×SizeY).
//   - Every accessor and Bounds query: O(1).
//
// Errors:
//
//   - ErrInvalidSize: a requested size is not positive.
//   - ErrOutOfRange: a checked accessor was given coordinates outside the matrix.
//   - ErrInvalidTerrain: terrain rows are ragged or hold a glyph other than '#' or '.'.
package grid
