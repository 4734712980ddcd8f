// Package render turns a mark matrix into something a person can look at.
//
// What:
//
//   - Text prints one glyph per cell, top row first, so (0,0) is the
//     bottom-left corner and y grows upwards.
//   - Styler prints the same glyphs colored by mark band with lipgloss.
//   - HeatMap plots the marks with gonum/plot and saves the image in the
//     format named by the file extension (PNG, SVG, PDF, ...).
//
// Glyphs:
//
//	'0'-'9' for marks 0..9, 'a'-'z' for 10..35, 'A'-'Z' for 36..61,
//	'+' for bigger marks, '#' for grid.Unvisited, '-' for negative marks.
//
// Errors:
//
//   - ErrNilGrid: HeatMap was given a nil grid.
//   - ErrUnsupportedFormat: the heat map file extension names no known image format.
package render

import (
	"errors"

	"github.com/katalvlaran/floodspill/grid"
)

var (
	// ErrNilGrid is returned when a nil grid is passed to HeatMap.
	ErrNilGrid = errors.New("render: grid is nil")
	// ErrUnsupportedFormat is returned for an unknown heat map file extension.
	ErrUnsupportedFormat = errors.New("render: unsupported image format")
)

// Grid is the read-only view render needs. *grid.MarkMatrix implements it.
type Grid interface {
	SizeX() int
	SizeY() int
	Get(x, y int) int
}

// isNil reports whether g is nil, including a nil *grid.MarkMatrix.
func isNil(g Grid) bool {
	if g == nil {
		return true
	}
	m, ok := g.(*grid.MarkMatrix)
	return ok && m == nil
}
