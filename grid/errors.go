package grid

import "errors"

var (
	// ErrInvalidSize indicates a non-positive bounds, matrix or terrain size.
	ErrInvalidSize = errors.New("grid: size must be > 0")
	// ErrOutOfRange indicates coordinates outside the mark matrix.
	ErrOutOfRange = errors.New("grid: coordinates out of range")
	// ErrInvalidTerrain indicates malformed terrain rows.
	ErrInvalidTerrain = errors.New("grid: invalid terrain rows")
)
