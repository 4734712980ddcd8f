package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodspill/grid"
)

//----------------------------------------------------------------------------//
// Position
//----------------------------------------------------------------------------//

func TestPosition_EqualityAndMapKey(t *testing.T) {
	a := grid.Pos(3, -2)
	b := grid.Position{X: 3, Y: -2}
	assert.Equal(t, a, b)
	assert.True(t, a == b)
	assert.False(t, a == grid.Pos(-2, 3))

	seen := map[grid.Position]int{a: 1}
	seen[b]++
	assert.Len(t, seen, 1)
	assert.Equal(t, 2, seen[a])
}

func TestPosition_Distance(t *testing.T) {
	cases := []struct {
		name string
		a, b grid.Position
		want float64
	}{
		{"Same", grid.Pos(1, 1), grid.Pos(1, 1), 0},
		{"Horizontal", grid.Pos(0, 0), grid.Pos(4, 0), 4},
		{"Pythagorean", grid.Pos(-1, -1), grid.Pos(2, 3), 5},
		{"Diagonal", grid.Pos(0, 0), grid.Pos(1, 1), math.Sqrt2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, grid.Distance(tc.a, tc.b), 1e-12)
			assert.InDelta(t, tc.want, tc.b.Distance(tc.a), 1e-12)
		})
	}
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "(5, -7)", grid.Pos(5, -7).String())
}

//----------------------------------------------------------------------------//
// Bounds
//----------------------------------------------------------------------------//

func TestNewBounds_Errors(t *testing.T) {
	cases := []struct {
		name         string
		sizeX, sizeY int
	}{
		{"ZeroX", 0, 3},
		{"ZeroY", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewBounds(0, 0, tc.sizeX, tc.sizeY)
			assert.ErrorIs(t, err, grid.ErrInvalidSize)
		})
	}
}

func TestBounds_NegativeOrigin(t *testing.T) {
	b, err := grid.NewBounds(-5, -5, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, -4, b.MaxX)
	assert.Equal(t, -3, b.MaxY)
	assert.Equal(t, 2, b.SizeX())
	assert.Equal(t, 3, b.SizeY())

	dx, dy := b.Offset()
	assert.Equal(t, 5, dx)
	assert.Equal(t, 5, dy)

	assert.True(t, b.Contains(-5, -5))
	assert.True(t, b.Contains(-4, -3))
	assert.False(t, b.Contains(-3, -5))
	assert.False(t, b.Contains(-5, -6))
	assert.Equal(t, "(minX -5, minY -5, sizeX 2, sizeY 3)", b.String())
}

func TestSizedBounds(t *testing.T) {
	b := grid.SizedBounds(4, 2)
	assert.Equal(t, grid.Bounds{MinX: 0, MinY: 0, MaxX: 3, MaxY: 1}, b)
	assert.True(t, b.Contains(3, 1))
	assert.False(t, b.Contains(4, 1))
}

//----------------------------------------------------------------------------//
// MarkMatrix
//----------------------------------------------------------------------------//

func TestNewMarkMatrix_Errors(t *testing.T) {
	_, err := grid.NewMarkMatrix(0, 1)
	assert.ErrorIs(t, err, grid.ErrInvalidSize)
	_, err = grid.NewMarkMatrix(1, -3)
	assert.ErrorIs(t, err, grid.ErrInvalidSize)
}

func TestMarkMatrix_StartsUnvisited(t *testing.T) {
	m, err := grid.NewMarkMatrix(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, m.SizeX())
	assert.Equal(t, 2, m.SizeY())
	assert.Equal(t, 0, m.CountReached())
	for x := 0; x < 3; x++ {
		for y := 0; y < 2; y++ {
			assert.Equal(t, grid.Unvisited, m.Get(x, y))
		}
	}
}

func TestMarkMatrix_AccessorsAndRange(t *testing.T) {
	m, err := grid.NewMarkMatrix(3, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(2, 1, 7))
	v, err := m.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 7, m.Get(2, 1))

	m.Put(0, 1, 3)
	assert.True(t, m.Reached(0, 1))
	assert.False(t, m.Reached(1, 1))
	assert.False(t, m.Reached(5, 5), "out of range is never reached")
	assert.Equal(t, 2, m.CountReached())

	_, err = m.At(3, 0)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), grid.ErrOutOfRange)
}

func TestMarkMatrix_FillAndClone(t *testing.T) {
	m, err := grid.NewMarkMatrix(2, 2)
	require.NoError(t, err)
	m.Fill(4)
	c := m.Clone()
	m.Put(0, 0, 9)

	assert.Equal(t, 4, c.Get(0, 0), "clone must not share storage")
	assert.Equal(t, 4, c.CountReached())
}
