package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodspill/grid"
)

func TestNewTerrain(t *testing.T) {
	tr, err := grid.NewTerrain(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.SizeX())
	assert.Equal(t, 2, tr.SizeY())
	assert.Equal(t, 6, tr.CountWalkable())

	tr.Block(1, 1)
	tr.Block(7, 7) // ignored
	assert.False(t, tr.Walkable(1, 1))
	assert.True(t, tr.Walkable(1, 0))
	assert.False(t, tr.Walkable(-1, 0), "outside is never walkable")
	assert.Equal(t, 5, tr.CountWalkable())

	_, err = grid.NewTerrain(0, 2)
	assert.ErrorIs(t, err, grid.ErrInvalidSize)
}

func TestParseTerrain(t *testing.T) {
	tr, err := grid.ParseTerrain([]string{
		"#..",
		"..#",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, tr.SizeX())
	assert.Equal(t, 2, tr.SizeY())
	assert.False(t, tr.Walkable(0, 1), "top row is the highest y")
	assert.False(t, tr.Walkable(2, 0))
	assert.True(t, tr.Walkable(0, 0))
	assert.True(t, tr.Walkable(2, 1))

	cases := []struct {
		name string
		rows []string
		want error
	}{
		{"Empty", nil, grid.ErrInvalidSize},
		{"EmptyRow", []string{""}, grid.ErrInvalidSize},
		{"Ragged", []string{"...", ".."}, grid.ErrInvalidTerrain},
		{"UnknownGlyph", []string{".x."}, grid.ErrInvalidTerrain},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.ParseTerrain(tc.rows)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCirclesTerrain(t *testing.T) {
	tr, err := grid.CirclesTerrain(200, 20, 8)
	require.NoError(t, err)

	assert.True(t, tr.Walkable(100, 100), "benchmark start")
	assert.True(t, tr.Walkable(0, 0))
	assert.False(t, tr.Walkable(10, 10), "disc center")
	assert.False(t, tr.Walkable(18, 10), "disc edge")
	assert.True(t, tr.Walkable(19, 10))
	// 197 lattice points lie within radius 8, in each of the 100 tiles
	assert.Equal(t, 200*200-100*197, tr.CountWalkable())

	_, err = grid.CirclesTerrain(10, 0, 3)
	assert.ErrorIs(t, err, grid.ErrInvalidSize)
}

func TestPillarsTerrain(t *testing.T) {
	tr, err := grid.PillarsTerrain(9)
	require.NoError(t, err)
	assert.False(t, tr.Walkable(2, 2))
	assert.False(t, tr.Walkable(8, 5))
	assert.True(t, tr.Walkable(3, 2))
	assert.Equal(t, 81-9, tr.CountWalkable())
}
