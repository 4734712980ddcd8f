package regions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodspill/flood"
	"github.com/katalvlaran/floodspill/grid"
	"github.com/katalvlaran/floodspill/regions"
)

func terrain(t *testing.T, rows ...string) *grid.Terrain {
	t.Helper()
	tr, err := grid.ParseTerrain(rows)
	require.NoError(t, err)
	return tr
}

// sizes lists region sizes in id order.
func sizes(m *regions.Map) []int {
	out := make([]int, 0, len(m.Regions))
	for _, r := range m.Regions {
		out = append(out, len(r.Cells))
	}
	return out
}

// TestFind_Simple4 splits a 4×3 terrain into two islands.
//
//	#..#
//	..##
//	##..
func TestFind_Simple4(t *testing.T) {
	m, err := regions.Find(terrain(t, "#..#", "..##", "##.."))
	require.NoError(t, err)
	// y = 0 is the bottom row, so the 2-cell island is met first
	assert.Equal(t, []int{2, 4}, sizes(m))
	assert.Equal(t, 0, m.At(2, 0))
	assert.Equal(t, 1, m.At(1, 2))
	assert.Equal(t, regions.NoRegion, m.At(0, 0))
	assert.Equal(t, regions.NoRegion, m.At(9, 9))
}

// TestFind_Diagonal checks the X-shaped terrain: one island with Conn8,
// nine single cells with Conn4.
func TestFind_Diagonal(t *testing.T) {
	tr := terrain(t,
		".###.",
		"#.#.#",
		"##.##",
		"#.#.#",
		".###.",
	)

	m8, err := regions.Find(tr, regions.WithConnectivity(flood.Conn8))
	require.NoError(t, err)
	assert.Equal(t, []int{9}, sizes(m8))
	assert.True(t, m8.Connected(grid.Pos(0, 0), grid.Pos(4, 4)))

	m4, err := regions.Find(tr)
	require.NoError(t, err)
	assert.Len(t, m4.Regions, 9)
	assert.False(t, m4.Connected(grid.Pos(0, 0), grid.Pos(1, 1)))
}

func TestFind_EmptyAndSingle(t *testing.T) {
	m, err := regions.Find(terrain(t, "##", "##"))
	require.NoError(t, err)
	assert.Empty(t, m.Regions)
	_, ok := m.Largest()
	assert.False(t, ok)
	assert.False(t, m.Connected(grid.Pos(0, 0), grid.Pos(0, 0)))

	m, err = regions.Find(terrain(t, "#."))
	require.NoError(t, err)
	require.Len(t, m.Regions, 1)
	assert.Equal(t, []grid.Position{{X: 1, Y: 0}}, m.Regions[0].Cells)
}

func TestFind_EnginesAgree(t *testing.T) {
	tr, err := grid.CirclesTerrain(60, 20, 8)
	require.NoError(t, err)
	for _, conn := range []flood.Connectivity{flood.Conn4, flood.Conn8} {
		base, err := regions.Find(tr, regions.WithConnectivity(conn))
		require.NoError(t, err)
		scan, err := regions.Find(tr, regions.WithConnectivity(conn), regions.WithSpiller(flood.NewScanlineSpiller()))
		require.NoError(t, err)

		require.Equal(t, sizes(base), sizes(scan))
		for x := 0; x < 60; x++ {
			for y := 0; y < 60; y++ {
				require.Equal(t, base.At(x, y), scan.At(x, y), "cell (%d,%d)", x, y)
			}
		}
	}
}

func TestMap_LargestAndRegion(t *testing.T) {
	m, err := regions.Find(terrain(t,
		"..#.",
		"..#.",
		"###.",
	))
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, sizes(m))

	largest, ok := m.Largest()
	require.True(t, ok)
	assert.Equal(t, 1, largest.ID)

	r, err := m.Region(0)
	require.NoError(t, err)
	assert.Equal(t, grid.Pos(3, 0), r.Cells[0], "flood starts at the first cell met")

	_, err = m.Region(2)
	assert.ErrorIs(t, err, regions.ErrRegionIndex)
	_, err = m.Region(-1)
	assert.ErrorIs(t, err, regions.ErrRegionIndex)
}

func TestFind_Errors(t *testing.T) {
	_, err := regions.Find(nil)
	assert.ErrorIs(t, err, regions.ErrNilTerrain)

	var tr *grid.Terrain
	_, err = regions.Find(tr)
	assert.ErrorIs(t, err, regions.ErrNilTerrain)

	_, err = regions.Find(terrain(t, ".."), regions.WithConnectivity(flood.Connectivity(5)))
	assert.ErrorIs(t, err, flood.ErrOptionViolation)
}
