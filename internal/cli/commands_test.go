package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpillCmd_PlainRoom(t *testing.T) {
	path := writeScenario(t, roomScenario)
	out, _, err := execute(t, "spill", "--plain", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Mark matrix of size 6, 4.\n34#678\n23#567\n12#456\n012345\n")
	assert.Contains(t, out, "flood exhausted")
	assert.Contains(t, out, "21 cells")
	assert.Contains(t, out, "8 at (5, 3)")
	assert.Regexp(t, `regions\s+1\n`, out)
	assert.Regexp(t, `run [0-9a-f-]{36}`, out)
}

func TestSpillCmd_SplitWallsCountRegions(t *testing.T) {
	path := writeScenario(t, `
start = [0, 0]
connectivity = 4
walls = [
  "..#..",
  "..#..",
]
`)
	out, _, err := execute(t, "spill", "--plain", path)
	require.NoError(t, err)
	assert.Contains(t, out, "4 cells")
	assert.Regexp(t, `regions\s+2\n`, out)
}

func TestSpillCmd_StopAt(t *testing.T) {
	path := writeScenario(t, roomScenario+"stop_at = [5, 0]\n")
	out, _, err := execute(t, "spill", "--plain", path)
	require.NoError(t, err)
	assert.Contains(t, out, "stop condition reached")
}

func TestSpillCmd_NegativeBounds(t *testing.T) {
	path := writeScenario(t, `
size_x = 4
size_y = 4
start = [-5, -5]
walls = ["##", ".."]

[bounds]
min_x = -5
min_y = -5
size_x = 2
size_y = 2
`)
	out, _, err := execute(t, "spill", "--plain", "--engine", "scanline", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Mark matrix of size 4, 4.\n####\n####\n####\n01##\n")
	assert.Contains(t, out, "2 cells")
}

func TestSpillCmd_OverridesKeepReachability(t *testing.T) {
	path := writeScenario(t, roomScenario)
	for _, args := range [][]string{
		{"--engine", "scanline"},
		{"--queue", "lifo"},
		{"--queue", "priority", "--engine", "scanline"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			out, _, err := execute(t, append(append([]string{"spill", "--plain"}, args...), path)...)
			require.NoError(t, err)
			assert.Contains(t, out, "21 cells")
		})
	}

	_, _, err := execute(t, "spill", "--engine", "bogus", path)
	assert.ErrorIs(t, err, ErrInvalidScenario)
	_, _, err = execute(t, "spill", "--conn", "5", path)
	assert.ErrorIs(t, err, ErrInvalidScenario)
}

func TestSpillCmd_Conn8OverrideReachesAcrossDiagonal(t *testing.T) {
	path := writeScenario(t, `
start = [0, 0]
connectivity = 4
walls = [
  "#.",
  ".#",
]
`)
	out, _, err := execute(t, "spill", "--plain", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 cells")

	out, _, err = execute(t, "spill", "--plain", "--conn", "8", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 cells")
}

func TestSpillCmd_HeatMapAndVerboseLogs(t *testing.T) {
	path := writeScenario(t, roomScenario)
	png := filepath.Join(t.TempDir(), "room.png")
	out, logs, err := execute(t, "spill", "-v", "--heatmap", png, path)
	require.NoError(t, err)

	assert.Contains(t, out, "heat map saved")
	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Contains(t, logs, "Spilling flood")
	assert.Contains(t, logs, "run=")
}

func TestSpillCmd_Errors(t *testing.T) {
	_, _, err := execute(t, "spill")
	assert.Error(t, err, "missing argument")

	_, _, err = execute(t, "spill", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := writeScenario(t, roomScenario)
	_, _, err = execute(t, "spill", "--heatmap", filepath.Join(t.TempDir(), "room.bmp"), path)
	assert.Error(t, err)
}

func TestBenchCmd(t *testing.T) {
	for _, terrain := range []string{"open", "circles", "pillars"} {
		t.Run(terrain, func(t *testing.T) {
			out, _, err := execute(t, "bench", "--size", "40", "--runs", "3", "--terrain", terrain)
			require.NoError(t, err)
			assert.Contains(t, out, "neighbors")
			assert.Contains(t, out, "scanline")
			assert.Contains(t, out, "p50 / p95")
			assert.Contains(t, out, "both engines reached")
		})
	}
}

func TestBenchCmd_Errors(t *testing.T) {
	_, _, err := execute(t, "bench", "--runs", "0")
	assert.Error(t, err)
	_, _, err = execute(t, "bench", "--terrain", "lava")
	assert.ErrorIs(t, err, ErrUnknownTerrain)
	_, _, err = execute(t, "bench", "--queue", "random")
	assert.ErrorIs(t, err, ErrUnknownQueue)
	_, _, err = execute(t, "bench", "--conn", "6")
	assert.ErrorIs(t, err, ErrUnknownConnectivity)
}

func TestSummarize(t *testing.T) {
	millis := make([]float64, 20)
	for i := range millis {
		millis[len(millis)-1-i] = float64(i + 1)
	}
	st := summarize("x", millis)
	assert.InDelta(t, 10.5, st.mean, 1e-9)
	assert.InDelta(t, 5.9161, st.stddev, 1e-3)
	assert.Equal(t, 10.0, st.p50)
	assert.Equal(t, 19.0, st.p95)
	assert.Equal(t, 20.0, millis[0], "input is not reordered")
}
