package cli

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/floodspill/flood"
	"github.com/katalvlaran/floodspill/grid"
)

var (
	// ErrEnginesDisagree is returned when the engines reach different cells.
	ErrEnginesDisagree = errors.New("cli: engines reached different cells")
	// ErrBlockedStart is returned when no walkable start cell exists.
	ErrBlockedStart = errors.New("cli: benchmark start cell is blocked")
	// ErrUnknownTerrain is returned for a --terrain value other than open, circles or pillars.
	ErrUnknownTerrain = errors.New("cli: unknown terrain")
)

type benchOptions struct {
	size    int
	runs    int
	conn    int
	queue   string
	terrain string
}

func newBenchCmd() *cobra.Command {
	opts := benchOptions{size: 200, runs: 20, conn: 4, queue: queueFIFO, terrain: "circles"}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare the neighbors and scanline engines",
		Long: `Flood a generated square area from its middle with both engines, check
that they reach the same cells and report timing statistics per engine.

Terrains: open (no walls), circles (blocked discs over about half of the
area), pillars (one blocked cell in every 3x3 square).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.size, "size", opts.size, "side of the square area")
	cmd.Flags().IntVar(&opts.runs, "runs", opts.runs, "runs per engine")
	cmd.Flags().IntVar(&opts.conn, "conn", opts.conn, "connectivity: 4 or 8")
	cmd.Flags().StringVar(&opts.queue, "queue", opts.queue, "frontier: fifo, lifo or priority")
	cmd.Flags().StringVar(&opts.terrain, "terrain", opts.terrain, "area layout: open, circles or pillars")

	return cmd
}

// benchTerrain generates the named size×size area.
func benchTerrain(name string, size int) (*grid.Terrain, error) {
	switch name {
	case "open":
		return grid.NewTerrain(size, size)
	case "circles":
		return grid.CirclesTerrain(size, 20, 8)
	case "pillars":
		return grid.PillarsTerrain(size)
	}
	return nil, fmt.Errorf("%w: %q (want open, circles or pillars)", ErrUnknownTerrain, name)
}

// benchStart picks the middle of the area, or (0, 0) when the middle is blocked.
func benchStart(t *grid.Terrain) (grid.Position, error) {
	for _, p := range []grid.Position{grid.Pos(t.SizeX()/2, t.SizeY()/2), grid.Pos(0, 0)} {
		if t.Walkable(p.X, p.Y) {
			return p, nil
		}
	}
	return grid.Position{}, ErrBlockedStart
}

// engineStats summarizes the run durations of one engine, in milliseconds.
type engineStats struct {
	name                   string
	mean, stddev, p50, p95 float64
	reached, visitsPerRun  int
}

func summarize(name string, millis []float64) engineStats {
	sorted := append([]float64(nil), millis...)
	sort.Float64s(sorted)
	mean, stddev := stat.MeanStdDev(sorted, nil)
	return engineStats{
		name:   name,
		mean:   mean,
		stddev: stddev,
		p50:    stat.Quantile(0.5, stat.Empirical, sorted, nil),
		p95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
}

// reachedGrid projects marks onto [y][x] reached flags.
func reachedGrid(m *grid.MarkMatrix) [][]bool {
	out := make([][]bool, m.SizeY())
	for y := range out {
		out[y] = make([]bool, m.SizeX())
		for x := range out[y] {
			out[y][x] = m.Reached(x, y)
		}
	}
	return out
}

func runBench(cmd *cobra.Command, opts benchOptions) error {
	if opts.runs <= 0 {
		return fmt.Errorf("cli: --runs must be positive, got %d", opts.runs)
	}
	conn, err := parseConnectivity(opts.conn)
	if err != nil {
		return err
	}
	terrain, err := benchTerrain(opts.terrain, opts.size)
	if err != nil {
		return err
	}
	start, err := benchStart(terrain)
	if err != nil {
		return err
	}
	newFrontier, err := frontierFactory(opts.queue, start)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := loggerFromContext(ctx).With("run", uuid.NewString())
	logger.Info("Benchmarking engines", "terrain", opts.terrain, "size", opts.size,
		"walkable", terrain.CountWalkable(), "runs", opts.runs, "conn", conn, "queue", opts.queue)

	engines := []struct {
		name    string
		spiller flood.FloodSpiller
	}{
		{engineNeighbors, flood.NewSpiller()},
		{engineScanline, flood.NewScanlineSpiller()},
	}

	var (
		results []engineStats
		grids   [][][]bool
	)
	for _, e := range engines {
		marks, err := grid.NewMarkMatrix(opts.size, opts.size)
		if err != nil {
			return err
		}

		millis := make([]float64, 0, opts.runs)
		visits := 0
		prog := newProgress(logger)
		for i := 0; i < opts.runs; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			visits = 0
			p := flood.NewParameters(start.X, start.Y,
				flood.WithFrontier(newFrontier()),
				flood.WithConnectivity(conn),
				flood.WithQualifier(terrain.Walkable),
				flood.WithSpreadingVisitor(func(int, int) { visits++ }),
			)
			began := time.Now()
			if _, err := e.spiller.SpillFlood(p, marks); err != nil {
				return err
			}
			millis = append(millis, float64(time.Since(began))/float64(time.Millisecond))
		}
		prog.done("Engine finished", "engine", e.name)

		st := summarize(e.name, millis)
		st.reached = marks.CountReached()
		st.visitsPerRun = visits
		results = append(results, st)
		grids = append(grids, reachedGrid(marks))
	}

	if diff := cmp.Diff(grids[0], grids[1]); diff != "" {
		logger.Debug("Reachability diff", "diff", diff)
		return fmt.Errorf("%w: %s reached %d, %s reached %d",
			ErrEnginesDisagree, results[0].name, results[0].reached, results[1].name, results[1].reached)
	}

	out := newPrinter(cmd.OutOrStdout())
	out.printTitle("%s %dx%d, %d runs, %s-connected, %s queue",
		opts.terrain, opts.size, opts.size, opts.runs, conn, opts.queue)
	for _, st := range results {
		out.printSuccess("%s", st.name)
		out.printKeyValue("mean", fmt.Sprintf("%.3fms ± %.3fms", st.mean, st.stddev))
		out.printKeyValue("p50 / p95", fmt.Sprintf("%.3fms / %.3fms", st.p50, st.p95))
		out.printKeyValue("visits", fmt.Sprintf("%d per run", st.visitsPerRun))
	}
	out.printDetail("both engines reached %d cells", results[0].reached)
	return nil
}
