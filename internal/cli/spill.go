package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/floodspill/collect"
	"github.com/katalvlaran/floodspill/flood"
	"github.com/katalvlaran/floodspill/grid"
	"github.com/katalvlaran/floodspill/regions"
	"github.com/katalvlaran/floodspill/render"
)

// spillOptions holds the spill command-line overrides.
type spillOptions struct {
	engine  string
	queue   string
	conn    int
	heatmap string
	plain   bool
}

func newSpillCmd() *cobra.Command {
	var opts spillOptions

	cmd := &cobra.Command{
		Use:   "spill <scenario.toml>",
		Short: "Run the flood described by a scenario file",
		Long: `Run the flood described by a TOML scenario file and print the resulting
mark matrix, with (0,0) at the bottom-left corner.

Flags override the engine, queue and connectivity named in the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, unknown, err := LoadScenario(args[0])
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			for _, key := range unknown {
				logger.Warn("Ignoring unknown scenario key", "key", key)
			}

			flags := cmd.Flags()
			if flags.Changed("engine") {
				s.Engine = opts.engine
			}
			if flags.Changed("queue") {
				s.Queue = opts.queue
			}
			if flags.Changed("conn") {
				s.Connectivity = opts.conn
			}
			if err := s.normalize(); err != nil {
				return err
			}
			return runSpill(cmd, s, opts)
		},
	}

	cmd.Flags().StringVar(&opts.engine, "engine", engineNeighbors, "flood engine: neighbors or scanline")
	cmd.Flags().StringVar(&opts.queue, "queue", queueFIFO, "frontier: fifo, lifo or priority")
	cmd.Flags().IntVar(&opts.conn, "conn", 8, "connectivity: 4 or 8")
	cmd.Flags().StringVar(&opts.heatmap, "heatmap", "", "also save a heat map (png, svg, pdf, ...)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print the matrix without colors")

	return cmd
}

// spillResult is what one scenario run produced.
type spillResult struct {
	marks   *grid.MarkMatrix
	stopped bool
	top     *collect.HighestMark
	visits  int
	walls   *regions.Map // nil without walls
}

// spillScenario runs s once and collects its summary.
func spillScenario(s *Scenario) (*spillResult, error) {
	spiller, err := parseEngine(s.Engine)
	if err != nil {
		return nil, err
	}
	marks, err := grid.NewMarkMatrix(s.SizeX, s.SizeY)
	if err != nil {
		return nil, err
	}

	res := &spillResult{marks: marks, top: collect.NewHighestMark()}
	p, err := s.Parameters(
		flood.WithNeighborProcessor(res.top.Process),
		flood.WithSpreadingVisitor(func(int, int) { res.visits++ }),
	)
	if err != nil {
		return nil, err
	}

	res.stopped, err = spiller.SpillFlood(p, marks)
	if err != nil {
		return nil, err
	}

	if len(s.Walls) > 0 {
		terrain, err := grid.ParseTerrain(s.Walls)
		if err != nil {
			return nil, err
		}
		conn, err := parseConnectivity(s.Connectivity)
		if err != nil {
			return nil, err
		}
		res.walls, err = regions.Find(terrain, regions.WithConnectivity(conn), regions.WithSpiller(spiller))
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func runSpill(cmd *cobra.Command, s *Scenario, opts spillOptions) error {
	runID := uuid.NewString()
	logger := loggerFromContext(cmd.Context()).With("run", runID)

	name := s.Name
	if name == "" {
		name = cmd.Flags().Arg(0)
	}
	logger.Debug("Spilling flood", "scenario", name, "engine", s.Engine, "queue", s.Queue,
		"size", fmt.Sprintf("%dx%d", s.SizeX, s.SizeY))

	prog := newProgress(logger)
	res, err := spillScenario(s)
	if err != nil {
		return err
	}
	prog.done("Spilled flood", "visits", res.visits)

	out := newPrinter(cmd.OutOrStdout())
	out.printTitle("%s", name)
	if opts.plain {
		fmt.Fprint(out.w, render.Text(res.marks))
	} else {
		fmt.Fprint(out.w, render.NewStyler(out.renderer).Render(res.marks))
	}

	if res.stopped {
		out.printStopped("stop condition reached")
	} else {
		out.printSuccess("flood exhausted")
	}
	out.printKeyValue("reached", fmt.Sprintf("%d cells", res.marks.CountReached()))
	if res.top.Found() {
		out.printKeyValue("highest mark", fmt.Sprintf("%d at %s", res.top.Mark, res.top.Position))
	} else {
		out.printKeyValue("highest mark", "0")
	}
	out.printKeyValue("visits", fmt.Sprintf("%d", res.visits))
	if res.walls != nil {
		out.printKeyValue("regions", fmt.Sprintf("%d", len(res.walls.Regions)))
	}
	out.printDetail("run %s", runID)

	if opts.heatmap != "" {
		err := render.HeatMap(res.marks, opts.heatmap, render.HeatMapOptions{
			Title:  name,
			Origin: s.origin(),
		})
		if err != nil {
			return err
		}
		out.printInfo("heat map saved to %s", opts.heatmap)
		logger.Debug("Saved heat map", "path", opts.heatmap)
	}
	return nil
}
