package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/floodspill/flood"
	"github.com/katalvlaran/floodspill/grid"
)

// ErrInvalidScenario wraps every scenario validation failure.
var ErrInvalidScenario = errors.New("cli: invalid scenario")

// Scenario is one flood described in a TOML file:
//
//	size_x = 6
//	size_y = 4
//	start = [0, 0]
//	connectivity = 4
//	queue = "fifo"
//	engine = "scanline"
//	stop_at = [5, 3]
//	walls = [
//	  "..#...",
//	  "..#...",
//	  "......",
//	]
//
//	[bounds]
//	min_x = 0
//	min_y = 0
//	size_x = 6
//	size_y = 3
//
// size_x/size_y is the mark buffer; they default to the bounds size, then to
// the walls size. Walls are given top row first, relative to the bounds
// minimum; cells outside the walls rows are blocked. Without walls every
// cell inside the bounds is walkable.
type Scenario struct {
	Name                        string   `toml:"name"`
	SizeX                       int      `toml:"size_x"`
	SizeY                       int      `toml:"size_y"`
	Start                       []int    `toml:"start"`
	Bounds                      *Window  `toml:"bounds"`
	Connectivity                int      `toml:"connectivity"`
	Queue                       string   `toml:"queue"`
	Engine                      string   `toml:"engine"`
	ProcessStartAsFirstNeighbor bool     `toml:"process_start_as_first_neighbor"`
	Walls                       []string `toml:"walls"`
	PriorityCenter              []int    `toml:"priority_center"`
	StopAt                      []int    `toml:"stop_at"`
}

// Window is the [bounds] table of a scenario.
type Window struct {
	MinX  int `toml:"min_x"`
	MinY  int `toml:"min_y"`
	SizeX int `toml:"size_x"`
	SizeY int `toml:"size_y"`
}

// LoadScenario decodes and validates the scenario at path. Keys the
// Scenario does not know are returned so the caller can warn about them.
func LoadScenario(path string) (*Scenario, []string, error) {
	var s Scenario
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, nil, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}
	if err := s.normalize(); err != nil {
		return nil, unknown, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, unknown, nil
}

// ParseScenario decodes and validates a scenario held in memory.
func ParseScenario(data string) (*Scenario, error) {
	var s Scenario
	if _, err := toml.Decode(data, &s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.normalize(); err != nil {
		return nil, err
	}
	return &s, nil
}

// pair validates an optional [x, y] array.
func pair(key string, v []int) (grid.Position, bool, error) {
	switch len(v) {
	case 0:
		return grid.Position{}, false, nil
	case 2:
		return grid.Pos(v[0], v[1]), true, nil
	}
	return grid.Position{}, false, fmt.Errorf("%w: %s must be [x, y], got %v", ErrInvalidScenario, key, v)
}

// normalize fills default sizes and checks everything that does not need a
// flood run.
func (s *Scenario) normalize() error {
	if _, ok, err := pair("start", s.Start); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("%w: start is required", ErrInvalidScenario)
	}
	if _, _, err := pair("priority_center", s.PriorityCenter); err != nil {
		return err
	}
	if _, _, err := pair("stop_at", s.StopAt); err != nil {
		return err
	}

	if s.SizeX == 0 && s.SizeY == 0 {
		switch {
		case s.Bounds != nil:
			s.SizeX, s.SizeY = s.Bounds.SizeX, s.Bounds.SizeY
		case len(s.Walls) > 0:
			s.SizeX, s.SizeY = len(s.Walls[0]), len(s.Walls)
		}
	}
	if s.SizeX <= 0 || s.SizeY <= 0 {
		return fmt.Errorf("%w: size (%d, %d) must be positive", ErrInvalidScenario, s.SizeX, s.SizeY)
	}
	if s.Bounds != nil {
		if _, err := grid.NewBounds(s.Bounds.MinX, s.Bounds.MinY, s.Bounds.SizeX, s.Bounds.SizeY); err != nil {
			return fmt.Errorf("%w: bounds: %w", ErrInvalidScenario, err)
		}
	}
	if len(s.Walls) > 0 {
		if _, err := grid.ParseTerrain(s.Walls); err != nil {
			return fmt.Errorf("%w: walls: %w", ErrInvalidScenario, err)
		}
	}
	if _, err := parseConnectivity(s.Connectivity); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if _, err := parseEngine(s.Engine); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if _, err := frontierFactory(s.Queue, grid.Position{}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	return nil
}

// origin is the logical coordinate of physical cell (0, 0).
func (s *Scenario) origin() grid.Position {
	if s.Bounds == nil {
		return grid.Pos(0, 0)
	}
	return grid.Pos(s.Bounds.MinX, s.Bounds.MinY)
}

// qualifier returns the walkability test for logical coordinates, or nil
// when the scenario has no walls.
func (s *Scenario) qualifier() func(x, y int) bool {
	if len(s.Walls) == 0 {
		return nil
	}
	// validated by normalize
	terrain, _ := grid.ParseTerrain(s.Walls)
	o := s.origin()
	return func(x, y int) bool { return terrain.Walkable(x-o.X, y-o.Y) }
}

// Parameters builds the flood parameters of s with a fresh frontier. extra
// options are applied last.
func (s *Scenario) Parameters(extra ...flood.Option) (flood.Parameters, error) {
	start, _, _ := pair("start", s.Start)
	conn, err := parseConnectivity(s.Connectivity)
	if err != nil {
		return flood.Parameters{}, err
	}

	center := start
	if c, ok, _ := pair("priority_center", s.PriorityCenter); ok {
		center = c
	}
	newFrontier, err := frontierFactory(s.Queue, center)
	if err != nil {
		return flood.Parameters{}, err
	}

	opts := []flood.Option{
		flood.WithFrontier(newFrontier()),
		flood.WithConnectivity(conn),
		flood.WithQualifier(s.qualifier()),
	}
	if s.Bounds != nil {
		b, err := grid.NewBounds(s.Bounds.MinX, s.Bounds.MinY, s.Bounds.SizeX, s.Bounds.SizeY)
		if err != nil {
			return flood.Parameters{}, err
		}
		opts = append(opts, flood.WithBounds(b))
	}
	if s.ProcessStartAsFirstNeighbor {
		opts = append(opts, flood.WithStartAsFirstNeighbor())
	}
	if target, ok, _ := pair("stop_at", s.StopAt); ok {
		opts = append(opts, flood.WithNeighborStop(func(x, y int) bool {
			return x == target.X && y == target.Y
		}))
	}

	return flood.NewParameters(start.X, start.Y, append(opts, extra...)...), nil
}
