package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/floodspill/flood"
	"github.com/katalvlaran/floodspill/grid"
	"github.com/katalvlaran/floodspill/queue"
)

var (
	// ErrUnknownEngine is returned for an --engine / engine value other than neighbors or scanline.
	ErrUnknownEngine = errors.New("cli: unknown engine")
	// ErrUnknownQueue is returned for a --queue / queue value other than fifo, lifo or priority.
	ErrUnknownQueue = errors.New("cli: unknown queue")
	// ErrUnknownConnectivity is returned for a connectivity other than 4 or 8.
	ErrUnknownConnectivity = errors.New("cli: connectivity must be 4 or 8")
)

const (
	engineNeighbors = "neighbors"
	engineScanline  = "scanline"

	queueFIFO     = "fifo"
	queueLIFO     = "lifo"
	queuePriority = "priority"
)

// parseEngine maps an engine name to a spiller. Empty means neighbors.
func parseEngine(name string) (flood.FloodSpiller, error) {
	switch strings.ToLower(name) {
	case "", engineNeighbors:
		return flood.NewSpiller(), nil
	case engineScanline:
		return flood.NewScanlineSpiller(), nil
	}
	return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownEngine, name, engineNeighbors, engineScanline)
}

// frontierFactory maps a queue name to a constructor of fresh frontiers.
// Empty means fifo. The priority queue favors cells closer to center.
func frontierFactory(name string, center grid.Position) (func() queue.Frontier, error) {
	switch strings.ToLower(name) {
	case "", queueFIFO:
		return func() queue.Frontier { return queue.NewFIFO() }, nil
	case queueLIFO:
		return func() queue.Frontier { return queue.NewLIFO() }, nil
	case queuePriority:
		return func() queue.Frontier { return queue.NewPriority(queue.ByDistanceTo(center)) }, nil
	}
	return nil, fmt.Errorf("%w: %q (want %s, %s or %s)", ErrUnknownQueue, name, queueFIFO, queueLIFO, queuePriority)
}

// parseConnectivity maps 4 or 8 to a Connectivity. Zero means 8.
func parseConnectivity(n int) (flood.Connectivity, error) {
	switch n {
	case 0, 8:
		return flood.Conn8, nil
	case 4:
		return flood.Conn4, nil
	}
	return 0, fmt.Errorf("%w: got %d", ErrUnknownConnectivity, n)
}
