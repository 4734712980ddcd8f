package render

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/floodspill/grid"
)

// HeatMapOptions tunes HeatMap. Zero values pick the defaults.
type HeatMapOptions struct {
	// Title is drawn above the plot. Default "Flood marks".
	Title string
	// Width and Height of the saved image. Default 6in × 6in.
	Width, Height vg.Length
	// Levels is the number of palette colors. Default 64.
	Levels int
	// Origin is the logical coordinate of physical cell (0, 0), used for the
	// axis ticks when the flood ran inside offset bounds.
	Origin grid.Position
}

func (o HeatMapOptions) withDefaults() HeatMapOptions {
	if o.Title == "" {
		o.Title = "Flood marks"
	}
	if o.Width <= 0 {
		o.Width = 6 * vg.Inch
	}
	if o.Height <= 0 {
		o.Height = 6 * vg.Inch
	}
	if o.Levels <= 1 {
		o.Levels = 64
	}
	return o
}

// supportedFormats are the extensions plot.Save understands.
var supportedFormats = map[string]bool{
	"png": true, "svg": true, "pdf": true, "eps": true,
	"jpg": true, "jpeg": true, "tif": true, "tiff": true,
}

// markGrid adapts a Grid to plotter.GridXYZ. Unvisited cells become NaN
// and are drawn with the heat map's NaN color.
type markGrid struct {
	g      Grid
	origin grid.Position
}

func (m markGrid) Dims() (c, r int) { return m.g.SizeX(), m.g.SizeY() }
func (m markGrid) X(c int) float64 { return float64(m.origin.X + c) }
func (m markGrid) Y(r int) float64 { return float64(m.origin.Y + r) }
func (m markGrid) Z(c, r int) float64 {
	v := m.g.Get(c, r)
	if v == grid.Unvisited {
		return math.NaN()
	}
	return float64(v)
}

// NewHeatMapPlot builds the plot HeatMap saves: marks colored from the heat
// palette, unvisited cells transparent.
func NewHeatMapPlot(g Grid, opts HeatMapOptions) (*plot.Plot, error) {
	if isNil(g) {
		return nil, ErrNilGrid
	}
	opts = opts.withDefaults()

	h := plotter.NewHeatMap(markGrid{g: g, origin: opts.Origin}, palette.Heat(opts.Levels, 1))
	h.NaN = color.Transparent
	// all NaN leaves Min/Max infinite; a single value leaves an empty range
	if math.IsInf(h.Min, 0) || math.IsInf(h.Max, 0) {
		h.Min, h.Max = 0, 1
	}
	if h.Max <= h.Min {
		h.Max = h.Min + 1
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(h)

	return p, nil
}

// HeatMap saves a heat map of g to path. The extension selects the format:
// png, svg, pdf, eps, jpg/jpeg or tif/tiff.
func HeatMap(g Grid, path string, opts HeatMapOptions) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !supportedFormats[ext] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	p, err := NewHeatMapPlot(g, opts)
	if err != nil {
		return err
	}
	opts = opts.withDefaults()
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("save heat map %s: %w", path, err)
	}
	return nil
}
