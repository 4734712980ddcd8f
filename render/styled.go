package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/floodspill/grid"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorWhite  = lipgloss.Color("255")
	colorDim    = lipgloss.Color("240")
)

// Styler renders glyphs colored by mark band:
// start (0) bold white, digits cyan, lowercase green, uppercase amber,
// '+' and negatives red, unvisited dim.
type Styler struct {
	header    lipgloss.Style
	start     lipgloss.Style
	near      lipgloss.Style
	mid       lipgloss.Style
	far       lipgloss.Style
	beyond    lipgloss.Style
	unvisited lipgloss.Style
}

// NewStyler builds a Styler on r, or on the default renderer if r is nil.
// The renderer decides the color profile; a non-terminal output gets plain text.
func NewStyler(r *lipgloss.Renderer) *Styler {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Styler{
		header:    r.NewStyle().Bold(true).Foreground(colorCyan),
		start:     r.NewStyle().Bold(true).Foreground(colorWhite),
		near:      r.NewStyle().Foreground(colorCyan),
		mid:       r.NewStyle().Foreground(colorGreen),
		far:       r.NewStyle().Foreground(colorYellow),
		beyond:    r.NewStyle().Foreground(colorRed),
		unvisited: r.NewStyle().Foreground(colorDim),
	}
}

// style picks the band of mark.
func (s *Styler) style(mark int) lipgloss.Style {
	switch {
	case mark == grid.Unvisited:
		return s.unvisited
	case mark == 0:
		return s.start
	case mark < 0:
		return s.beyond
	case mark < digits:
		return s.near
	case mark < digits+alphabet:
		return s.mid
	case mark < digits+2*alphabet:
		return s.far
	}
	return s.beyond
}

// Render lays g out like Text, with every glyph styled. Runs of cells in the
// same band share one styled segment.
func (s *Styler) Render(g Grid) string {
	if isNil(g) {
		return "null"
	}

	var b strings.Builder
	b.WriteString(s.header.Render(fmt.Sprintf("Mark matrix of size %d, %d.", g.SizeX(), g.SizeY())))
	b.WriteByte('\n')

	run := make([]byte, 0, g.SizeX())
	for y := g.SizeY() - 1; y >= 0; y-- {
		var band lipgloss.Style
		for x := 0; x < g.SizeX(); x++ {
			mark := g.Get(x, y)
			st := s.style(mark)
			if len(run) > 0 && !sameBand(st, band) {
				b.WriteString(band.Render(string(run)))
				run = run[:0]
			}
			band = st
			run = append(run, Glyph(mark))
		}
		if len(run) > 0 {
			b.WriteString(band.Render(string(run)))
			run = run[:0]
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// sameBand compares two band styles by their foreground and weight.
func sameBand(a, b lipgloss.Style) bool {
	return a.GetForeground() == b.GetForeground() && a.GetBold() == b.GetBold()
}

// Styled renders g with a Styler on the default renderer.
func Styled(g Grid) string {
	return NewStyler(nil).Render(g)
}
