package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

const (
	iconSuccess = "✓"
	iconStop    = "■"
	iconInfo    = "›"
)

// printer writes styled status lines to one output. Styles are bound to a
// renderer on that output, so a redirected output gets plain text.
type printer struct {
	w        io.Writer
	renderer *lipgloss.Renderer

	title   lipgloss.Style
	success lipgloss.Style
	stop    lipgloss.Style
	info    lipgloss.Style
	key     lipgloss.Style
	value   lipgloss.Style
	dim     lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:        w,
		renderer: r,
		title:    r.NewStyle().Bold(true).Foreground(colorCyan),
		success:  r.NewStyle().Foreground(colorGreen),
		stop:     r.NewStyle().Foreground(colorRed),
		info:     r.NewStyle().Foreground(colorGray),
		key:      r.NewStyle().Foreground(colorGray).Width(14),
		value:    r.NewStyle().Foreground(colorWhite),
		dim:      r.NewStyle().Foreground(colorDim),
	}
}

func (p *printer) printTitle(format string, args ...any) {
	fmt.Fprintln(p.w, p.title.Render(fmt.Sprintf(format, args...)))
}

func (p *printer) printSuccess(format string, args ...any) {
	fmt.Fprintln(p.w, p.success.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func (p *printer) printStopped(format string, args ...any) {
	fmt.Fprintln(p.w, p.stop.Render(iconStop)+" "+fmt.Sprintf(format, args...))
}

func (p *printer) printInfo(format string, args ...any) {
	fmt.Fprintln(p.w, p.info.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printKeyValue prints an indented, aligned "key value" line.
func (p *printer) printKeyValue(key, value string) {
	fmt.Fprintln(p.w, "  "+p.key.Render(key)+" "+p.value.Render(value))
}

func (p *printer) printDetail(format string, args ...any) {
	fmt.Fprintln(p.w, "  "+p.dim.Render(fmt.Sprintf(format, args...)))
}
