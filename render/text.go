package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/floodspill/grid"
)

const (
	digits   = 10
	alphabet = 'z' - 'a' + 1
)

// Glyph returns the character that stands for mark.
func Glyph(mark int) byte {
	switch {
	case mark < 0:
		return '-'
	case mark == grid.Unvisited:
		return '#'
	case mark < digits:
		return byte('0' + mark)
	case mark < digits+alphabet:
		return byte('a' + mark - digits)
	case mark < digits+2*alphabet:
		return byte('A' + mark - digits - alphabet)
	}
	return '+'
}

// Text renders g as a header line followed by one line of glyphs per row,
// from y = SizeY-1 down to 0. A nil g renders as "null".
//
//	Mark matrix of size 3, 2.
//	12#
//	01#
func Text(g Grid) string {
	if isNil(g) {
		return "null"
	}

	var b strings.Builder
	b.Grow((g.SizeX() + 1) * (g.SizeY() + 1))
	fmt.Fprintf(&b, "Mark matrix of size %d, %d.\n", g.SizeX(), g.SizeY())
	for y := g.SizeY() - 1; y >= 0; y-- {
		for x := 0; x < g.SizeX(); x++ {
			b.WriteByte(Glyph(g.Get(x, y)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
