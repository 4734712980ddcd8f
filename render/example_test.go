package render_test

import (
	"fmt"

	"github.com/katalvlaran/floodspill/flood"
	"github.com/katalvlaran/floodspill/grid"
	"github.com/katalvlaran/floodspill/render"
)

// ExampleText floods a walled 6×4 room from its bottom-left corner with
// 4-connectivity; the wall column stays '#'.
func ExampleText() {
	walls, _ := grid.ParseTerrain([]string{
		"..#...",
		"..#...",
		"..#...",
		"......",
	})
	marks, _ := grid.NewMarkMatrix(6, 4)
	p := flood.NewParameters(0, 0,
		flood.WithConnectivity(flood.Conn4),
		flood.WithQualifier(walls.Walkable),
	)
	if _, err := flood.SpillFlood(p, marks); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(render.Text(marks))
	// Output:
	// Mark matrix of size 6, 4.
	// 34#678
	// 23#567
	// 12#456
	// 012345
}
