package flood_test

import (
	"testing"

	"github.com/katalvlaran/floodspill/flood"
	"github.com/katalvlaran/floodspill/grid"
	"github.com/katalvlaran/floodspill/queue"
)

// benchTerrains mirrors the three classic area layouts: open, blocked by
// circles (about half of the cells) and sparse pillars (one ninth).
func benchTerrains(b *testing.B, size int) map[string]*grid.Terrain {
	b.Helper()
	open, err := grid.NewTerrain(size, size)
	if err != nil {
		b.Fatal(err)
	}
	circles, err := grid.CirclesTerrain(size, 20, 8)
	if err != nil {
		b.Fatal(err)
	}
	pillars, err := grid.PillarsTerrain(size)
	if err != nil {
		b.Fatal(err)
	}
	return map[string]*grid.Terrain{"Open": open, "Circles": circles, "Pillars": pillars}
}

// BenchmarkSpillFlood_Terrains floods a 200×200 area from its middle with
// both engines, FIFO frontier.
func BenchmarkSpillFlood_Terrains(b *testing.B) {
	const size = 200
	for name, tr := range benchTerrains(b, size) {
		for _, sp := range spillers {
			b.Run(name+"/"+sp.name, func(b *testing.B) {
				marks, _ := grid.NewMarkMatrix(size, size)
				b.ReportAllocs()
				b.SetBytes(int64(size * size))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					p := flood.NewParameters(size/2, size/2, flood.WithQualifier(tr.Walkable))
					_, _ = sp.spiller.SpillFlood(p, marks)
				}
			})
		}
	}
}

// BenchmarkSpillFlood_Frontiers compares the three frontier strategies on an
// open 100×100 field with 4-connectivity.
func BenchmarkSpillFlood_Frontiers(b *testing.B) {
	const size = 100
	for name, newFrontier := range frontiers {
		for _, sp := range spillers {
			b.Run(name+"/"+sp.name, func(b *testing.B) {
				marks, _ := grid.NewMarkMatrix(size, size)
				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					p := flood.NewParameters(size/2, size/2,
						flood.WithFrontier(newFrontier()),
						flood.WithConnectivity(flood.Conn4),
					)
					_, _ = sp.spiller.SpillFlood(p, marks)
				}
			})
		}
	}
}

// BenchmarkSpillFlood_HookOverhead measures the cost of all four hooks on an
// open 100×100 field.
func BenchmarkSpillFlood_HookOverhead(b *testing.B) {
	const size = 100
	marks, _ := grid.NewMarkMatrix(size, size)
	visited, processed := 0, 0
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := flood.NewParameters(0, 0,
			flood.WithFrontier(queue.NewLIFO()),
			flood.WithNeighborProcessor(func(int, int, int) { processed++ }),
			flood.WithNeighborStop(func(int, int) bool { return false }),
			flood.WithSpreadingVisitor(func(int, int) { visited++ }),
			flood.WithSpreadingStop(func(int, int) bool { return false }),
		)
		_, _ = flood.SpillFlood(p, marks)
	}
	_ = visited + processed
}
