package life_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifesim/internal/life"
)

// centered builds a board with (5,5) set to alive and the first n of its
// neighbors alive.
func centered(alive bool, n int) *life.Grid {
	g := life.NewGrid(11)
	g.Set(5, 5, alive)
	for i, p := range g.NeighborPositions(5, 5) {
		if i >= n {
			break
		}
		g.Set(p.X, p.Y, true)
	}
	return g
}

func liveSet(g *life.Grid) map[life.Point]bool {
	out := make(map[life.Point]bool)
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			if g.Alive(x, y) {
				out[life.Point{X: x, Y: y}] = true
			}
		}
	}
	return out
}

func points(ps ...life.Point) map[life.Point]bool {
	out := make(map[life.Point]bool, len(ps))
	for _, p := range ps {
		out[p] = true
	}
	return out
}

var _ = Describe("Rule", func() {
	DescribeTable("next state",
		func(alive bool, count int, want bool) {
			Expect(life.Rule(alive, count)).To(Equal(want))
		},
		Entry("dead, 3 neighbors is born", false, 3, true),
		Entry("dead, 2 neighbors stays dead", false, 2, false),
		Entry("live, 2 neighbors survives", true, 2, true),
		Entry("live, 3 neighbors survives", true, 3, true),
		Entry("live, 1 neighbor dies", true, 1, false),
		Entry("live, 4 neighbors dies", true, 4, false),
	)
})

var _ = Describe("Step", func() {
	Context("with a single controlled cell", func() {
		It("brings a dead cell with exactly 3 live neighbors to life", func() {
			g := centered(false, 3)
			g.Step()
			Expect(g.Alive(5, 5)).To(BeTrue())
		})

		DescribeTable("a live cell survives",
			func(n int) {
				g := centered(true, n)
				g.Step()
				Expect(g.Alive(5, 5)).To(BeTrue())
			},
			Entry("with 2 neighbors", 2),
			Entry("with 3 neighbors", 3),
		)

		DescribeTable("a live cell dies",
			func(n int) {
				g := centered(true, n)
				g.Step()
				Expect(g.Alive(5, 5)).To(BeFalse())
			},
			Entry("with 0 neighbors", 0),
			Entry("with 1 neighbor", 1),
			Entry("with 4 neighbors", 4),
			Entry("with 5 neighbors", 5),
			Entry("with 6 neighbors", 6),
			Entry("with 7 neighbors", 7),
			Entry("with 8 neighbors", 8),
		)

		DescribeTable("a dead cell stays dead",
			func(n int) {
				g := centered(false, n)
				g.Step()
				Expect(g.Alive(5, 5)).To(BeFalse())
			},
			Entry("with 0 neighbors", 0),
			Entry("with 1 neighbor", 1),
			Entry("with 2 neighbors", 2),
			Entry("with 4 neighbors", 4),
			Entry("with 5 neighbors", 5),
			Entry("with 6 neighbors", 6),
			Entry("with 7 neighbors", 7),
			Entry("with 8 neighbors", 8),
		)
	})

	Context("with a 2x2 block", func() {
		var g *life.Grid

		BeforeEach(func() {
			g = life.NewGrid(life.Size)
			for _, p := range []life.Point{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 10, Y: 11}, {X: 11, Y: 11}} {
				g.Set(p.X, p.Y, true)
			}
		})

		It("is a still life", func() {
			before := g.Render()
			g.Step()
			Expect(g.Render()).To(Equal(before))
			Expect(g.Cell(10, 10).AliveNeighbors).To(Equal(3))
		})

		It("stays still across the wrapped corner", func() {
			g.Clear()
			last := life.Size - 1
			for _, p := range []life.Point{{X: last, Y: last}, {X: 0, Y: last}, {X: last, Y: 0}, {X: 0, Y: 0}} {
				g.Set(p.X, p.Y, true)
			}
			before := g.Render()
			g.Step()
			Expect(g.Render()).To(Equal(before))
		})
	})

	Context("with a horizontal blinker", func() {
		var g *life.Grid
		horizontal := points(life.Point{X: 4, Y: 5}, life.Point{X: 5, Y: 5}, life.Point{X: 6, Y: 5})
		vertical := points(life.Point{X: 5, Y: 4}, life.Point{X: 5, Y: 5}, life.Point{X: 5, Y: 6})

		BeforeEach(func() {
			g = life.NewGrid(life.Size)
			for p := range horizontal {
				g.Set(p.X, p.Y, true)
			}
		})

		It("turns vertical around the same middle cell", func() {
			g.Step()
			Expect(liveSet(g)).To(Equal(vertical))
		})

		It("has period 2", func() {
			g.Step()
			g.Step()
			Expect(liveSet(g)).To(Equal(horizontal))
			Expect(g.Generation()).To(Equal(2))
		})

		It("oscillates the same way when stepped in parallel", func() {
			g.StepParallel(4)
			Expect(liveSet(g)).To(Equal(vertical))
			g.StepParallel(4)
			Expect(liveSet(g)).To(Equal(horizontal))
		})
	})

	Context("with a glider on a small torus", func() {
		It("returns to its start after crossing every edge", func() {
			g := life.NewGrid(8)
			for _, p := range []life.Point{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}} {
				g.Set(p.X, p.Y, true)
			}
			start := g.Render()

			// a glider moves one cell diagonally every 4 generations
			for i := 0; i < 4*8; i++ {
				g.Step()
			}
			Expect(g.Render()).To(Equal(start))
			Expect(g.Population()).To(Equal(5))
		})
	})

	It("is deterministic for equal boards", func() {
		a := life.NewGrid(life.Size)
		a.Seed(11)
		a.Init(life.Density)
		b := life.NewGrid(life.Size)
		b.Restore(a.Snapshot())

		for i := 0; i < 10; i++ {
			a.Step()
			b.Step()
		}
		Expect(b.Snapshot()).To(Equal(a.Snapshot()))
	})
})
