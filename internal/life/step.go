package life

import (
	"golang.org/x/sync/errgroup"
)

// minRowsPerWorker keeps tiny boards on a single goroutine.
const minRowsPerWorker = 8

// Rule reports whether a cell is alive in the next generation. Three live
// neighbors give birth or survival, two keep the current state, anything
// else kills the cell.
func Rule(alive bool, count int) bool {
	switch count {
	case 3:
		return true
	case 2:
		return alive
	default:
		return false
	}
}

// Step advances the board by one generation. Every count is taken from the
// current generation before any alive flag changes.
func (g *Grid) Step() {
	g.countRows(0, g.size)
	g.transition()
}

// StepParallel is Step with the count pass split into row bands across
// workers. All bands finish before the transition pass starts.
func (g *Grid) StepParallel(workers int) {
	if workers <= 1 || g.size < 2*minRowsPerWorker {
		g.Step()
		return
	}
	if limit := g.size / minRowsPerWorker; workers > limit {
		workers = limit
	}
	band := (g.size + workers - 1) / workers

	var eg errgroup.Group
	for start := 0; start < g.size; start += band {
		start, end := start, start+band
		if end > g.size {
			end = g.size
		}
		eg.Go(func() error {
			g.countRows(start, end)
			return nil
		})
	}
	// countRows cannot fail
	_ = eg.Wait()

	g.transition()
}

// countRows writes AliveNeighbors for rows [start, end). It reads alive
// flags only, so bands may run concurrently.
func (g *Grid) countRows(start, end int) {
	g.forRows(start, end, func(c *Cell, x, y int) {
		sum := 0
		for _, n := range g.Neighbors(x, y) {
			if n.Alive {
				sum++
			}
		}
		c.AliveNeighbors = sum
	})
}

func (g *Grid) transition() {
	g.forEach(func(c *Cell, x, y int) {
		c.Alive = Rule(c.Alive, c.AliveNeighbors)
	})
	g.generation++
}
