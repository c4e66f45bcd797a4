package life

import (
	"math/rand"
	"time"
)

const (
	// Size is the side length of the board.
	Size = 50
	// Density is the probability that Init makes a cell alive.
	Density = 0.42
)

// Cell is one board position. AliveNeighbors holds the count computed by the
// last Step and is in 0..8.
type Cell struct {
	Alive          bool
	AliveNeighbors int
}

// Point is a board coordinate.
type Point struct {
	X, Y int
}

type Grid struct {
	size       int
	cells      [][]Cell
	rng        *rand.Rand
	generation int
}

// NewGrid allocates a size×size board with every cell dead.
func NewGrid(size int) *Grid {
	if size < 1 {
		size = 1
	}
	cells := make([][]Cell, size)
	for y := range cells {
		cells[y] = make([]Cell, size)
	}
	return &Grid{
		size:  size,
		cells: cells,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed resets the shared random source used by Init.
func (g *Grid) Seed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Init draws one value in [0,1) per cell and makes the cell alive when the
// draw is below density.
func (g *Grid) Init(density float64) {
	g.forEach(func(c *Cell, x, y int) {
		c.Alive = g.rng.Float64() < density
		c.AliveNeighbors = 0
	})
	g.generation = 0
}

func (g *Grid) Size() int       { return g.size }
func (g *Grid) Generation() int { return g.generation }

func (g *Grid) wrap(v int) int {
	return (v%g.size + g.size) % g.size
}

// Cell returns the cell at (x, y) after wrapping both coordinates.
func (g *Grid) Cell(x, y int) *Cell {
	return &g.cells[g.wrap(y)][g.wrap(x)]
}

func (g *Grid) Alive(x, y int) bool {
	return g.Cell(x, y).Alive
}

func (g *Grid) Set(x, y int, alive bool) {
	g.Cell(x, y).Alive = alive
}

// Clear kills every cell and resets the generation counter.
func (g *Grid) Clear() {
	g.forEach(func(c *Cell, x, y int) {
		*c = Cell{}
	})
	g.generation = 0
}

func (g *Grid) Population() int {
	n := 0
	g.forEach(func(c *Cell, x, y int) {
		if c.Alive {
			n++
		}
	})
	return n
}

// Snapshot copies the alive flags in row-major order.
func (g *Grid) Snapshot() []bool {
	s := make([]bool, 0, g.size*g.size)
	for y := range g.cells {
		for x := range g.cells[y] {
			s = append(s, g.cells[y][x].Alive)
		}
	}
	return s
}

// Restore loads alive flags produced by Snapshot and resets the generation
// counter. Extra values are ignored, missing ones leave cells dead.
func (g *Grid) Restore(s []bool) {
	g.forEach(func(c *Cell, x, y int) {
		i := y*g.size + x
		c.Alive = i < len(s) && s[i]
		c.AliveNeighbors = 0
	})
	g.generation = 0
}

// NeighborPositions lists the eight wrapped coordinates around (x, y) in
// row order: the row above, the same row, then the row below.
func (g *Grid) NeighborPositions(x, y int) [8]Point {
	l, r := g.wrap(x-1), g.wrap(x+1)
	u, d := g.wrap(y-1), g.wrap(y+1)
	x, y = g.wrap(x), g.wrap(y)
	return [8]Point{
		{l, u}, {x, u}, {r, u},
		{l, y}, {r, y},
		{l, d}, {x, d}, {r, d},
	}
}

// Neighbors returns the eight cells around (x, y) in NeighborPositions order.
func (g *Grid) Neighbors(x, y int) [8]*Cell {
	var out [8]*Cell
	for i, p := range g.NeighborPositions(x, y) {
		out[i] = &g.cells[p.Y][p.X]
	}
	return out
}

func (g *Grid) forEach(fn func(c *Cell, x, y int)) {
	g.forRows(0, g.size, fn)
}

func (g *Grid) forRows(start, end int, fn func(c *Cell, x, y int)) {
	for y := start; y < end; y++ {
		for x := 0; x < g.size; x++ {
			fn(&g.cells[y][x], x, y)
		}
	}
}
