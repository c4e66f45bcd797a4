// Package life implements Conway's Game of Life on a square toroidal grid.
//
// The package owns the whole simulation core:
//
//   - [Grid]: fixed-size board of [Cell] values with wraparound addressing
//   - [Grid.Init]: random population from a single shared source
//   - [Grid.Step]: one generation in two passes (count, then transition)
//   - [Grid.Render]: text frame, 'X' for live cells and ' ' for dead ones
//
// # Example
//
//	g := life.NewGrid(life.Size)
//	g.Init(life.Density)
//	for {
//	    g.Step()
//	    fmt.Print(g.Render())
//	}
//
// # Thread Safety
//
// Grid instances are NOT safe for concurrent use. [Grid.StepParallel] fans
// the count pass out internally and joins it before any cell is mutated.
package life
