package life

import "strings"

const (
	aliveGlyph = 'X'
	deadGlyph  = ' '
)

// Render draws the board top to bottom, left to right, one line per row.
func (g *Grid) Render() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	g.forEach(func(c *Cell, x, y int) {
		if c.Alive {
			b.WriteByte(aliveGlyph)
		} else {
			b.WriteByte(deadGlyph)
		}
		if x == g.size-1 {
			b.WriteByte('\n')
		}
	})
	return b.String()
}

func (g *Grid) String() string { return g.Render() }
