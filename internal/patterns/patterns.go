package patterns

import (
	"fmt"
	"sort"

	"github.com/san-kum/lifesim/internal/life"
)

// Pattern is a named set of live cells relative to its top-left corner.
type Pattern struct {
	Name   string
	Period int // 1 for still lifes, 0 when the shape does not repeat in place
	Cells  []life.Point
}

// Bounds returns the width and height of the pattern's bounding box.
func (p Pattern) Bounds() (int, int) {
	w, h := 0, 0
	for _, c := range p.Cells {
		if c.X+1 > w {
			w = c.X + 1
		}
		if c.Y+1 > h {
			h = c.Y + 1
		}
	}
	return w, h
}

// Place stamps the pattern onto g with its corner at (x, y). Cells past the
// edge wrap around.
func (p Pattern) Place(g *life.Grid, x, y int) error {
	w, h := p.Bounds()
	if w > g.Size() || h > g.Size() {
		return fmt.Errorf("%s is %dx%d on a %d grid: %w", p.Name, w, h, g.Size(), life.ErrPatternBounds)
	}
	for _, c := range p.Cells {
		g.Set(x+c.X, y+c.Y, true)
	}
	return nil
}

// PlaceCentered clears g and stamps the pattern in the middle of it.
func (p Pattern) PlaceCentered(g *life.Grid) error {
	w, h := p.Bounds()
	g.Clear()
	return p.Place(g, (g.Size()-w)/2, (g.Size()-h)/2)
}

func pts(xy ...int) []life.Point {
	out := make([]life.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, life.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

var registry = map[string]Pattern{
	"block":       {Name: "block", Period: 1, Cells: pts(0, 0, 1, 0, 0, 1, 1, 1)},
	"beehive":     {Name: "beehive", Period: 1, Cells: pts(1, 0, 2, 0, 0, 1, 3, 1, 1, 2, 2, 2)},
	"blinker":     {Name: "blinker", Period: 2, Cells: pts(0, 0, 1, 0, 2, 0)},
	"toad":        {Name: "toad", Period: 2, Cells: pts(1, 0, 2, 0, 3, 0, 0, 1, 1, 1, 2, 1)},
	"beacon":      {Name: "beacon", Period: 2, Cells: pts(0, 0, 1, 0, 0, 1, 3, 2, 2, 3, 3, 3)},
	"glider":      {Name: "glider", Cells: pts(1, 0, 2, 1, 0, 2, 1, 2, 2, 2)},
	"r-pentomino": {Name: "r-pentomino", Cells: pts(1, 0, 2, 0, 0, 1, 1, 1, 1, 2)},
}

// Get returns the pattern registered under name.
func Get(name string) (Pattern, error) {
	p, ok := registry[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %s (available: %v)", life.ErrUnknownPattern, name, List())
	}
	return p, nil
}

// List returns the registered pattern names in sorted order.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
