package metrics

import "github.com/san-kum/lifesim/internal/life"

// Churn is the mean number of cells that changed state between consecutive
// observations.
type Churn struct {
	name    string
	prev    []bool
	changed int
	samples int
}

func NewChurn() *Churn {
	return &Churn{
		name: "churn",
	}
}

func (c *Churn) Name() string {
	return c.name
}

func (c *Churn) Observe(g *life.Grid) {
	cur := g.Snapshot()
	if c.prev != nil {
		c.changed += diff(c.prev, cur)
		c.samples++
	}
	c.prev = cur
}

func (c *Churn) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.changed) / float64(c.samples)
}

func (c *Churn) Reset() {
	c.prev = nil
	c.changed = 0
	c.samples = 0
}

func diff(a, b []bool) int {
	n := 0
	for i := range a {
		if i >= len(b) || a[i] != b[i] {
			n++
		}
	}
	return n
}
