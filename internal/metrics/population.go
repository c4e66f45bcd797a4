package metrics

import "github.com/san-kum/lifesim/internal/life"

// Population is the mean number of live cells across observed generations.
type Population struct {
	name    string
	sum     float64
	samples int
}

func NewPopulation() *Population {
	return &Population{
		name: "population",
	}
}

func (p *Population) Name() string {
	return p.name
}

func (p *Population) Observe(g *life.Grid) {
	p.sum += float64(g.Population())
	p.samples++
}

func (p *Population) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return p.sum / float64(p.samples)
}

func (p *Population) Reset() {
	p.sum = 0
	p.samples = 0
}
