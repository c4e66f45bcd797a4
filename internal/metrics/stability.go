package metrics

import "github.com/san-kum/lifesim/internal/life"

// Stability is the fraction of observed transitions that left the board
// unchanged. A board that has settled into still lifes scores 1.
type Stability struct {
	name    string
	prev    []bool
	still   int
	samples int
}

func NewStability() *Stability {
	return &Stability{
		name: "stability",
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(g *life.Grid) {
	cur := g.Snapshot()
	if s.prev != nil {
		if diff(s.prev, cur) == 0 {
			s.still++
		}
		s.samples++
	}
	s.prev = cur
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return float64(s.still) / float64(s.samples)
}

func (s *Stability) Reset() {
	s.prev = nil
	s.still = 0
	s.samples = 0
}
