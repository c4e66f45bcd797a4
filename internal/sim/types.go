package sim

import (
	"time"

	"github.com/san-kum/lifesim/internal/life"
)

type Metric interface {
	Name() string
	Observe(g *life.Grid)
	Value() float64
	Reset()
}

type Observer interface {
	OnGeneration(g *life.Grid)
}

type Config struct {
	Generations int
	Workers     int
	Seed        int64
}

func DefaultConfig() Config {
	return Config{
		Generations: 500,
		Workers:     1,
	}
}

type Result struct {
	Generations int
	Population  []float64
	Metrics     map[string]float64
	Elapsed     time.Duration
}

// FinalPopulation returns the live count after the last generation.
func (r *Result) FinalPopulation() int {
	if len(r.Population) == 0 {
		return 0
	}
	return int(r.Population[len(r.Population)-1])
}

// Rate returns generations per second.
func (r *Result) Rate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Generations) / r.Elapsed.Seconds()
}
