package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/lifesim/internal/life"
)

type Simulator struct {
	grid      *life.Grid
	metrics   []Metric
	observers []Observer
}

func New(g *life.Grid) *Simulator {
	return &Simulator{
		grid:      g,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) Grid() *life.Grid       { return s.grid }
func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run steps the grid cfg.Generations times. The initial board and every
// generation after it are observed, so Population has Generations+1 entries.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Population: make([]float64, 0, cfg.Generations+1),
		Metrics:    make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	start := time.Now()
	s.observe(result)

	for i := 0; i < cfg.Generations; i++ {
		select {
		case <-ctx.Done():
			result.Elapsed = time.Since(start)
			return result, &life.GenerationError{Generation: s.grid.Generation(), Wrapped: ctx.Err()}
		default:
		}

		s.step(cfg.Workers)
		result.Generations++
		s.observe(result)
	}

	result.Elapsed = time.Since(start)
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) observe(result *Result) {
	result.Population = append(result.Population, float64(s.grid.Population()))
	for _, m := range s.metrics {
		m.Observe(s.grid)
	}
	for _, obs := range s.observers {
		obs.OnGeneration(s.grid)
	}
}

func (s *Simulator) step(workers int) {
	if workers > 1 {
		s.grid.StepParallel(workers)
		return
	}
	s.grid.Step()
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Generations <= 0 {
		return fmt.Errorf("%w, got %d", life.ErrInvalidGenerations, cfg.Generations)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	return nil
}

// RunWithCallback steps the grid once per tick until ctx is done or the
// callback returns false. The callback sees the board after each step.
// A canceled context is a normal stop and returns nil.
func (s *Simulator) RunWithCallback(ctx context.Context, tick time.Duration, workers int, callback func(g *life.Grid) (bool, error)) error {
	if tick <= 0 {
		return fmt.Errorf("%w, got %v", life.ErrInvalidTick, tick)
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		s.step(workers)
		for _, obs := range s.observers {
			obs.OnGeneration(s.grid)
		}

		cont, err := callback(s.grid)
		if err != nil {
			return &life.GenerationError{Generation: s.grid.Generation(), Wrapped: err}
		}
		if !cont || ctx.Err() != nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
