package sim

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/lifesim/internal/life"
)

// Ensemble runs independent random boards with consecutive seeds.
type Ensemble struct {
	size       int
	density    float64
	numRuns    int
	seedStart  int64
	newMetrics func() []Metric
}

func NewEnsemble(size int, density float64, numRuns int, seedStart int64, newMetrics func() []Metric) *Ensemble {
	return &Ensemble{
		size:       size,
		density:    density,
		numRuns:    numRuns,
		seedStart:  seedStart,
		newMetrics: newMetrics,
	}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)

	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < e.numRuns; i++ {
		idx := i
		eg.Go(func() error {
			g := life.NewGrid(e.size)
			g.Seed(e.seedStart + int64(idx))
			g.Init(e.density)

			s := New(g)
			if e.newMetrics != nil {
				for _, m := range e.newMetrics() {
					s.AddMetric(m)
				}
			}

			cfgCopy := cfg
			cfgCopy.Seed = e.seedStart + int64(idx)

			res, err := s.Run(ctx, cfgCopy)
			if err != nil {
				return err
			}
			results[idx] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// MeanMetrics averages each named metric across results.
func MeanMetrics(results []*Result) map[string]float64 {
	out := make(map[string]float64)
	if len(results) == 0 {
		return out
	}
	for _, r := range results {
		for name, v := range r.Metrics {
			out[name] += v
		}
	}
	for name := range out {
		out[name] /= float64(len(results))
	}
	return out
}
