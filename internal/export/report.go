package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/lifesim/internal/sim"
)

type RunData struct {
	Seed        int64              `json:"seed"`
	Generations int                `json:"generations"`
	Population  []float64          `json:"population"`
	Metrics     map[string]float64 `json:"metrics"`
	ElapsedMS   float64            `json:"elapsed_ms"`
}

// Report is the JSON summary written by `lifesim stats --json`.
type Report struct {
	Size        int                `json:"size"`
	Density     float64            `json:"density"`
	Generations int                `json:"generations"`
	Runs        []RunData          `json:"runs"`
	Mean        map[string]float64 `json:"mean"`
}

func NewReport(size int, density float64, generations int, seedStart int64, results []*sim.Result) *Report {
	r := &Report{
		Size:        size,
		Density:     density,
		Generations: generations,
		Runs:        make([]RunData, len(results)),
		Mean:        sim.MeanMetrics(results),
	}

	for i, res := range results {
		r.Runs[i] = RunData{
			Seed:        seedStart + int64(i),
			Generations: res.Generations,
			Population:  res.Population,
			Metrics:     res.Metrics,
			ElapsedMS:   float64(res.Elapsed.Microseconds()) / 1000,
		}
	}
	return r
}

// WriteJSON encodes report to path, or to w when path is "-".
func WriteJSON(path string, w io.Writer, report *Report) error {
	if path != "-" {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
