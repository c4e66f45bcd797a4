package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/lifesim/internal/sim"
)

func sampleResults() []*sim.Result {
	return []*sim.Result{
		{Generations: 2, Population: []float64{3, 3, 3}, Metrics: map[string]float64{"population": 3}, Elapsed: 2 * time.Millisecond},
		{Generations: 2, Population: []float64{5, 4, 3}, Metrics: map[string]float64{"population": 4}, Elapsed: time.Millisecond},
	}
}

func TestNewReport(t *testing.T) {
	r := NewReport(50, 0.42, 2, 10, sampleResults())

	if len(r.Runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(r.Runs))
	}
	if r.Runs[1].Seed != 11 {
		t.Errorf("expected seed 11 for second run, got %d", r.Runs[1].Seed)
	}
	if r.Runs[0].ElapsedMS != 2 {
		t.Errorf("expected 2ms, got %v", r.Runs[0].ElapsedMS)
	}
	if r.Mean["population"] != 3.5 {
		t.Errorf("expected mean population 3.5, got %v", r.Mean["population"])
	}
}

func TestWriteJSONStdout(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON("-", &buf, NewReport(50, 0.42, 2, 1, sampleResults())); err != nil {
		t.Fatal(err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded.Size != 50 || len(decoded.Runs) != 2 {
		t.Errorf("unexpected report: %+v", decoded)
	}
}

func TestWriteJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	if err := WriteJSON(path, nil, NewReport(50, 0.42, 2, 1, sampleResults())); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("report file was not created")
	}
}

func TestWriteJSONBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "stats.json")
	if err := WriteJSON(path, nil, NewReport(50, 0.42, 2, 1, nil)); err == nil {
		t.Error("expected error for missing directory")
	}
}
