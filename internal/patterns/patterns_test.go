package patterns

import (
	"errors"
	"testing"

	"github.com/san-kum/lifesim/internal/life"
)

func TestGet(t *testing.T) {
	p, err := Get("glider")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(p.Cells) != 5 {
		t.Errorf("expected 5 glider cells, got %d", len(p.Cells))
	}
}

func TestGet_NotFound(t *testing.T) {
	_, err := Get("nonexistent")
	if !errors.Is(err, life.ErrUnknownPattern) {
		t.Errorf("expected ErrUnknownPattern, got %v", err)
	}
}

func TestList(t *testing.T) {
	names := List()
	if len(names) != len(registry) {
		t.Fatalf("expected %d names, got %d", len(registry), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"block", 2, 2},
		{"blinker", 3, 1},
		{"beacon", 4, 4},
		{"glider", 3, 3},
	}

	for _, tt := range tests {
		p, _ := Get(tt.name)
		w, h := p.Bounds()
		if w != tt.w || h != tt.h {
			t.Errorf("%s: Bounds() = %dx%d, want %dx%d", tt.name, w, h, tt.w, tt.h)
		}
	}
}

func TestPlace_Wraps(t *testing.T) {
	g := life.NewGrid(10)
	p, _ := Get("blinker")

	if err := p.Place(g, 9, 0); err != nil {
		t.Fatalf("place failed: %v", err)
	}
	for _, x := range []int{9, 0, 1} {
		if !g.Alive(x, 0) {
			t.Errorf("expected (%d,0) alive after wrapped placement", x)
		}
	}
}

func TestPlace_TooLarge(t *testing.T) {
	g := life.NewGrid(3)
	p, _ := Get("beacon")

	err := p.Place(g, 0, 0)
	if !errors.Is(err, life.ErrPatternBounds) {
		t.Errorf("expected ErrPatternBounds, got %v", err)
	}
}

func TestPeriods(t *testing.T) {
	for _, name := range List() {
		p, _ := Get(name)
		if p.Period == 0 {
			continue
		}

		g := life.NewGrid(life.Size)
		if err := p.PlaceCentered(g); err != nil {
			t.Fatalf("%s: place failed: %v", name, err)
		}
		start := g.Render()

		for i := 0; i < p.Period; i++ {
			g.Step()
		}
		if g.Render() != start {
			t.Errorf("%s does not repeat after %d generations", name, p.Period)
		}
		if p.Period > 1 {
			g.Step()
			if g.Render() == start {
				t.Errorf("%s repeated after %d generations, expected period %d", name, p.Period+1, p.Period)
			}
		}
	}
}
