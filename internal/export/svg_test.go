package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/lifesim/internal/life"
)

func TestGridToSVG(t *testing.T) {
	g := life.NewGrid(4)
	g.Set(1, 2, true)
	g.Set(3, 0, true)

	svg := GridToSVG(g, 10)

	if !strings.HasPrefix(svg, "<?xml") {
		t.Error("missing xml header")
	}
	if !strings.Contains(svg, `width="40" height="40"`) {
		t.Error("expected a 40px document for a 4 cell board at scale 10")
	}
	if n := strings.Count(svg, "<rect x="); n != 2 {
		t.Errorf("expected 2 cell rects, got %d", n)
	}
	if !strings.Contains(svg, `<rect x="10.0" y="20.0" width="10.0" height="10.0"/>`) {
		t.Error("missing rect for cell (1,2)")
	}
}

func TestGridToSVG_Nil(t *testing.T) {
	if GridToSVG(nil, 1) != "" {
		t.Error("expected empty output for nil grid")
	}
}

func TestWriteSVG(t *testing.T) {
	g := life.NewGrid(3)
	g.Set(0, 0, true)

	var buf bytes.Buffer
	if err := WriteSVG("-", &buf, g, 2); err != nil {
		t.Fatalf("write to stdout failed: %v", err)
	}
	if !strings.Contains(buf.String(), "</svg>") {
		t.Error("incomplete document written")
	}

	path := filepath.Join(t.TempDir(), "frame.svg")
	if err := WriteSVG(path, nil, g, 2); err != nil {
		t.Fatalf("write to file failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != buf.String() {
		t.Error("file and stream output differ")
	}
}
