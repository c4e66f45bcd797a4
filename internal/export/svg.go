package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/lifesim/internal/life"
)

// GridToSVG draws the current generation as an SVG document with one square
// per live cell, each scale pixels wide.
func GridToSVG(g *life.Grid, scale float64) string {
	if g == nil {
		return ""
	}
	if scale <= 0 {
		scale = 1
	}

	side := float64(g.Size()) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<title>generation %d</title>
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, side, side, side, side, g.Generation()))

	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			if !g.Alive(x, y) {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, float64(x)*scale, float64(y)*scale, scale, scale))
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// WriteSVG writes GridToSVG(g, scale) to path, or to w when path is "-".
func WriteSVG(path string, w io.Writer, g *life.Grid, scale float64) error {
	doc := GridToSVG(g, scale)
	if path == "-" {
		_, err := io.WriteString(w, doc)
		return err
	}
	return os.WriteFile(path, []byte(doc), 0644)
}
