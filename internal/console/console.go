package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/sim"
)

const (
	clearScreen = "\033[2J"
	cursorHome  = "\033[1;1H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Renderer prints generations to a terminal using ANSI escape sequences.
type Renderer struct {
	out     io.Writer
	tick    time.Duration
	workers int
	status  bool
}

func NewRenderer(out io.Writer, tick time.Duration, workers int) *Renderer {
	return &Renderer{out: out, tick: tick, workers: workers}
}

// WithStatus adds a generation/population line under each frame.
func (r *Renderer) WithStatus() *Renderer {
	r.status = true
	return r
}

// Run prints the starting board, then steps, clears and reprints it once
// per tick until ctx is done. Write failures end the loop.
func (r *Renderer) Run(ctx context.Context, g *life.Grid) error {
	if _, err := fmt.Fprint(r.out, hideCursor); err != nil {
		return err
	}
	defer fmt.Fprint(r.out, showCursor)

	if err := r.frame(g, false); err != nil {
		return err
	}

	s := sim.New(g)
	return s.RunWithCallback(ctx, r.tick, r.workers, func(g *life.Grid) (bool, error) {
		return true, r.frame(g, true)
	})
}

func (r *Renderer) frame(g *life.Grid, clear bool) error {
	var prefix string
	if clear {
		prefix = clearScreen + cursorHome
	}
	if _, err := fmt.Fprint(r.out, prefix, g.Render()); err != nil {
		return err
	}
	if r.status {
		if _, err := fmt.Fprintf(r.out, "generation %d  population %d\n", g.Generation(), g.Population()); err != nil {
			return err
		}
	}
	return nil
}
