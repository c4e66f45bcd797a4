package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lifesim/internal/life"
)

const historyCapacity = 120

type TickMsg time.Time

// Model contains the board, its population history and UI context.
type Model struct {
	grid     *life.Grid
	initial  []bool
	tick     time.Duration
	workers  int
	running  bool
	compact  bool
	showHelp bool
	theme    int
	styles   styles
	canvas   *Canvas
	history  []float64
}

// NewModel wraps g. The board as it is now is what R restores.
func NewModel(g *life.Grid, tick time.Duration, workers int) Model {
	m := Model{
		grid:    g,
		initial: g.Snapshot(),
		tick:    tick,
		workers: workers,
		running: true,
		styles:  newStyles(Themes[0]),
		canvas:  NewCanvas(g.Size(), g.Size()),
		history: make([]float64, 0, historyCapacity),
	}
	m.record()
	return m
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles input events and steps the board.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.step()
			}
		case "r":
			m.grid.Restore(m.initial)
			m.resetHistory()
		case "s":
			m.grid.Init(life.Density)
			m.initial = m.grid.Snapshot()
			m.resetHistory()
		case "b":
			m.compact = !m.compact
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
			m.styles = newStyles(Themes[m.theme])
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m *Model) step() {
	if m.workers > 1 {
		m.grid.StepParallel(m.workers)
	} else {
		m.grid.Step()
	}
	m.record()
}

func (m *Model) record() {
	m.history = append(m.history, float64(m.grid.Population()))
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m *Model) resetHistory() {
	m.history = m.history[:0]
	m.record()
}

// Grid exposes the board being displayed.
func (m Model) Grid() *life.Grid { return m.grid }

// Running reports whether ticks advance the board.
func (m Model) Running() bool { return m.running }

// View renders the TUI interface.
func (m Model) View() string {
	var board string
	if m.compact {
		m.canvas.DrawGrid(m.grid)
		board = m.canvas.String()
	} else {
		board = m.grid.Render()
	}
	boardView := m.styles.board.Render(strings.TrimSuffix(board, "\n"))

	var s strings.Builder
	s.WriteString(m.styles.header.Render("GAME OF LIFE") + "\n")
	if m.running {
		s.WriteString("RUNNING\n\n")
	} else {
		s.WriteString(m.styles.paused.Render("PAUSED") + "\n\n")
	}

	pop := m.grid.Population()
	size := m.grid.Size()
	s.WriteString(m.styles.label.Render("Generation") + m.styles.value.Render(fmt.Sprintf("%d", m.grid.Generation())) + "\n")
	s.WriteString(m.styles.label.Render("Population") + m.styles.value.Render(fmt.Sprintf("%d", pop)) + "\n")
	s.WriteString(m.styles.label.Render("Density") + m.styles.value.Render(fmt.Sprintf("%.1f%%", 100*float64(pop)/float64(size*size))) + "\n")
	s.WriteString(m.styles.label.Render("Tick") + m.styles.value.Render(m.tick.String()) + "\n")
	s.WriteString(m.styles.label.Render("Theme") + m.styles.value.Render(Themes[m.theme].Name) + "\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(6), asciigraph.Width(30), asciigraph.Caption("Population"))
		s.WriteString(m.styles.graph.Render(chart) + "\n")
	}

	s.WriteString(m.styles.help.Render("─────────────────────\nSP:Pause N:Step R:Reset\nS:Reseed B:Braille T:Theme\n?:Help Q:Quit"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, boardView, m.styles.stats.Render(s.String()))

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  N        - Single step (paused)     ║
║  R        - Restore starting board   ║
║  S        - Reseed random board      ║
║  B        - Toggle Braille view      ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n" + mainView
	}
	return mainView
}

// Run starts a full-screen Bubble Tea program for g.
func Run(g *life.Grid, tick time.Duration, workers int) error {
	p := tea.NewProgram(NewModel(g, tick, workers), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
