package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/console"
	"github.com/san-kum/lifesim/internal/export"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/metrics"
	"github.com/san-kum/lifesim/internal/patterns"
	"github.com/san-kum/lifesim/internal/sim"
	"github.com/san-kum/lifesim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile  string
	preset      string
	seed        int64
	workers     int
	pattern     string
	tick        time.Duration
	status      bool
	outPath     string
	scale       float64
	jsonPath    string

	benchGenerations int
	statsGenerations int
	statsRuns        int
	svgGenerations   int
)

// main registers commands and flags and runs the console driver when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "lifesim",
		Short:        "conway's game of life on a 50x50 torus",
		SilenceUsage: true,
		RunE:         runConsole,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = current time)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", config.DefaultWorkers, "goroutines for the neighbor count pass")
	rootCmd.PersistentFlags().StringVar(&pattern, "pattern", "", "start from a named pattern instead of a random board")
	addTickFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the simulation in the console",
		Args:  cobra.NoArgs,
		RunE:  runConsole,
	}
	addTickFlags(runCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the simulation in the interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().DurationVar(&tick, "tick", config.DefaultTick, "delay between generations")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark sequential and parallel stepping",
		Args:  cobra.NoArgs,
		RunE:  benchGrid,
	}
	benchCmd.Flags().IntVar(&benchGenerations, "generations", 2000, "generations per measurement")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "run random boards and report population metrics",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&statsGenerations, "generations", config.DefaultGenerations, "generations per run")
	statsCmd.Flags().IntVar(&statsRuns, "runs", config.DefaultRuns, "number of boards")
	statsCmd.Flags().StringVar(&jsonPath, "json", "", "also write a JSON report to path (- for stdout)")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "write a generation as an SVG image",
		Args:  cobra.NoArgs,
		RunE:  exportSVG,
	}
	svgCmd.Flags().IntVar(&svgGenerations, "generations", 0, "generations to step before drawing")
	svgCmd.Flags().StringVar(&outPath, "out", "-", "output path (- for stdout)")
	svgCmd.Flags().Float64Var(&scale, "scale", 10, "pixels per cell")

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list available starting patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCELLS\tSIZE\tPERIOD")
			for _, name := range patterns.List() {
				p, err := patterns.Get(name)
				if err != nil {
					return err
				}
				bw, bh := p.Bounds()
				period := "-"
				if p.Period > 0 {
					period = fmt.Sprintf("%d", p.Period)
				}
				fmt.Fprintf(w, "%s\t%d\t%dx%d\t%s\n", p.Name, len(p.Cells), bw, bh, period)
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "presets:")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(out, "  %-12s %s tick=%v workers=%d pattern=%q\n", name, p.Mode, p.Tick, p.Workers, p.Pattern)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, tuiCmd, benchCmd, statsCmd, svgCmd, patternsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addTickFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&tick, "tick", config.DefaultTick, "delay between generations")
	cmd.Flags().BoolVar(&status, "status", false, "print generation and population under each frame")
}

// loadConfig applies, in increasing priority: defaults, preset, config file,
// explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("tick") {
		cfg.Tick = tick
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("pattern") {
		cfg.Pattern = pattern
	}
	if cmd.Name() == "stats" {
		if flags.Changed("generations") {
			cfg.Generations = statsGenerations
		}
		if flags.Changed("runs") {
			cfg.Runs = statsRuns
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	g, err := cfg.NewGrid()
	if err != nil {
		return err
	}

	if cfg.Mode == config.ModeTUI {
		return viz.Run(g, cfg.Tick, cfg.Workers)
	}

	ctx, stop := signalContext()
	defer stop()

	r := console.NewRenderer(cmd.OutOrStdout(), cfg.Tick, cfg.Workers)
	if status {
		r = r.WithStatus()
	}
	return r.Run(ctx, g)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	g, err := cfg.NewGrid()
	if err != nil {
		return err
	}

	return viz.Run(g, cfg.Tick, cfg.Workers)
}

func benchGrid(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	if benchGenerations <= 0 {
		return fmt.Errorf("%w, got %d", life.ErrInvalidGenerations, benchGenerations)
	}

	// every row of the table starts from the same board
	cfg.Seed = cfg.SeedOrNow()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking %dx%d board, %d generations\n\n", life.Size, life.Size, benchGenerations)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WORKERS\tGENERATIONS\tTIME\tGEN/SEC\tFINAL POP")

	for _, n := range []int{1, 2, 4, 6} {
		g, err := cfg.NewGrid()
		if err != nil {
			return err
		}

		result, err := sim.New(g).Run(ctx, sim.Config{Generations: benchGenerations, Workers: n})
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\t%d\n",
			n, result.Generations, result.Elapsed, result.Rate(), result.FinalPopulation())
	}

	return w.Flush()
}

func newMetrics() []sim.Metric {
	return []sim.Metric{
		metrics.NewPopulation(),
		metrics.NewChurn(),
		metrics.NewStability(),
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	out := cmd.OutOrStdout()
	seedStart := cfg.SeedOrNow()
	fmt.Fprintf(out, "running %d boards for %d generations (seeds %d..%d)\n", cfg.Runs, cfg.Generations, seedStart, seedStart+int64(cfg.Runs)-1)

	start := time.Now()
	ens := sim.NewEnsemble(life.Size, life.Density, cfg.Runs, seedStart, newMetrics)
	results, err := ens.Run(ctx, sim.Config{Generations: cfg.Generations, Workers: cfg.Workers})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "completed in %v\n", time.Since(start))

	mean := sim.MeanMetrics(results)
	names := make([]string, 0, len(mean))
	for name := range mean {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(out, "\nmetrics:")
	for _, name := range names {
		fmt.Fprintf(out, "  %s: %.4f\n", name, mean[name])
	}

	series := make([]float64, len(results[0].Population))
	for _, r := range results {
		for i, v := range r.Population {
			series[i] += v / float64(len(results))
		}
	}

	graph := asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("mean population vs generation"),
	)
	fmt.Fprintln(out)
	fmt.Fprintln(out, graph)

	if jsonPath != "" {
		report := export.NewReport(life.Size, life.Density, cfg.Generations, seedStart, results)
		if err := export.WriteJSON(jsonPath, out, report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	g, err := cfg.NewGrid()
	if err != nil {
		return err
	}

	if svgGenerations > 0 {
		if _, err := sim.New(g).Run(cmd.Context(), sim.Config{Generations: svgGenerations, Workers: cfg.Workers}); err != nil {
			return err
		}
	}

	return export.WriteSVG(outPath, cmd.OutOrStdout(), g, scale)
}
