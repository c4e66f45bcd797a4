package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/patterns"
)

const (
	DefaultTick        = 100 * time.Millisecond
	DefaultWorkers     = 1
	DefaultGenerations = 500
	DefaultRuns        = 8
	ModeConsole        = "console"
	ModeTUI            = "tui"
)

// Config holds driver settings. Board size and density are fixed by the
// life package.
type Config struct {
	Mode        string        `yaml:"mode"`
	Tick        time.Duration `yaml:"tick"`
	Seed        int64         `yaml:"seed"`
	Workers     int           `yaml:"workers"`
	Pattern     string        `yaml:"pattern"`
	Generations int           `yaml:"generations"`
	Runs        int           `yaml:"runs"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:        ModeConsole,
		Tick:        DefaultTick,
		Workers:     DefaultWorkers,
		Generations: DefaultGenerations,
		Runs:        DefaultRuns,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Tick <= 0 {
		return fmt.Errorf("%w, got %v", life.ErrInvalidTick, c.Tick)
	}
	if c.Mode != ModeConsole && c.Mode != ModeTUI {
		return fmt.Errorf("unknown mode: %s (available: %s, %s)", c.Mode, ModeConsole, ModeTUI)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Generations <= 0 {
		return fmt.Errorf("%w, got %d", life.ErrInvalidGenerations, c.Generations)
	}
	if c.Runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", c.Runs)
	}
	if c.Pattern != "" {
		if _, err := patterns.Get(c.Pattern); err != nil {
			return err
		}
	}
	return nil
}

// SeedOrNow returns the configured seed, or the current time when it is 0.
func (c *Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// NewGrid builds the fixed-size board described by c: the named pattern in
// the center when one is set, otherwise a random population at life.Density.
func (c *Config) NewGrid() (*life.Grid, error) {
	g := life.NewGrid(life.Size)
	g.Seed(c.SeedOrNow())

	if c.Pattern == "" {
		g.Init(life.Density)
		return g, nil
	}

	p, err := patterns.Get(c.Pattern)
	if err != nil {
		return nil, err
	}
	if err := p.PlaceCentered(g); err != nil {
		return nil, err
	}
	return g, nil
}
