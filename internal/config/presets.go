package config

import (
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"classic": {
		Mode: ModeConsole, Tick: DefaultTick, Workers: 1,
		Generations: DefaultGenerations, Runs: DefaultRuns,
	},
	"fast": {
		Mode: ModeConsole, Tick: 30 * time.Millisecond, Workers: 4,
		Generations: 2000, Runs: DefaultRuns,
	},
	"slow": {
		Mode: ModeConsole, Tick: 500 * time.Millisecond, Workers: 1,
		Generations: DefaultGenerations, Runs: DefaultRuns,
	},
	"glider": {
		Mode: ModeConsole, Tick: DefaultTick, Workers: 1, Pattern: "glider",
		Generations: 4 * 50, Runs: 1,
	},
	"methuselah": {
		Mode: ModeTUI, Tick: 50 * time.Millisecond, Workers: 1, Pattern: "r-pentomino",
		Generations: 1200, Runs: 1,
	},
	"dashboard": {
		Mode: ModeTUI, Tick: DefaultTick, Workers: 2,
		Generations: DefaultGenerations, Runs: DefaultRuns,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
