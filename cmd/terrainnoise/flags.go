package main

import (
	"fmt"

	"github.com/lox/terrainnoise/internal/config"
)

// MapFlags are shared by the commands that generate a full map. Flags that
// are set override the config file.
type MapFlags struct {
	Config      string   `short:"c" default:"terrain.hcl" help:"HCL config file (defaults apply if missing)"`
	Width       *int     `help:"Map width in cells"`
	Height      *int     `help:"Map height in cells"`
	Seed        *int64   `help:"Noise seed"`
	Scale       *float64 `help:"Noise scale; non-positive values are clamped"`
	Octaves     *int     `help:"Number of octaves"`
	Persistence *float64 `help:"Amplitude factor per octave"`
	Lacunarity  *float64 `help:"Frequency factor per octave"`
	OffsetX     *float64 `name:"offset-x" help:"Horizontal sampling offset"`
	OffsetY     *float64 `name:"offset-y" help:"Vertical sampling offset"`
	Kernel      string   `help:"Noise kernel: opensimplex, reference, perlin"`
	Ramp        string   `help:"Color ramp: green, gray, terrain"`
	Workers     int      `default:"0" help:"Rows evaluated concurrently (0 for GOMAXPROCS)"`
	Debug       bool     `help:"Enable debug logging"`
}

// resolve loads the config file and applies flag overrides.
func (f *MapFlags) resolve() (*config.Config, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", f.Config, err)
	}

	if f.Width != nil {
		cfg.Map.Width = *f.Width
	}
	if f.Height != nil {
		cfg.Map.Height = *f.Height
	}
	if f.Seed != nil {
		cfg.Map.Seed = f.Seed
	}
	if f.Scale != nil {
		cfg.Map.Scale = *f.Scale
	}
	if f.Octaves != nil {
		cfg.Map.Octaves = f.Octaves
	}
	if f.Persistence != nil {
		cfg.Map.Persistence = f.Persistence
	}
	if f.Lacunarity != nil {
		cfg.Map.Lacunarity = *f.Lacunarity
	}
	if f.OffsetX != nil {
		cfg.Map.OffsetX = *f.OffsetX
	}
	if f.OffsetY != nil {
		cfg.Map.OffsetY = *f.OffsetY
	}
	if f.Kernel != "" {
		cfg.Map.Kernel = f.Kernel
	}
	if f.Ramp != "" {
		cfg.Output.Ramp = f.Ramp
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
