// Package config loads generation settings from HCL files.
package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/terrainnoise/internal/raster"
	"github.com/lox/terrainnoise/internal/terrain"
	"github.com/lox/terrainnoise/internal/vector"
)

// Config represents a complete generation run
type Config struct {
	Map    MapSettings    `hcl:"map,block"`
	Output OutputSettings `hcl:"output,block"`
}

// MapSettings describes the height field
type MapSettings struct {
	Width       int      `hcl:"width,optional"`
	Height      int      `hcl:"height,optional"`
	Seed        *int64   `hcl:"seed,optional"`
	Scale       float64  `hcl:"scale,optional"`
	Octaves     *int     `hcl:"octaves,optional"`
	Persistence *float64 `hcl:"persistence,optional"`
	Lacunarity  float64  `hcl:"lacunarity,optional"`
	OffsetX     float64  `hcl:"offset_x,optional"`
	OffsetY     float64  `hcl:"offset_y,optional"`
	Kernel      string   `hcl:"kernel,optional"`
}

// OutputSettings describes where and how the field is rendered
type OutputSettings struct {
	File string `hcl:"file,optional"`
	Ramp string `hcl:"ramp,optional"`
}

// Default returns the settings of the reference map
func Default() *Config {
	p := terrain.DefaultParams()
	seed := p.Seed
	octaves := p.Octaves
	persistence := float64(p.Persistence)
	return &Config{
		Map: MapSettings{
			Width:       p.Width,
			Height:      p.Height,
			Seed:        &seed,
			Scale:       float64(p.Scale),
			Octaves:     &octaves,
			Persistence: &persistence,
			Lacunarity:  float64(p.Lacunarity),
			Kernel:      string(terrain.KernelOpenSimplex),
		},
		Output: OutputSettings{
			File: "out.1.0.png",
			Ramp: "green",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

// applyDefaults fills unset values. Offsets default to zero.
func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Map.Width == 0 {
		c.Map.Width = defaults.Map.Width
	}
	if c.Map.Height == 0 {
		c.Map.Height = defaults.Map.Height
	}
	if c.Map.Seed == nil {
		c.Map.Seed = defaults.Map.Seed
	}
	if c.Map.Octaves == nil {
		c.Map.Octaves = defaults.Map.Octaves
	}
	if c.Map.Persistence == nil {
		c.Map.Persistence = defaults.Map.Persistence
	}
	if c.Map.Scale == 0 {
		c.Map.Scale = defaults.Map.Scale
	}
	if c.Map.Lacunarity == 0 {
		c.Map.Lacunarity = defaults.Map.Lacunarity
	}
	if c.Map.Kernel == "" {
		c.Map.Kernel = defaults.Map.Kernel
	}

	if c.Output.File == "" {
		c.Output.File = defaults.Output.File
	}
	if c.Output.Ramp == "" {
		c.Output.Ramp = defaults.Output.Ramp
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Map.Width < 1 || c.Map.Height < 1 {
		return fmt.Errorf("map size must be positive, got %dx%d", c.Map.Width, c.Map.Height)
	}
	if c.Map.Octaves != nil && *c.Map.Octaves < 0 {
		return fmt.Errorf("octaves must not be negative, got %d", *c.Map.Octaves)
	}
	if !slices.Contains(terrain.Kernels(), terrain.Kernel(c.Map.Kernel)) {
		return fmt.Errorf("invalid kernel %q", c.Map.Kernel)
	}
	if _, err := raster.RampByName(c.Output.Ramp); err != nil {
		return err
	}
	return nil
}

// Params converts the map settings into generation parameters
func (c *Config) Params() terrain.Params {
	var (
		seed        int64
		octaves     int
		persistence float64
	)
	if c.Map.Seed != nil {
		seed = *c.Map.Seed
	}
	if c.Map.Octaves != nil {
		octaves = *c.Map.Octaves
	}
	if c.Map.Persistence != nil {
		persistence = *c.Map.Persistence
	}
	return terrain.Params{
		Width:       c.Map.Width,
		Height:      c.Map.Height,
		Seed:        seed,
		Scale:       float32(c.Map.Scale),
		Octaves:     octaves,
		Persistence: float32(persistence),
		Lacunarity:  float32(c.Map.Lacunarity),
		Offset:      vector.New(float32(c.Map.OffsetX), float32(c.Map.OffsetY)),
	}
}
