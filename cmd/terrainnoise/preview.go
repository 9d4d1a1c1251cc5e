package main

import (
	"context"

	"github.com/lox/terrainnoise/cmd/terrainnoise/shared"
	"github.com/lox/terrainnoise/internal/raster"
	"github.com/lox/terrainnoise/internal/terrain"
	"github.com/lox/terrainnoise/internal/tui"
)

// PreviewCmd shows a map in the terminal
type PreviewCmd struct {
	MapFlags `embed:""`

	LogFile string `help:"Write logs to this file while the preview owns the terminal"`
}

func (c *PreviewCmd) Run() error {
	logger, closer, err := shared.SetupFileLogger(c.LogFile, c.Debug)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := c.resolve()
	if err != nil {
		return err
	}
	ramp, err := raster.RampByName(cfg.Output.Ramp)
	if err != nil {
		return err
	}

	_, err = tui.Run(context.Background(), cfg.Params(), ramp,
		terrain.WithLogger(logger),
		terrain.WithKernel(terrain.Kernel(cfg.Map.Kernel)),
		terrain.WithWorkers(c.Workers),
	)
	return err
}
