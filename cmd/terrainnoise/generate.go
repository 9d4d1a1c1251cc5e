package main

import (
	"os"

	"github.com/coder/quartz"

	"github.com/lox/terrainnoise/cmd/terrainnoise/shared"
	"github.com/lox/terrainnoise/internal/fileutil"
	"github.com/lox/terrainnoise/internal/progress"
	"github.com/lox/terrainnoise/internal/raster"
	"github.com/lox/terrainnoise/internal/terrain"
)

// GenerateCmd renders a map to a PNG file
type GenerateCmd struct {
	MapFlags `embed:""`

	Out   string `short:"o" help:"Output PNG file (overrides config)"`
	Quiet bool   `short:"q" help:"Disable the progress bar"`
}

func (c *GenerateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := c.resolve()
	if err != nil {
		return err
	}
	if c.Out != "" {
		cfg.Output.File = c.Out
	}

	ramp, err := raster.RampByName(cfg.Output.Ramp)
	if err != nil {
		return err
	}

	ctx := shared.SetupSignalHandlerWithLogger(logger)
	params := cfg.Params()

	opts := []terrain.Option{
		terrain.WithLogger(logger),
		terrain.WithKernel(terrain.Kernel(cfg.Map.Kernel)),
		terrain.WithWorkers(c.Workers),
	}
	var bar *progress.Bar
	if !c.Quiet {
		bar = progress.NewBar(os.Stderr, "Generating", quartz.NewReal())
		opts = append(opts, terrain.WithProgress(bar.Update))
	}

	field, err := terrain.Generate(ctx, params, opts...)
	if err != nil {
		if bar != nil {
			bar.Abort()
		}
		return err
	}
	if bar != nil {
		bar.Finish(params.Width * params.Height)
	}

	logger.Info("Creating image", "ramp", cfg.Output.Ramp)
	img := raster.Render(field, ramp)

	logger.Info("Writing to file", "file", cfg.Output.File)
	if err := fileutil.WritePNG(cfg.Output.File, img); err != nil {
		return err
	}
	logger.Info("Done", "file", cfg.Output.File, "seed", params.Seed)
	return nil
}
