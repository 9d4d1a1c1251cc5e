package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Generate GenerateCmd      `cmd:"" help:"Generate a height map and write it as PNG"`
	Preview  PreviewCmd       `cmd:"" help:"Generate a height map and preview it in the terminal"`
	Sample   SampleCmd        `cmd:"" help:"Evaluate raw noise at a single point"`
	Perm     PermCmd          `cmd:"" help:"Print the permutation tables for a seed"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("terrainnoise"),
		kong.Description("Seed-reproducible fractal height maps from OpenSimplex noise"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
