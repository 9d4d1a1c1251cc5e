package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/terrainnoise/internal/terrain"
)

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("terrainnoise"), kong.Vars{"version": "test"})
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestPermOutput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&PermCmd{Seed: 42}).run(&out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 34)
	assert.Equal(t, "perm (seed 42):", lines[0])
	assert.Equal(t, "30 4c 28 9a 3e 16 40 3a 12 22 26 42 0e 4e ae 36", lines[1])
	assert.Equal(t, "perm2D (seed 42):", lines[17])
	assert.Equal(t, "00 0c 08 0a 0e 06 00 0a 02 02 06 02 0e 0e 0e 06", lines[18])
}

func TestPermWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "perm.txt")
	_, ctx := parseCLI(t, "perm", "--seed", "42", "-o", out)
	require.NoError(t, ctx.Run())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var want bytes.Buffer
	require.NoError(t, (&PermCmd{Seed: 42}).run(&want))
	assert.Equal(t, want.String(), string(data))
}

func TestSampleOutput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&SampleCmd{X: 0.5, Y: 0.25, Seed: 42, Kernel: "opensimplex"}).run(&out))

	v, err := strconv.ParseFloat(strings.TrimSpace(out.String()), 32)
	require.NoError(t, err)
	assert.InDelta(t, 0.32367, v, 1e-4)
}

func TestSampleUnknownKernel(t *testing.T) {
	var out bytes.Buffer
	err := (&SampleCmd{Kernel: "worley"}).run(&out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worley")
}

func TestParseSampleDefaults(t *testing.T) {
	cli, ctx := parseCLI(t, "sample", "1.5", "--", "-2")
	assert.Equal(t, "sample <x> <y>", ctx.Command())
	assert.Equal(t, 1.5, cli.Sample.X)
	assert.Equal(t, -2.0, cli.Sample.Y)
	assert.Equal(t, int64(42), cli.Sample.Seed)
	assert.Equal(t, "opensimplex", cli.Sample.Kernel)
}

func TestResolveFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terrain.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
map {
  width   = 64
  height  = 64
  octaves = 3
}

output {
  ramp = "gray"
}
`), 0o644))

	cli, _ := parseCLI(t, "generate", "-c", path, "--width", "16", "--seed", "7", "--octaves", "0", "--ramp", "terrain")
	cfg, err := cli.Generate.resolve()
	require.NoError(t, err)

	p := cfg.Params()
	assert.Equal(t, 16, p.Width)
	assert.Equal(t, 64, p.Height)
	assert.Equal(t, int64(7), p.Seed)
	assert.Equal(t, 0, p.Octaves)
	assert.Equal(t, "terrain", cfg.Output.Ramp)
}

func TestResolveRejectsInvalidOverride(t *testing.T) {
	cli, _ := parseCLI(t, "generate", "-c", filepath.Join(t.TempDir(), "missing.hcl"), "--kernel", "worley")
	_, err := cli.Generate.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kernel")
}

func TestGenerateOverflowFails(t *testing.T) {
	out := filepath.Join(t.TempDir(), "map.png")
	_, ctx := parseCLI(t, "generate", "-c", filepath.Join(t.TempDir(), "missing.hcl"),
		"--width", "8", "--height", "8", "--scale", "4", "--octaves", "3", "--persistence", "1e30", "-o", out)

	err := ctx.Run()
	require.ErrorIs(t, err, terrain.ErrInvalidArgument)
	assert.NoFileExists(t, out)
}

func TestGenerateWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "map.png")
	_, ctx := parseCLI(t, "generate", "-c", filepath.Join(t.TempDir(), "missing.hcl"),
		"--width", "24", "--height", "16", "--scale", "8", "--octaves", "2", "-q", "-o", out)
	require.NoError(t, ctx.Run())

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
