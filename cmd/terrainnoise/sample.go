package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/lox/terrainnoise/internal/fileutil"
	"github.com/lox/terrainnoise/internal/opensimplex"
	"github.com/lox/terrainnoise/internal/terrain"
)

// SampleCmd evaluates a single noise sample
type SampleCmd struct {
	X      float64 `arg:"" help:"X coordinate"`
	Y      float64 `arg:"" help:"Y coordinate"`
	Seed   int64   `default:"42" help:"Noise seed"`
	Kernel string  `default:"opensimplex" help:"Noise kernel: opensimplex, reference, perlin"`
}

func (c *SampleCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *SampleCmd) run(out io.Writer) error {
	s, err := terrain.NewSampler(terrain.Kernel(c.Kernel), c.Seed)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%g\n", s.Eval(float32(c.X), float32(c.Y)))
	return nil
}

// PermCmd prints the permutation tables for a seed
type PermCmd struct {
	Seed int64  `default:"42" help:"Noise seed"`
	Out  string `short:"o" help:"Write the tables to this file instead of stdout"`
}

func (c *PermCmd) Run() error {
	if c.Out == "" {
		return c.run(os.Stdout)
	}
	var buf bytes.Buffer
	if err := c.run(&buf); err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(c.Out, buf.Bytes(), 0o644)
}

func (c *PermCmd) run(out io.Writer) error {
	n := opensimplex.New(c.Seed)
	perm := n.Perm()
	perm2D := n.Perm2D()

	fmt.Fprintf(out, "perm (seed %d):\n", c.Seed)
	writeTable(out, perm[:])
	fmt.Fprintf(out, "perm2D (seed %d):\n", c.Seed)
	writeTable(out, perm2D[:])
	return nil
}

func writeTable(out io.Writer, table []uint8) {
	for i := 0; i < len(table); i += 16 {
		for j, v := range table[i : i+16] {
			if j > 0 {
				fmt.Fprint(out, " ")
			}
			fmt.Fprintf(out, "%02x", v)
		}
		fmt.Fprintln(out)
	}
}
