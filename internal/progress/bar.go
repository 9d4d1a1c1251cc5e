// Package progress renders generation progress as a single-line console bar.
package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/coder/quartz"
)

// Cells is the bar width; each cell represents 2.5%.
const Cells = 40

// Bar prints "\r<label> NN%    [====    ]" on every update.
type Bar struct {
	mu    sync.Mutex
	out   io.Writer
	label string
	clock quartz.Clock
	start time.Time
	last  int
}

// NewBar returns a bar writing to out. The clock measures elapsed time for
// the summary printed by Finish.
func NewBar(out io.Writer, label string, clock quartz.Clock) *Bar {
	return &Bar{
		out:   out,
		label: label,
		clock: clock,
		start: clock.Now(),
		last:  -1,
	}
}

// Update redraws the bar at percent (clamped to 0-100). Repeated or
// decreasing values are ignored.
func (b *Bar) Update(percent int) {
	percent = min(max(percent, 0), 100)

	b.mu.Lock()
	defer b.mu.Unlock()

	if percent <= b.last {
		return
	}
	b.last = percent
	fmt.Fprintf(b.out, "\r%s %3d%%    [%s]", b.label, percent, render(percent))
}

// Finish ends the bar line and prints the elapsed time and throughput for
// a run that produced cells values.
func (b *Bar) Finish(cells int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	elapsed := b.clock.Since(b.start)
	rate := 0.0
	if elapsed > 0 {
		rate = float64(cells) / elapsed.Seconds()
	}
	fmt.Fprintf(b.out, "\n%d cells in %.1fs (%.0f cells/sec)\n", cells, elapsed.Seconds(), rate)
}

// Abort ends the bar line without a summary so that later output starts on
// a fresh line. It does nothing if the bar was never drawn.
func (b *Bar) Abort() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.last >= 0 {
		fmt.Fprintln(b.out)
	}
}

// render fills cell i once percent exceeds i*2.5, so any progress past a
// cell boundary shows.
func render(percent int) string {
	filled := (percent*Cells + 99) / 100
	return strings.Repeat("=", filled) + strings.Repeat(" ", Cells-filled)
}
