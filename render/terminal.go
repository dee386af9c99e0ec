// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/stepwise/core"
)

// DefaultBarWidth is the length of the longest bar.
const DefaultBarWidth = 40

var kindColors = map[core.Kind]string{
	core.Compare:       "#facc15",
	core.Swap:          "#f87171",
	core.Highlight:     "#fde047",
	core.Found:         "#4ade80",
	core.NotFound:      "#f87171",
	core.Partition:     "#c084fc",
	core.Merge:         "#22d3ee",
	core.Push:          "#4ade80",
	core.Pop:           "#fb923c",
	core.Enqueue:       "#4ade80",
	core.Dequeue:       "#fb923c",
	core.Insert:        "#4ade80",
	core.Delete:        "#fb923c",
	core.RecurseCall:   "#818cf8",
	core.RecurseReturn: "#a78bfa",
	core.DPCompute:     "#22d3ee",
}

// Terminal writes one narration line per event and, for events carrying a
// snapshot, the snapshot as bars. It is a core.Sink; a write error aborts
// the run.
type Terminal struct {
	w        io.Writer
	profile  termenv.Profile
	bars     bool
	barWidth int
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithProfile sets the color profile. termenv.Ascii disables color.
func WithProfile(p termenv.Profile) TerminalOption {
	return func(t *Terminal) { t.profile = p }
}

// WithBars toggles snapshot bars.
func WithBars(on bool) TerminalOption {
	return func(t *Terminal) { t.bars = on }
}

// WithBarWidth sets the longest bar length. Panics if n < 1.
func WithBarWidth(n int) TerminalOption {
	if n < 1 {
		panic(fmt.Sprintf("render: WithBarWidth(%d)", n))
	}

	return func(t *Terminal) { t.barWidth = n }
}

// NewTerminal returns a Terminal writing to w, colorless unless WithProfile
// says otherwise.
func NewTerminal(w io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{w: w, profile: termenv.Ascii, bars: true, barWidth: DefaultBarWidth}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Emit implements core.Sink.
func (t *Terminal) Emit(ev core.Event) error {
	indent := ""
	if ev.Kind == core.RecurseCall || ev.Kind == core.RecurseReturn {
		indent = strings.Repeat("  ", ev.Depth)
	}
	kind := t.paint(fmt.Sprintf("%-14s", ev.Kind), kindColors[ev.Kind])
	if _, err := fmt.Fprintf(t.w, "%03d %s %s%s\n", ev.Seq, kind, indent, ev.Message); err != nil {
		return err
	}
	if !t.bars || len(ev.Snapshot) == 0 {
		return nil
	}
	for _, line := range Bars(ev.Snapshot, ev.Indices, t.barWidth) {
		if strings.HasSuffix(line, "<") {
			line = t.paint(line, kindColors[ev.Kind])
		}
		if _, err := fmt.Fprintf(t.w, "    %s\n", line); err != nil {
			return err
		}
	}

	return nil
}

func (t *Terminal) paint(s, hex string) string {
	if hex == "" {
		return s
	}

	return t.profile.String(s).Foreground(t.profile.Color(hex)).String()
}

// Bars renders values as horizontal '#' bars scaled so the largest absolute
// value spans width. Lines for indices in marked end with " <".
//
//	 64 ########################################
//	 25 ################ <
func Bars(values, marked []int, width int) []string {
	if len(values) == 0 {
		return nil
	}
	if width < 1 {
		width = DefaultBarWidth
	}
	peak, digits := 1, 1
	for _, v := range values {
		peak = max(peak, abs(v))
		digits = max(digits, len(fmt.Sprint(v)))
	}

	out := make([]string, len(values))
	for i, v := range values {
		n := abs(v) * width / peak
		if v != 0 && n == 0 {
			n = 1
		}
		line := fmt.Sprintf("%*d %s", digits, v, strings.Repeat("#", n))
		if slices.Contains(marked, i) {
			line += " <"
		}
		out[i] = line
	}

	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
