// SPDX-License-Identifier: MIT

package complexity

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/stepwise/core"
)

// Chart bounds of the original growth panel.
const (
	DefaultMaxX = 50
	MaxY        = 100.0
)

// Class is a growth-rate family.
type Class uint8

// Growth classes, slowest first.
const (
	Constant Class = iota + 1
	Logarithmic
	Linear
	Quadratic
)

// Classes lists every class, slowest first.
func Classes() []Class { return []Class{Constant, Logarithmic, Linear, Quadratic} }

// String returns the Big-O label.
func (c Class) String() string {
	switch c {
	case Constant:
		return "O(1)"
	case Logarithmic:
		return "O(log n)"
	case Linear:
		return "O(n)"
	case Quadratic:
		return "O(n²)"
	default:
		return fmt.Sprintf("class(%d)", uint8(c))
	}
}

// Eval returns the chart height of c at x.
func (c Class) Eval(x float64) float64 {
	switch c {
	case Constant:
		return 5
	case Logarithmic:
		return math.Log2(x+1) * 8
	case Linear:
		return x * 0.8
	case Quadratic:
		return x * x / 25
	default:
		return 0
	}
}

// Point is one sample of a curve.
type Point struct {
	X int     `json:"x"`
	Y float64 `json:"y"`
}

// Series is a named curve.
type Series struct {
	Class  Class   `json:"-"`
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Curves samples every class at x = 1..maxX.
// Returns core.ErrInvalidInput if maxX < 1.
func Curves(maxX int) ([]Series, error) {
	if maxX < 1 {
		return nil, fmt.Errorf("complexity: curves up to %d: %w", maxX, core.ErrInvalidInput)
	}
	out := make([]Series, 0, len(Classes()))
	for _, c := range Classes() {
		s := Series{Class: c, Name: c.String(), Points: make([]Point, maxX)}
		for x := 1; x <= maxX; x++ {
			s.Points[x-1] = Point{X: x, Y: c.Eval(float64(x))}
		}
		out = append(out, s)
	}

	return out, nil
}

// Ratio returns steps/n as a percentage clamped to [0, 100]; 0 when n < 1.
func Ratio(n, steps int) float64 {
	if n < 1 || steps <= 0 {
		return 0
	}

	return math.Min(100, float64(steps)/float64(n)*100)
}

// markers are the plot glyphs, one per class in Classes order.
var markers = [...]rune{'c', 'l', 'n', 'q'}

// Plot renders series as a rows-high text chart clipped to MaxY. Column i
// holds x = i+1; where curves overlap the faster-growing one wins. A marker
// column at x = mark (0 disables it) draws '|' behind the curves.
func Plot(series []Series, rows, mark int) string {
	if rows < 2 || len(series) == 0 {
		return ""
	}
	width := len(series[0].Points)
	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
		if mark >= 1 && mark <= width {
			grid[r][mark-1] = '|'
		}
	}
	for _, s := range series {
		glyph := '*'
		if i := int(s.Class) - 1; i >= 0 && i < len(markers) {
			glyph = markers[i]
		}
		for _, p := range s.Points {
			if p.Y > MaxY || p.X < 1 || p.X > width {
				continue
			}
			r := rows - 1 - int(math.Round(p.Y/MaxY*float64(rows-1)))
			grid[r][p.X-1] = glyph
		}
	}

	var b strings.Builder
	for r, line := range grid {
		label := "    "
		switch r {
		case 0:
			label = fmt.Sprintf("%3.0f ", MaxY)
		case rows - 1:
			label = "  0 "
		}
		b.WriteString(label)
		b.WriteString("┤")
		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteByte('\n')
	}
	b.WriteString("    └")
	b.WriteString(strings.Repeat("─", width))
	b.WriteByte('\n')
	for i, s := range series {
		glyph := '*'
		if j := int(s.Class) - 1; j >= 0 && j < len(markers) {
			glyph = markers[j]
		}
		if i > 0 {
			b.WriteString("  ")
		} else {
			b.WriteString("     ")
		}
		fmt.Fprintf(&b, "%c %s", glyph, s.Name)
	}
	b.WriteByte('\n')

	return b.String()
}
