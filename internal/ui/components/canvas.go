package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const sgrReset = "\x1b[0m"

// Canvas is a fixed-size grid of terminal cells that rendered blocks are
// composited onto. Later draws cover earlier ones.
type Canvas struct {
	width  int
	height int
	lines  []string
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	lines := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = blank
	}
	return &Canvas{width: width, height: height, lines: lines}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() Size {
	return Size{Width: c.width, Height: c.height}
}

// Draw overlays block with its top-left corner at (x, y). Parts outside the
// canvas are clipped.
func (c *Canvas) Draw(x, y int, block string) {
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= c.height {
			continue
		}
		c.lines[row] = c.overlay(c.lines[row], x, line)
	}
}

func (c *Canvas) overlay(base string, x int, line string) string {
	if x < 0 {
		line = ansi.TruncateLeft(line, -x, "")
		x = 0
	}
	if x >= c.width {
		return base
	}
	if room := c.width - x; ansi.StringWidth(line) > room {
		line = ansi.Truncate(line, room, "")
	}
	w := ansi.StringWidth(line)
	if w == 0 {
		return base
	}

	left := ansi.Truncate(base, x, "")
	if lw := ansi.StringWidth(left); lw < x {
		left += strings.Repeat(" ", x-lw)
	}
	right := ansi.TruncateLeft(base, x+w, "")

	var b strings.Builder
	b.WriteString(left)
	if strings.Contains(left, "\x1b") {
		b.WriteString(sgrReset)
	}
	b.WriteString(line)
	if strings.Contains(line, "\x1b") {
		b.WriteString(sgrReset)
	}
	b.WriteString(right)
	return b.String()
}

// String returns the composited canvas, one line per row.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}
