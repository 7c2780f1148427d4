package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ellen-studio/folio/internal/motion"
)

// overlayAt splices the single-line string top into base at column x.
// Cells of base outside top keep their styling.
func overlayAt(base, top string, x int) string {
	if top == "" {
		return base
	}
	w := ansi.StringWidth(top)
	if x < 0 {
		if -x >= w {
			return base
		}
		top = ansi.TruncateLeft(top, -x, "")
		w += x
		x = 0
	}
	baseW := ansi.StringWidth(base)
	if baseW < x {
		base += strings.Repeat(" ", x-baseW)
		baseW = x
	}
	left := ansi.Truncate(base, x, "")
	right := ""
	if baseW > x+w {
		right = ansi.TruncateLeft(base, x+w, "")
	}
	return left + top + right
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

// blankLines returns height lines of width spaces.
func blankLines(width, height int) []string {
	lines := make([]string, max(height, 0))
	blank := strings.Repeat(" ", max(width, 0))
	for i := range lines {
		lines[i] = blank
	}
	return lines
}

// sgrPrefix extracts the escape sequence a style opens with, or "" when the
// active color profile emits none.
func sgrPrefix(style lipgloss.Style) string {
	rendered := style.Render("x")
	idx := strings.Index(rendered, "x")
	if idx <= 0 {
		return ""
	}
	return rendered[:idx]
}

// Both spellings of SGR reset show up: lipgloss writes the explicit form.
var resets = []string{"\x1b[0m", ansi.ResetStyle}

// paint fills a line with bg. Inner styled segments end with a reset, which
// would otherwise drop back to the terminal's own background.
func paint(line string, width int, bg lipgloss.Style) string {
	line = fit(line, width)
	prefix := sgrPrefix(bg)
	if prefix == "" {
		return line
	}
	for _, reset := range resets {
		line = strings.ReplaceAll(line, reset, reset+prefix)
	}
	return prefix + line + resets[0]
}

// canvas is a fixed-size grid of lines that sections draw onto, recording
// clickable regions as they go.
type canvas struct {
	width int
	lines []string
	hits  []hit
}

func newCanvas(width, height int) *canvas {
	return &canvas{width: width, lines: blankLines(width, height)}
}

func (c *canvas) height() int {
	return len(c.lines)
}

// put draws a single line at (x, y). Anything outside the canvas is clipped.
func (c *canvas) put(x, y int, s string) {
	if y < 0 || y >= len(c.lines) || x >= c.width {
		return
	}
	line := overlayAt(c.lines[y], s, x)
	if ansi.StringWidth(line) > c.width {
		line = ansi.Truncate(line, c.width, "")
	}
	c.lines[y] = line
}

// putBlock draws a multi-line string with its top-left corner at (x, y).
func (c *canvas) putBlock(x, y int, block string) {
	for i, line := range strings.Split(block, "\n") {
		c.put(x, y+i, line)
	}
}

// center draws s horizontally centred on row y and returns its column.
func (c *canvas) center(y int, s string) int {
	x := max((c.width-ansi.StringWidth(s))/2, 0)
	c.put(x, y, s)
	return x
}

// right draws s flush against the right edge minus margin.
func (c *canvas) right(y, margin int, s string) int {
	x := max(c.width-margin-ansi.StringWidth(s), 0)
	c.put(x, y, s)
	return x
}

func (c *canvas) addHit(h hit) {
	c.hits = append(c.hits, h)
}

// clickable draws s at (x, y) and registers it as a link.
func (c *canvas) clickable(x, y int, s string, h hit) {
	c.put(x, y, s)
	h.rect = motion.Rect{X: x, Y: y, W: ansi.StringWidth(s), H: 1}
	c.addHit(h)
}

// spaced inserts a space between every rune, which stands in for wide
// letter tracking.
func spaced(s string) string {
	runes := []rune(s)
	if len(runes) < 2 {
		return s
	}
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// wrap breaks plain text into lines of at most width cells.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	return strings.Split(ansi.Wordwrap(text, width, ""), "\n")
}
