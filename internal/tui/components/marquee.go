package components

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// Marquee scrolls a looping line of text from right to left.
type Marquee struct {
	Text string
	// Speed is the scroll rate in cells per second.
	Speed float64
	// Offset is the current scroll position in cells.
	Offset float64
	Paused bool
}

// NewMarquee creates a marquee that crosses its own text in period.
func NewMarquee(text string, period time.Duration) Marquee {
	m := Marquee{Text: text}
	if period > 0 {
		m.Speed = float64(runewidth.StringWidth(text)) / period.Seconds()
	}
	return m
}

// Advance moves the marquee forward by dt.
func (m *Marquee) Advance(dt time.Duration) {
	if m.Paused || m.Speed <= 0 {
		return
	}
	cycle := float64(runewidth.StringWidth(m.Text))
	if cycle == 0 {
		return
	}
	m.Offset += m.Speed * dt.Seconds()
	for m.Offset >= cycle {
		m.Offset -= cycle
	}
}

// View returns width cells of the looped text starting at the current
// offset. Wide runes that would straddle either edge are replaced by spaces.
func (m Marquee) View(width int) string {
	if width <= 0 || m.Text == "" {
		return ""
	}
	cycle := runewidth.StringWidth(m.Text)
	if cycle == 0 {
		return strings.Repeat(" ", width)
	}
	loops := (width+int(m.Offset))/cycle + 2
	looped := strings.Repeat(m.Text, loops)

	skip := int(m.Offset)
	var b strings.Builder
	col, filled := 0, 0
	for _, r := range looped {
		w := runewidth.RuneWidth(r)
		switch {
		case col+w <= skip:
			col += w
			continue
		case col < skip:
			// Rune straddles the left edge.
			pad := col + w - skip
			b.WriteString(strings.Repeat(" ", min(pad, width)))
			filled += min(pad, width)
			col += w
			continue
		}
		if filled+w > width {
			break
		}
		b.WriteRune(r)
		filled += w
		col += w
		if filled == width {
			break
		}
	}
	if filled < width {
		b.WriteString(strings.Repeat(" ", width-filled))
	}
	return b.String()
}
