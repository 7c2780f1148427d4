package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ellen-studio/folio/internal/theme"
)

// LinkItem is one label of a horizontal link bar.
type LinkItem struct {
	Label   string
	Enabled bool // Whether activating the link does anything
	Strong  bool // Rendered with the primary text color
}

// Span is the horizontal extent of a rendered item, in cells from the bar's
// left edge.
type Span struct {
	X     int
	Width int
}

// Contains reports whether column x falls inside the span.
func (s Span) Contains(x int) bool {
	return x >= s.X && x < s.X+s.Width
}

// RenderLinkBar renders items separated by gap spaces and returns where each
// item landed. Labels are upper-cased. Format: "WORK  PROTOCOL  ROOT".
func RenderLinkBar(styleSet theme.Styles, items []LinkItem, gap int) (string, []Span) {
	if len(items) == 0 {
		return "", nil
	}
	if gap < 1 {
		gap = 1
	}

	var b strings.Builder
	spans := make([]Span, 0, len(items))
	x := 0
	for i, item := range items {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", gap))
			x += gap
		}
		label := strings.ToUpper(item.Label)
		width := ansi.StringWidth(label)
		b.WriteString(linkStyle(styleSet, item).Render(label))
		spans = append(spans, Span{X: x, Width: width})
		x += width
	}
	return b.String(), spans
}

func linkStyle(styleSet theme.Styles, item LinkItem) lipgloss.Style {
	switch {
	case item.Strong:
		return styleSet.Text.Bold(true)
	case item.Enabled:
		return styleSet.NavItem
	default:
		return styleSet.Muted
	}
}
