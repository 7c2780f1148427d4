package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ellen-studio/folio/internal/content"
	"github.com/ellen-studio/folio/internal/motion"
	"github.com/ellen-studio/folio/internal/theme"
	"github.com/ellen-studio/folio/internal/tui/components"
)

// philosophy draws the inverted band with the drifting marquee and the
// four pillars.
func (f frame) philosophy(top int) *canvas {
	t := f.tokens
	margin := f.margin()
	width := f.width - 2*margin
	ink := lipgloss.Color(t.Text)

	lead := wrap(content.PhilosophyLead, width)
	pillarRows := 3
	if f.mobile {
		pillarRows = 7
	}
	h := 8 + len(lead) + 2 + pillarRows + 2
	c := newCanvas(f.width, h)
	prog := f.progress(top, h)

	drift := motion.Transform(prog, motion.DriftIn, motion.DriftOut)
	marquee := components.Marquee{Text: content.PhilosophyMarquee, Offset: (10 - drift) * 3}
	faint := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Blend(t.Accent, t.Text, 0.6))).Background(ink).Bold(true)
	c.put(0, 2, faint.Render(marquee.View(f.width)))

	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Background(ink).Bold(true)
	c.put(margin, 4, accent.Render("── "+spaced(strings.ToUpper(content.PhilosophyKicker))))

	text := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Background)).Background(ink).Bold(true)
	y := 6
	for _, line := range lead {
		c.put(margin, y, text.Render(line))
		y++
	}
	c.put(margin, y, accent.Italic(true).Render(content.PhilosophyAccent+"."))
	y += 2

	f.pillars(c, margin, y, width)

	band := lipgloss.NewStyle().Background(ink)
	for i, line := range c.lines {
		c.lines[i] = paint(line, f.width, band)
	}
	return c
}

func (f frame) pillars(c *canvas, x, y, width int) {
	t := f.tokens
	soft := t.Resolve(theme.TokenInkSoft)
	colors := []struct{ bg, fg string }{
		{soft, theme.Contrast(soft)},
		{t.Accent, theme.Contrast(t.Accent)},
		{t.Card, t.Text},
		{t.Background, t.Text},
	}
	perRow := 4
	if f.mobile {
		perRow = 2
	}
	const gap = 2
	w := (width - (perRow-1)*gap) / perRow
	for i, label := range content.Pillars() {
		col := colors[i%len(colors)]
		box := lipgloss.NewStyle().
			Background(lipgloss.Color(col.bg)).
			Foreground(lipgloss.Color(col.fg)).
			Bold(true).
			Width(w).
			Height(3).
			Align(lipgloss.Center, lipgloss.Center).
			Render("◆ " + strings.ToUpper(label))
		row, colIdx := i/perRow, i%perRow
		c.putBlock(x+colIdx*(w+gap), y+row*4, box)
	}
}
