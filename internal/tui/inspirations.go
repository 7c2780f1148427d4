package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ellen-studio/folio/internal/content"
	"github.com/ellen-studio/folio/internal/motion"
	"github.com/ellen-studio/folio/internal/theme"
)

// stackGeometry measures the Inspirations overlay for a viewport height.
type stackGeometry struct {
	view   int // visible rows below the header row
	header int
	card   int
	gap    int
	sticky int
	bottom int // end of the sticky container
	total  int
}

func (f frame) stackGeometry() stackGeometry {
	view := max(f.height-1, 1)
	n := len(content.Inspirations())
	g := stackGeometry{
		view:   view,
		header: 6,
		card:   clampInt(view*6/10, 10, 16),
		gap:    max(2, view/5),
		sticky: max(1, view/10),
	}
	g.bottom = g.header + n*g.card + (n-1)*g.gap + view*3/10
	g.total = g.bottom + 2
	return g
}

func (f frame) inspirationsScreen() ([]string, []hit) {
	header, hits := f.overlayHeader(targetCloseInspirations)
	g := f.stackGeometry()
	off := f.m.inspirations.Offset
	c := newCanvas(f.width, g.view)

	title := content.InspirationsTitle
	if !f.mobile {
		title = spaced(title)
	}
	c.center(2-off, f.st.HeroTitle.Render(title))
	c.center(3-off, f.st.Muted.Render(strings.ToUpper(content.InspirationsSubtitle)))

	cw := min(f.width-4, 84)
	for i, insp := range content.Inspirations() {
		top := g.header + i*(g.card+g.gap)
		prog := motion.ScrollProgress(off, g.view, top, g.card)
		scale := motion.Transform(prog, motion.CardScaleIn, motion.CardScaleOut)
		opacity := motion.Transform(prog, motion.CardOpacityIn, motion.CardOpacityOut)
		lift := motion.Transform(prog, motion.CardLiftIn, motion.CardLiftOut)

		// Cards stick near the top until the end of their container
		// pushes them out.
		y := max(top-off, g.sticky)
		y = min(y, g.bottom-off-g.card)
		y += int(math.Round(lift))

		w := int(math.Round(float64(cw) * scale))
		c.putBlock((f.width-w)/2, y, f.inspirationCard(i, insp, w, g.card, opacity))
	}
	return append([]string{header}, c.lines...), hits
}

// inspirationCard renders one archetype. opacity fades the card toward the
// page background.
func (f frame) inspirationCard(i int, insp content.Inspiration, w, h int, opacity float64) string {
	t := f.tokens
	color := t.Resolve(insp.Color)
	bg := theme.Blend(t.Background, color, opacity)
	fg := theme.Blend(t.Background, theme.Contrast(color), opacity)
	dim := theme.Blend(fg, bg, 0.4)

	base := lipgloss.NewStyle().Background(lipgloss.Color(bg)).Foreground(lipgloss.Color(fg))
	faint := base.Foreground(lipgloss.Color(dim))
	inner := w - 6
	rows := h - 2
	if inner < 8 || rows < 6 {
		return ""
	}

	top := []string{
		faint.Render("── " + strings.ToUpper(content.SequenceLabel(i))),
		"",
		base.Bold(true).Render(strings.ToUpper(insp.Name)),
	}
	for _, line := range wrap(`"`+insp.Legacy+`"`, inner) {
		top = append(top, base.Italic(true).Render(line))
	}
	achievement := base.Bold(true).Render(insp.Achievement)
	bottom := []string{
		faint.Render(strings.Repeat("─", inner)),
		faint.Render(spaced(strings.ToUpper(content.BreakthroughLabel))),
		overlayAt(fit(achievement, inner), base.Render("→"), inner-1),
	}

	lines := fitLines(top, inner, rows)
	for j, line := range bottom {
		if y := rows - len(bottom) + j; y >= len(top) {
			lines[y] = line
		}
	}
	for j, line := range lines {
		lines[j] = paint(line, inner, base)
	}
	return base.Padding(1, 3).Render(strings.Join(lines, "\n"))
}
