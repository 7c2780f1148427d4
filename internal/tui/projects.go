package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ellen-studio/folio/internal/content"
	"github.com/ellen-studio/folio/internal/motion"
	"github.com/ellen-studio/folio/internal/theme"
	"github.com/ellen-studio/folio/internal/tui/components"
)

const projectsHeader = 6

func (f frame) projectCardHeight() int {
	if f.mobile {
		return clampInt(f.height*8/10, 12, 18)
	}
	return clampInt(f.height*7/10, 12, 22)
}

func (f frame) projects(top int) *canvas {
	projects := content.Projects()
	margin := f.margin()
	width := max(f.width-2*margin, 0)
	cardH := f.projectCardHeight()
	gap := max(2, f.height/10)

	h := projectsHeader + len(projects)*cardH + (len(projects)-1)*gap + 4
	c := newCanvas(f.width, h)

	c.put(margin, 1, f.st.Accent.Bold(true).Render(spaced(strings.ToUpper(content.WorkKicker))))
	c.put(margin, 2, f.st.HeroTitle.Render(strings.ToUpper(content.WorkTitle)))
	if !f.mobile {
		c.right(2, margin, f.st.Muted.Render(strings.ToUpper(content.WorkStatus)))
	}
	rule := lipgloss.NewStyle().Foreground(lipgloss.Color(f.tokens.Border))
	c.put(margin, 3, rule.Render(strings.Repeat("─", width)))

	for i, p := range projects {
		r := motion.Rect{X: margin, Y: projectsHeader + i*(cardH+gap), W: width, H: cardH}
		f.projectCard(c, top, i, p, r)
	}
	return c
}

// projectCard draws one project into c at r. The oversized title drifts
// and the scan line sweeps with the card's scroll progress.
func (f frame) projectCard(c *canvas, top, i int, p content.Project, r motion.Rect) {
	t := f.tokens
	onPage := r
	onPage.Y += top
	hover := f.hovered(onPage)
	prog := f.progress(onPage.Y, r.H)

	// Border plus two cells of padding on each side.
	innerW := r.W - 6
	rows := r.H - 2
	if innerW < 10 || rows < 8 {
		return
	}
	ic := newCanvas(innerW, rows)
	ic.put(0, 0, f.st.Muted.Render(content.NodeLabel(i)))

	desc := wrap(p.Description, innerW)
	if !f.mobile {
		desc = wrap(p.Description, innerW*3/5)
	}
	y0 := rows - 3 - len(desc)

	ghost := spaced(p.Title)
	drift := int(math.Round(motion.Transform(prog, motion.DriftIn, motion.DriftOut)))
	mid := max(y0/2, 1)
	faint := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Blend(t.Text, t.Card, 0.85))).Bold(true)
	ic.put((innerW-ansi.StringWidth(ghost))/2+drift*2, mid, faint.Render(ghost))

	if scan := int(math.Round(prog * float64(rows-1))); scan > 0 && scan < y0 && scan != mid {
		line := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Blend(t.Accent, t.Card, 0.75)))
		ic.put(0, scan, line.Render(strings.Repeat("─", max(innerW, 0))))
	}

	ic.put(0, y0, components.RenderTags(f.st, p.Tags))
	title := f.st.CardTitle
	if hover {
		title = title.Foreground(lipgloss.Color(t.Accent))
	}
	ic.put(0, y0+2, title.Render(p.Title))
	for j, line := range desc {
		ic.put(0, y0+3+j, f.st.Muted.Render(line))
	}

	label := "↗"
	if !f.mobile {
		label = "↗ " + strings.ToUpper(content.LaunchLabel)
	}
	button := f.st.Button.Render(label)
	bw := ansi.StringWidth(button)
	bx, by := innerW-bw, y0+2
	key := fmt.Sprintf("launch-%d", i)
	dx, dy := f.m.fx.magnetOffset(key)
	ic.put(bx+dx, by+dy, button)
	c.addHit(hit{
		rect:   motion.Rect{X: r.X + 3 + bx, Y: r.Y + 1 + by, W: bw, H: 1},
		magnet: key,
	})

	bg := lipgloss.NewStyle().Background(lipgloss.Color(t.Card))
	for y, line := range ic.lines {
		ic.lines[y] = paint(line, innerW, bg)
	}
	style := f.st.Card
	if hover {
		style = style.BorderForeground(lipgloss.Color(t.Accent))
	}
	c.putBlock(r.X, r.Y, style.Width(r.W-2).Render(strings.Join(ic.lines, "\n")))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
