package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ellen-studio/folio/internal/content"
	"github.com/ellen-studio/folio/internal/theme"
	"github.com/ellen-studio/folio/internal/tui/components"
)

// Spotlight falloff, innermost first.
var (
	spotGlyphs = [4]rune{'▒', '░', '░', '░'}
	spotBlend  = [4]float64{0.55, 0.65, 0.78, 0.9}
)

func (f frame) hero(top int) *canvas {
	h := f.height
	c := &canvas{width: f.width, lines: f.heroBackground(top, h)}

	title, accent := content.HeroTitle, content.HeroAccent
	if !f.mobile {
		title, accent = spaced(title), spaced(accent)
	}
	block := []string{
		components.RenderBadge(f.st, components.BadgeSolid, content.HeroBadge),
		"",
		f.st.HeroTitle.Render(title),
		f.st.HeroAccent.Render(accent),
		"",
	}
	for _, line := range wrap(strings.ToUpper(content.HeroSubtitle), min(f.width-8, 56)) {
		block = append(block, f.st.Muted.Render(line))
	}

	y := max((h-len(block))/2, 3)
	for i, line := range block {
		if line != "" {
			c.center(y+i, line)
		}
	}
	if cue := h - 3; cue > y+len(block) {
		soft := lipgloss.NewStyle().Foreground(lipgloss.Color(f.tokens.Resolve(theme.TokenAccentSoft)))
		c.center(cue, soft.Render("│"))
		c.center(cue+1, f.st.Muted.Render(spaced(strings.ToUpper(content.HeroScrollCue))))
	}
	return c
}

// heroBackground draws the dot grid and, on wide layouts, the spotlight
// glow around the spring-smoothed pointer.
func (f frame) heroBackground(top, h int) []string {
	t := f.tokens
	spot := f.m.fx.spotlight.Position()
	spot.Y += float64(f.m.page.Offset - top)
	show := !f.mobile && f.m.fx.pointer.Present
	radius := math.Max(6, float64(min(f.width/2, h))*0.45)

	dot := theme.Blend(t.Text, t.Background, 0.85)
	var shades [4]string
	for i, b := range spotBlend {
		shades[i] = theme.Blend(t.Accent, t.Background, b)
	}

	lines := make([]string, h)
	for y := range lines {
		var b, run strings.Builder
		runColor := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runColor)).Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < f.width; x++ {
			ch, color := ' ', ""
			if x%8 == 4 && y%4 == 2 {
				ch, color = '·', dot
			}
			if show {
				// Cells are twice as tall as they are wide.
				d := math.Hypot((float64(x)-spot.X)/2, float64(y)-spot.Y)
				if d < radius {
					level := min(int(d/radius*4), 3)
					ch, color = spotGlyphs[level], shades[level]
				}
			}
			if color != runColor {
				flush()
				runColor = color
			}
			run.WriteRune(ch)
		}
		flush()
		lines[y] = b.String()
	}
	return lines
}
