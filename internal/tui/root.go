package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/ellen-studio/folio/internal/content"
	"github.com/ellen-studio/folio/internal/motion"
	"github.com/ellen-studio/folio/internal/tui/components"
)

const rootButtonKey = "root-thread"

// root draws the closing call to action.
func (f frame) root(_ int) *canvas {
	h := max(f.height*4/5, 12)
	c := newCanvas(f.width, h)

	title, accent := strings.ToUpper(content.RootTitle), strings.ToUpper(content.RootAccent)
	if !f.mobile {
		title, accent = spaced(title), spaced(accent)
	}
	y := (h - 7) / 2
	c.center(y, components.RenderBadge(f.st, components.BadgeStatus, strings.ToUpper(content.RootBadge)))
	c.center(y+2, f.st.HeroTitle.Render(title))
	c.center(y+3, f.st.HeroAccent.Render(accent))

	button := f.st.Button.Render(strings.ToUpper(content.RootButton))
	bw := ansi.StringWidth(button)
	bx, by := (f.width-bw)/2, y+6
	dx, dy := f.m.fx.magnetOffset(rootButtonKey)
	c.put(bx+dx, by+dy, button)
	c.addHit(hit{rect: motion.Rect{X: bx, Y: by, W: bw, H: 1}, magnet: rootButtonKey})
	return c
}
