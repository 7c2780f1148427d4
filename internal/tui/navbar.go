package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ellen-studio/folio/internal/content"
	"github.com/ellen-studio/folio/internal/motion"
	"github.com/ellen-studio/folio/internal/overlay"
	"github.com/ellen-studio/folio/internal/tui/components"
)

const navbarHeight = 3

// navbar is the floating bar's rendered rows and where it can be clicked,
// in screen coordinates.
type navbar struct {
	x     int
	lines []string
	hits  []hit
}

// navbarBox returns the screen rect of the desktop navbar at its current
// animated width.
func (m model) navbarBox() motion.Rect {
	w := clampInt(m.fx.navbarWidth(), navbarCollapsedWidth, max(m.width, navbarCollapsedWidth))
	return motion.Rect{X: (m.width - w) / 2, Y: 0, W: w, H: navbarHeight}
}

// navExpanded reports whether the desktop navbar shows its links: near the
// top of the page, or while the pointer rests on it.
func (m model) navExpanded() bool {
	if m.page.Offset <= m.cfg.ScrollThreshold {
		return true
	}
	p := m.fx.pointer
	if !p.Present {
		return false
	}
	x, y := p.Cell()
	return m.navbarBox().Contains(x, y)
}

func (f frame) navbar() navbar {
	if f.mobile {
		return f.mobileNavbar()
	}
	box := f.m.navbarBox()
	bg := lipgloss.NewStyle().Background(lipgloss.Color(f.tokens.Card))

	if !f.m.navExpanded() {
		inner := box.W - 4
		label := components.RenderBadge(f.st, components.BadgeLive, content.CollapsedLabel)
		line := lipgloss.PlaceHorizontal(inner, lipgloss.Center, label)
		rendered := f.st.NavbarCollapsed.Width(box.W - 2).Render(paint(line, inner, bg))
		return navbar{
			x:     box.X,
			lines: strings.Split(rendered, "\n"),
			hits:  []hit{{rect: box, target: targetLink, link: content.Link{Label: content.CollapsedLabel, Action: content.ActionOpenAbout}}},
		}
	}

	inner := box.W - 6
	items := content.NavItems()
	left, last := items[:len(items)-1], items[len(items)-1]
	linkItems := make([]components.LinkItem, 0, len(left))
	for _, item := range left {
		linkItems = append(linkItems, components.LinkItem{Label: item.Label, Enabled: true})
	}
	bar, spans := components.RenderLinkBar(f.st, linkItems, 3)
	end, _ := components.RenderLinkBar(f.st, []components.LinkItem{{Label: last.Label, Strong: true}}, 1)
	endW := ansi.StringWidth(end)
	endX := inner - endW

	line := overlayAt(fit(bar, inner), end, endX)
	var hits []hit
	for i, span := range spans {
		if span.X+span.Width > endX-2 {
			break
		}
		h := linkHit(left[i])
		h.rect = motion.Rect{X: box.X + 3 + span.X, Y: 1, W: span.Width, H: 1}
		hits = append(hits, h)
	}
	if endX >= 0 {
		h := linkHit(last)
		h.rect = motion.Rect{X: box.X + 3 + endX, Y: 1, W: endW, H: 1}
		hits = append(hits, h)
	}
	rendered := f.st.Navbar.Width(box.W - 2).Render(paint(line, inner, bg))
	return navbar{x: box.X, lines: strings.Split(rendered, "\n"), hits: hits}
}

func (f frame) mobileNavbarWidth() int {
	return min(f.width-4, 40)
}

func (f frame) mobileNavbar() navbar {
	w := f.mobileNavbarWidth()
	x := (f.width - w) / 2
	inner := w - 6
	bg := lipgloss.NewStyle().Background(lipgloss.Color(f.tokens.Card))

	icon := "≡"
	if f.m.overlays.IsOpen(overlay.MobileMenu) {
		icon = "✕"
	}
	brand := f.st.Text.Bold(true).Render(strings.ToUpper(content.Brand))
	line := overlayAt(fit(brand, inner), f.st.Accent.Bold(true).Render(icon), inner-1)
	rendered := f.st.Navbar.Width(w - 2).Render(paint(line, inner, bg))

	brandHit := linkHit(content.Link{Label: content.Brand, Action: content.ActionTop})
	brandHit.rect = motion.Rect{X: x + 3, Y: 1, W: ansi.StringWidth(content.Brand), H: 1}
	return navbar{
		x:     x,
		lines: strings.Split(rendered, "\n"),
		hits: []hit{
			brandHit,
			{rect: motion.Rect{X: x + 3 + inner - 2, Y: 1, W: 3, H: 1}, target: targetMenu},
		},
	}
}

// mobileMenu is the dropdown under the compact navbar.
func (f frame) mobileMenu() navbar {
	w := f.mobileNavbarWidth()
	x := (f.width - w) / 2
	inner := w - 6
	bg := lipgloss.NewStyle().Background(lipgloss.Color(f.tokens.Card))

	items := content.NavItems()
	lines := make([]string, 0, len(items))
	hits := make([]hit, 0, len(items))
	for i, item := range items {
		label := "  " + strings.ToUpper(item.Label)
		style := f.st.NavItem
		if i == f.m.menuIndex {
			label = "› " + strings.ToUpper(item.Label)
			style = f.st.Accent.Bold(true)
		}
		lines = append(lines, paint(style.Render(label), inner, bg))
		h := linkHit(item)
		h.rect = motion.Rect{X: x + 1, Y: navbarHeight + 1 + i, W: w - 2, H: 1}
		hits = append(hits, h)
	}
	rendered := f.st.Card.Width(w - 2).Render(strings.Join(lines, "\n"))
	return navbar{x: x, lines: strings.Split(rendered, "\n"), hits: hits}
}
