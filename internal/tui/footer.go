package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ellen-studio/folio/internal/content"
	"github.com/ellen-studio/folio/internal/theme"
)

const footerTopLabel = "[ ↑ ]"

func (f frame) footer(_ int) *canvas {
	t := f.tokens
	margin := f.margin()
	tagline := wrap(content.StudioTagline, min(36, f.width-2*margin))
	columns := content.FooterColumns()

	colsTop := 2
	colX := []int{f.width / 2, f.width/2 + max(16, (f.width/2-margin)/2)}
	if f.mobile {
		colsTop = 4 + len(tagline) + 1
		colX = []int{margin, f.width / 2}
	}
	tallest := 0
	for _, col := range columns {
		tallest = max(tallest, len(col.Links))
	}
	colsBottom := colsTop + 2 + tallest
	bottom := max(4+len(tagline), colsBottom) + 2

	h := bottom + 4
	if f.mobile {
		h = bottom + 7
	}
	c := newCanvas(f.width, h)

	border := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Border))
	c.put(0, 0, border.Render(strings.Repeat("─", max(f.width, 0))))

	c.put(margin, 2, f.st.Text.Bold(true).Render(content.StudioName)+f.st.Accent.Bold(true).Render(content.StudioSuffix))
	for i, line := range tagline {
		c.put(margin, 4+i, f.st.Muted.Render(line))
	}

	for i, col := range columns {
		x := colX[i]
		c.put(x, colsTop, f.st.Accent.Bold(true).Render(spaced(strings.ToUpper(col.Title))))
		for j, link := range col.Links {
			label := strings.ToUpper(link.Label)
			if link.Action == content.ActionNone {
				c.put(x, colsTop+2+j, f.st.Muted.Render(label))
				continue
			}
			c.clickable(x, colsTop+2+j, f.st.NavItem.Render(label), linkHit(link))
		}
	}

	signature := theme.Gradient(content.Brand, t.GradientFrom, t.GradientTo, true)
	meta := f.st.Muted.Render(content.Copyright + "  ·  " + content.NodeID)
	clockLabel := f.st.Muted.Render(spaced(strings.ToUpper(content.LocalTimeLabel)))
	clockText := f.st.Text.Bold(true).Render(f.m.clock.Format(f.m.clockTime))
	top := f.st.Accent.Bold(true).Render(footerTopLabel)
	topLink := linkHit(content.Link{Label: "Top", Action: content.ActionTop})

	if f.mobile {
		c.put(margin, bottom, signature)
		c.put(margin, bottom+1, meta)
		c.put(margin, bottom+3, clockLabel)
		c.put(margin, bottom+4, clockText)
		c.clickable(f.width-margin-ansi.StringWidth(top), bottom+4, top, topLink)
		return c
	}

	c.put(margin, bottom+1, signature+"  "+meta)
	topX := f.width - margin - ansi.StringWidth(top)
	clockX := topX - 2 - max(ansi.StringWidth(clockLabel), ansi.StringWidth(clockText))
	c.put(clockX, bottom, clockLabel)
	c.put(clockX, bottom+1, clockText)
	c.clickable(topX, bottom+1, top, topLink)
	return c
}
