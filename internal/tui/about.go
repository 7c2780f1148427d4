package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ellen-studio/folio/internal/content"
	"github.com/ellen-studio/folio/internal/motion"
	"github.com/ellen-studio/folio/internal/theme"
	"github.com/ellen-studio/folio/internal/tui/components"
)

const (
	aboutConnectKey = "about-connect"
	stackPeriod     = 20 * time.Second
	cardGap         = 2
)

// aboutView is the state of the About overlay that outlives a render: its
// scroll position, the stack marquee and where the connect button sits in
// content coordinates.
type aboutView struct {
	viewport viewport.Model
	marquee  components.Marquee
	connect  motion.Rect
}

func newAboutView() *aboutView {
	return &aboutView{
		viewport: viewport.New(0, 0),
		marquee:  components.NewMarquee(stackLine(), stackPeriod),
	}
}

func stackLine() string {
	return strings.ToUpper(strings.Join(content.Stack(), "  ◆  ")) + "  ◆  "
}

// syncAbout re-renders the overlay body into the viewport. The scroll
// position survives; the viewport clamps it if the body got shorter.
func (m model) syncAbout() {
	if m.tooSmall() {
		return
	}
	f := m.frame()
	body, connect := f.aboutContent()
	vp := &m.about.viewport
	vp.Width = f.width
	vp.Height = max(f.height-1, 1)
	vp.SetContent(body)
	m.about.connect = connect
}

// connectOnScreen returns the connect button's screen rect.
func (m model) connectOnScreen() motion.Rect {
	r := m.about.connect
	r.Y += 1 - m.about.viewport.YOffset
	return r
}

func (f frame) aboutScreen() ([]string, []hit) {
	header, hits := f.overlayHeader(targetCloseAbout)
	lines := append([]string{header}, strings.Split(f.m.about.viewport.View(), "\n")...)
	return fitLines(lines, f.width, f.height), hits
}

// overlayHeader is the top row of a full-screen overlay with its close
// control.
func (f frame) overlayHeader(close target) (string, []hit) {
	c := newCanvas(f.width, 1)
	label := f.st.Muted.Render("ESC ") + f.st.Accent.Bold(true).Render("[×]")
	x := c.right(0, f.margin(), label)
	return c.lines[0], []hit{{
		rect:   motion.Rect{X: x, Y: 0, W: ansi.StringWidth(label), H: 1},
		target: close,
	}}
}

func (f frame) aboutContent() (string, motion.Rect) {
	cards := make(map[content.CardKind]content.AboutCard)
	for _, card := range content.AboutCards() {
		cards[card.Kind] = card
	}
	cw := min(f.width-4, 110)
	x := (f.width - cw) / 2
	if f.mobile {
		return f.aboutStacked(cards, x, cw)
	}
	return f.aboutGrid(cards, x, cw)
}

// aboutGrid lays the cards out as a three-column bento grid.
func (f frame) aboutGrid(cards map[content.CardKind]content.AboutCard, x, cw int) (string, motion.Rect) {
	colW := (cw - 2*cardGap) / 3
	col2 := x + colW + cardGap
	col3 := col2 + colW + cardGap
	wide := cw - colW - cardGap
	narrow := x + cw - col3

	manifesto := f.manifestoLines(cards[content.CardManifesto], wide)
	hA := max(9, len(manifesto)+4)
	hB, hC := 7, 6
	yA := 1
	yB := yA + hA + 1
	yC := yB + hB + 1
	yD := yC + hC + 1

	status, connect := f.statusCard(cards[content.CardStatus], cw)
	c := newCanvas(f.width, yD+lipgloss.Height(status)+1)
	c.putBlock(x, yA, f.photoCard(cards[content.CardPhoto], colW, hA+1+hB))
	c.putBlock(col2, yA, f.borderedCard(wide, hA, f.labelled(cards[content.CardManifesto].Label, manifesto)))
	c.putBlock(col2, yB, f.locationCard(cards[content.CardLocation], colW, hB))
	c.putBlock(col3, yB, f.buildCard(cards[content.CardBuild], narrow, hB))
	c.putBlock(x, yC, f.stackCard(cards[content.CardStack], 2*colW+cardGap, hC))
	c.putBlock(col3, yC, f.philosophyCard(cards[content.CardPhilosophy], narrow, hC))
	c.putBlock(x, yD, status)

	connect.X += x
	connect.Y += yD
	return strings.Join(c.lines, "\n"), connect
}

// aboutStacked puts every card in one column.
func (f frame) aboutStacked(cards map[content.CardKind]content.AboutCard, x, cw int) (string, motion.Rect) {
	manifesto := f.manifestoLines(cards[content.CardManifesto], cw)
	status, connect := f.statusCard(cards[content.CardStatus], cw)
	blocks := []string{
		f.photoCard(cards[content.CardPhoto], cw, 8),
		f.borderedCard(cw, len(manifesto)+4, f.labelled(cards[content.CardManifesto].Label, manifesto)),
		f.locationCard(cards[content.CardLocation], cw, 6),
		f.buildCard(cards[content.CardBuild], cw, 7),
		f.stackCard(cards[content.CardStack], cw, 5),
		f.philosophyCard(cards[content.CardPhilosophy], cw, 6),
	}
	total := 1
	for _, b := range blocks {
		total += lipgloss.Height(b) + 1
	}
	c := newCanvas(f.width, total+lipgloss.Height(status)+1)
	y := 1
	for _, b := range blocks {
		c.putBlock(x, y, b)
		y += lipgloss.Height(b) + 1
	}
	c.putBlock(x, y, status)

	connect.X += x
	connect.Y += y
	return strings.Join(c.lines, "\n"), connect
}

func (f frame) manifestoLines(card content.AboutCard, w int) []string {
	return f.m.md.render(card.Body, f.st.Theme, w-6)
}

func (f frame) labelled(label string, body []string) []string {
	head := f.st.Accent.Bold(true).Render(spaced(strings.ToUpper(label)))
	return append([]string{head, ""}, body...)
}

// borderedCard renders lines in a card exactly w wide and h tall.
func (f frame) borderedCard(w, h int, lines []string) string {
	inner := w - 6
	bg := lipgloss.NewStyle().Background(lipgloss.Color(f.tokens.Card))
	rows := fitLines(lines, inner, h-2)
	for i, line := range rows {
		rows[i] = paint(line, inner, bg)
	}
	return f.st.Card.Width(w - 2).Render(strings.Join(rows, "\n"))
}

// solidCard renders lines on a flat color with one row and two columns of
// padding.
func solidCard(bg string, w, h int, lines []string) string {
	inner := w - 4
	fill := lipgloss.NewStyle().Background(lipgloss.Color(bg))
	rows := fitLines(lines, inner, h-2)
	for i, line := range rows {
		rows[i] = paint(line, inner, fill)
	}
	return fill.Padding(1, 2).Render(strings.Join(rows, "\n"))
}

func (f frame) photoCard(card content.AboutCard, w, h int) string {
	t := f.tokens
	ink := lipgloss.Color(t.Text)
	rows := h - 2
	hatch := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Blend(t.Text, t.Background, 0.25))).Background(ink)
	lines := make([]string, 0, rows)
	for y := 0; y < rows-3; y++ {
		var b strings.Builder
		for x := 0; x < w-4; x++ {
			if (x+y)%3 == 0 {
				b.WriteRune('╱')
			} else {
				b.WriteRune(' ')
			}
		}
		lines = append(lines, hatch.Render(b.String()))
	}
	title := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Background)).Background(ink).Bold(true)
	caption := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Resolve(theme.TokenAccentSoft))).Background(ink)
	lines = append(lines, "", title.Render(strings.ToUpper(card.Title)), caption.Render(card.Body))
	return solidCard(t.Text, w, h, lines)
}

func (f frame) locationCard(card content.AboutCard, w, h int) string {
	return f.borderedCard(w, h, []string{
		f.st.Accent.Render("◎  ") + f.st.Muted.Render(strings.ToUpper(card.Label)),
		"",
		f.st.Text.Bold(true).Render(card.Title),
	})
}

func (f frame) buildCard(card content.AboutCard, w, h int) string {
	t := f.tokens
	on := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Contrast(t.Accent))).Background(lipgloss.Color(t.Accent))
	return solidCard(t.Accent, w, h, []string{
		on.Render("⚡"),
		"",
		on.Bold(true).Render(spaced(card.Title)),
		on.Render(strings.ToUpper(card.Label)),
	})
}

func (f frame) stackCard(card content.AboutCard, w, h int) string {
	inner := w - 6
	return f.borderedCard(w, h, []string{
		f.st.Accent.Render("▸ ") + f.st.Muted.Render(strings.ToUpper(card.Label)),
		"",
		f.st.Accent.Bold(true).Render(f.m.about.marquee.View(inner)),
	})
}

func (f frame) philosophyCard(card content.AboutCard, w, h int) string {
	lines := []string{f.st.Accent.Bold(true).Render("</>"), ""}
	for _, line := range strings.Split(card.Body, "\n") {
		lines = append(lines, f.st.Muted.Italic(true).Render(strings.ToUpper(line)))
	}
	return f.borderedCard(w, h, lines)
}

// statusCard renders the closing strip and returns the connect button's
// rect relative to the card.
func (f frame) statusCard(card content.AboutCard, w int) (string, motion.Rect) {
	t := f.tokens
	ink := lipgloss.Color(t.Text)
	inner := w - 4
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Background)).Background(ink)
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color("#4ADE80")).Background(ink).Render("●")

	button := f.st.Button.Render(strings.ToUpper(content.ConnectLabel))
	bw := ansi.StringWidth(button)
	dx, dy := f.m.fx.magnetOffset(aboutConnectKey)

	var ic *canvas
	var bx, by int
	if status := dot + " " + text.Render(card.Body); ansi.StringWidth(status)+bw+2 <= inner {
		ic = newCanvas(inner, 1)
		ic.put(0, 0, status)
		bx, by = inner-bw, 0
	} else {
		body := wrap(card.Body, inner-2)
		ic = newCanvas(inner, len(body)+2)
		for i, line := range body {
			prefix := "  "
			if i == 0 {
				prefix = dot + " "
			}
			ic.put(0, i, prefix+text.Render(line))
		}
		bx, by = 0, len(body)+1
	}
	ic.put(bx+dx, by+dy, button)
	return solidCard(t.Text, w, ic.height()+2, ic.lines), motion.Rect{X: 2 + bx, Y: 1 + by, W: bw, H: 1}
}

// fitLines pads or cuts lines to exactly h rows of width cells.
func fitLines(lines []string, width, h int) []string {
	out := make([]string, h)
	for i := range out {
		if i < len(lines) {
			out[i] = fit(lines[i], width)
		} else {
			out[i] = strings.Repeat(" ", max(width, 0))
		}
	}
	return out
}
