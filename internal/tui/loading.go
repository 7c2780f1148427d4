package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/ellen-studio/folio/internal/theme"
)

const loadingWidth = 56

// newProgress builds the boot bar in the colors of def.
func newProgress(def theme.Definition, width int) progress.Model {
	return progress.New(
		progress.WithGradient(def.Tokens.GradientFrom, def.Tokens.GradientTo),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
}

// previewTheme is the palette the loading screen is drawn in: the
// highlighted entry until a choice is made, then the choice.
func (m model) previewTheme() theme.Definition {
	if m.dismissing {
		return m.selection.Current()
	}
	if def := m.picker.Selected(); def != nil {
		return *def
	}
	return m.selection.Current()
}

// dismissProgress is how far the dismiss delay has run, from 0 to 1.
func (m model) dismissProgress() float64 {
	if !m.dismissing || m.cfg.DismissDelay <= 0 {
		return 1
	}
	elapsed := m.timeNow().Sub(m.dismissStart)
	return min(max(float64(elapsed)/float64(m.cfg.DismissDelay), 0), 1)
}

func (m model) loadingView() string {
	def := m.previewTheme()
	st := theme.BuildStyles(def)
	t := def.Tokens
	width := min(loadingWidth, m.width-4)

	lines := []string{
		theme.Gradient(spaced("ELLEN.SYS"), t.GradientFrom, t.GradientTo, true),
		st.Muted.Render(spaced("INITIALIZING INTERFACE")),
		"",
		st.Accent.Bold(true).Render("SELECT A PALETTE"),
		"",
		lipgloss.JoinVertical(lipgloss.Left, m.picker.Render(st, width)...),
		"",
	}
	if m.dismissing {
		lines = append(lines,
			m.progress.ViewAs(m.dismissProgress()),
			st.Muted.Render("BOOTING "+strings.ToUpper(def.Name)),
		)
	} else {
		lines = append(lines, st.Muted.Render("press enter to boot"), "")
	}
	lines = append(lines, "", m.helpView(st, m.keys.loadingHelp()))

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	placed := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
	return paintScreen(placed, m.width, st)
}

// helpView renders bindings as a one-line hint in the given styles.
func (m model) helpView(st theme.Styles, bindings []key.Binding) string {
	h := m.help
	h.Width = m.width
	h.Styles = helpStyles(st)
	return h.ShortHelpView(bindings)
}

func helpStyles(st theme.Styles) help.Styles {
	return help.Styles{
		Ellipsis:       st.Muted,
		ShortKey:       st.Accent.Bold(true),
		ShortDesc:      st.Muted,
		ShortSeparator: st.Muted,
		FullKey:        st.Accent.Bold(true),
		FullDesc:       st.Text,
		FullSeparator:  st.Muted,
	}
}

// paintScreen gives every line of s the page background.
func paintScreen(s string, width int, st theme.Styles) string {
	bg := lipgloss.NewStyle().Background(lipgloss.Color(st.Theme.Tokens.Background))
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = paint(line, width, bg)
	}
	return strings.Join(lines, "\n")
}
