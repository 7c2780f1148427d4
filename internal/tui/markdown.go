package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"

	"github.com/ellen-studio/folio/internal/theme"
)

var emphasis = strings.NewReplacer("**", "", "__", "", "*", "")

// markdownCache keeps the last rendering; glamour renderers are costly to
// build and the About overlay redraws every frame.
type markdownCache struct {
	key   string
	lines []string
}

// glamourStyle picks the standard glamour style closest to a palette.
func glamourStyle(def theme.Definition) string {
	switch {
	case def.ID == theme.IDKpop:
		return "pink"
	case theme.IsDark(def.Tokens.Background):
		return "dark"
	default:
		return "light"
	}
}

// renderMarkdown renders source wrapped to width. Rendering failures fall
// back to the plain text with emphasis markers removed.
func (c *markdownCache) render(source string, def theme.Definition, width int) []string {
	key := fmt.Sprintf("%s/%d/%s", def.ID, width, source)
	if c.key == key {
		return c.lines
	}
	c.key = key
	c.lines = renderMarkdown(source, glamourStyle(def), width)
	return c.lines
}

func renderMarkdown(source, style string, width int) []string {
	if source == "" || width <= 0 {
		return nil
	}
	plain := func() []string {
		return wrap(strings.Join(strings.Fields(emphasis.Replace(source)), " "), width)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return plain()
	}
	rendered, err := renderer.Render(source)
	if err != nil {
		return plain()
	}

	lines := strings.Split(rendered, "\n")
	for len(lines) > 0 && strings.TrimSpace(ansi.Strip(lines[0])) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(ansi.Strip(lines[len(lines)-1])) == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		if ansi.StringWidth(line) > width {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}
	if len(lines) == 0 {
		return plain()
	}
	return lines
}
