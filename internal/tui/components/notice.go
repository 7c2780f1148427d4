package components

import (
	"fmt"
	"strings"

	"github.com/ellen-studio/folio/internal/theme"
)

// Notice is a short full-screen message with optional key suggestions.
type Notice struct {
	// Icon is an optional glyph shown before the title.
	Icon string
	// Title is the main message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are keys the user can press.
	Suggestions []Suggestion
}

// Suggestion is a suggested key with description.
type Suggestion struct {
	Key         string
	Description string
}

// Render renders the notice with the given styles.
func (n Notice) Render(styleSet theme.Styles) string {
	var lines []string

	titleLine := n.Title
	if n.Icon != "" {
		titleLine = n.Icon + "  " + titleLine
	}
	lines = append(lines, styleSet.Warning.Render(titleLine))

	if n.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(n.Subtitle))
	}

	if len(n.Suggestions) > 0 {
		lines = append(lines, "")
		for _, s := range n.Suggestions {
			line := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Key))
			if s.Description != "" {
				line += styleSet.Muted.Render(fmt.Sprintf("  %s", s.Description))
			}
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}

// TooSmall returns the notice shown when the terminal is below the minimum
// size.
func TooSmall(width, height, minWidth, minHeight int) Notice {
	return Notice{
		Icon:     "↔",
		Title:    fmt.Sprintf("Terminal too small (%dx%d).", width, height),
		Subtitle: fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight),
		Suggestions: []Suggestion{
			{Key: "q", Description: "quit"},
		},
	}
}
