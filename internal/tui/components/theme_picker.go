// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ellen-studio/folio/internal/theme"
)

// ThemePicker stores state for the loading screen's palette list.
type ThemePicker struct {
	Items []theme.Definition
	Index int
}

// NewThemePicker creates a picker over defs with initial highlighted.
func NewThemePicker(defs []theme.Definition, initial int) *ThemePicker {
	p := &ThemePicker{Items: cloneDefinitions(defs), Index: initial}
	p.ClampIndex()
	return p
}

// Move shifts the highlight, wrapping at both ends.
func (p *ThemePicker) Move(delta int) {
	if len(p.Items) == 0 {
		p.Index = 0
		return
	}
	if delta == 0 {
		return
	}
	idx := p.Index
	if idx < 0 || idx >= len(p.Items) {
		idx = 0
	}
	idx = (idx + delta) % len(p.Items)
	if idx < 0 {
		idx += len(p.Items)
	}
	p.Index = idx
}

// SelectNumber highlights the n-th entry, counting from 1. It reports
// whether n was in range.
func (p *ThemePicker) SelectNumber(n int) bool {
	if n < 1 || n > len(p.Items) {
		return false
	}
	p.Index = n - 1
	return true
}

// ClampIndex ensures the highlight stays in bounds.
func (p *ThemePicker) ClampIndex() {
	if len(p.Items) == 0 || p.Index < 0 {
		p.Index = 0
		return
	}
	if p.Index >= len(p.Items) {
		p.Index = len(p.Items) - 1
	}
}

// Selected returns the highlighted entry.
func (p *ThemePicker) Selected() *theme.Definition {
	if p.Index < 0 || p.Index >= len(p.Items) {
		return nil
	}
	selected := p.Items[p.Index]
	return &selected
}

// Render renders one line per palette. Each entry previews its own colors;
// only the frame around the list follows the active styles.
func (p *ThemePicker) Render(styleSet theme.Styles, width int) []string {
	if len(p.Items) == 0 {
		return []string{styleSet.Muted.Render("No palettes registered.")}
	}
	lines := make([]string, 0, len(p.Items))
	for idx, def := range p.Items {
		marker, number := "  ", styleSet.Muted.Render(fmt.Sprintf("%d", idx+1))
		name := styleSet.Text.Render(fmt.Sprintf("%-8s", def.Name))
		if idx == p.Index {
			marker = styleSet.Accent.Render("› ")
			number = styleSet.Accent.Render(fmt.Sprintf("%d", idx+1))
			name = styleSet.CardTitle.Render(fmt.Sprintf("%-8s", def.Name))
		}
		line := fmt.Sprintf("%s%s  %s  %s", marker, number, swatch(def.Tokens), name)
		if tagline := strings.TrimSpace(def.Tagline); tagline != "" {
			line += " " + styleSet.Muted.Render(tagline)
		}
		if width > 0 && ansi.StringWidth(line) > width {
			line = ansi.Truncate(line, width, "…")
		}
		lines = append(lines, line)
	}
	return lines
}

func swatch(t theme.Tokens) string {
	block := func(hex string) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
	}
	return block(t.Background) + block(t.Accent) + block(t.Text)
}

func cloneDefinitions(defs []theme.Definition) []theme.Definition {
	if len(defs) == 0 {
		return nil
	}
	clone := make([]theme.Definition, len(defs))
	copy(clone, defs)
	return clone
}
