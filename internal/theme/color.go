package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ColorToken names a palette color from static content without binding the
// content to a specific theme.
type ColorToken string

const (
	TokenAccent     ColorToken = "accent"
	TokenAccentSoft ColorToken = "accent-soft"
	TokenAccentDeep ColorToken = "accent-deep"
	TokenInk        ColorToken = "ink"
	TokenInkSoft    ColorToken = "ink-soft"
)

// Resolve returns the hex color for token under t. Unknown tokens resolve to
// the accent color.
func (t Tokens) Resolve(token ColorToken) string {
	switch token {
	case TokenAccentSoft:
		return Blend(t.Accent, t.Background, 0.2)
	case TokenAccentDeep:
		return Blend(t.Accent, t.Text, 0.25)
	case TokenInk:
		return t.Text
	case TokenInkSoft:
		return Blend(t.Text, t.Background, 0.15)
	default:
		return t.Accent
	}
}

// Blend mixes two hex colors in CIE-Lab. t=0 yields a, t=1 yields b.
// Malformed input returns a unchanged.
func Blend(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	if t <= 0 {
		return ca.Hex()
	}
	if t >= 1 {
		return cb.Hex()
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}

// Gradient colors each rune of text along the from→to ramp. Spaces are
// kept unstyled.
func Gradient(text, from, to string, bold bool) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	var b strings.Builder
	steps := len(runes) - 1
	for i, r := range runes {
		if r == ' ' {
			b.WriteRune(r)
			continue
		}
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(Blend(from, to, t))).Bold(bold)
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// IsDark reports whether hex is a dark color. Malformed input counts as dark.
func IsDark(hex string) bool {
	c, err := colorful.Hex(hex)
	if err != nil {
		return true
	}
	l, _, _ := c.Lab()
	return l < 0.5
}

// Contrast returns a readable foreground for text drawn on hex.
func Contrast(hex string) string {
	if IsDark(hex) {
		return "#ffffff"
	}
	return "#0f172a"
}
