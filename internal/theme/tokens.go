// Package theme holds the closed set of portfolio palettes, the active
// selection, and the style records derived from them.
package theme

import (
	"fmt"
	"regexp"
	"strings"
)

// ID names a palette in the registry.
type ID string

const (
	IDDefault ID = "default"
	IDDark    ID = "dark"
	IDNeon    ID = "neon"
	IDKpop    ID = "kpop"
)

// Font selects the typographic treatment a palette asks for.
type Font string

const (
	FontSans   Font = "sans"
	FontMono   Font = "mono"
	FontScript Font = "script"
)

// Tokens defines the semantic style roles of a palette.
type Tokens struct {
	Text         string
	TextMuted    string
	Accent       string
	Background   string
	Card         string
	Border       string
	Font         Font
	GradientFrom string
	GradientTo   string
	Cursor       string
}

// Definition bundles a palette with its identity.
type Definition struct {
	ID      ID
	Name    string
	Tagline string
	Tokens  Tokens
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate reports every token that is missing or malformed.
func (t Tokens) Validate() error {
	var problems []string
	colors := []struct {
		name  string
		value string
	}{
		{"text", t.Text},
		{"text_muted", t.TextMuted},
		{"accent", t.Accent},
		{"background", t.Background},
		{"card", t.Card},
		{"border", t.Border},
		{"gradient_from", t.GradientFrom},
		{"gradient_to", t.GradientTo},
		{"cursor", t.Cursor},
	}
	for _, c := range colors {
		switch {
		case c.value == "":
			problems = append(problems, c.name+" is empty")
		case !hexColor.MatchString(c.value):
			problems = append(problems, fmt.Sprintf("%s %q is not #RRGGBB", c.name, c.value))
		}
	}
	switch t.Font {
	case FontSans, FontMono, FontScript:
	case "":
		problems = append(problems, "font is empty")
	default:
		problems = append(problems, fmt.Sprintf("font %q is unknown", t.Font))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid tokens: %s", strings.Join(problems, "; "))
	}
	return nil
}
