package theme

import "github.com/charmbracelet/lipgloss"

// Variant names a component presentation that has its own style record.
type Variant string

const (
	VariantPage            Variant = "page"
	VariantText            Variant = "text"
	VariantMuted           Variant = "muted"
	VariantAccent          Variant = "accent"
	VariantNavbar          Variant = "navbar"
	VariantNavbarCollapsed Variant = "navbar-collapsed"
	VariantNavItem         Variant = "nav-item"
	VariantHeroTitle       Variant = "hero-title"
	VariantHeroAccent      Variant = "hero-accent"
	VariantBadge           Variant = "badge"
	VariantCard            Variant = "card"
	VariantCardTitle       Variant = "card-title"
	VariantTag             Variant = "tag"
	VariantModal           Variant = "modal"
	VariantButton          Variant = "button"
	VariantFooter          Variant = "footer"
	VariantCursor          Variant = "cursor"
	VariantWarning         Variant = "warning"
)

// Styles contains lipgloss styles derived from a definition.
type Styles struct {
	Theme           Definition
	Page            lipgloss.Style
	Text            lipgloss.Style
	Muted           lipgloss.Style
	Accent          lipgloss.Style
	Navbar          lipgloss.Style
	NavbarCollapsed lipgloss.Style
	NavItem         lipgloss.Style
	HeroTitle       lipgloss.Style
	HeroAccent      lipgloss.Style
	Badge           lipgloss.Style
	Card            lipgloss.Style
	CardTitle       lipgloss.Style
	Tag             lipgloss.Style
	Modal           lipgloss.Style
	Button          lipgloss.Style
	Footer          lipgloss.Style
	Cursor          lipgloss.Style
	Warning         lipgloss.Style
}

// DefaultStyles builds styles from the default theme.
func DefaultStyles() Styles {
	return BuildStyles(DefaultTheme)
}

// BuildStyles converts theme tokens into one style per variant.
func BuildStyles(def Definition) Styles {
	return Styles{
		Theme:           def,
		Page:            StyleFor(def, VariantPage),
		Text:            StyleFor(def, VariantText),
		Muted:           StyleFor(def, VariantMuted),
		Accent:          StyleFor(def, VariantAccent),
		Navbar:          StyleFor(def, VariantNavbar),
		NavbarCollapsed: StyleFor(def, VariantNavbarCollapsed),
		NavItem:         StyleFor(def, VariantNavItem),
		HeroTitle:       StyleFor(def, VariantHeroTitle),
		HeroAccent:      StyleFor(def, VariantHeroAccent),
		Badge:           StyleFor(def, VariantBadge),
		Card:            StyleFor(def, VariantCard),
		CardTitle:       StyleFor(def, VariantCardTitle),
		Tag:             StyleFor(def, VariantTag),
		Modal:           StyleFor(def, VariantModal),
		Button:          StyleFor(def, VariantButton),
		Footer:          StyleFor(def, VariantFooter),
		Cursor:          StyleFor(def, VariantCursor),
		Warning:         StyleFor(def, VariantWarning),
	}
}

// StyleFor maps a definition and a component variant to a concrete style.
// It has no side effects; calling it twice yields equal styles.
func StyleFor(def Definition, variant Variant) lipgloss.Style {
	t := def.Tokens
	base := lipgloss.NewStyle()
	switch variant {
	case VariantPage:
		return base.Foreground(lipgloss.Color(t.Text)).Background(lipgloss.Color(t.Background))
	case VariantText:
		return base.Foreground(lipgloss.Color(t.Text))
	case VariantMuted:
		return base.Foreground(lipgloss.Color(t.TextMuted))
	case VariantAccent:
		return base.Foreground(lipgloss.Color(t.Accent))
	case VariantNavbar:
		return base.
			Foreground(lipgloss.Color(t.TextMuted)).
			Background(lipgloss.Color(t.Card)).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 2)
	case VariantNavbarCollapsed:
		return base.
			Foreground(lipgloss.Color(t.Text)).
			Background(lipgloss.Color(t.Card)).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(Blend(t.Accent, t.Background, 0.4))).
			Padding(0, 1)
	case VariantNavItem:
		return base.Foreground(lipgloss.Color(t.TextMuted)).Bold(true)
	case VariantHeroTitle:
		return applyFont(base.Foreground(lipgloss.Color(t.Text)).Bold(true), t.Font)
	case VariantHeroAccent:
		return base.Foreground(lipgloss.Color(t.Accent)).Bold(true).Italic(true)
	case VariantBadge:
		return base.
			Foreground(lipgloss.Color(Blend(t.Accent, t.Background, 0.3))).
			Background(lipgloss.Color(t.Text)).
			Bold(true).
			Padding(0, 2)
	case VariantCard:
		return base.
			Background(lipgloss.Color(t.Card)).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 2)
	case VariantCardTitle:
		return applyFont(base.Foreground(lipgloss.Color(t.Text)).Bold(true), t.Font)
	case VariantTag:
		return base.
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Text)).
			Padding(0, 1)
	case VariantModal:
		return base.
			Foreground(lipgloss.Color(t.Text)).
			Background(lipgloss.Color(t.Background)).
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(1, 2)
	case VariantButton:
		return base.
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 2)
	case VariantFooter:
		return base.
			Foreground(lipgloss.Color(t.TextMuted)).
			BorderTop(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.Border))
	case VariantCursor:
		return base.Foreground(lipgloss.Color(t.Cursor)).Bold(true)
	case VariantWarning:
		return base.Foreground(lipgloss.Color(Blend(t.Accent, "#F59E0B", 0.7))).Bold(true)
	default:
		return base.Foreground(lipgloss.Color(t.Text))
	}
}

// Terminals have one typeface; script palettes get italics instead.
func applyFont(style lipgloss.Style, font Font) lipgloss.Style {
	if font == FontScript {
		return style.Italic(true)
	}
	return style
}
