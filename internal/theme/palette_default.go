package theme

// DefaultTheme is the white-and-blue palette of the original studio page.
var DefaultTheme = Definition{
	ID:      IDDefault,
	Name:    "Default",
	Tagline: "White canvas, blue signal.",
	Tokens: Tokens{
		Text:         "#0F172A",
		TextMuted:    "#64748B",
		Accent:       "#2563EB",
		Background:   "#FFFFFF",
		Card:         "#F8FAFC",
		Border:       "#E2E8F0",
		Font:         FontSans,
		GradientFrom: "#2563EB",
		GradientTo:   "#60A5FA",
		Cursor:       "#2563EB",
	},
}
