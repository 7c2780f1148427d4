package theme

// NeonTheme is a synthwave palette.
var NeonTheme = Definition{
	ID:      IDNeon,
	Name:    "Neon",
	Tagline: "Magenta current, cyan edges.",
	Tokens: Tokens{
		Text:         "#FFFFFF",
		TextMuted:    "#888888",
		Accent:       "#FF00FF",
		Background:   "#000000",
		Card:         "#111111",
		Border:       "#00FFFF",
		Font:         FontMono,
		GradientFrom: "#FF00FF",
		GradientTo:   "#00FFFF",
		Cursor:       "#FFFF00",
	},
}
