package theme

// KpopTheme is a pastel stage palette.
var KpopTheme = Definition{
	ID:      IDKpop,
	Name:    "K-Pop",
	Tagline: "Pastel stage lights.",
	Tokens: Tokens{
		Text:         "#2D1B3D",
		TextMuted:    "#8E7A9E",
		Accent:       "#FF4FA3",
		Background:   "#FFF0F6",
		Card:         "#FFFFFF",
		Border:       "#F9C6E0",
		Font:         FontScript,
		GradientFrom: "#FF4FA3",
		GradientTo:   "#A78BFA",
		Cursor:       "#FF4FA3",
	},
}
