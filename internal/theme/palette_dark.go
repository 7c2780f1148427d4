package theme

// DarkTheme favors low-glare terminals.
var DarkTheme = Definition{
	ID:      IDDark,
	Name:    "Dark",
	Tagline: "Slate night, soft blue.",
	Tokens: Tokens{
		Text:         "#E6EDF3",
		TextMuted:    "#8B9AAE",
		Accent:       "#5B8DEF",
		Background:   "#0B0F14",
		Card:         "#121821",
		Border:       "#223043",
		Font:         FontMono,
		GradientFrom: "#5B8DEF",
		GradientTo:   "#7AA2F7",
		Cursor:       "#7AA2F7",
	},
}
