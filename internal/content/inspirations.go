package content

import (
	"fmt"

	"github.com/ellen-studio/folio/internal/theme"
)

const (
	InspirationsTitle    = "ARCHETYPES"
	InspirationsSubtitle = "Architects of the modern intellectual landscape."
	BreakthroughLabel    = "Breakthrough_Event"
)

// Inspirations returns the figures of the Inspirations overlay in order.
func Inspirations() []Inspiration {
	return []Inspiration{
		{
			Name:        "Isaac Newton",
			Legacy:      "Laws of Motion, Gravity, Differential and Integral Calculus.",
			Achievement: "Achieved his primary breakthroughs before turning 26.",
			Color:       theme.TokenAccent,
		},
		{
			Name:        "Steve Jobs",
			Legacy:      "Apple, Transformative Marketing, and Mindmastery.",
			Achievement: "Revolutionized personal computing and design aesthetics.",
			Color:       theme.TokenInk,
		},
		{
			Name:        "Guido Van Rossum",
			Legacy:      "Benevolent Dictator for Life of the Python Language.",
			Achievement: "Prioritized code readability and programmer productivity.",
			Color:       theme.TokenAccentSoft,
		},
		{
			Name:        "Ada Lovelace",
			Legacy:      "The First Computer Algorithm for the Analytical Engine.",
			Achievement: "Envisioned computers as more than just calculating machines.",
			Color:       theme.TokenInkSoft,
		},
		{
			Name:        "Mark Zuckerberg",
			Legacy:      "Facebook, Connectivity, and Young Entrepreneurship.",
			Achievement: "Redefined social interaction and scaled systems globally.",
			Color:       theme.TokenAccentDeep,
		},
	}
}

// SequenceLabel is the kicker of the card at zero-based index i.
func SequenceLabel(i int) string {
	return fmt.Sprintf("Sequence_%02d", i+1)
}
