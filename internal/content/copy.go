package content

// Hero copy.
const (
	HeroBadge     = "< DEV_PORTFOLIO /> V2.6"
	HeroTitle     = "ARCHITECTING"
	HeroAccent    = "STABLE_LOGIC"
	HeroSubtitle  = "Optimizing user interaction through high-performance engineering."
	HeroScrollCue = "Scroll Output"
)

// Philosophy copy.
const (
	PhilosophyMarquee = "PERFORMANT · SECURE · ATOMIC · "
	PhilosophyKicker  = "Core Protocols"
	PhilosophyLead    = "Reliability is the highest form of"
	PhilosophyAccent  = "interface"
)

// Pillars are the philosophy section's tiles.
func Pillars() []string {
	return []string{"Architecture", "Heuristics", "Compute", "Syntax"}
}

// Root call-to-action copy.
const (
	RootBadge  = "Connection: Listening"
	RootTitle  = "Execute"
	RootAccent = "Command."
	RootButton = "Initiate Thread →"
)

// Footer copy.
const (
	StudioName     = "ELLEN_STUDIO"
	StudioSuffix   = ".BIN"
	StudioTagline  = "Developing the future of digital interaction through code-first methodologies."
	Copyright      = "© 2026_STUDIO"
	NodeID         = "NODE: TN_IN"
	LocalTimeLabel = "Local_Time"
)
