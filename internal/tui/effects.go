package tui

import (
	"math"

	"github.com/ellen-studio/folio/internal/motion"
)

// Navbar widths in cells.
const (
	navbarMaxWidth       = 66
	navbarCollapsedWidth = 16
)

// effects owns every spring on screen. Springs only advance on frame ticks.
type effects struct {
	fps       int
	pointer   motion.Pointer
	cursor    *motion.Follower
	spotlight *motion.Follower
	magnets   map[string]*motion.Follower
	navWidth  *motion.Spring
}

func newEffects(fps int, cursor, spotlight motion.SpringConfig) *effects {
	return &effects{
		fps:       fps,
		cursor:    motion.NewFollower(cursor, fps, motion.Point{}),
		spotlight: motion.NewFollower(spotlight, fps, motion.Point{}),
		magnets:   make(map[string]*motion.Follower),
		navWidth:  motion.NewSpring(motion.NavbarSpring, fps, navbarMaxWidth),
	}
}

// magnet returns the follower for a magnetic button, creating it at rest.
func (e *effects) magnet(key string) *motion.Follower {
	f, ok := e.magnets[key]
	if !ok {
		f = motion.NewFollower(motion.MagneticSpring, e.fps, motion.Point{})
		e.magnets[key] = f
	}
	return f
}

// magnetOffset returns the rounded cell shift of a magnetic button.
func (e *effects) magnetOffset(key string) (int, int) {
	f, ok := e.magnets[key]
	if !ok {
		return 0, 0
	}
	return f.Position().Cell()
}

// pull points a button's spring at the pointer. Outside r, or while the
// button is covered, it returns home.
func (e *effects) pull(key string, r motion.Rect, active bool) {
	target := motion.Point{}
	if active && e.pointer.Present {
		target = motion.MagneticOffset(e.pointer.Point, r, motion.MagneticStrength)
	}
	e.magnet(key).SetTarget(target)
}

// track records a pointer sample and retargets the followers.
func (e *effects) track(x, y int) {
	p := motion.Point{X: float64(x), Y: float64(y)}
	if !e.pointer.Present {
		e.cursor.Jump(p)
	}
	e.pointer = motion.Pointer{Point: p, Present: true}
	e.cursor.SetTarget(p)
	e.spotlight.SetTarget(p)
}

func (e *effects) step() {
	e.cursor.Step()
	e.spotlight.Step()
	for _, f := range e.magnets {
		f.Step()
	}
	e.navWidth.Step()
}

func (e *effects) settled() bool {
	if !e.cursor.Settled() || !e.spotlight.Settled() || !e.navWidth.Settled() {
		return false
	}
	for _, f := range e.magnets {
		if !f.Settled() {
			return false
		}
	}
	return true
}

// navbarWidth returns the animated navbar width in whole cells.
func (e *effects) navbarWidth() int {
	return int(math.Round(e.navWidth.Position))
}

// fullNavbarWidth is the expanded navbar width for a terminal width.
func fullNavbarWidth(width int) int {
	return min(navbarMaxWidth, width*9/10)
}
