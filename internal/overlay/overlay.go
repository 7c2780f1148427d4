// Package overlay tracks which full-screen layers and menus are visible.
package overlay

// Name identifies one of the fixed overlays.
type Name int

const (
	About Name = iota
	Inspirations
	MobileMenu
	Loading
)

// All lists every overlay, topmost first.
var All = []Name{Loading, Inspirations, About, MobileMenu}

func (n Name) String() string {
	switch n {
	case About:
		return "about"
	case Inspirations:
		return "inspirations"
	case MobileMenu:
		return "mobile-menu"
	case Loading:
		return "loading"
	default:
		return "unknown"
	}
}

// FullScreen reports whether the overlay covers the page and blocks its
// scrolling.
func (n Name) FullScreen() bool {
	return n == About || n == Inspirations || n == Loading
}

// State is a snapshot of every flag.
type State struct {
	AboutOpen        bool
	InspirationsOpen bool
	MobileMenuOpen   bool
	LoadingVisible   bool
}

// Transition describes a flag change.
type Transition struct {
	Overlay Name
	Open    bool
}

// Controller owns the overlay flags. Flags are independent: opening one does
// not close another. The loading overlay starts open and can be closed once;
// it never reopens.
type Controller struct {
	open          map[Name]bool
	loadingClosed bool
	onChange      func(Transition)
}

// NewController returns a controller in the initial session state: loading
// visible, everything else closed.
func NewController() *Controller {
	return &Controller{
		open: map[Name]bool{Loading: true},
	}
}

// OnChange sets a hook called after every effective transition.
func (c *Controller) OnChange(fn func(Transition)) {
	c.onChange = fn
}

// Open shows the overlay. It returns false when nothing changed, which is
// the case for an already-open overlay and for the loading overlay once it
// has been dismissed.
func (c *Controller) Open(name Name) bool {
	if !valid(name) || c.open[name] {
		return false
	}
	if name == Loading && c.loadingClosed {
		return false
	}
	c.open[name] = true
	c.notify(name, true)
	return true
}

// Close hides the overlay. It returns false when it was already closed.
func (c *Controller) Close(name Name) bool {
	if !valid(name) || !c.open[name] {
		return false
	}
	c.open[name] = false
	if name == Loading {
		c.loadingClosed = true
	}
	c.notify(name, false)
	return true
}

// Toggle flips the overlay and reports the new visibility.
func (c *Controller) Toggle(name Name) bool {
	if c.open[name] {
		c.Close(name)
	} else {
		c.Open(name)
	}
	return c.open[name]
}

// IsOpen reports whether the overlay is visible.
func (c *Controller) IsOpen(name Name) bool {
	return c.open[name]
}

// State returns a snapshot of all flags.
func (c *Controller) State() State {
	return State{
		AboutOpen:        c.open[About],
		InspirationsOpen: c.open[Inspirations],
		MobileMenuOpen:   c.open[MobileMenu],
		LoadingVisible:   c.open[Loading],
	}
}

// ScrollLocked reports whether any full-screen overlay is open.
func (c *Controller) ScrollLocked() bool {
	for _, name := range All {
		if name.FullScreen() && c.open[name] {
			return true
		}
	}
	return false
}

// Topmost returns the open overlay that should receive input first.
func (c *Controller) Topmost() (Name, bool) {
	for _, name := range All {
		if c.open[name] {
			return name, true
		}
	}
	return 0, false
}

func (c *Controller) notify(name Name, open bool) {
	if c.onChange != nil {
		c.onChange(Transition{Overlay: name, Open: open})
	}
}

func valid(name Name) bool {
	return name >= About && name <= Loading
}
