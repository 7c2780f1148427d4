package theme

// Selection owns the session's active palette. It always resolves to exactly
// one registered definition. The UI receives it by injection; nothing in this
// package keeps a mutable current theme.
type Selection struct {
	registry  *Registry
	current   Definition
	chosen    bool
	nextSubID int
	observers map[int]func(Change)
}

// Change describes a Set call.
type Change struct {
	From       Definition
	To         Definition
	Requested  string
	Recognized bool
}

// NewSelection starts a selection at initial, resolved against registry.
// A nil registry uses the builtin one.
func NewSelection(registry *Registry, initial string) *Selection {
	if registry == nil {
		registry = Builtin()
	}
	return &Selection{
		registry:  registry,
		current:   registry.Get(initial),
		observers: make(map[int]func(Change)),
	}
}

// Current returns the active definition.
func (s *Selection) Current() Definition {
	return s.current
}

// ID returns the active theme id.
func (s *Selection) ID() ID {
	return s.current.ID
}

// Registry returns the registry the selection resolves against.
func (s *Selection) Registry() *Registry {
	return s.registry
}

// Chosen reports whether Set has been called at least once.
func (s *Selection) Chosen() bool {
	return s.chosen
}

// Set makes id the active theme. Unknown ids resolve to the registry
// fallback. Observers are notified on every call so consumers can rebuild.
func (s *Selection) Set(id string) Definition {
	def, ok := s.registry.Lookup(id)
	change := Change{
		From:       s.current,
		To:         def,
		Requested:  id,
		Recognized: ok,
	}
	s.current = def
	s.chosen = true
	for i := 0; i < s.nextSubID; i++ {
		if fn, ok := s.observers[i]; ok {
			fn(change)
		}
	}
	return def
}

// Subscribe registers fn for future changes and returns a function that
// removes it.
func (s *Selection) Subscribe(fn func(Change)) (unsubscribe func()) {
	id := s.nextSubID
	s.nextSubID++
	s.observers[id] = fn
	return func() {
		delete(s.observers, id)
	}
}
