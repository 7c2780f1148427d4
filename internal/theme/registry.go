package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Registry is an immutable, ordered set of palettes with a designated
// fallback.
type Registry struct {
	defs     []Definition
	index    map[ID]int
	fallback ID
}

// NewRegistry validates defs and builds a registry. The fallback must be one
// of the supplied definitions.
func NewRegistry(fallback ID, defs ...Definition) (*Registry, error) {
	if len(defs) == 0 {
		return nil, errors.New("registry needs at least one theme")
	}
	r := &Registry{
		defs:     make([]Definition, 0, len(defs)),
		index:    make(map[ID]int, len(defs)),
		fallback: fallback,
	}
	for _, def := range defs {
		id := normalizeID(string(def.ID))
		if id == "" {
			return nil, errors.New("theme id is required")
		}
		if _, dup := r.index[id]; dup {
			return nil, fmt.Errorf("duplicate theme %q", id)
		}
		if err := def.Tokens.Validate(); err != nil {
			return nil, fmt.Errorf("theme %q: %w", id, err)
		}
		def.ID = id
		r.index[id] = len(r.defs)
		r.defs = append(r.defs, def)
	}
	if _, ok := r.index[fallback]; !ok {
		return nil, fmt.Errorf("fallback theme %q is not registered", fallback)
	}
	return r, nil
}

// MustRegistry is NewRegistry that panics on error. Only for static tables.
func MustRegistry(fallback ID, defs ...Definition) *Registry {
	r, err := NewRegistry(fallback, defs...)
	if err != nil {
		panic(err)
	}
	return r
}

var builtin = MustRegistry(IDDefault, DefaultTheme, DarkTheme, NeonTheme, KpopTheme)

// Builtin returns the compiled-in registry.
func Builtin() *Registry {
	return builtin
}

// Get resolves id against the compiled-in registry, falling back to the
// default palette for anything unrecognized.
func Get(id string) Definition {
	return builtin.Get(id)
}

// Lookup returns the definition for id. The boolean is false when id was not
// recognized and the fallback was returned instead.
func (r *Registry) Lookup(id string) (Definition, bool) {
	if i, ok := r.index[normalizeID(id)]; ok {
		return r.defs[i], true
	}
	return r.defs[r.index[r.fallback]], false
}

// Get is Lookup without the recognition flag.
func (r *Registry) Get(id string) Definition {
	def, _ := r.Lookup(id)
	return def
}

// Has reports whether id names a registered theme.
func (r *Registry) Has(id string) bool {
	_, ok := r.index[normalizeID(id)]
	return ok
}

// Default returns the fallback definition.
func (r *Registry) Default() Definition {
	return r.defs[r.index[r.fallback]]
}

// Definitions returns the palettes in registration order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []ID {
	out := make([]ID, len(r.defs))
	for i, def := range r.defs {
		out[i] = def.ID
	}
	return out
}

// IndexOf returns the position of id, or the fallback's position.
func (r *Registry) IndexOf(id string) int {
	if i, ok := r.index[normalizeID(id)]; ok {
		return i
	}
	return r.index[r.fallback]
}

// Len returns the number of registered palettes.
func (r *Registry) Len() int {
	return len(r.defs)
}

func normalizeID(id string) ID {
	return ID(strings.ToLower(strings.TrimSpace(id)))
}
