package preset

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultKey is the preset every unrecognized lookup falls back to.
// The fallback is contractual: the input layer may pass arbitrary
// user-entered keys and must always receive a playable instrument.
const DefaultKey = "piano"

var errDuplicatePreset = errors.New("duplicate preset")

// Library is a read-only mapping from preset key to instrument preset.
// It is populated once at startup and never mutated afterwards.
type Library struct {
	presets map[string]*Preset
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{presets: make(map[string]*Preset)}
}

// Register adds a preset under its name.
func (l *Library) Register(p *Preset) error {
	if p == nil {
		return errors.New("nil preset")
	}
	if _, exists := l.presets[p.Name()]; exists {
		return fmt.Errorf("%w: %s", errDuplicatePreset, p.Name())
	}
	l.presets[p.Name()] = p
	return nil
}

// MustRegister is like Register but panics on error.
func (l *Library) MustRegister(p *Preset) {
	if err := l.Register(p); err != nil {
		panic("preset library: " + err.Error())
	}
}

// Lookup returns the preset for key, or the DefaultKey preset when the
// key is unknown. It returns nil only if the default itself is missing.
func (l *Library) Lookup(key string) *Preset {
	if p, ok := l.presets[key]; ok {
		return p
	}
	return l.presets[DefaultKey]
}

// Contains reports whether key is registered, without fallback.
func (l *Library) Contains(key string) bool {
	_, ok := l.presets[key]
	return ok
}

// Names returns all registered preset keys in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.presets))
	for name := range l.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
