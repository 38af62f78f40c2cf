// Package reveal implements the one-shot visibility latch that gates the
// entrance animation of each page section.
//
// A latch starts Hidden and moves to Revealed the first time an observation
// reaches its threshold. There is no transition back.
package reveal

import "sync"

// DefaultThreshold is the visible fraction of a section needed to reveal it.
const DefaultThreshold = 0.1

// State of a latch.
type State int

const (
	Hidden State = iota
	Revealed
)

func (s State) String() string {
	if s == Revealed {
		return "revealed"
	}
	return "hidden"
}

// Animation preset names consumed by the templates.
const (
	PresetHidden  = "reveal-hidden"
	PresetVisible = "reveal-visible"
)

// Preset picks the animation preset for s.
func Preset(s State) string {
	if s == Revealed {
		return PresetVisible
	}
	return PresetHidden
}

// Trigger is a single section's latch.
type Trigger struct {
	threshold float64
	state     State
}

// NewTrigger returns a hidden latch. A threshold outside (0, 1] falls back
// to DefaultThreshold.
func NewTrigger(threshold float64) *Trigger {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Trigger{threshold: threshold}
}

// Unsupported returns a latch for clients without an intersection observer.
// It is revealed from the start.
func Unsupported() *Trigger {
	return &Trigger{threshold: DefaultThreshold, state: Revealed}
}

// Observe feeds the visible fraction of the section and reports whether the
// latch is revealed afterwards.
func (t *Trigger) Observe(ratio float64) bool {
	if t.state == Hidden && ratio > 0 && ratio >= t.threshold {
		t.state = Revealed
	}
	return t.state == Revealed
}

// State returns the current latch state.
func (t *Trigger) State() State {
	return t.state
}

// Board keeps one latch per section of a view.
type Board struct {
	mu        sync.Mutex
	threshold float64
	supported bool
	triggers  map[string]*Trigger
}

// NewBoard creates latches lazily with threshold. When supported is false
// every section is revealed immediately.
func NewBoard(threshold float64, supported bool) *Board {
	return &Board{
		threshold: threshold,
		supported: supported,
		triggers:  make(map[string]*Trigger),
	}
}

func (b *Board) trigger(section string) *Trigger {
	t, ok := b.triggers[section]
	if !ok {
		if b.supported {
			t = NewTrigger(b.threshold)
		} else {
			t = Unsupported()
		}
		b.triggers[section] = t
	}
	return t
}

// Observe forwards ratio to the section's latch.
func (b *Board) Observe(section string, ratio float64) State {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := b.trigger(section)
	t.Observe(ratio)
	return t.State()
}

// State reports the section's latch without observing.
func (b *Board) State(section string) State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.trigger(section).State()
}

// Preset is shorthand for Preset(b.State(section)).
func (b *Board) Preset(section string) string {
	return Preset(b.State(section))
}
