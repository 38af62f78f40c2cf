// Package theme holds the light/dark preference of a view session.
package theme

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Preference is the colour scheme of a view.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
)

// ErrUnknownPreference is returned by Parse for anything but light or dark.
var ErrUnknownPreference = errors.New("unknown theme preference")

// Parse reads a preference name, case-insensitively.
func Parse(s string) (Preference, error) {
	switch Preference(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", errors.Wrapf(ErrUnknownPreference, "%q", s)
}

// Toggle returns the other preference.
func (p Preference) Toggle() Preference {
	if p == Dark {
		return Light
	}
	return Dark
}

// Class is the class applied to the root element for p.
func (p Preference) Class() string {
	if p == Dark {
		return "dark"
	}
	return ""
}

// ToggleLabel is the accessible label of the toggle button while p is active.
func (p Preference) ToggleLabel() string {
	if p == Dark {
		return "Switch to light mode"
	}
	return "Switch to dark mode"
}

// Controller is the single writer of a view's preference. Sections only read it.
type Controller struct {
	mu      sync.RWMutex
	current Preference
}

// NewController starts at initial, falling back to Light for unknown values.
func NewController(initial Preference) *Controller {
	if initial != Dark {
		initial = Light
	}
	return &Controller{current: initial}
}

// Current returns the active preference.
func (c *Controller) Current() Preference {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Toggle flips the preference and returns the new value.
func (c *Controller) Toggle() Preference {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Toggle()
	return c.current
}
