// Package nav tracks the header state of a view: whether the page has been
// scrolled and whether the mobile menu is open.
package nav

import "github.com/pkg/errors"

// ScrollThreshold is the vertical offset, in pixels, past which the header
// switches to its solid background.
const ScrollThreshold = 10

// Anchor is the fragment identifier of a page section.
type Anchor string

// Link targets. Header and footer links only ever point at these.
const (
	Home     Anchor = "home"
	About    Anchor = "about"
	Skills   Anchor = "skills"
	Projects Anchor = "projects"
	Contact  Anchor = "contact"
)

var anchors = []Anchor{Home, About, Skills, Projects, Contact}

// ErrUnknownAnchor is returned for fragment ids outside the fixed set.
var ErrUnknownAnchor = errors.New("unknown section anchor")

// Anchors returns the section anchors in page order.
func Anchors() []Anchor {
	out := make([]Anchor, len(anchors))
	copy(out, anchors)
	return out
}

// ParseAnchor validates s against the fixed anchor set.
func ParseAnchor(s string) (Anchor, error) {
	for _, a := range anchors {
		if string(a) == s {
			return a, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownAnchor, "%q", s)
}

// Href is the in-page link to a.
func (a Anchor) Href() string {
	return "#" + string(a)
}

// Item is a navigation link.
type Item struct {
	Name   string
	Anchor Anchor
}

// Href is the in-page link of the item.
func (i Item) Href() string {
	return i.Anchor.Href()
}

// Items returns the header navigation in page order.
func Items() []Item {
	return []Item{
		{Name: "Home", Anchor: Home},
		{Name: "About", Anchor: About},
		{Name: "Skills", Anchor: Skills},
		{Name: "Projects", Anchor: Projects},
		{Name: "Contact", Anchor: Contact},
	}
}

// State is the header state of one view.
type State struct {
	Scrolled bool
	MenuOpen bool
}

// Scroll records the current vertical offset. Unlike the reveal latch the
// flag follows the offset both ways.
func (s *State) Scroll(offset float64) bool {
	s.Scrolled = offset > ScrollThreshold
	return s.Scrolled
}

// ToggleMenu opens a closed menu and closes an open one.
func (s *State) ToggleMenu() bool {
	s.MenuOpen = !s.MenuOpen
	return s.MenuOpen
}

// Activate handles a click on a navigation link; the menu always closes.
func (s *State) Activate(a Anchor) error {
	s.MenuOpen = false
	_, err := ParseAnchor(string(a))
	return err
}
