// Package page assembles the portfolio page from static content and the
// state of a view.
package page

import (
	"time"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/reveal"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/theme"
)

// Section is one block of the page.
type Section struct {
	ID       string
	Anchor   nav.Anchor // empty for header and footer
	Template string
}

var sections = []Section{
	{ID: "header", Template: "header.html"},
	{ID: "home", Anchor: nav.Home, Template: "hero.html"},
	{ID: "about", Anchor: nav.About, Template: "about.html"},
	{ID: "skills", Anchor: nav.Skills, Template: "skills.html"},
	{ID: "projects", Anchor: nav.Projects, Template: "projects.html"},
	{ID: "contact", Anchor: nav.Contact, Template: "contact.html"},
	{ID: "footer", Template: "footer.html"},
}

// Sections returns the page layout in document order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// SectionFor returns the section behind anchor.
func SectionFor(a nav.Anchor) (Section, bool) {
	for _, s := range sections {
		if s.Anchor != "" && s.Anchor == a {
			return s, true
		}
	}
	return Section{}, false
}

// Header is the fixed navigation bar.
type Header struct {
	Owner    content.Profile
	Items    []nav.Item
	Social   []content.Link
	Scrolled bool
	MenuOpen bool
	Theme    theme.Preference
}

// Hero is the landing block under the header.
type Hero struct {
	Owner   content.Profile
	Tagline string
	Stats   []content.Stat
}

// About carries the introduction, the stat cards and the timeline.
type About struct {
	Preset   string
	Observe  bool
	Intro    []string
	Stats    []content.Stat
	Timeline []content.Milestone
}

// SkillTab is one button of the skills tab bar.
type SkillTab struct {
	ID     catalog.SkillTab
	Name   string
	Active bool
}

// Skills is the skills section for the selected tab.
type Skills struct {
	Preset       string
	Observe      bool
	Tabs         []SkillTab
	Skills       []catalog.Skill
	Technologies []string
}

// FilterButton is one project category button.
type FilterButton struct {
	catalog.Category
	Active bool
}

// Projects is the filter bar and the grid of matching projects.
type Projects struct {
	Preset   string
	Observe  bool
	Filters  []FilterButton
	Projects []catalog.Project
}

// Contact is the contact section with the form and its submission status.
type Contact struct {
	Preset  string
	Observe bool
	Info    []content.Link
	Form    contact.Form
	Status  contact.Status
	Problem string // shown when a submit is rejected before it starts
}

// Sending reports whether the submit button shows its busy state.
func (c Contact) Sending() bool {
	return c.Status.Phase == contact.InFlight
}

// Notice reports whether a settled message is shown above the form.
func (c Contact) Notice() bool {
	return c.Status.Phase == contact.Succeeded || c.Status.Phase == contact.Failed
}

// Success reports whether the notice is the success variant.
func (c Contact) Success() bool {
	return c.Status.Phase == contact.Succeeded
}

// Footer closes the page.
type Footer struct {
	Owner  content.Profile
	Blurb  string
	Links  []nav.Item
	Social []content.Link
	Email  string
	Year   int
}

// Page is everything the layout template needs. The layout renders the
// main column in Sections order.
type Page struct {
	ViewID   string
	Theme    theme.Preference
	Static   bool
	Sections []Section
	Header   Header
	Hero     Hero
	About    About
	Skills   Skills
	Projects Projects
	Contact  Contact
	Footer   Footer
}

// Main returns the sections between the header and the footer.
func (p Page) Main() []Section {
	var out []Section
	for _, s := range p.Sections {
		if s.Anchor != "" {
			out = append(out, s)
		}
	}
	return out
}

// Assembler builds page models. The zero value uses the wall clock.
type Assembler struct {
	Now func() time.Time
}

func (a Assembler) year() int {
	if a.Now == nil {
		return time.Now().Year()
	}
	return a.Now().Year()
}

// Assemble renders the whole page for v.
func (a Assembler) Assemble(v *session.View) Page {
	return Page{
		ViewID:   v.ID,
		Theme:    v.Theme.Current(),
		Sections: Sections(),
		Header:   HeaderOf(v),
		Hero:     heroOf(),
		About:    AboutOf(v),
		Skills:   SkillsOf(v),
		Projects: ProjectsOf(v),
		Contact:  ContactOf(v),
		Footer: Footer{
			Owner:  content.Owner(),
			Blurb:  content.FooterBlurb,
			Links:  nav.Items(),
			Social: content.SocialLinks(),
			Email:  content.Owner().Email,
			Year:   a.year(),
		},
	}
}

// HeaderOf builds the navigation header.
func HeaderOf(v *session.View) Header {
	return Header{
		Owner:    content.Owner(),
		Items:    nav.Items(),
		Social:   content.SocialLinks(),
		Scrolled: v.Nav.Scrolled,
		MenuOpen: v.Nav.MenuOpen,
		Theme:    v.Theme.Current(),
	}
}

func heroOf() Hero {
	return Hero{
		Owner:   content.Owner(),
		Tagline: content.HeroTagline,
		Stats:   content.HeroStats(),
	}
}

func observed(v *session.View, a nav.Anchor) (string, bool) {
	state := v.Reveal.State(string(a))
	return reveal.Preset(state), state == reveal.Hidden
}

// AboutOf builds the about section.
func AboutOf(v *session.View) About {
	preset, observe := observed(v, nav.About)
	return About{
		Preset:   preset,
		Observe:  observe,
		Intro:    []string{content.AboutMe, content.AboutOffline},
		Stats:    content.AboutStats(),
		Timeline: content.Timeline(),
	}
}

// SkillsOf builds the skills section for the view's active tab.
func SkillsOf(v *session.View) Skills {
	preset, observe := observed(v, nav.Skills)
	return Skills{
		Preset:  preset,
		Observe: observe,
		Tabs: []SkillTab{
			{ID: catalog.Technical, Name: "Technical Skills", Active: v.SkillTab != catalog.Soft},
			{ID: catalog.Soft, Name: "Soft Skills", Active: v.SkillTab == catalog.Soft},
		},
		Skills:       content.Skills(v.SkillTab),
		Technologies: content.Technologies(),
	}
}

// ProjectsOf builds the gallery filtered by the view's selection.
func ProjectsOf(v *session.View) Projects {
	preset, observe := observed(v, nav.Projects)
	cats := catalog.Categories()
	buttons := make([]FilterButton, len(cats))
	for i, c := range cats {
		buttons[i] = FilterButton{Category: c, Active: c.ID == v.Filter}
	}
	return Projects{
		Preset:   preset,
		Observe:  observe,
		Filters:  buttons,
		Projects: catalog.Filtered(content.Projects(), v.Filter),
	}
}

// ContactOf builds the contact section with the current form state.
func ContactOf(v *session.View) Contact {
	preset, observe := observed(v, nav.Contact)
	form, status := v.Contact.Snapshot()
	return Contact{
		Preset:  preset,
		Observe: observe,
		Info:    content.ContactInfo(),
		Form:    form,
		Status:  status,
	}
}
