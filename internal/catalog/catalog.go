// Package catalog defines the project and skill records shown on the page
// and the category filter applied to the project gallery.
package catalog

import "slices"

// Project is one entry of the gallery. Records are built once at startup and
// never modified.
type Project struct {
	ID          int
	Title       string
	Description string
	Image       string
	Tags        []string
	Categories  []string
	Link        string
	Source      string // optional repository link
	Featured    bool
}

// HasCategory reports whether category is one of the project's categories.
func (p Project) HasCategory(category string) bool {
	return slices.Contains(p.Categories, category)
}

// Filter is the gallery selection.
type Filter string

// Sentinel selections. Featured is derived from Project.Featured, it is not
// a literal category.
const (
	All      Filter = "all"
	Featured Filter = "featured"
	Terminal Filter = "cli"
	Web      Filter = "web"
)

// Category is a filter button.
type Category struct {
	ID   Filter
	Name string
}

var categories = []Category{
	{ID: All, Name: "All Projects"},
	{ID: Terminal, Name: "Terminal Apps"},
	{ID: Web, Name: "Web Apps"},
	{ID: Featured, Name: "Featured"},
}

// Categories returns the declared filters in display order.
func Categories() []Category {
	return slices.Clone(categories)
}

// Declared reports whether f is one of the declared filters.
func (f Filter) Declared() bool {
	return slices.ContainsFunc(categories, func(c Category) bool { return c.ID == f })
}

// Filtered returns the projects matching f in their original order.
// Selections outside the declared filters give an empty result, even when a
// project happens to carry that category.
func Filtered(all []Project, f Filter) []Project {
	switch {
	case f == All:
		return all
	case f == Featured:
		return keep(all, func(p Project) bool { return p.Featured })
	case f.Declared():
		return keep(all, func(p Project) bool { return p.HasCategory(string(f)) })
	default:
		return []Project{}
	}
}

func keep(all []Project, pred func(Project) bool) []Project {
	out := make([]Project, 0, len(all))
	for _, p := range all {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
