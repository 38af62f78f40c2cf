package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/catalog"
)

func TestProjectsHaveUniqueOrderedIDs(t *testing.T) {
	ps := Projects()
	require.Len(t, ps, 6)
	for i, p := range ps {
		assert.Equal(t, i+1, p.ID)
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Link)
		assert.NotEmpty(t, p.Categories)
	}
}

func TestFeaturedProjects(t *testing.T) {
	got := catalog.Filtered(Projects(), catalog.Featured)
	assert.Len(t, got, 3)
}

func TestEveryDeclaredCategoryIsReachable(t *testing.T) {
	for _, c := range catalog.Categories() {
		assert.NotEmpty(t, catalog.Filtered(Projects(), c.ID), "filter %q shows nothing", c.ID)
	}
}

func TestProjectsAreCopies(t *testing.T) {
	ps := Projects()
	ps[0].Tags[0] = "changed"
	ps[0].Categories[0] = "changed"
	assert.Equal(t, "Go", Projects()[0].Tags[0])
	assert.Equal(t, "cli", Projects()[0].Categories[0])

	tl := Timeline()
	tl[0].Highlights[0] = "changed"
	assert.NotEqual(t, "changed", Timeline()[0].Highlights[0])
}

func TestSkills(t *testing.T) {
	assert.Equal(t, TechnicalSkills(), Skills(catalog.Technical))
	assert.Equal(t, SoftSkills(), Skills(catalog.Soft))
	for _, s := range append(TechnicalSkills(), SoftSkills()...) {
		assert.GreaterOrEqual(t, s.Level, 0)
		assert.LessOrEqual(t, s.Level, 10)
	}
}

func TestLinks(t *testing.T) {
	for _, l := range ContactInfo() {
		assert.NotEmpty(t, l.Href)
	}
	assert.True(t, Link{Href: "https://github.com/Zachkp"}.External())
	assert.False(t, Link{Href: "mailto:x@y.z"}.External())
	assert.Equal(t, "Zach Kordas-Potter", Owner().FullName())
}
