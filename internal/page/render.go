package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"percent": func(f float64) string { return fmt.Sprintf("%.0f%%", f) },
	"join":    strings.Join,
	"lower":   strings.ToLower,
}

// Templates parses the embedded templates. Each file is addressable by its
// base name, e.g. "index.html".
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parsing page templates")
	}
	return t, nil
}

// Fragment returns the template and data that re-render the section behind
// anchor for v.
func Fragment(v *session.View, a nav.Anchor) (string, any, error) {
	s, ok := SectionFor(a)
	if !ok {
		return "", nil, errors.Wrapf(nav.ErrUnknownAnchor, "%q", a)
	}
	switch a {
	case nav.About:
		return s.Template, AboutOf(v), nil
	case nav.Skills:
		return s.Template, SkillsOf(v), nil
	case nav.Projects:
		return s.Template, ProjectsOf(v), nil
	case nav.Contact:
		return s.Template, ContactOf(v), nil
	default:
		return s.Template, heroOf(), nil
	}
}

// Render writes the whole page p to w.
func Render(w io.Writer, t *template.Template, p Page) error {
	if err := t.ExecuteTemplate(w, "index.html", p); err != nil {
		return errors.Wrap(err, "rendering page")
	}
	return nil
}
