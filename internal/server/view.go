package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/session"
)

// fragment is a template to render once the view lock is released.
type fragment struct {
	status int
	name   string
	data   any
}

func ok(name string, data any) fragment {
	return fragment{status: http.StatusOK, name: name, data: data}
}

// apply runs fn against the view named by the request header and renders
// the fragment it returns.
func (s *Server) apply(c *gin.Context, fn func(v *session.View) (fragment, error)) {
	var f fragment
	err := s.views.Update(c.GetHeader(ViewHeader), func(v *session.View) error {
		var err error
		f, err = fn(v)
		return err
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	if f.name == "" {
		c.Status(f.status)
		return
	}
	c.HTML(f.status, f.name, f.data)
}

func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		// Whatever element asked, the notice goes to the page's notice slot.
		c.Header("HX-Retarget", NoticeTarget)
		c.Header("HX-Reswap", "innerHTML")
		c.HTML(http.StatusGone, "expired.html", nil)
	case errors.Is(err, nav.ErrUnknownAnchor):
		c.String(http.StatusNotFound, "unknown section")
	case errors.Is(err, contact.ErrUnknownField):
		c.String(http.StatusBadRequest, "unknown field")
	case errors.Is(err, contact.ErrInFlight):
		c.String(http.StatusConflict, "a message is being sent")
	case errors.Is(err, errBadInput):
		c.String(http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("applying view event", zap.String("path", c.FullPath()), zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}

var errBadInput = errors.New("bad input")

// NoticeTarget is the element that receives the expired-view notice.
const NoticeTarget = "#view-notice"

func parseNumber(c *gin.Context, key string) (float64, error) {
	raw := c.PostForm(key)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(errBadInput, "%s must be a number", key)
	}
	return f, nil
}

func (s *Server) toggleTheme(c *gin.Context) {
	s.apply(c, func(v *session.View) (fragment, error) {
		pref := v.Theme.Toggle()
		metrics.IncrementThemeToggle(string(pref))

		event, err := json.Marshal(map[string]any{
			"themeChanged": map[string]string{"value": string(pref)},
		})
		if err != nil {
			return fragment{}, errors.Wrap(err, "encoding theme event")
		}
		c.Header("HX-Trigger", string(event))
		return ok("header.html", page.HeaderOf(v)), nil
	})
}

func (s *Server) scroll(c *gin.Context) {
	y, err := parseNumber(c, "y")
	if err != nil {
		s.fail(c, err)
		return
	}
	s.apply(c, func(v *session.View) (fragment, error) {
		v.Nav.Scroll(y)
		return ok("header.html", page.HeaderOf(v)), nil
	})
}

func (s *Server) toggleMenu(c *gin.Context) {
	s.apply(c, func(v *session.View) (fragment, error) {
		v.Nav.ToggleMenu()
		return ok("header.html", page.HeaderOf(v)), nil
	})
}

func (s *Server) activate(c *gin.Context) {
	s.apply(c, func(v *session.View) (fragment, error) {
		if err := v.Nav.Activate(nav.Anchor(c.Param("anchor"))); err != nil {
			return fragment{}, err
		}
		return ok("header.html", page.HeaderOf(v)), nil
	})
}

func (s *Server) reveal(c *gin.Context) {
	a, err := nav.ParseAnchor(c.Param("anchor"))
	if err != nil {
		s.fail(c, err)
		return
	}
	ratio, err := parseNumber(c, "ratio")
	if err != nil {
		s.fail(c, err)
		return
	}
	s.apply(c, func(v *session.View) (fragment, error) {
		v.Reveal.Observe(string(a), ratio)
		name, data, err := page.Fragment(v, a)
		if err != nil {
			return fragment{}, err
		}
		return ok(name, data), nil
	})
}

func (s *Server) filterProjects(c *gin.Context) {
	f := catalog.Filter(c.DefaultQuery("filter", string(catalog.All)))
	label := string(f)
	if !f.Declared() {
		label = "unknown"
	}
	metrics.IncrementFilterSelection(label)

	s.apply(c, func(v *session.View) (fragment, error) {
		v.Filter = f
		return ok("project-grid.html", page.ProjectsOf(v)), nil
	})
}

func (s *Server) selectSkills(c *gin.Context) {
	tab := catalog.ParseSkillTab(c.Query("tab"))
	s.apply(c, func(v *session.View) (fragment, error) {
		v.SkillTab = tab
		return ok("skills.html", page.SkillsOf(v)), nil
	})
}

func (s *Server) editField(c *gin.Context) {
	field, err := contact.ParseField(c.PostForm("field"))
	if err != nil {
		s.fail(c, err)
		return
	}
	value := c.PostForm("value")
	if value == "" {
		// htmx posts the input's own name alongside the extra field key.
		value = c.PostForm(string(field))
	}
	s.apply(c, func(v *session.View) (fragment, error) {
		if err := v.Contact.Edit(field, value); err != nil {
			return fragment{}, err
		}
		return fragment{status: http.StatusNoContent}, nil
	})
}

type contactRequest struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required"`
	Subject string `form:"subject" binding:"required"`
	Message string `form:"message" binding:"required"`
}

func (r contactRequest) form() contact.Form {
	return contact.Form{Name: r.Name, Email: r.Email, Subject: r.Subject, Message: r.Message}
}

const incompleteForm = "Please fill in every field before sending."

func (s *Server) submitContact(c *gin.Context) {
	var req contactRequest
	bindErr := c.ShouldBind(&req)

	s.apply(c, func(v *session.View) (fragment, error) {
		m := v.Contact
		// A second submit while one is pending changes nothing.
		if m.Status().Phase == contact.InFlight {
			return ok("contact-form.html", page.ContactOf(v)), nil
		}

		form := req.form()
		for _, field := range contact.Fields() {
			if err := m.Edit(field, form.Get(field)); err != nil {
				return fragment{}, err
			}
		}

		if bindErr != nil || !form.Complete() {
			data := page.ContactOf(v)
			data.Problem = incompleteForm
			return fragment{status: http.StatusUnprocessableEntity, name: "contact-form.html", data: data}, nil
		}

		if err := m.Submit(c.Request.Context()); err != nil {
			return fragment{}, err
		}
		return ok("contact-form.html", page.ContactOf(v)), nil
	})
}

func (s *Server) pollContact(c *gin.Context) {
	s.apply(c, func(v *session.View) (fragment, error) {
		return ok("contact-form.html", page.ContactOf(v)), nil
	})
}
