// Package contact implements the contact form of the portfolio: four text
// fields and a submission that is acknowledged after a fixed delay without
// anything leaving the process.
package contact

import (
	"strings"

	"github.com/pkg/errors"
)

// Field names a form input.
type Field string

const (
	Name    Field = "name"
	Email   Field = "email"
	Subject Field = "subject"
	Message Field = "message"
)

// ErrUnknownField is returned when editing a field the form does not have.
var ErrUnknownField = errors.New("unknown form field")

// Fields lists the inputs in display order.
func Fields() []Field {
	return []Field{Name, Email, Subject, Message}
}

// ParseField validates a field name.
func ParseField(s string) (Field, error) {
	for _, f := range Fields() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownField, "%q", s)
}

// Form holds the current input values.
type Form struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Get returns the value of f.
func (f Form) Get(field Field) string {
	switch field {
	case Name:
		return f.Name
	case Email:
		return f.Email
	case Subject:
		return f.Subject
	case Message:
		return f.Message
	}
	return ""
}

func (f *Form) set(field Field, value string) {
	switch field {
	case Name:
		f.Name = value
	case Email:
		f.Email = value
	case Subject:
		f.Subject = value
	case Message:
		f.Message = value
	}
}

// Complete reports whether every field has a non-blank value.
func (f Form) Complete() bool {
	for _, field := range Fields() {
		if strings.TrimSpace(f.Get(field)) == "" {
			return false
		}
	}
	return true
}
