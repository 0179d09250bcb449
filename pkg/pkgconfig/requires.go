package pkgconfig

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/arc-language/hdrloc/pkg/version"
)

// Requirement is one entry of a Requires or Requires.private field
type Requirement struct {
	Name    string
	Op      string // "", "=", "!=", "<", "<=", ">", ">="
	Version string
}

// Satisfied reports whether v meets the requirement's version constraint
func (q Requirement) Satisfied(v string) bool {
	if q.Op == "" {
		return true
	}
	c := version.Compare(v, q.Version)
	switch q.Op {
	case "=":
		return c == 0
	case "!=":
		return c != 0
	case "<":
		return c < 0
	case "<=":
		return c <= 0
	case ">":
		return c > 0
	default:
		return c >= 0
	}
}

func (q Requirement) String() string {
	if q.Op == "" {
		return q.Name
	}
	return q.Name + " " + q.Op + " " + q.Version
}

// ParseRequires splits a Requires field such as
// "glib-2.0 >= 2.50, gobject-2.0 pango" into requirements. Entries are
// separated by commas or whitespace; a comparison operator binds the next
// word as the version.
func ParseRequires(s string) ([]Requirement, error) {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	var reqs []Requirement
	for i := 0; i < len(words); i++ {
		if isOperator(words[i]) {
			return nil, fmt.Errorf("comparison %q without a package name in %q", words[i], s)
		}
		q := Requirement{Name: words[i]}
		if i+1 < len(words) && isOperator(words[i+1]) {
			if i+2 >= len(words) {
				return nil, fmt.Errorf("comparison after %s has no version in %q", q.Name, s)
			}
			q.Op, q.Version = words[i+1], words[i+2]
			i += 2
		}
		reqs = append(reqs, q)
	}
	return reqs, nil
}

func isOperator(w string) bool {
	switch w {
	case "=", "!=", "<", "<=", ">", ">=":
		return true
	}
	return false
}
