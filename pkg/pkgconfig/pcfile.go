package pkgconfig

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// PCFile holds the fields of a .pc file that matter for header lookup
type PCFile struct {
	Path     string
	Name     string
	Version  string
	Cflags   string
	Requires string
	// RequiresPrivate is followed for Cflags too, as pkg-config does
	RequiresPrivate string
	Vars            map[string]string
}

// ParsePC reads a .pc file. path is used for the predefined pcfiledir
// variable and for error messages. Variable references in fields are
// expanded.
func ParsePC(r io.Reader, path string) (*PCFile, error) {
	pc := &PCFile{
		Path: path,
		Vars: map[string]string{
			"pcfiledir": filepath.Dir(path),
		},
	}

	lines, err := logicalLines(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	for _, line := range lines {
		key, sep, value := splitDecl(line)
		if key == "" {
			continue
		}

		expanded, err := pc.expand(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		if sep == '=' {
			pc.Vars[key] = expanded
			continue
		}

		switch strings.ToLower(key) {
		case "name":
			pc.Name = expanded
		case "version":
			pc.Version = expanded
		case "cflags":
			pc.Cflags = expanded
		case "requires":
			pc.Requires = expanded
		case "requires.private":
			pc.RequiresPrivate = expanded
		}
	}

	return pc, nil
}

// IncludeDirs returns the -I directories from the Cflags field
func (pc *PCFile) IncludeDirs() ([]string, error) {
	return IncludeDirs(pc.Cflags)
}

// Requirements returns the packages this file depends on, public ones
// first
func (pc *PCFile) Requirements() ([]Requirement, error) {
	pub, err := ParseRequires(pc.Requires)
	if err != nil {
		return nil, fmt.Errorf("%s: Requires: %w", pc.Path, err)
	}
	priv, err := ParseRequires(pc.RequiresPrivate)
	if err != nil {
		return nil, fmt.Errorf("%s: Requires.private: %w", pc.Path, err)
	}
	return append(pub, priv...), nil
}

// logicalLines joins backslash continuations and strips comments
func logicalLines(r io.Reader) ([]string, error) {
	var lines []string
	var cur strings.Builder

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := stripComment(sc.Text())
		if strings.HasSuffix(line, "\\") {
			cur.WriteString(strings.TrimSuffix(line, "\\"))
			continue
		}
		cur.WriteString(line)
		lines = append(lines, strings.TrimSpace(cur.String()))
		cur.Reset()
	}
	if cur.Len() > 0 {
		lines = append(lines, strings.TrimSpace(cur.String()))
	}
	return lines, sc.Err()
}

// stripComment removes an unescaped '#' and everything after it; "\#" is a
// literal hash
func stripComment(line string) string {
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' && i+1 < len(line) && line[i+1] == '#' {
			b.WriteByte('#')
			i++
			continue
		}
		if c == '#' {
			break
		}
		b.WriteByte(c)
	}
	return b.String()
}

// splitDecl splits "key=value" or "Key: value". sep is '=' or ':' and key
// is empty for lines that are neither.
func splitDecl(line string) (key string, sep byte, value string) {
	i := 0
	for i < len(line) && isIdent(line[i]) {
		i++
	}
	if i == 0 {
		return "", 0, ""
	}
	key = line[:i]

	rest := strings.TrimLeft(line[i:], " \t")
	if rest == "" || (rest[0] != '=' && rest[0] != ':') {
		return "", 0, ""
	}
	return key, rest[0], strings.TrimSpace(rest[1:])
}

func isIdent(c byte) bool {
	return c == '_' || c == '.' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// expand replaces ${var} with previously defined variables; "$$" is a
// literal dollar sign
func (pc *PCFile) expand(s string) (string, error) {
	if !strings.Contains(s, "$") {
		return s, nil
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '$' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 < len(s) && s[i+1] == '$' {
			b.WriteByte('$')
			i++
			continue
		}
		if i+1 < len(s) && s[i+1] == '{' {
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				return "", fmt.Errorf("unterminated variable reference in %q", s)
			}
			name := s[i+2 : i+2+end]
			val, ok := pc.Vars[name]
			if !ok {
				return "", fmt.Errorf("undefined variable %q", name)
			}
			b.WriteString(val)
			i += 2 + end
			continue
		}
		b.WriteByte('$')
	}
	return b.String(), nil
}
