// Package version implements the version ordering pkg-config uses when it
// checks --atleast-version (the rpmvercmp algorithm).
package version

import "strings"

// Compare returns -1, 0 or 1 as a orders before, equal to, or after b.
//
// Both strings are split into runs of digits and runs of letters; anything
// else is a separator. Numeric runs compare numerically and beat alphabetic
// runs. A '~' orders before everything, including the end of the string.
func Compare(a, b string) int {
	if a == b {
		return 0
	}

	for len(a) > 0 || len(b) > 0 {
		a = trimSeparators(a)
		b = trimSeparators(b)

		if strings.HasPrefix(a, "~") || strings.HasPrefix(b, "~") {
			if !strings.HasPrefix(a, "~") {
				return 1
			}
			if !strings.HasPrefix(b, "~") {
				return -1
			}
			a, b = a[1:], b[1:]
			continue
		}

		if len(a) == 0 || len(b) == 0 {
			break
		}

		numeric := isDigit(a[0])
		var segA, segB string
		if numeric {
			segA, a = span(a, isDigit)
			segB, b = span(b, isDigit)
		} else {
			segA, a = span(a, isAlpha)
			segB, b = span(b, isAlpha)
		}

		// segA is never empty; an empty segB means b has the other kind
		if segB == "" {
			if numeric {
				return 1
			}
			return -1
		}

		if numeric {
			segA = strings.TrimLeft(segA, "0")
			segB = strings.TrimLeft(segB, "0")
			if len(segA) != len(segB) {
				if len(segA) > len(segB) {
					return 1
				}
				return -1
			}
		}

		if c := strings.Compare(segA, segB); c != 0 {
			return c
		}
	}

	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return -1
	default:
		return 1
	}
}

// AtLeast reports whether v satisfies the minimum min. An empty min is
// always satisfied.
func AtLeast(v, min string) bool {
	if min == "" {
		return true
	}
	return Compare(v, min) >= 0
}

func trimSeparators(s string) string {
	return strings.TrimLeftFunc(s, func(r rune) bool {
		return r != '~' && (r > 0x7f || !isAlnum(byte(r)))
	})
}

func span(s string, pred func(byte) bool) (string, string) {
	i := 0
	for i < len(s) && pred(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isAlnum(c byte) bool { return isDigit(c) || isAlpha(c) }
