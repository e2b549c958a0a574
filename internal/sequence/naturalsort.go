package sequence

import (
	"path/filepath"
	"strings"
)

// naturalLess compares two paths the way a human reads frame filenames:
// runs of digits compare numerically, everything else case-insensitively.
// "frame2.png" sorts before "frame10.png".
func naturalLess(a, b string) bool {
	a = strings.ToLower(filepath.ToSlash(a))
	b = strings.ToLower(filepath.ToSlash(b))
	for len(a) > 0 && len(b) > 0 {
		if isDigit(a[0]) && isDigit(b[0]) {
			na, ra := takeNumber(a)
			nb, rb := takeNumber(b)
			if na != nb {
				// Compare by length first, then lexically: equal-length
				// digit runs compare like the numbers they spell.
				if len(na) != len(nb) {
					return len(na) < len(nb)
				}
				return na < nb
			}
			a, b = ra, rb
			continue
		}
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// takeNumber splits the leading digit run off s, with leading zeros
// stripped so "007" and "7" compare equal.
func takeNumber(s string) (digits, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	digits = strings.TrimLeft(s[:i], "0")
	if digits == "" {
		digits = "0"
	}
	return digits, s[i:]
}
