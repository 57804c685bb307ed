package catalog

import (
	"sort"
	"strings"
)

// NaturalLess reports whether designation a sorts before b in natural
// order: runs of decimal digits compare by numeric value and all other
// text compares case-insensitively, so "9x1.5" sorts before "10x2".
// Strings that compare equal this way fall back to byte order.
func NaturalLess(a, b string) bool {
	if c := naturalCompare(a, b); c != 0 {
		return c < 0
	}
	return a < b
}

// SortNatural sorts names in natural order.
func SortNatural(names []string) {
	sort.Slice(names, func(i, j int) bool { return NaturalLess(names[i], names[j]) })
}

func naturalCompare(a, b string) int {
	var ca, cb string
	for {
		// Text run, possibly empty.
		ca, a = splitRun(a, false)
		cb, b = splitRun(b, false)
		if c := strings.Compare(strings.ToLower(ca), strings.ToLower(cb)); c != 0 {
			return c
		}
		switch {
		case a == "" && b == "":
			return 0
		case a == "":
			return -1
		case b == "":
			return 1
		}
		// Both now start with a digit run.
		ca, a = splitRun(a, true)
		cb, b = splitRun(b, true)
		if c := compareDigits(ca, cb); c != 0 {
			return c
		}
	}
}

// splitRun splits s after its leading run of digits or non-digits.
func splitRun(s string, digits bool) (run, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}
	return s[:i], s[i:]
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// compareDigits compares two runs of decimal digits by value.
// Runs of any length are supported.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
