package report

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// formatNumber renders a float in shortest round-trip form. Integral values
// keep a ".0" suffix and magnitudes outside [1e-4, 1e16) use an exponent,
// so 40 prints as "40.0" and 1e16 as "1e+16".
func formatNumber(v float64) string {
	if v != 0 {
		e := strconv.FormatFloat(v, 'e', -1, 64)
		i := strings.IndexByte(e, 'e')
		if exp, err := strconv.Atoi(e[i+1:]); err == nil && (exp < -4 || exp >= 16) {
			return e
		}
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

// truncated renders the integer part of v, dropping the fraction.
func truncated(v float64) string {
	t := math.Trunc(v)
	if t == 0 {
		t = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(t, 'f', 0, 64)
}

// width is the display width of s in runes.
func width(s string) int {
	return utf8.RuneCountInString(s)
}

// pad left-aligns s in a field of n runes. Longer values are not cut.
func pad(s string, n int) string {
	if w := width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
