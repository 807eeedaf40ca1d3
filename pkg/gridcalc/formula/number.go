// Package formula evaluates left-to-right arithmetic over cell values.
package formula

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const infinity = "Infinity"

// ParseNumber reads a display value as a float from its longest numeric
// prefix: leading whitespace, an optional sign, then either "Infinity" or
// digits with an optional fraction and exponent. "12abc" reads as 12. Text
// with no numeric prefix, including the empty string, yields NaN.
func ParseNumber(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	n := numberPrefix(s)
	if n == 0 {
		return math.NaN()
	}
	return parsePrefix(s[:n])
}

// numberPrefix returns the length of the numeric prefix of s, 0 if none.
func numberPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], infinity) {
		return i + len(infinity)
	}

	intDigits := digits(s[i:])
	i += intDigits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = digits(s[i+1:])
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}

	// the exponent only counts when digits follow it
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if n := digits(s[j:]); n > 0 {
			i = j + n
		}
	}
	return i
}

func digits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func parsePrefix(prefix string) float64 {
	switch strings.TrimLeft(prefix, "+-") {
	case infinity:
		if prefix[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return v
		}
		return math.NaN()
	}
	return v
}

// FormatNumber renders a result as display text: integers without a
// fraction, exponents without padding ("1e-7", "1e+21"), and NaN, Infinity
// or -Infinity for non-finite values.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return infinity
	case math.IsInf(v, -1):
		return "-" + infinity
	case v == 0:
		return "0"
	}

	if abs := math.Abs(v); abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// trimExponent drops leading zeros from the exponent of a 'g' formatted
// number: "1e-07" becomes "1e-7".
func trimExponent(s string) string {
	e := strings.IndexByte(s, 'e')
	if e < 0 || e+2 >= len(s) {
		return s
	}
	mantissa, sign, exp := s[:e], s[e+1], strings.TrimLeft(s[e+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + "e" + string(sign) + exp
}

// IsNumeric reports whether a display value is a finite number in full,
// with nothing but surrounding whitespace around it.
func IsNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || numberPrefix(s) != len(s) {
		return false
	}
	v := parsePrefix(s)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
