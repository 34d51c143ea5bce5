package eval

import (
	"math"
	"strconv"
	"strings"

	"github.com/codefionn/rechenwerk/internal/consts"
)

// Classify maps a raw evaluation result to a classified failure, or nil when
// the value is a displayable finite number.
func Classify(raw float64) *Error {
	switch {
	case math.IsNaN(raw):
		return failure(InvalidInput, "")
	case math.IsInf(raw, 0):
		return failure(Overflow, "")
	default:
		return nil
	}
}

// Format renders a finite value as a decimal string: magnitudes below the
// zero-snap threshold collapse to "0", everything else is rounded to the
// configured number of significant digits with trailing zeros stripped.
// Deterministic and side-effect-free.
func Format(value float64) string {
	if math.Abs(value) < consts.ZeroSnapEpsilon {
		return "0"
	}

	// Round to significant digits by a formatting round trip.
	rounded, _ := strconv.ParseFloat(
		strconv.FormatFloat(value, 'e', consts.SignificantDigits-1, 64), 64)

	abs := math.Abs(rounded)
	if abs >= 1e21 || abs < 1e-6 {
		return tidyExponent(strconv.FormatFloat(rounded, 'e', -1, 64))
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// tidyExponent strips the leading zero and redundant '+' from an exponent,
// so 1e-09 reads as 1e-9.
func tidyExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return s
	}
	mantissa, exp := s[:i], s[i+1:]
	sign := ""
	switch {
	case strings.HasPrefix(exp, "-"):
		sign = "-"
		exp = exp[1:]
	case strings.HasPrefix(exp, "+"):
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + "e" + sign + exp
}
