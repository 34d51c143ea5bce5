// Package notation rewrites calculator-notation expressions into the canonical
// form understood by the parser: operator glyphs become ASCII operators, the
// constant glyphs become their decimal literals, and the root function gets a
// spellable name. The rewrite is a single pass over recognized lexemes so later
// rules can never re-match text produced by earlier ones.
package notation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Constant literals substituted for the π and e keypad glyphs. The
// substitution is glyph-for-literal on purpose: pressing e directly after a
// digit concatenates into one number ("2e" evaluates as 22.718…), and that
// behavior is part of the calculator's contract.
const (
	PiLiteral    = "3.141592653589793"
	EulerLiteral = "2.718281828459045"
)

// funcLexemes are multi-rune prefixes recognized as a unit, longest first.
var funcLexemes = []struct {
	from string
	to   string
}{
	{"sin(", "sin("},
	{"cos(", "cos("},
	{"tan(", "tan("},
	{"log(", "log("},
	{"ln(", "ln("},
	{"√(", "sqrt("},
}

// Normalize rewrites a raw calculator expression into canonical form and
// appends closing parentheses for every unmatched opener. It never removes
// excess closers; those surface as a parse error later.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + 8)

	rest := raw
scan:
	for len(rest) > 0 {
		for _, lex := range funcLexemes {
			if strings.HasPrefix(rest, lex.from) {
				b.WriteString(lex.to)
				rest = rest[len(lex.from):]
				continue scan
			}
		}

		r, size := utf8.DecodeRuneInString(rest)
		switch r {
		case '×':
			b.WriteByte('*')
		case '÷':
			b.WriteByte('/')
		case '%':
			// X% rewrites to X/100 in place; percent is not modulo.
			b.WriteString("/100")
		case 'π':
			b.WriteString(PiLiteral)
		case 'e':
			b.WriteString(EulerLiteral)
		default:
			b.WriteRune(r)
		}
		rest = rest[size:]
	}

	return balance(b.String())
}

// balance appends missing ')' characters equal to the opener deficit.
func balance(expr string) string {
	depth := 0
	for _, r := range expr {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	if depth > 0 {
		expr += strings.Repeat(")", depth)
	}
	return expr
}

// zeroDenominator matches a literal zero denominator: "/0", optionally with a
// fraction of zeros, not followed by a further digit. Computed zeros such as
// "/(1-1)" are intentionally not caught here; those fall through to the
// runtime Infinity classification.
var zeroDenominator = regexp.MustCompile(`/0(\.0*)?($|[^0-9.])`)

// HasZeroDivision reports whether the canonical form contains a structurally
// detectable division by a literal zero.
func HasZeroDivision(canonical string) bool {
	return zeroDenominator.MatchString(canonical)
}
