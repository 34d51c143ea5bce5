package engine

import (
	"strings"

	"github.com/codefionn/rechenwerk/internal/eval"
)

// InputDigit appends a digit or the decimal point
func (c *Calculator) InputDigit(d rune) {
	c.append(string(d))
}

// InputConstant appends a constant glyph (π or e)
func (c *Calculator) InputConstant(g rune) {
	c.append(string(g))
}

// InputFunction appends a function prefix such as "sin(" or "√("
func (c *Calculator) InputFunction(name string) {
	c.append(name)
}

// InputOpenParen appends an opening parenthesis
func (c *Calculator) InputOpenParen() {
	c.append("(")
}

// InputCloseParen appends a closing parenthesis
func (c *Calculator) InputCloseParen() {
	c.append(")")
}

// InputOperator appends a binary operator glyph. A pure binary operator is
// rejected on an empty expression; only unary minus may start one. When the
// expression already ends in a binary operator the trailing operator is
// replaced instead of appended (last-operator-wins).
func (c *Calculator) InputOperator(op rune) {
	c.restoreFromError()

	if !strings.ContainsRune(operatorRunes, op) {
		return
	}

	if c.state == stateEmpty || c.text == "" {
		if op != '-' {
			return
		}
		c.append(string(op))
		return
	}

	runes := []rune(c.text)
	if strings.ContainsRune(operatorRunes, runes[len(runes)-1]) {
		c.text = string(runes[:len(runes)-1]) + string(op)
		c.recomputePreview()
		return
	}

	c.append(string(op))
}

// Clear resets the session to the empty state
func (c *Calculator) Clear() {
	c.state = stateEmpty
	c.text = ""
	c.clearPreview()
}

// Backspace removes the last logical token: a trailing function prefix is
// removed as one unit, anything else one rune at a time. In an error state it
// resets to empty instead.
func (c *Calculator) Backspace() {
	if c.state == stateError {
		c.Clear()
		return
	}
	if c.text == "" {
		return
	}

	trimmed := false
	for _, fn := range functionPrefixes {
		if strings.HasSuffix(c.text, fn) {
			c.text = c.text[:len(c.text)-len(fn)]
			trimmed = true
			break
		}
	}
	if !trimmed {
		runes := []rune(c.text)
		c.text = string(runes[:len(runes)-1])
	}

	if c.text == "" {
		c.state = stateEmpty
	}
	c.recomputePreview()
}

// Equals commits the live expression: on success the result is appended to
// history and replaces the expression, on failure the session transitions to
// the matching error state. A no-op when empty or already in error.
func (c *Calculator) Equals() {
	if c.state != stateLive || c.text == "" {
		return
	}

	expr := c.text
	formatted, err := eval.EvaluateFormatted(expr, c.unit)
	if err != nil {
		c.log.Debug("commit failed for %q: %v", expr, err)
		c.state = stateError
		c.errKind = err.Kind
		c.clearPreview()
		return
	}

	c.appendHistory(expr, formatted)
	c.log.Debug("committed %q = %s", expr, formatted)
	c.text = formatted
	c.state = stateLive
	c.recomputePreview()
}

// ToggleSign flips the sign prefix of the raw expression text. It never
// touches the evaluated value.
func (c *Calculator) ToggleSign() {
	c.restoreFromError()

	switch {
	case strings.HasPrefix(c.text, "-"):
		c.text = c.text[1:]
	case c.text == "":
		c.text = "-"
	default:
		c.text = "-" + c.text
	}

	if c.text == "" {
		c.state = stateEmpty
	} else {
		c.state = stateLive
	}
	c.recomputePreview()
}

// ToggleAngleUnit switches between degrees and radians. The expression text
// is untouched; only the preview is recomputed under the new unit.
func (c *Calculator) ToggleAngleUnit() {
	c.unit = c.unit.Toggle()
	c.recomputePreview()
}
