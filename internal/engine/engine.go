// Package engine owns the live expression state machine and the surrounding
// session state: angle unit, memory register and calculation history. The
// presentation layer drives it through keypad actions and re-renders from the
// exposed display, preview and history accessors.
package engine

import (
	"strings"

	"github.com/codefionn/rechenwerk/internal/consts"
	"github.com/codefionn/rechenwerk/internal/eval"
	"github.com/codefionn/rechenwerk/internal/logger"
)

type stateKind int

const (
	stateEmpty stateKind = iota
	stateLive
	stateError
)

// Options configure a new calculator session
type Options struct {
	AngleUnit    eval.AngleUnit
	HistoryLimit int // 0 = unlimited
}

// Calculator is a single calculator session. At most one expression is live
// at a time; committing via Equals is the only transition that produces a
// history entry. Not safe for concurrent use; the shell is expected to drive
// it from a single goroutine.
type Calculator struct {
	state      stateKind
	text       string
	errKind    eval.Kind
	preview    string
	hasPreview bool

	unit         eval.AngleUnit
	memory       float64
	history      []HistoryEntry
	seq          int64
	historyLimit int

	log *logger.Logger
}

// New creates a calculator session
func New(opts Options) *Calculator {
	return &Calculator{
		unit:         opts.AngleUnit,
		historyLimit: opts.HistoryLimit,
		log:          logger.Global().WithPrefix("engine"),
	}
}

// DisplayText returns the current expression text, the error label when the
// session is in an error state, or "0" when cleared.
func (c *Calculator) DisplayText() string {
	switch c.state {
	case stateError:
		return c.errKind.Label()
	case stateEmpty:
		return "0"
	default:
		return c.text
	}
}

// PreviewText returns the live preview and whether one is present
func (c *Calculator) PreviewText() (string, bool) {
	return c.preview, c.hasPreview
}

// AngleUnit returns the session's current angle unit
func (c *Calculator) AngleUnit() eval.AngleUnit {
	return c.unit
}

// IsError reports whether the session is showing an error label
func (c *Calculator) IsError() bool {
	return c.state == stateError
}

// ErrorKind returns the current error classification; only meaningful while
// IsError reports true.
func (c *Calculator) ErrorKind() eval.Kind {
	return c.errKind
}

// restoreFromError collapses an error state back to empty, per the calculator
// convention that typing past an error clears it.
func (c *Calculator) restoreFromError() {
	if c.state == stateError {
		c.state = stateEmpty
		c.text = ""
		c.clearPreview()
	}
}

func (c *Calculator) clearPreview() {
	c.preview = ""
	c.hasPreview = false
}

// operatorRunes are the binary operator glyphs of the keypad grammar
const operatorRunes = "+-×÷%^"

// functionPrefixes in canonical removal order; matched as whole units
var functionPrefixes = []string{"sin(", "cos(", "tan(", "log(", "ln(", "√("}

// previewTriggered reports whether the text contains an operator or function
// substring. Operand-only strings never produce a preview.
func previewTriggered(text string) bool {
	if strings.ContainsAny(text, operatorRunes) {
		return true
	}
	for _, fn := range functionPrefixes {
		if strings.Contains(text, fn) {
			return true
		}
	}
	return false
}

// recomputePreview runs the pipeline in non-committing mode. A preview that
// resolves to an error is suppressed rather than shown.
func (c *Calculator) recomputePreview() {
	if c.state != stateLive || !previewTriggered(c.text) {
		c.clearPreview()
		return
	}
	formatted, err := eval.EvaluateFormatted(c.text, c.unit)
	if err != nil {
		c.clearPreview()
		return
	}
	c.preview = formatted
	c.hasPreview = true
}

// append adds text to the live expression, starting fresh from an error
// state. Input past the length cap is ignored.
func (c *Calculator) append(s string) {
	c.restoreFromError()
	if len([]rune(c.text))+len([]rune(s)) > consts.MaxExpressionRunes {
		return
	}
	c.text += s
	c.state = stateLive
	c.recomputePreview()
}
