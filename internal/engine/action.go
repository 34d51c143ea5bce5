package engine

// ActionKind discriminates keypad actions
type ActionKind int

const (
	// ActionDigit inputs a digit or the decimal point (Text holds it)
	ActionDigit ActionKind = iota
	// ActionOperator inputs a binary operator glyph (Text holds it)
	ActionOperator
	// ActionConstant inputs π or e (Text holds the glyph)
	ActionConstant
	// ActionFunction inputs a function prefix such as "sin(" (Text holds it)
	ActionFunction
	// ActionOpenParen inputs "("
	ActionOpenParen
	// ActionCloseParen inputs ")"
	ActionCloseParen
	// ActionClear resets the expression
	ActionClear
	// ActionBackspace removes the last logical token
	ActionBackspace
	// ActionEquals commits the expression
	ActionEquals
	// ActionToggleSign flips the sign prefix
	ActionToggleSign
	// ActionToggleAngleUnit switches degrees/radians
	ActionToggleAngleUnit
	// ActionMemoryAdd adds the current value to the memory register
	ActionMemoryAdd
	// ActionMemorySubtract subtracts the current value from the register
	ActionMemorySubtract
	// ActionMemoryRecall appends the register value to the expression
	ActionMemoryRecall
	// ActionMemoryClear resets the memory register
	ActionMemoryClear
	// ActionClearHistory discards all history entries
	ActionClearHistory
)

// Action is one keypad press
type Action struct {
	Kind ActionKind
	Text string
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

// Apply dispatches a keypad action to the matching transition. Unknown or
// malformed actions are ignored.
func (c *Calculator) Apply(a Action) {
	switch a.Kind {
	case ActionDigit:
		if r, ok := firstRune(a.Text); ok {
			c.InputDigit(r)
		}
	case ActionConstant:
		if r, ok := firstRune(a.Text); ok {
			c.InputConstant(r)
		}
	case ActionOperator:
		if r, ok := firstRune(a.Text); ok {
			c.InputOperator(r)
		}
	case ActionFunction:
		c.InputFunction(a.Text)
	case ActionOpenParen:
		c.InputOpenParen()
	case ActionCloseParen:
		c.InputCloseParen()
	case ActionClear:
		c.Clear()
	case ActionBackspace:
		c.Backspace()
	case ActionEquals:
		c.Equals()
	case ActionToggleSign:
		c.ToggleSign()
	case ActionToggleAngleUnit:
		c.ToggleAngleUnit()
	case ActionMemoryAdd:
		c.MemoryAdd()
	case ActionMemorySubtract:
		c.MemorySubtract()
	case ActionMemoryRecall:
		c.MemoryRecall()
	case ActionMemoryClear:
		c.MemoryClear()
	case ActionClearHistory:
		c.ClearHistory()
	}
}
