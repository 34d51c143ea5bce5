package engine

import "github.com/codefionn/rechenwerk/internal/eval"

// operandValue evaluates the pending expression for a memory operation. An
// empty expression contributes 0; an unevaluable one reports false so the
// register stays untouched.
func (c *Calculator) operandValue() (float64, bool) {
	if c.state != stateLive || c.text == "" {
		return 0, true
	}
	value, err := eval.Evaluate(c.text, c.unit)
	if err != nil {
		return 0, false
	}
	return value, true
}

// MemoryAdd adds the current evaluated value to the memory register
func (c *Calculator) MemoryAdd() {
	c.restoreFromError()
	if v, ok := c.operandValue(); ok {
		c.memory += v
	}
}

// MemorySubtract subtracts the current evaluated value from the register
func (c *Calculator) MemorySubtract() {
	c.restoreFromError()
	if v, ok := c.operandValue(); ok {
		c.memory -= v
	}
}

// MemoryRecall appends the formatted register value to the expression
func (c *Calculator) MemoryRecall() {
	c.append(eval.Format(c.memory))
}

// MemoryClear resets the register to 0. The live expression is unaffected.
func (c *Calculator) MemoryClear() {
	c.memory = 0
}

// Memory returns the current register value
func (c *Calculator) Memory() float64 {
	return c.memory
}
