package engine

// HistoryEntry is an immutable record of one successful commit
type HistoryEntry struct {
	Expression string
	Result     string
	Seq        int64
}

func (c *Calculator) appendHistory(expression, result string) {
	c.seq++
	c.history = append(c.history, HistoryEntry{
		Expression: expression,
		Result:     result,
		Seq:        c.seq,
	})
	if c.historyLimit > 0 && len(c.history) > c.historyLimit {
		c.history = c.history[len(c.history)-c.historyLimit:]
	}
}

// History returns the insertion-ordered history entries. The returned slice
// is a copy; callers cannot mutate session state through it.
func (c *Calculator) History() []HistoryEntry {
	out := make([]HistoryEntry, len(c.history))
	copy(out, c.history)
	return out
}

// ClearHistory discards all history entries in one operation. The live
// expression is unaffected.
func (c *Calculator) ClearHistory() {
	c.history = nil
}
