package consts

// Display formatting limits
const (
	// SignificantDigits is the precision results are rounded to before display
	SignificantDigits = 12
	// ZeroSnapEpsilon is the magnitude below which results collapse to exactly 0
	ZeroSnapEpsilon = 1e-12
)

// Input limits
const (
	// MaxExpressionRunes is the maximum length of a live expression; further
	// keypad input is ignored rather than rejected
	MaxExpressionRunes = 256
)

// History limits
const (
	// DefaultHistoryLimit caps retained history entries. Zero means unlimited.
	DefaultHistoryLimit = 0
)
