package eval

// Kind classifies an evaluation failure. The taxonomy is closed: every fault
// maps to exactly one of these, and the display labels are fixed because the
// presentation layer matches on them.
type Kind int

const (
	// InvalidFormat is a structural or grammar error in the expression
	InvalidFormat Kind = iota
	// InvalidInput is an evaluation that produced NaN
	InvalidInput
	// DivideByZero is a literal zero denominator caught before evaluation
	DivideByZero
	// Overflow is an evaluation that produced ±Infinity
	Overflow
	// GenericError is any other evaluation-time fault
	GenericError
)

// Label returns the user-facing display text for the failure
func (k Kind) Label() string {
	switch k {
	case InvalidFormat:
		return "Invalid format"
	case InvalidInput:
		return "Invalid input"
	case DivideByZero:
		return "Can't divide by zero"
	case Overflow:
		return "Value too large"
	default:
		return "Error"
	}
}

// Error is a classified evaluation failure
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Kind.Label() + ": " + e.Detail
	}
	return e.Kind.Label()
}

func failure(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}
