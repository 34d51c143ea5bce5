// Package eval evaluates canonical calculator expressions and turns the raw
// numeric outcome into either a formatted decimal string or a classified
// failure. Evaluation is a pure walk over the parsed tree; expression text is
// never executed as code.
package eval

import (
	"math"

	"github.com/codefionn/rechenwerk/internal/parser"
)

// walk evaluates a parsed expression tree under the given angle unit
func walk(node parser.Node, unit AngleUnit) (float64, *Error) {
	switch n := node.(type) {
	case *parser.Number:
		return n.Value, nil

	case *parser.Unary:
		v, err := walk(n.Operand, unit)
		if err != nil {
			return 0, err
		}
		if n.Op != '-' {
			return 0, failure(GenericError, "unknown unary operator")
		}
		return -v, nil

	case *parser.Binary:
		left, err := walk(n.Left, unit)
		if err != nil {
			return 0, err
		}
		right, err := walk(n.Right, unit)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case '+':
			return left + right, nil
		case '-':
			return left - right, nil
		case '*':
			return left * right, nil
		case '/':
			return left / right, nil
		case '^':
			return math.Pow(left, right), nil
		default:
			return 0, failure(GenericError, "unknown operator")
		}

	case *parser.Call:
		arg, err := walk(n.Arg, unit)
		if err != nil {
			return 0, err
		}
		switch n.Name {
		case "sin":
			return math.Sin(arg * unit.factor()), nil
		case "cos":
			return math.Cos(arg * unit.factor()), nil
		case "tan":
			return math.Tan(arg * unit.factor()), nil
		case "log":
			return math.Log10(arg), nil
		case "ln":
			return math.Log(arg), nil
		case "sqrt":
			return math.Sqrt(arg), nil
		default:
			return 0, failure(GenericError, "unknown function "+n.Name)
		}

	default:
		return 0, failure(GenericError, "unknown node")
	}
}
