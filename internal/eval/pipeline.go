package eval

import (
	"github.com/codefionn/rechenwerk/internal/logger"
	"github.com/codefionn/rechenwerk/internal/notation"
	"github.com/codefionn/rechenwerk/internal/parser"
)

// Evaluate runs the full pipeline on a raw calculator expression: normalize,
// structural zero-division pre-check, parse, walk, classify. It returns the
// finite numeric value or a classified failure.
func Evaluate(raw string, unit AngleUnit) (float64, *Error) {
	canonical := notation.Normalize(raw)

	if notation.HasZeroDivision(canonical) {
		return 0, failure(DivideByZero, "")
	}

	node, err := parser.Parse(canonical)
	if err != nil {
		logger.Debug("parse failed for %q: %v", canonical, err)
		return 0, failure(InvalidFormat, err.Error())
	}

	value, evalErr := walk(node, unit)
	if evalErr != nil {
		return 0, evalErr
	}

	if clsErr := Classify(value); clsErr != nil {
		return 0, clsErr
	}

	return value, nil
}

// EvaluateFormatted runs Evaluate and formats the result for display
func EvaluateFormatted(raw string, unit AngleUnit) (string, *Error) {
	value, err := Evaluate(raw, unit)
	if err != nil {
		return "", err
	}
	return Format(value), nil
}
