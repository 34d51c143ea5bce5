package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, input string) Node {
	t.Helper()
	node, err := Parse(input)
	require.NoError(t, err)
	return node
}

func TestParseNumber(t *testing.T) {
	node := mustParse(t, "42.5")
	num, ok := node.(*Number)
	require.True(t, ok)
	assert.Equal(t, 42.5, num.Value)
}

func TestParsePrecedence(t *testing.T) {
	// 1+2*3 parses as 1+(2*3)
	node := mustParse(t, "1+2*3")
	add, ok := node.(*Binary)
	require.True(t, ok)
	assert.Equal(t, '+', add.Op)
	mul, ok := add.Right.(*Binary)
	require.True(t, ok)
	assert.Equal(t, '*', mul.Op)
}

func TestParsePowerRightAssociative(t *testing.T) {
	// 2^3^2 parses as 2^(3^2)
	node := mustParse(t, "2^3^2")
	outer, ok := node.(*Binary)
	require.True(t, ok)
	assert.Equal(t, '^', outer.Op)
	inner, ok := outer.Right.(*Binary)
	require.True(t, ok)
	assert.Equal(t, '^', inner.Op)
}

func TestParseUnaryMinus(t *testing.T) {
	node := mustParse(t, "-5+3")
	add, ok := node.(*Binary)
	require.True(t, ok)
	neg, ok := add.Left.(*Unary)
	require.True(t, ok)
	assert.Equal(t, '-', neg.Op)
}

func TestParseNegativeExponent(t *testing.T) {
	node := mustParse(t, "2^-3")
	pow, ok := node.(*Binary)
	require.True(t, ok)
	_, ok = pow.Right.(*Unary)
	assert.True(t, ok)
}

func TestParseCall(t *testing.T) {
	node := mustParse(t, "sin(1+2)")
	call, ok := node.(*Call)
	require.True(t, ok)
	assert.Equal(t, "sin", call.Name)
	_, ok = call.Arg.(*Binary)
	assert.True(t, ok)
}

func TestParseNestedCalls(t *testing.T) {
	node := mustParse(t, "sqrt(cos(0))")
	outer, ok := node.(*Call)
	require.True(t, ok)
	assert.Equal(t, "sqrt", outer.Name)
	inner, ok := outer.Arg.(*Call)
	require.True(t, ok)
	assert.Equal(t, "cos", inner.Name)
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"",
		"1+",
		"(1",
		"1)",
		"sin",
		"sin 1",
		"1..2",
		".",
		"2(3)",
		"1 2",
	}
	for _, input := range bad {
		_, err := Parse(input)
		assert.Error(t, err, "input=%q", input)
	}
}

func TestParseUnaryPlus(t *testing.T) {
	_, err := Parse("+1")
	assert.NoError(t, err)
}
