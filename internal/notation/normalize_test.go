package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOperatorGlyphs(t *testing.T) {
	assert.Equal(t, "2*3", Normalize("2×3"))
	assert.Equal(t, "8/4", Normalize("8÷4"))
	assert.Equal(t, "2^10", Normalize("2^10"))
}

func TestNormalizePercentIsLiteralSubstitution(t *testing.T) {
	// Percent divides the preceding operand by 100, not the whole expression.
	assert.Equal(t, "50/100", Normalize("50%"))
	assert.Equal(t, "50/100+1", Normalize("50%+1"))
	assert.Equal(t, "200*10/100", Normalize("200×10%"))
}

func TestNormalizeConstants(t *testing.T) {
	assert.Equal(t, PiLiteral, Normalize("π"))
	assert.Equal(t, EulerLiteral, Normalize("e"))
	assert.Equal(t, "2*"+PiLiteral, Normalize("2×π"))
}

func TestNormalizeConstantSubstitutionQuirk(t *testing.T) {
	// Glyph-for-literal substitution concatenates a digit with the constant.
	assert.Equal(t, "2"+EulerLiteral, Normalize("2e"))
}

func TestNormalizeFunctions(t *testing.T) {
	assert.Equal(t, "sin(90)", Normalize("sin(90)"))
	assert.Equal(t, "sqrt(2)", Normalize("√(2)"))
	assert.Equal(t, "log(100)+ln("+EulerLiteral+")", Normalize("log(100)+ln(e)"))
}

func TestNormalizeAutoBalance(t *testing.T) {
	assert.Equal(t, "sin(90)", Normalize("sin(90"))
	assert.Equal(t, "cos(sin(30))", Normalize("cos(sin(30"))
	// Excess closers are never removed.
	assert.Equal(t, "1+2))", Normalize("1+2))"))
}

func TestHasZeroDivision(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"1÷0", true},
		{"5÷0.0", true},
		{"5÷0.000+1", true},
		{"1÷0.5", false},
		{"1÷05", false},
		{"1÷0.05", false},
		{"1÷(1-1)", false}, // computed zero is left to the runtime check
		{"10÷2", false},
		{"1÷0+2", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HasZeroDivision(Normalize(tt.raw)), "raw=%q", tt.raw)
	}
}
