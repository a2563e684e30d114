package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vlint/report"
	"vlint/syntax"
)

func tokenAt(value string, line, col int) *syntax.Token {
	return &syntax.Token{
		Kind:  syntax.TOK_IDENT,
		Value: value,
		Span:  &report.TextSpan{StartLine: line, StartCol: col, EndLine: line, EndCol: col + len(value)},
	}
}

func TestViolationSet_InsertionOrderAndDedup(t *testing.T) {
	vs := NewViolationSet()

	first := Violation{Token: tokenAt("if", 3, 0), Message: "missing begin"}
	second := Violation{Token: tokenAt("else", 7, 2), Message: "missing begin"}

	vs.Insert(first)
	vs.Insert(second)
	vs.Insert(first) // identical (position, message): dropped

	require.Equal(t, 2, vs.Len())
	assert.Equal(t, []Violation{first, second}, vs.Violations())
}

func TestViolationSet_ReturnsCopy(t *testing.T) {
	vs := NewViolationSet()
	vs.Insert(Violation{Token: tokenAt("if", 0, 0), Message: "m"})

	out := vs.Violations()
	out[0].Message = "changed"

	assert.Equal(t, "m", vs.Violations()[0].Message)
}

func TestViolationSet_NilTokenTolerated(t *testing.T) {
	vs := NewViolationSet()
	vs.Insert(Violation{Message: "anchorless"})
	vs.Insert(Violation{Message: "anchorless"})

	assert.Equal(t, 1, vs.Len())
}
