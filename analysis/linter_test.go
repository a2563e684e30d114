package analysis_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vlint/analysis"
	"vlint/analysis/checkers"
	"vlint/syntax"
)

func newTestRegistry(t *testing.T) *analysis.Registry {
	t.Helper()

	reg := analysis.NewRegistry()
	require.NoError(t, reg.Register(checkers.RuleName, func() analysis.TokenStreamRule {
		return checkers.NewExplicitBeginRule()
	}))

	return reg
}

func TestRegistry(t *testing.T) {
	reg := newTestRegistry(t)

	assert.Equal(t, []string{"explicit-begin"}, reg.Names())

	rule, ok := reg.New("explicit-begin")
	require.True(t, ok)
	assert.NotNil(t, rule)

	// Instances are independent of each other.
	other, _ := reg.New("explicit-begin")
	assert.NotSame(t, rule, other)

	_, ok = reg.New("no-such-rule")
	assert.False(t, ok)

	desc, ok := reg.Descriptor("explicit-begin")
	require.True(t, ok)
	assert.Equal(t, "explicit-begin", desc.Name)

	err := reg.Register("explicit-begin", func() analysis.TokenStreamRule {
		return checkers.NewExplicitBeginRule()
	})
	assert.Error(t, err)
}

func TestLinter_RunsRulesOverStream(t *testing.T) {
	src := `
module top;
  always_comb y = a;
  initial begin
    if (rst) q <= 0;
  end
endmodule
`

	toks, err := syntax.Tokenize(strings.NewReader(src))
	require.NoError(t, err)

	reg := newTestRegistry(t)
	rule, _ := reg.New(checkers.RuleName)

	linter := analysis.NewLinter()
	linter.AddRule(rule)
	linter.LintTokens(toks)

	statuses := linter.Report()
	require.Len(t, statuses, 1)
	assert.Equal(t, "explicit-begin", statuses[0].Descriptor.Name)

	violations := statuses[0].Violations
	require.Len(t, violations, 2)
	assert.Equal(t, "always_comb", violations[0].Token.Value)
	assert.Equal(t, "if", violations[1].Token.Value)
}

func TestLinter_IndependentInstancesAgree(t *testing.T) {
	src := "always @(posedge clk) q <= d;"

	toks, err := syntax.Tokenize(strings.NewReader(src))
	require.NoError(t, err)

	reg := newTestRegistry(t)

	lintOnce := func() []analysis.Violation {
		rule, _ := reg.New(checkers.RuleName)
		linter := analysis.NewLinter()
		linter.AddRule(rule)
		linter.LintTokens(toks)
		return linter.Report()[0].Violations
	}

	assert.Equal(t, lintOnce(), lintOnce())
}
