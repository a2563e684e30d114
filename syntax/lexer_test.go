package syntax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenize lexes src and strips the trailing EOF token.
func tokenize(t *testing.T, src string) []*Token {
	t.Helper()

	toks, err := Tokenize(strings.NewReader(src))
	require.NoError(t, err)
	require.NotEmpty(t, toks)
	require.Equal(t, TOK_EOF, toks[len(toks)-1].Kind)

	return toks[:len(toks)-1]
}

// kindsOf extracts the kind of every token.
func kindsOf(toks []*Token) []int {
	kinds := make([]int, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}

	return kinds
}

func TestLexer_KeywordsAndPunctuation(t *testing.T) {
	toks := tokenize(t, "if (x) begin")

	assert.Equal(t, []int{
		TOK_IF, TOK_SPACE, TOK_LPAREN, TOK_IDENT, TOK_RPAREN, TOK_SPACE, TOK_BEGIN,
	}, kindsOf(toks))

	assert.Equal(t, "if", toks[0].Value)
	assert.Equal(t, "x", toks[3].Value)
	assert.Equal(t, "begin", toks[6].Value)
}

func TestLexer_FormattingTokensAreKept(t *testing.T) {
	toks := tokenize(t, "always // note\n/* block\ncomment */ begin")

	assert.Equal(t, []int{
		TOK_ALWAYS, TOK_SPACE, TOK_EOL_COMMENT, TOK_NEWLINE,
		TOK_COMMENT_BLOCK, TOK_SPACE, TOK_BEGIN,
	}, kindsOf(toks))

	assert.Equal(t, "// note", toks[2].Value)
	assert.Equal(t, "/* block\ncomment */", toks[4].Value)
}

func TestLexer_MonitoredKeywordKinds(t *testing.T) {
	keywords := map[string]int{
		"if":           TOK_IF,
		"else":         TOK_ELSE,
		"always":       TOK_ALWAYS,
		"always_comb":  TOK_ALWAYS_COMB,
		"always_latch": TOK_ALWAYS_LATCH,
		"always_ff":    TOK_ALWAYS_FF,
		"forever":      TOK_FOREVER,
		"initial":      TOK_INITIAL,
		"for":          TOK_FOR,
		"foreach":      TOK_FOREACH,
		"while":        TOK_WHILE,
	}

	for word, kind := range keywords {
		toks := tokenize(t, word)
		require.Len(t, toks, 1, word)
		assert.Equal(t, kind, toks[0].Kind, word)
		assert.Equal(t, word, toks[0].Value, word)
	}
}

func TestLexer_SizedLiterals(t *testing.T) {
	tests := []string{"4'b0101", "8'hFF", "12'o777", "'b01", "'0", "16'd42", "4'bxz01"}

	for _, src := range tests {
		toks := tokenize(t, src)
		require.Len(t, toks, 1, src)
		assert.Equal(t, TOK_NUMBER, toks[0].Kind, src)
		assert.Equal(t, src, toks[0].Value, src)
	}
}

func TestLexer_OperatorMaximalMunch(t *testing.T) {
	toks := tokenize(t, "q<=d")

	require.Len(t, toks, 3)
	assert.Equal(t, TOK_OPERATOR, toks[1].Kind)
	assert.Equal(t, "<=", toks[1].Value)
}

func TestLexer_SpecialIdentifiers(t *testing.T) {
	toks := tokenize(t, "$display `define \\bus$sig ")

	require.Len(t, toks, 6)
	assert.Equal(t, TOK_SYSTEM_ID, toks[0].Kind)
	assert.Equal(t, "$display", toks[0].Value)
	assert.Equal(t, TOK_DIRECTIVE, toks[2].Kind)
	assert.Equal(t, "`define", toks[2].Value)
	assert.Equal(t, TOK_IDENT, toks[4].Kind)
	assert.Equal(t, "\\bus$sig", toks[4].Value)
}

func TestLexer_StringLiteralTrimsQuotes(t *testing.T) {
	toks := tokenize(t, `"hello \"world\""`)

	require.Len(t, toks, 1)
	assert.Equal(t, TOK_STRING, toks[0].Kind)
	assert.Equal(t, `hello \"world\"`, toks[0].Value)
}

func TestLexer_UnknownRunesAreTolerated(t *testing.T) {
	toks := tokenize(t, "a § b")

	require.Len(t, toks, 5)
	assert.Equal(t, TOK_OTHER, toks[2].Kind)
	assert.Equal(t, "§", toks[2].Value)
}

func TestLexer_Spans(t *testing.T) {
	toks := tokenize(t, "x\n  if")

	ifTok := toks[len(toks)-1]
	require.Equal(t, TOK_IF, ifTok.Kind)
	assert.Equal(t, 1, ifTok.Span.StartLine)
	assert.Equal(t, 2, ifTok.Span.StartCol)
	assert.Equal(t, 1, ifTok.Span.EndLine)
	assert.Equal(t, 4, ifTok.Span.EndCol)
}

func TestLexer_AtAndStarKinds(t *testing.T) {
	toks := tokenize(t, "always @ * begin")

	assert.Equal(t, []int{
		TOK_ALWAYS, TOK_SPACE, TOK_AT, TOK_SPACE, TOK_STAR, TOK_SPACE, TOK_BEGIN,
	}, kindsOf(toks))
}
