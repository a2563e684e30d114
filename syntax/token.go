package syntax

import "vlint/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.
	Value string

	// The text span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	// Control-flow keywords monitored by lint rules.
	TOK_IF = iota
	TOK_ELSE
	TOK_ALWAYS
	TOK_ALWAYS_COMB
	TOK_ALWAYS_LATCH
	TOK_ALWAYS_FF
	TOK_FOREVER
	TOK_INITIAL
	TOK_FOR
	TOK_FOREACH
	TOK_WHILE

	// Block delimiters.
	TOK_BEGIN
	TOK_END

	// Other keywords.
	TOK_MODULE
	TOK_ENDMODULE
	TOK_CASE
	TOK_ENDCASE
	TOK_REPEAT
	TOK_DO
	TOK_POSEDGE
	TOK_NEGEDGE
	TOK_ASSIGN
	TOK_WIRE
	TOK_REG
	TOK_LOGIC
	TOK_KEYWORD // any other recognized keyword

	// Punctuation and operators.
	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACE
	TOK_RBRACE
	TOK_LBRACKET
	TOK_RBRACKET
	TOK_SEMI
	TOK_COLON
	TOK_COMMA
	TOK_DOT
	TOK_AT
	TOK_STAR
	TOK_HASH
	TOK_QUESTION
	TOK_OPERATOR // any other operator (=, <=, ==, &&, ...)

	// Identifiers, literals, and directives.
	TOK_IDENT
	TOK_SYSTEM_ID
	TOK_DIRECTIVE
	TOK_NUMBER
	TOK_STRING

	// Formatting tokens.  Unlike most tokenizers, these are kept in the token
	// stream: token-stream lint rules receive them and filter them out
	// themselves.
	TOK_SPACE
	TOK_NEWLINE
	TOK_COMMENT_BLOCK
	TOK_EOL_COMMENT

	// Anything the lexer does not model.  Never an error: a style linter must
	// not die on source it does not fully understand.
	TOK_OTHER

	TOK_EOF
)

// IsFormatting returns whether the token is pure formatting: whitespace or a
// comment.  Formatting tokens never carry syntactic meaning for lint rules.
func (t *Token) IsFormatting() bool {
	switch t.Kind {
	case TOK_SPACE, TOK_NEWLINE, TOK_COMMENT_BLOCK, TOK_EOL_COMMENT:
		return true
	default:
		return false
	}
}
