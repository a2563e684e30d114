package syntax

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"vlint/report"
)

// Lexer is responsible for tokenizing a source file.  Unlike most tokenizers,
// it does not discard whitespace and comments: formatting tokens are emitted
// into the stream so that token-stream lint rules can decide for themselves
// how to treat them.
type Lexer struct {
	file    *bufio.Reader
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int
}

// NewLexer creates a new lexer for the given source file.
func NewLexer(file *bufio.Reader) *Lexer {
	return &Lexer{
		file:    file,
		tokBuff: &strings.Builder{},
		line:    0,
		col:     0,
	}
}

// Tokenize lexes the full contents of r into a token slice.  The final token
// is always a TOK_EOF token.
func Tokenize(r io.Reader) ([]*Token, error) {
	l := NewLexer(bufio.NewReader(r))

	var toks []*Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)
		if tok.Kind == TOK_EOF {
			return toks, nil
		}
	}
}

// NextToken retrieves the next token from the input file.  If the file has
// ended, this will be an EOF token.
func (l *Lexer) NextToken() (*Token, error) {
	c, err := l.peek()
	if err != nil {
		return nil, err
	}

	switch c {
	case -1:
		return &Token{Kind: TOK_EOF, Span: l.getSpan()}, nil
	case '\n':
		l.mark()
		l.eat()
		return l.makeToken(TOK_NEWLINE), nil
	case ' ', '\t', '\r', '\v', '\f':
		return l.lexSpace()
	case '/':
		return l.lexCommentOrOper()
	case '"':
		return l.lexStringLit()
	case '\\':
		return l.lexEscapedIdent()
	case '$':
		return l.lexPrefixedIdent(TOK_SYSTEM_ID)
	case '`':
		return l.lexPrefixedIdent(TOK_DIRECTIVE)
	case '\'':
		return l.lexBasedLit()
	default:
		if isDecimalDigit(c) {
			return l.lexNumberLit()
		} else if isFirstIdentChar(c) {
			return l.lexIdentOrKeyword()
		} else {
			return l.lexPunctOrOper()
		}
	}
}

// -----------------------------------------------------------------------------

// lexSpace lexes a run of horizontal whitespace into a single space token.
func (l *Lexer) lexSpace() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		switch c {
		case ' ', '\t', '\r', '\v', '\f':
			l.eat()
		default:
			return l.makeToken(TOK_SPACE), nil
		}
	}
}

// lexCommentOrOper lexes a comment or a `/`-leading operator token.
func (l *Lexer) lexCommentOrOper() (*Token, error) {
	l.mark()
	l.eat()

	c, err := l.peek()
	if err != nil {
		return nil, err
	}

	switch c {
	case '/':
		// Line comment: runs to the end of the line.  The newline itself is
		// not part of the comment and is emitted as its own token.
		for {
			c, err = l.peek()
			if err != nil {
				return nil, err
			}

			if c == -1 || c == '\n' {
				return l.makeToken(TOK_EOL_COMMENT), nil
			}

			l.eat()
		}
	case '*':
		// Block comment: runs to the closing `*/`.  An unterminated block
		// comment is tolerated and runs to the end of the file.
		l.eat()

		for {
			c, err = l.peek()
			if err != nil {
				return nil, err
			} else if c == -1 {
				return l.makeToken(TOK_COMMENT_BLOCK), nil
			}

			l.eat()

			if c == '*' {
				c, err = l.peek()
				if err != nil {
					return nil, err
				}

				if c == '/' {
					l.eat()
					return l.makeToken(TOK_COMMENT_BLOCK), nil
				}
			}
		}
	default:
		return l.finishPunctOrOper(TOK_OPERATOR)
	}
}

// -----------------------------------------------------------------------------

// symbolPatterns maps symbol strings (patterns) to their punctuation/operator
// token kind.
var symbolPatterns = map[string]int{
	"(": TOK_LPAREN,
	")": TOK_RPAREN,
	"{": TOK_LBRACE,
	"}": TOK_RBRACE,
	"[": TOK_LBRACKET,
	"]": TOK_RBRACKET,
	";": TOK_SEMI,
	",": TOK_COMMA,
	".": TOK_DOT,
	"@": TOK_AT,
	"#": TOK_HASH,
	"?": TOK_QUESTION,

	":":  TOK_COLON,
	"::": TOK_OPERATOR,

	"*":  TOK_STAR,
	"**": TOK_OPERATOR,

	// Division operator is handled with comment logic.
	"=":    TOK_OPERATOR,
	"==":   TOK_OPERATOR,
	"===":  TOK_OPERATOR,
	"!":    TOK_OPERATOR,
	"!=":   TOK_OPERATOR,
	"!==":  TOK_OPERATOR,
	"<":    TOK_OPERATOR,
	"<=":   TOK_OPERATOR,
	"<<":   TOK_OPERATOR,
	"<<<":  TOK_OPERATOR,
	">":    TOK_OPERATOR,
	">=":   TOK_OPERATOR,
	">>":   TOK_OPERATOR,
	">>>":  TOK_OPERATOR,
	"+":    TOK_OPERATOR,
	"++":   TOK_OPERATOR,
	"+=":   TOK_OPERATOR,
	"-":    TOK_OPERATOR,
	"--":   TOK_OPERATOR,
	"-=":   TOK_OPERATOR,
	"->":   TOK_OPERATOR,
	"%":    TOK_OPERATOR,
	"&":    TOK_OPERATOR,
	"&&":   TOK_OPERATOR,
	"&&&":  TOK_OPERATOR,
	"|":    TOK_OPERATOR,
	"||":   TOK_OPERATOR,
	"^":    TOK_OPERATOR,
	"^~":   TOK_OPERATOR,
	"~":    TOK_OPERATOR,
	"~&":   TOK_OPERATOR,
	"~|":   TOK_OPERATOR,
	"~^":   TOK_OPERATOR,
}

// lexPunctOrOper lexes a punctuation or operator symbol.
func (l *Lexer) lexPunctOrOper() (*Token, error) {
	l.mark()
	l.eat()

	kind, ok := symbolPatterns[l.tokBuff.String()]
	if !ok {
		// Not a symbol we model; emit it as-is rather than failing.
		return l.makeToken(TOK_OTHER), nil
	}

	return l.finishPunctOrOper(kind)
}

// finishPunctOrOper extends the symbol in the token buffer as far as the
// symbol patterns allow (maximal munch) and produces the resulting token.
func (l *Lexer) finishPunctOrOper(kind int) (*Token, error) {
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		if c == -1 {
			break
		}

		if _kind, ok := symbolPatterns[l.tokBuff.String()+string(c)]; ok {
			l.eat()
			kind = _kind
		} else {
			break
		}
	}

	return l.makeToken(kind), nil
}

// -----------------------------------------------------------------------------

// keywordPatterns maps keyword strings (patterns) to their keyword token kind.
var keywordPatterns = map[string]int{
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

	"begin": TOK_BEGIN,
	"end":   TOK_END,

	"module":    TOK_MODULE,
	"endmodule": TOK_ENDMODULE,
	"case":      TOK_CASE,
	"endcase":   TOK_ENDCASE,
	"repeat":    TOK_REPEAT,
	"do":        TOK_DO,
	"posedge":   TOK_POSEDGE,
	"negedge":   TOK_NEGEDGE,
	"assign":    TOK_ASSIGN,
	"wire":      TOK_WIRE,
	"reg":       TOK_REG,
	"logic":     TOK_LOGIC,

	"and":         TOK_KEYWORD,
	"automatic":   TOK_KEYWORD,
	"casex":       TOK_KEYWORD,
	"casez":       TOK_KEYWORD,
	"default":     TOK_KEYWORD,
	"endfunction": TOK_KEYWORD,
	"endgenerate": TOK_KEYWORD,
	"endtask":     TOK_KEYWORD,
	"enum":        TOK_KEYWORD,
	"function":    TOK_KEYWORD,
	"generate":    TOK_KEYWORD,
	"genvar":      TOK_KEYWORD,
	"inout":       TOK_KEYWORD,
	"input":       TOK_KEYWORD,
	"int":         TOK_KEYWORD,
	"integer":     TOK_KEYWORD,
	"localparam":  TOK_KEYWORD,
	"not":         TOK_KEYWORD,
	"or":          TOK_KEYWORD,
	"output":      TOK_KEYWORD,
	"parameter":   TOK_KEYWORD,
	"return":      TOK_KEYWORD,
	"signed":      TOK_KEYWORD,
	"task":        TOK_KEYWORD,
	"typedef":     TOK_KEYWORD,
	"unique":      TOK_KEYWORD,
	"unsigned":    TOK_KEYWORD,
	"wait":        TOK_KEYWORD,
}

// lexIdentOrKeyword lexes an identifier or a keyword.
func (l *Lexer) lexIdentOrKeyword() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if !isIdentChar(c) {
			break
		}

		l.eat()
	}

	var kind int
	if _kind, ok := keywordPatterns[l.tokBuff.String()]; ok {
		kind = _kind
	} else {
		kind = TOK_IDENT
	}

	return l.makeToken(kind), nil
}

// lexEscapedIdent lexes an escaped identifier: a `\` followed by any run of
// non-whitespace characters.
func (l *Lexer) lexEscapedIdent() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		switch c {
		case -1, ' ', '\t', '\r', '\n', '\v', '\f':
			return l.makeToken(TOK_IDENT), nil
		default:
			l.eat()
		}
	}
}

// lexPrefixedIdent lexes a `$`-prefixed system identifier or a backtick
// compiler directive name.
func (l *Lexer) lexPrefixedIdent(kind int) (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if !isIdentChar(c) {
			break
		}

		l.eat()
	}

	// A bare `$` or backtick is not an identifier of any kind.
	if l.tokBuff.Len() == 1 {
		return l.makeToken(TOK_OTHER), nil
	}

	return l.makeToken(kind), nil
}

// -----------------------------------------------------------------------------

// lexNumberLit lexes a numeric literal, including sized literals such as
// `4'b0101` and `8'hFF`.
func (l *Lexer) lexNumberLit() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		if isDecimalDigit(c) || c == '_' || c == '.' {
			l.eat()
		} else if c == '\'' {
			l.eat()
			return l.finishBasedLit()
		} else {
			return l.makeToken(TOK_NUMBER), nil
		}
	}
}

// lexBasedLit lexes an unsized based literal such as `'b01`, `'hF`, or `'0`.
func (l *Lexer) lexBasedLit() (*Token, error) {
	l.mark()
	l.eat()
	return l.finishBasedLit()
}

// finishBasedLit consumes the base designator and digits of a based literal.
// The leading apostrophe (and any size prefix) is already in the buffer.
func (l *Lexer) finishBasedLit() (*Token, error) {
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		switch {
		case isHexDigit(c), c == '_', c == '?':
			l.eat()
		case c == 's', c == 'S', c == 'o', c == 'O', c == 'x', c == 'X', c == 'z', c == 'Z', c == 'h', c == 'H':
			// Base designators and x/z digit values.
			l.eat()
		default:
			return l.makeToken(TOK_NUMBER), nil
		}
	}
}

// -----------------------------------------------------------------------------

// lexStringLit lexes a string literal.  The leading and trailing quotes are
// trimmed from the token value.
func (l *Lexer) lexStringLit() (*Token, error) {
	l.mark()
	l.skip()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		switch c {
		case -1, '\n':
			// Unterminated string: emit what we have rather than failing.
			return l.makeToken(TOK_STRING), nil
		case '"':
			l.skip()
			return l.makeToken(TOK_STRING), nil
		case '\\':
			l.eat()

			c, err = l.peek()
			if err != nil {
				return nil, err
			} else if c != -1 {
				l.eat()
			}
		default:
			l.eat()
		}
	}
}

// -----------------------------------------------------------------------------

// mark sets the lexer's stored start line and column to its current position.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

// makeToken produces a new token of the given kind from the lexer's state and
// resets the lexer to begin building the next token.
func (l *Lexer) makeToken(kind int) *Token {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	return &Token{
		Kind:  kind,
		Value: value,
		Span:  l.getSpan(),
	}
}

// getSpan calculates a text span based on the lexer's current state.
func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    l.col,
	}
}

// -----------------------------------------------------------------------------

// eat moves the lexer forward one rune and writes the rune to the token
// buffer.  If the lexer encounters an EOF, -1 is returned as the rune value.
func (l *Lexer) eat() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	l.updatePos(c)
	l.tokBuff.WriteRune(c)

	return c, nil
}

// skip moves the lexer forward one rune but does not write the rune to the
// token buffer.  If the lexer encounters an EOF, -1 is returned as the rune
// value.
func (l *Lexer) skip() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	l.updatePos(c)

	return c, nil
}

// peek returns the next rune in the file without moving the lexer forward or
// writing the rune to the token buffer.  If the lexer encounters an EOF, -1 is
// returned as the rune value.
func (l *Lexer) peek() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	if err = l.file.UnreadRune(); err != nil {
		return 0, err
	}

	return c, nil
}

// updatePos updates the lexer's position based on input character.
func (l *Lexer) updatePos(c rune) {
	switch c {
	case '\n':
		l.line++
		l.col = 0
	case '\t':
		l.col += 4
	default:
		l.col++
	}
}

// -----------------------------------------------------------------------------

// isDecimalDigit returns whether c is a decimal digit.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isHexDigit returns whether c is a hexadecimal digit.
func isHexDigit(c rune) bool {
	return isDecimalDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// isFirstIdentChar returns whether c could be the first rune of an identifier.
func isFirstIdentChar(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

// isIdentChar returns whether c could be a non-leading rune of an identifier.
func isIdentChar(c rune) bool {
	return isFirstIdentChar(c) || isDecimalDigit(c) || c == '$'
}
