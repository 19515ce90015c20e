package karou

import (
	"unicode/utf8"
)

// keywords is read-only after package init.
var keywords = map[string]TokenType{
	"else":     ELSE,
	"function": FUNCTION,
	"if":       IF,
	"let":      LET,
	"onClick":  ONCLICK,
	"print":    PRINT,
	"return":   RETURN,
	"while":    WHILE,
}

// Tokenizer produces tokens lazily, one per NextToken call.
type Tokenizer struct {
	source string

	start   int
	current int
	line    int
	column  int

	// position of the token being scanned
	startLine   int
	startColumn int
}

func NewTokenizer(source string) *Tokenizer {
	return &Tokenizer{
		source: source,
		line:   1,
		column: 1,
	}
}

// NextToken returns the next token. Once the input is exhausted it keeps
// returning EOF.
func (t *Tokenizer) NextToken() Token {
	t.skipWhitespace()

	t.start = t.current
	t.startLine, t.startColumn = t.line, t.column

	if t.isAtEnd() {
		return t.makeToken(EOF, "")
	}

	c := t.advance()
	switch c {
	case '=':
		return t.makeToken(EQUALS, "=")
	case '+':
		return t.makeToken(PLUS, "+")
	case '-':
		return t.makeToken(MINUS, "-")
	case '*':
		return t.makeToken(STAR, "*")
	case '/':
		return t.makeToken(SLASH, "/")
	case '(':
		return t.makeToken(LEFT_PAREN, "(")
	case ')':
		return t.makeToken(RIGHT_PAREN, ")")
	case '{':
		return t.makeToken(LEFT_BRACE, "{")
	case '}':
		return t.makeToken(RIGHT_BRACE, "}")
	case ';':
		return t.makeToken(SEMICOLON, ";")
	case ',':
		return t.makeToken(COMMA, ",")
	case '"':
		return t.scanString()
	default:
		switch {
		case isDigit(c):
			return t.scanNumber()
		case isAlpha(c):
			return t.scanIdentifierOrKeyword()
		default:
			return t.scanIllegal()
		}
	}
}

func (t *Tokenizer) isAtEnd() bool {
	return t.current >= len(t.source)
}

func (t *Tokenizer) advance() byte {
	c := t.source[t.current]
	t.current++
	switch {
	case c == '\n':
		t.line++
		t.column = 1
	case c&0xC0 == 0x80: // UTF-8 continuation byte, same character
	default:
		t.column++
	}
	return c
}

func (t *Tokenizer) peekChar() byte {
	if t.isAtEnd() {
		return 0
	}
	return t.source[t.current]
}

func (t *Tokenizer) skipWhitespace() {
	for !t.isAtEnd() && isWhitespace(t.peekChar()) {
		t.advance()
	}
}

func (t *Tokenizer) makeToken(typ TokenType, literal string) Token {
	return Token{
		Type:    typ,
		Literal: literal,
		Line:    t.startLine,
		Column:  t.startColumn,
	}
}

// scanString reads up to the closing quote. An unterminated string takes the
// rest of the input as its literal.
func (t *Tokenizer) scanString() Token {
	for !t.isAtEnd() && t.peekChar() != '"' {
		t.advance()
	}

	str := t.source[t.start+1 : t.current]

	if !t.isAtEnd() {
		t.advance() // closing quote
	}

	return t.makeToken(STRING, str)
}

// scanNumber takes digits and dots as written; "1.2.3" is a single literal
// and is rejected by the parser when it converts the text.
func (t *Tokenizer) scanNumber() Token {
	for c := t.peekChar(); isDigit(c) || c == '.'; c = t.peekChar() {
		t.advance()
	}

	return t.makeToken(NUMBER, t.source[t.start:t.current])
}

func (t *Tokenizer) scanIdentifierOrKeyword() Token {
	for isAlphaNumeric(t.peekChar()) {
		t.advance()
	}

	text := t.source[t.start:t.current]
	typ, ok := keywords[text]
	if !ok {
		typ = IDENTIFIER
	}

	return t.makeToken(typ, text)
}

// scanIllegal widens the illegal token to a whole UTF-8 sequence so the
// literal is one character, not a stray byte.
func (t *Tokenizer) scanIllegal() Token {
	_, size := utf8.DecodeRuneInString(t.source[t.start:])
	for i := 1; i < size; i++ {
		t.advance()
	}

	return t.makeToken(ILLEGAL, t.source[t.start:t.current])
}
