package karou

import (
	"fmt"
)

type TokenType byte

const (
	// Literals
	NUMBER TokenType = iota
	IDENTIFIER
	STRING

	// Keywords
	PRINT
	LET
	FUNCTION
	IF
	ELSE
	WHILE
	RETURN
	ONCLICK

	// Operators
	EQUALS
	PLUS
	MINUS
	STAR
	SLASH

	// Delimiters
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	SEMICOLON
	COMMA

	ILLEGAL
	EOF
)

func (t TokenType) String() string {
	switch t {
	case NUMBER:
		return "NUMBER"
	case IDENTIFIER:
		return "IDENTIFIER"
	case STRING:
		return "STRING"
	case PRINT:
		return "PRINT"
	case LET:
		return "LET"
	case FUNCTION:
		return "FUNCTION"
	case IF:
		return "IF"
	case ELSE:
		return "ELSE"
	case WHILE:
		return "WHILE"
	case RETURN:
		return "RETURN"
	case ONCLICK:
		return "ONCLICK"
	case EQUALS:
		return "EQUALS"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case STAR:
		return "STAR"
	case SLASH:
		return "SLASH"
	case LEFT_PAREN:
		return "LEFT_PAREN"
	case RIGHT_PAREN:
		return "RIGHT_PAREN"
	case LEFT_BRACE:
		return "LEFT_BRACE"
	case RIGHT_BRACE:
		return "RIGHT_BRACE"
	case SEMICOLON:
		return "SEMICOLON"
	case COMMA:
		return "COMMA"
	case ILLEGAL:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	}

	panic(fmt.Sprintf("Invalid TokenType: %d", t))
}

// Token is one lexical unit. Line and Column point at its first character.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q %d:%d", t.Type, t.Literal, t.Line, t.Column)
}
