package karou

import (
	"fmt"
	"strconv"
)

// Binding strength of binary operators. Anything not listed is LOWEST and
// ends the climb.
const (
	LOWEST = iota
	SUM
	PRODUCT
)

var precedences = map[TokenType]int{
	PLUS:  SUM,
	MINUS: SUM,
	STAR:  PRODUCT,
	SLASH: PRODUCT,
}

// Parser builds a Program from source text. Syntax errors are collected
// rather than returned; check Errors before trusting the tree.
type Parser struct {
	tokenizer *Tokenizer

	cur  Token
	peek Token

	errors     []ParseError
	incomplete bool
}

func NewParser(source string) *Parser {
	p := &Parser{tokenizer: NewTokenizer(source)}

	// Fill cur and peek.
	p.nextToken()
	p.nextToken()

	return p
}

// ParseProgram parses source and returns the tree along with every syntax
// error found. An empty error list means the parse succeeded.
func ParseProgram(source string) (*Program, []ParseError) {
	p := NewParser(source)
	program := p.ParseProgram()
	return program, p.Errors()
}

func (p *Parser) Errors() []ParseError {
	return p.errors
}

// Incomplete reports whether the input ended in the middle of a construct,
// e.g. an open block or a dangling operator.
func (p *Parser) Incomplete() bool {
	return p.incomplete
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.tokenizer.NextToken()
}

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, ParseError{
		Line:    p.cur.Line,
		Column:  p.cur.Column,
		Message: fmt.Sprintf(format, args...),
	})
}

// expectPeek advances only when peek has the given type.
func (p *Parser) expectPeek(typ TokenType) bool {
	if p.peek.Type == typ {
		p.nextToken()
		return true
	}

	if p.peek.Type == EOF {
		p.incomplete = true
	}
	p.errorf("Expected %s, got %s", typ, p.peek.Type)

	return false
}

func (p *Parser) peekPrecedence() int {
	return precedences[p.peek.Type] // LOWEST when missing
}

// program ::= statement* EOF
func (p *Parser) ParseProgram() *Program {
	program := &Program{Statements: []Stmt{}}

	for p.cur.Type != EOF {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

// statement ::= letStmt | funDecl | onClick | block | exprStmt
func (p *Parser) parseStatement() Stmt {
	switch p.cur.Type {
	case LET:
		return p.parseLetStatement()
	case FUNCTION:
		return p.parseFunctionDeclaration()
	case ONCLICK:
		return p.parseOnClickStatement()
	case LEFT_BRACE:
		return p.parseBlockStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// letStmt ::= "let" IDENTIFIER "=" expression ";"?
func (p *Parser) parseLetStatement() Stmt {
	if !p.expectPeek(IDENTIFIER) {
		return nil
	}
	name := p.cur.Literal

	if !p.expectPeek(EQUALS) {
		return nil
	}
	p.nextToken()

	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}

	if p.peek.Type == SEMICOLON {
		p.nextToken()
	}

	return &LetStatement{name, value}
}

// funDecl ::= "function" IDENTIFIER "(" parameters? ")" block
func (p *Parser) parseFunctionDeclaration() Stmt {
	if !p.expectPeek(IDENTIFIER) {
		return nil
	}
	name := p.cur.Literal

	if !p.expectPeek(LEFT_PAREN) {
		return nil
	}

	params, ok := p.parseParameters()
	if !ok {
		return nil
	}

	if !p.expectPeek(LEFT_BRACE) {
		return nil
	}

	return &FunctionDeclaration{name, params, p.parseBlockStatement()}
}

// parameters ::= IDENTIFIER ( "," IDENTIFIER )*
// Leaves cur on the closing paren.
func (p *Parser) parseParameters() ([]string, bool) {
	params := []string{}

	if p.peek.Type == RIGHT_PAREN {
		p.nextToken()
		return params, true
	}

	if !p.expectPeek(IDENTIFIER) {
		return nil, false
	}
	params = append(params, p.cur.Literal)

	for p.peek.Type == COMMA {
		p.nextToken()
		if !p.expectPeek(IDENTIFIER) {
			return nil, false
		}
		params = append(params, p.cur.Literal)
	}

	if !p.expectPeek(RIGHT_PAREN) {
		return nil, false
	}

	return params, true
}

// onClick ::= "onClick" "(" STRING ")" block
func (p *Parser) parseOnClickStatement() Stmt {
	if !p.expectPeek(LEFT_PAREN) {
		return nil
	}
	if !p.expectPeek(STRING) {
		return nil
	}
	elementID := p.cur.Literal

	if !p.expectPeek(RIGHT_PAREN) {
		return nil
	}
	if !p.expectPeek(LEFT_BRACE) {
		return nil
	}

	return &OnClickStatement{elementID, p.parseBlockStatement()}
}

// block ::= "{" statement* "}"
// Expects cur on the opening brace and leaves it on the closing one.
func (p *Parser) parseBlockStatement() *BlockStatement {
	block := &BlockStatement{Statements: []Stmt{}}

	p.nextToken() // consume '{'

	for p.cur.Type != RIGHT_BRACE && p.cur.Type != EOF {
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	if p.cur.Type == EOF {
		p.incomplete = true
		p.errorf("Expected %s, got %s", RIGHT_BRACE, EOF)
	}

	return block
}

// exprStmt ::= expression ";"?
func (p *Parser) parseExpressionStatement() Stmt {
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	if p.peek.Type == SEMICOLON {
		p.nextToken()
	}

	return &ExpressionStatement{expr}
}

// expression ::= primary ( ( "+" | "-" | "*" | "/" ) primary )*
// Precedence climbing: the right operand is parsed at the operator's own
// precedence, so operators of equal strength group to the left.
func (p *Parser) parseExpression(precedence int) Expr {
	left := p.parsePrimaryExpression()
	if left == nil {
		return nil
	}

	for p.peek.Type != SEMICOLON && p.peekPrecedence() > precedence {
		p.nextToken()
		op := p.cur

		p.nextToken()
		right := p.parseExpression(precedences[op.Type])
		if right == nil {
			return nil
		}

		left = &BinaryExpression{left, op.Literal, right}
	}

	return left
}

// primary ::= NUMBER | STRING | IDENTIFIER | call | "(" expression ")"
func (p *Parser) parsePrimaryExpression() Expr {
	switch p.cur.Type {
	case NUMBER:
		value, err := strconv.ParseFloat(p.cur.Literal, 64)
		if err != nil {
			p.errorf("could not parse %q as number", p.cur.Literal)
			return nil
		}
		return &NumberLiteral{value}
	case STRING:
		return &StringLiteral{p.cur.Literal}
	case IDENTIFIER, PRINT: // `print` is a keyword that names the builtin
		ident := &Identifier{p.cur.Literal}
		if p.peek.Type == LEFT_PAREN {
			return p.parseCallExpression(ident)
		}
		return ident
	case LEFT_PAREN:
		p.nextToken()

		expr := p.parseExpression(LOWEST)
		if expr == nil {
			return nil
		}
		if !p.expectPeek(RIGHT_PAREN) {
			return nil
		}

		return expr
	case EOF:
		p.incomplete = true
		p.errorf("Unexpected token: %s", EOF)
		return nil
	default:
		p.errorf("Unexpected token: %s", p.cur.Literal)
		return nil
	}
}

// call ::= IDENTIFIER "(" ( expression ( "," expression )* )? ")"
func (p *Parser) parseCallExpression(callee Expr) Expr {
	call := &CallExpression{Callee: callee, Arguments: []Expr{}}

	p.nextToken() // cur is now '('

	if p.peek.Type == RIGHT_PAREN {
		p.nextToken()
		return call
	}

	p.nextToken()
	arg := p.parseExpression(LOWEST)
	if arg == nil {
		return nil
	}
	call.Arguments = append(call.Arguments, arg)

	for p.peek.Type == COMMA {
		p.nextToken()
		p.nextToken()

		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		call.Arguments = append(call.Arguments, arg)
	}

	if !p.expectPeek(RIGHT_PAREN) {
		return nil
	}

	return call
}
