package karou

import (
	"fmt"
	"strings"
)

type Stmt interface {
	isStmt()
	fmt.Stringer
}

type ExpressionStatement struct {
	Expr Expr
}

func (*ExpressionStatement) isStmt() {}
func (e *ExpressionStatement) String() string {
	return e.Expr.String() + ";"
}

type LetStatement struct {
	Name  string
	Value Expr
}

func (*LetStatement) isStmt() {}
func (l *LetStatement) String() string {
	return "let " + l.Name + " = " + l.Value.String() + ";"
}

type BlockStatement struct {
	Statements []Stmt
}

func (*BlockStatement) isStmt() {}
func (b *BlockStatement) String() string {
	var sb strings.Builder

	sb.WriteString("{\n")
	for _, stmt := range b.Statements {
		// Nested blocks span several lines; indent every one of them.
		for _, line := range strings.Split(stmt.String(), "\n") {
			sb.WriteString("  ")
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	sb.WriteByte('}')

	return sb.String()
}

type FunctionDeclaration struct {
	Name       string
	Parameters []string
	Body       *BlockStatement
}

func (*FunctionDeclaration) isStmt() {}
func (f *FunctionDeclaration) String() string {
	return "function " + f.Name + "(" + strings.Join(f.Parameters, ", ") + ") " + f.Body.String()
}

type OnClickStatement struct {
	ElementID string
	Body      *BlockStatement
}

func (*OnClickStatement) isStmt() {}
func (o *OnClickStatement) String() string {
	return `onClick("` + o.ElementID + `") ` + o.Body.String()
}

// Program is the root of a parsed source text.
type Program struct {
	Statements []Stmt
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, stmt := range p.Statements {
		sb.WriteString(stmt.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
