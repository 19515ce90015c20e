package karou

import (
	"fmt"
	"strconv"
	"strings"
)

// Expr is the closed set of expression nodes. Traversals type-switch over
// the concrete node types.
type Expr interface {
	isExpr()
	fmt.Stringer
}

type NumberLiteral struct {
	Value float64
}

func (*NumberLiteral) isExpr() {}
func (n *NumberLiteral) String() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

type StringLiteral struct {
	Value string
}

func (*StringLiteral) isExpr() {}
func (s *StringLiteral) String() string {
	return `"` + s.Value + `"`
}

type Identifier struct {
	Name string
}

func (*Identifier) isExpr() {}
func (i *Identifier) String() string {
	return i.Name
}

type BinaryExpression struct {
	Left     Expr
	Operator string
	Right    Expr
}

func (*BinaryExpression) isExpr() {}
func (b *BinaryExpression) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

type CallExpression struct {
	Callee    Expr
	Arguments []Expr
}

func (*CallExpression) isExpr() {}
func (c *CallExpression) String() string {
	var sb strings.Builder

	sb.WriteString(c.Callee.String())
	sb.WriteByte('(')
	for i, arg := range c.Arguments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteByte(')')

	return sb.String()
}
