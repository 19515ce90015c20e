package karou

import (
	"fmt"
	"io"
	"os"
	"sort"

	"go.uber.org/zap"
)

// Interpreter walks a Program. It keeps the scope chain, the most recently
// computed value and the registered event handlers across calls, so a REPL
// can feed it one program after another.
//
// An Interpreter is not safe for concurrent use; callers that trigger events
// from several goroutines must serialize the calls.
type Interpreter struct {
	globals  *Environment
	scopes   Stack[*Environment]
	last     Value
	handlers map[string]*EventHandler

	out         io.Writer
	log         *zap.SugaredLogger
	policy      Policy
	diagnostics []*RuntimeError
}

func NewInterpreter(opts ...Option) *Interpreter {
	i := &Interpreter{
		globals:  NewEnvironment(nil),
		last:     Number(0),
		handlers: make(map[string]*EventHandler),
		out:      os.Stdout,
		log:      zap.NewNop().Sugar(),
		policy:   Lenient,
	}
	i.scopes.Push(i.globals)

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Interpret runs the top-level statements in order. With the Lenient policy
// it always returns nil; with Strict it stops at the first runtime condition
// and returns it.
func (i *Interpreter) Interpret(program *Program) error {
	if program == nil {
		return nil
	}

	for _, stmt := range program.Statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}

	return nil
}

// TriggerEvent runs the handler registered for elementID. An unknown id is
// not an error.
func (i *Interpreter) TriggerEvent(elementID string) error {
	handler, ok := i.handlers[elementID]
	if !ok {
		i.log.Debugw("no handler registered", "element", elementID)
		return nil
	}

	return handler.Call(i)
}

// Last returns the most recently computed value.
func (i *Interpreter) Last() Value {
	return i.last
}

// Lookup resolves name from the active scope outward.
func (i *Interpreter) Lookup(name string) (Value, bool) {
	return i.env().Get(name)
}

// Diagnostics returns every runtime condition reported so far.
func (i *Interpreter) Diagnostics() []*RuntimeError {
	return append([]*RuntimeError(nil), i.diagnostics...)
}

// ClearDiagnostics forgets the runtime conditions reported so far.
func (i *Interpreter) ClearDiagnostics() {
	i.diagnostics = nil
}

// Handlers returns the registered element ids in sorted order.
func (i *Interpreter) Handlers() []string {
	ids := make([]string, 0, len(i.handlers))
	for id := range i.handlers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (i *Interpreter) env() *Environment {
	env, _ := i.scopes.Top() // globals are never popped
	return env
}

func (i *Interpreter) execute(stmt Stmt) error {
	switch s := stmt.(type) {
	case *ExpressionStatement:
		_, err := i.evaluate(s.Expr)
		return err
	case *LetStatement:
		val, err := i.evaluate(s.Value)
		if err != nil {
			return err
		}

		i.env().Define(s.Name, val)

		return nil
	case *BlockStatement:
		return i.execBlock(s, NewEnvironment(i.env()))
	case *FunctionDeclaration:
		// Declarations are accepted but nothing is bound: functions cannot be
		// called yet.
		i.log.Infow("function declared (not yet executable)",
			"name", s.Name, "params", s.Parameters)
		return nil
	case *OnClickStatement:
		i.handlers[s.ElementID] = &EventHandler{s.ElementID, s.Body, i.env()}
		i.log.Infow("event handler registered", "element", s.ElementID)
		return nil
	case nil: // no-op
		return nil
	default:
		panic(fmt.Sprintf(
			"Unimplemented Statement type: %T", s))
	}
}

// execBlock runs block with env as the innermost scope and restores the
// previous scope on every way out.
func (i *Interpreter) execBlock(block *BlockStatement, env *Environment) error {
	i.scopes.Push(env)
	defer i.scopes.Pop()

	for _, stmt := range block.Statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (i *Interpreter) evaluate(expr Expr) (val Value, err error) {
	switch e := expr.(type) {
	case *NumberLiteral:
		val = Number(e.Value)
	case *StringLiteral:
		val = Text(e.Value)
	case *Identifier:
		v, ok := i.env().Get(e.Name)
		if !ok {
			val, err = i.report(newRuntimeError(ErrUndefinedVariable, "'%s'", e.Name))
		} else {
			val = v
		}
	case *BinaryExpression:
		val, err = i.evalBinary(e)
	case *CallExpression:
		val, err = i.evalCall(e)
	case nil:
		val = Number(0)
	default:
		panic(fmt.Sprintf(
			"Unimplemented Expression type: %T", e))
	}

	if err == nil {
		i.last = val
	}

	return val, err
}

func (i *Interpreter) evalBinary(expr *BinaryExpression) (Value, error) {
	lhs, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}

	rhs, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator {
	case "+":
		_, lhsText := lhs.(Text)
		_, rhsText := rhs.(Text)
		if lhsText || rhsText {
			return Text(ToText(lhs) + ToText(rhs)), nil
		}

		return Number(ToNumber(lhs) + ToNumber(rhs)), nil
	case "-":
		return Number(ToNumber(lhs) - ToNumber(rhs)), nil
	case "*":
		return Number(ToNumber(lhs) * ToNumber(rhs)), nil
	case "/":
		divisor := ToNumber(rhs)
		if divisor == 0 {
			return i.report(newRuntimeError(ErrDivisionByZero, "%s", expr))
		}

		return Number(ToNumber(lhs) / divisor), nil
	default:
		panic(fmt.Sprintf(
			"Unreachable: unexpected binary operator: %q", expr.Operator))
	}
}

func (i *Interpreter) evalCall(expr *CallExpression) (Value, error) {
	if ident, ok := expr.Callee.(*Identifier); ok {
		if fn, ok := builtins[ident.Name]; ok {
			return fn.Call(i, expr.Arguments)
		}
	}

	return i.report(newRuntimeError(ErrUnsupportedCall, "%s", expr.Callee))
}

func (i *Interpreter) print(value Value) {
	if _, err := fmt.Fprintln(i.out, ToText(value)); err != nil {
		i.log.Errorw("print failed", "error", err)
	}
}

// report records a runtime condition. Lenient runs continue with 0;
// strict runs get the error back.
func (i *Interpreter) report(err *RuntimeError) (Value, error) {
	i.diagnostics = append(i.diagnostics, err)
	i.log.Warnw("runtime error",
		"cause", err.cause.Error(), "detail", err.detail, "policy", i.policy.String())

	if i.policy == Strict {
		return nil, err
	}

	return Number(0), nil
}
