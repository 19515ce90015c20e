package karou

import (
	"fmt"
)

// Callable is a builtin reachable through a call expression. Builtins get
// the unevaluated arguments and decide which ones to evaluate.
type Callable interface {
	Call(interpreter *Interpreter, arguments []Expr) (Value, error)
	fmt.Stringer
}

// Built-Ins:
var builtins = map[string]Callable{
	"print": Print{},
}

// Print writes its first argument as text followed by a newline. Extra
// arguments are not evaluated. The call itself yields 0.
type Print struct{}

func (Print) Call(interpreter *Interpreter, arguments []Expr) (Value, error) {
	if len(arguments) == 0 {
		return Number(0), nil
	}

	value, err := interpreter.evaluate(arguments[0])
	if err != nil {
		return nil, err
	}
	interpreter.print(value)

	return Number(0), nil
}

func (Print) String() string {
	return "<native fn print>"
}
