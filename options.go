package karou

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Policy decides what happens when a runtime condition (undefined variable,
// unsupported call, division by zero) is hit.
type Policy int

const (
	// Lenient reports the condition, substitutes 0 and keeps going.
	Lenient Policy = iota
	// Strict reports the condition and stops the current run.
	Strict
)

func (p Policy) String() string {
	switch p {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	default:
		return "unknown"
	}
}

func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "lenient":
		return Lenient, nil
	case "strict":
		return Strict, nil
	default:
		return Lenient, errors.Errorf("unknown runtime policy %q", s)
	}
}

type Option func(*Interpreter)

// WithOutput sets where print writes. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) {
		i.out = w
	}
}

// WithLogger sets the diagnostic channel. Defaults to a no-op logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(i *Interpreter) {
		if log != nil {
			i.log = log
		}
	}
}

func WithPolicy(p Policy) Option {
	return func(i *Interpreter) {
		i.policy = p
	}
}
