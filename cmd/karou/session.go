package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"karou"
)

// session owns the source text, the parsed Program and one Interpreter that
// lives as long as the session, so REPL lines and triggered events share
// state.
type session struct {
	source      string
	program     *karou.Program
	interpreter *karou.Interpreter

	stdout io.Writer
	stderr io.Writer
}

func newSession(cfg Config, log *zap.SugaredLogger, stdout, stderr io.Writer) *session {
	return &session{
		interpreter: karou.NewInterpreter(
			karou.WithOutput(stdout),
			karou.WithLogger(log),
			karou.WithPolicy(cfg.policy()),
		),
		stdout: stdout,
		stderr: stderr,
	}
}

func (s *session) loadFile(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "could not open file '%s'", path)
	}

	s.source = string(buf)
	return nil
}

func (s *session) loadString(code string) {
	s.source = code
}

// parse replaces the session's Program. It reports false and prints every
// syntax error when the source did not parse cleanly.
func (s *session) parse() bool {
	program, errs := karou.ParseProgram(s.source)
	s.program = program

	if len(errs) > 0 {
		fmt.Fprintln(s.stderr, "Parse errors:")
		for _, err := range errs {
			fmt.Fprintln(s.stderr, "  "+err.Error())
		}
		return false
	}

	return true
}

func (s *session) printAST() {
	if s.program == nil {
		return
	}
	fmt.Fprintln(s.stdout, "=== Abstract Syntax Tree ===")
	fmt.Fprintln(s.stdout, s.program.String())
}

func (s *session) run() error {
	if s.program == nil {
		return nil
	}
	s.interpreter.ClearDiagnostics()
	return s.interpreter.Interpret(s.program)
}

func (s *session) triggerEvent(elementID string) error {
	s.interpreter.ClearDiagnostics()
	return s.interpreter.TriggerEvent(elementID)
}
