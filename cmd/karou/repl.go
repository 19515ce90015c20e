package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"

	"karou"
)

const continuePrompt = "....> "

func runPrompt(cfg Config, sess *session) int {
	fmt.Fprintln(sess.stdout, "Karou Script Interactive Mode")
	fmt.Fprintln(sess.stdout, "Type 'exit' to quit, 'help' for commands")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	repl := &repl{sess: sess, showAST: cfg.ShowAST}
	for {
		code, ok := readInput(ln, cfg.Prompt, continuePrompt)
		if !ok {
			fmt.Fprintln(sess.stdout)
			break
		}

		if strings.TrimSpace(code) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(strings.TrimSpace(code), "\n", " "))

		if repl.handle(code) {
			break
		}
	}

	return exitOK
}

// readInput reads one line, then keeps reading continuation lines while the
// accumulated text only fails to parse because it ended too early.
func readInput(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for p := prompt; ; p = cont {
		line, err := ln.Prompt(p)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return "", true // drop the pending input, keep the session
			}
			return "", false // io.EOF or a terminal error
		}

		if b.Len() == 0 && isCommand(line) {
			return line, true
		}

		b.WriteString(line)
		b.WriteByte('\n')

		parser := karou.NewParser(b.String())
		parser.ParseProgram()
		if !parser.Incomplete() {
			return b.String(), true
		}
	}
}

func isCommand(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "help", "exit", "quit", "ast":
		return len(fields) == 1
	case "trigger":
		return true
	}
	return false
}

// repl holds per-prompt state on top of the session.
type repl struct {
	sess    *session
	showAST bool
}

// handle runs one REPL entry: a command or Karou source. It reports true
// when the user asked to leave.
func (r *repl) handle(input string) bool {
	out := r.sess.stdout
	fields := strings.Fields(input)

	if isCommand(input) {
		switch fields[0] {
		case "exit", "quit":
			return true
		case "help":
			printHelp(out)
			return false
		case "ast":
			r.showAST = !r.showAST
			fmt.Fprintf(out, "AST printing %s\n", onOff(r.showAST))
			return false
		case "trigger":
			// Element ids may contain spaces; the id is the rest of the line.
			id := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), "trigger"))
			if id == "" {
				fmt.Fprintln(r.sess.stderr, "Usage: trigger <elementId>")
				return false
			}
			if err := r.sess.triggerEvent(id); err != nil {
				fmt.Fprintln(r.sess.stderr, err)
			}
			return false
		}
	}

	r.sess.loadString(input)
	if !r.sess.parse() {
		return false
	}
	if r.showAST {
		r.sess.printAST()
	}
	if err := r.sess.run(); err != nil {
		fmt.Fprintln(r.sess.stderr, err)
	}

	return false
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  help - Show this help")
	fmt.Fprintln(w, "  exit - Exit interactive mode")
	fmt.Fprintln(w, "  ast - Toggle printing the AST of each entry")
	fmt.Fprintln(w, "  trigger <elementId> - Trigger an onClick event")
	fmt.Fprintln(w, "  Or enter Karou Script code directly")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
