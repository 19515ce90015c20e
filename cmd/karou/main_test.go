package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"karou"
)

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = realMain(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestCLIEval(t *testing.T) {
	code, stdout, _ := runCLI("-e", `let x = 2 + 3 * 4; print(x);`)

	require.Equal(t, exitOK, code)
	assert.Equal(t, "=== Execution Output ===\n14\n", stdout)
}

func TestCLIFileWithAST(t *testing.T) {
	path := writeFile(t, "hello.ks", `let name = "world";
print("hello " + name);
`)

	code, stdout, _ := runCLI("-ast", path)
	require.Equal(t, exitOK, code)

	assert.Contains(t, stdout, "=== Abstract Syntax Tree ===\nlet name = \"world\";\nprint((\"hello \" + name));\n")
	assert.True(t, strings.HasSuffix(stdout, "=== Execution Output ===\nhello world\n"), stdout)
}

func TestCLITriggers(t *testing.T) {
	code, stdout, _ := runCLI(
		"-e", `onClick("btn") { print("clicked"); }`,
		"-trigger", "btn", "-trigger", "missing", "-trigger", "btn",
	)

	require.Equal(t, exitOK, code)
	assert.Equal(t, "=== Execution Output ===\nclicked\nclicked\n", stdout)
}

func TestCLIParseErrors(t *testing.T) {
	code, stdout, stderr := runCLI("-e", "let = 5;")

	assert.Equal(t, exitDataErr, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Parse errors:\n  Line 1: Expected IDENTIFIER, got EQUALS\n")
}

func TestCLILenientRuntimeError(t *testing.T) {
	code, stdout, stderr := runCLI("-e", `print(10 / 0); print("still here");`)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "=== Execution Output ===\n0\nstill here\n", stdout)
	assert.Contains(t, stderr, "division by zero")
}

func TestCLIStrictRuntimeError(t *testing.T) {
	code, stdout, stderr := runCLI("-strict", "-e", `print(z); print("unreached");`)

	assert.Equal(t, exitSoftware, code)
	assert.Equal(t, "=== Execution Output ===\n", stdout)
	assert.Contains(t, stderr, "Runtime error: undefined variable: 'z'")
}

func TestCLIConfigFile(t *testing.T) {
	cfg := writeFile(t, "karou.yaml", "policy: strict\nlog_level: error\n")

	code, _, stderr := runCLI("-config", cfg, "-e", "print(1 / 0);")
	assert.Equal(t, exitSoftware, code)
	assert.NotContains(t, stderr, "WARN", "log_level error hides warnings")

	code, _, _ = runCLI("-config", filepath.Join(t.TempDir(), "nope.yaml"), "-e", "1;")
	assert.Equal(t, exitConfig, code)
}

func TestCLIUsage(t *testing.T) {
	code, _, stderr := runCLI()
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "No input file specified")

	code, _, _ = runCLI("-h")
	assert.Equal(t, exitOK, code)

	code, _, _ = runCLI("-bogus")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI("-log-level", "loud", "-e", "1;")
	assert.Equal(t, exitConfig, code)
}

func TestCLIMissingFile(t *testing.T) {
	code, _, stderr := runCLI(filepath.Join(t.TempDir(), "absent.ks"))

	assert.Equal(t, exitNoInput, code)
	assert.Contains(t, stderr, "could not open file")
}

func newTestREPL(cfg Config) (*repl, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	sess := newSession(cfg, zap.NewNop().Sugar(), &out, &errOut)
	return &repl{sess: sess, showAST: cfg.ShowAST}, &out, &errOut
}

func TestREPLKeepsStateAcrossEntries(t *testing.T) {
	r, out, _ := newTestREPL(defaultConfig())

	assert.False(t, r.handle("let x = 5;"))
	assert.False(t, r.handle(`onClick("go") { print(x * 2); }`))
	assert.False(t, r.handle("let x = 7;"))
	assert.False(t, r.handle("trigger go"))

	assert.Equal(t, "14\n", out.String())
}

func TestREPLCommands(t *testing.T) {
	r, out, errOut := newTestREPL(defaultConfig())

	assert.False(t, r.handle("help"))
	assert.Contains(t, out.String(), "trigger <elementId>")

	assert.False(t, r.handle("trigger"))
	assert.Contains(t, errOut.String(), "Usage: trigger <elementId>")

	out.Reset()
	assert.False(t, r.handle("ast"))
	assert.True(t, r.showAST)
	assert.False(t, r.handle("print(1 + 1);"))
	assert.Equal(t, "AST printing on\n=== Abstract Syntax Tree ===\nprint((1 + 1));\n\n2\n", out.String())

	assert.False(t, r.handle("let = 1;"))
	assert.Contains(t, errOut.String(), "Parse errors:")

	assert.True(t, r.handle("exit"))
	assert.True(t, r.handle("quit"))
}

func TestREPLTriggerIDWithSpace(t *testing.T) {
	r, out, errOut := newTestREPL(defaultConfig())

	assert.False(t, r.handle(`onClick("my btn") { print("clicked"); }`))
	assert.False(t, r.handle("  trigger   my btn  "))
	assert.Equal(t, "clicked\n", out.String())

	assert.False(t, r.handle("trigger   "))
	assert.Contains(t, errOut.String(), "Usage: trigger <elementId>")
}

func TestREPLSourceStartingWithCommandWord(t *testing.T) {
	r, out, _ := newTestREPL(defaultConfig())

	assert.False(t, r.handle("let ast = 2;"))
	assert.False(t, r.handle("ast + 1;"))
	assert.False(t, r.showAST)
	assert.Equal(t, karou.Number(3), r.sess.interpreter.Last())

	assert.False(t, r.handle("print(ast * 5);"))
	assert.Equal(t, "10\n", out.String())
}

func TestREPLDiagnosticsResetPerEntry(t *testing.T) {
	r, _, _ := newTestREPL(defaultConfig())

	for i := 0; i < 3; i++ {
		assert.False(t, r.handle("print(1 / 0);"))
	}
	assert.Len(t, r.sess.interpreter.Diagnostics(), 1)

	assert.False(t, r.handle(`onClick("b") { print(nope); }`))
	assert.False(t, r.handle("trigger b"))
	assert.Len(t, r.sess.interpreter.Diagnostics(), 1)
}

func TestREPLStrictErrorKeepsSession(t *testing.T) {
	cfg := defaultConfig()
	cfg.Policy = "strict"
	r, out, errOut := newTestREPL(cfg)

	assert.False(t, r.handle("print(nope);"))
	assert.Contains(t, errOut.String(), "undefined variable")

	assert.False(t, r.handle(`print("ok");`))
	assert.Equal(t, "ok\n", out.String())
}

func TestIsCommand(t *testing.T) {
	assert.True(t, isCommand("trigger btn"))
	assert.True(t, isCommand("  exit  "))
	assert.False(t, isCommand(""))
	assert.False(t, isCommand("print(1);"))
	assert.False(t, isCommand("let help = 1;"))
	assert.False(t, isCommand("ast + 1;"))
	assert.False(t, isCommand("help me"))
	assert.True(t, isCommand("trigger my btn"))
}
