package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Exit codes, sysexits style.
const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65
	exitNoInput  = 66
	exitSoftware = 70
	exitConfig   = 78
)

// triggerList collects repeated -trigger flags.
type triggerList []string

func (t *triggerList) String() string {
	return strings.Join(*t, ",")
}

func (t *triggerList) Set(v string) error {
	*t = append(*t, v)
	return nil
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

func realMain(args []string, stdout, stderr io.Writer) int {
	var (
		showAST     bool
		interactive bool
		strict      bool
		evalCode    string
		configPath  string
		logLevel    string
		triggers    triggerList
	)

	fs := flag.NewFlagSet("karou", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&showAST, "a", false, "print the abstract syntax tree")
	fs.BoolVar(&showAST, "ast", false, "print the abstract syntax tree")
	fs.BoolVar(&interactive, "i", false, "run in interactive mode")
	fs.BoolVar(&interactive, "interactive", false, "run in interactive mode")
	fs.StringVar(&evalCode, "e", "", "evaluate code directly")
	fs.StringVar(&evalCode, "eval", "", "evaluate code directly")
	fs.StringVar(&configPath, "config", "", "path to a YAML config file")
	fs.BoolVar(&strict, "strict", false, "stop at the first runtime error")
	fs.StringVar(&logLevel, "log-level", "", "diagnostic log level (debug, info, warn, error)")
	fs.Var(&triggers, "trigger", "trigger an onClick handler after the run (repeatable)")
	fs.Usage = func() { printUsage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg := defaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = loadConfig(configPath); err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return exitConfig
		}
	}
	if strict {
		cfg.Policy = "strict"
	}
	if showAST {
		cfg.ShowAST = true
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitConfig
	}

	log := newLogger(cfg, stderr)
	defer func() { _ = log.Sync() }()

	sess := newSession(cfg, log, stdout, stderr)

	if interactive {
		return runPrompt(cfg, sess)
	}

	switch {
	case evalCode != "":
		sess.loadString(evalCode)
	case fs.NArg() > 0:
		if err := sess.loadFile(fs.Arg(0)); err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return exitNoInput
		}
	default:
		fmt.Fprintln(stderr, "Error: No input file specified")
		printUsage(stderr, fs)
		return exitUsage
	}

	return run(sess, cfg, triggers)
}

// run parses and executes the loaded source, then fires the requested
// events in order.
func run(sess *session, cfg Config, triggers []string) int {
	if !sess.parse() {
		return exitDataErr
	}

	if cfg.ShowAST {
		sess.printAST()
	}

	fmt.Fprintln(sess.stdout, "=== Execution Output ===")
	if err := sess.run(); err != nil {
		fmt.Fprintln(sess.stderr, err)
		return exitSoftware
	}

	for _, id := range triggers {
		if err := sess.triggerEvent(id); err != nil {
			fmt.Fprintln(sess.stderr, err)
			return exitSoftware
		}
	}

	return exitOK
}

func newLogger(cfg Config, w io.Writer) *zap.SugaredLogger {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		level,
	)

	return zap.New(core).Sugar()
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Karou Script v1.0")
	fmt.Fprintln(w, "Usage: karou [options] <file.ks>")
	fmt.Fprintln(w, "Options:")
	fs.PrintDefaults()
}
