package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"karou"
)

// Config holds the CLI settings. Command-line flags override file values.
type Config struct {
	Policy      string `yaml:"policy"`
	LogLevel    string `yaml:"log_level"`
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	ShowAST     bool   `yaml:"show_ast"`
}

func defaultConfig() Config {
	return Config{
		Policy:      karou.Lenient.String(),
		LogLevel:    "info",
		Prompt:      "karou> ",
		HistoryFile: ".karou_history",
	}
}

// loadConfig reads a YAML config file on top of the defaults. Unknown keys
// are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	file, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: open %s", path)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, errors.Wrapf(err, "config: parse %s", path)
	}

	if err := cfg.validate(); err != nil {
		return cfg, errors.Wrapf(err, "config: %s", path)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if _, err := karou.ParsePolicy(c.Policy); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}

func (c Config) policy() karou.Policy {
	p, _ := karou.ParsePolicy(c.Policy) // checked by validate
	return p
}

// historyPath resolves HistoryFile: absolute paths are kept, "~/" and bare
// names are placed under the home directory.
func (c Config) historyPath() string {
	name := c.HistoryFile
	if name == "" || filepath.IsAbs(name) {
		return name
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}

	return filepath.Join(home, strings.TrimPrefix(name, "~/"))
}
