package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karou"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "karou.yaml", `
policy: strict
log_level: warn
prompt: "ks> "
history_file: /tmp/karou_hist
show_ast: true
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "strict", cfg.Policy)
	assert.Equal(t, karou.Strict, cfg.policy())
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "ks> ", cfg.Prompt)
	assert.Equal(t, "/tmp/karou_hist", cfg.historyPath())
	assert.True(t, cfg.ShowAST)
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg, err := loadConfig(writeFile(t, "partial.yaml", "show_ast: true\n"))
	require.NoError(t, err)

	def := defaultConfig()
	assert.Equal(t, def.Policy, cfg.Policy)
	assert.Equal(t, def.LogLevel, cfg.LogLevel)
	assert.Equal(t, def.Prompt, cfg.Prompt)
	assert.Equal(t, karou.Lenient, cfg.policy())
}

func TestLoadConfigEmptyFile(t *testing.T) {
	cfg, err := loadConfig(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]string{
		"unknown field":  "colour: red\n",
		"bad policy":     "policy: yolo\n",
		"bad log level":  "log_level: chatty\n",
		"malformed yaml": "policy: [strict\n",
	}

	for name, content := range tests {
		_, err := loadConfig(writeFile(t, "bad.yaml", content))
		assert.Error(t, err, name)
	}

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: open")
}

func TestHistoryPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	assert.Equal(t, filepath.Join(home, ".karou_history"), defaultConfig().historyPath())
	assert.Equal(t, filepath.Join(home, "hist"), Config{HistoryFile: "~/hist"}.historyPath())
	assert.Equal(t, "", Config{}.historyPath())
}
