package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/leapmath/pkg/parser"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches into dir for the duration of the test so no stray
// leapmath.yaml in the working tree is picked up.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultConfigName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	ResetConfig()

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.False(t, cfg.MixedNumbers)
	assert.False(t, cfg.Singletons)
	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultServerAddr, cfg.Server.Addr)
	assert.NotNil(t, cfg.REPL)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeConfig(t, dir, `
mixed_numbers: true
max_depth: 32
output: json
server:
  addr: ":9000"
repl:
  history_file: /tmp/leapmath_history
`)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.True(t, cfg.MixedNumbers)
	assert.Equal(t, 32, cfg.MaxDepth)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "/tmp/leapmath_history", cfg.REPL.HistoryFile)
	assert.Equal(t, DefaultConfigName, GetConfigFileUsed())
}

func TestLoadConfig_ExplicitFileMissing(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := LoadConfig("missing.yaml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeConfig(t, dir, "max_depth: 32\nserver:\n  addr: \":9000\"\n")

	t.Setenv("LEAPMATH_MAX_DEPTH", "16")
	t.Setenv("LEAPMATH_SERVER_ADDR", ":9100")
	t.Setenv("LEAPMATH_MIXED_NUMBERS", "true")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.MaxDepth)
	assert.Equal(t, ":9100", cfg.Server.Addr)
	assert.True(t, cfg.MixedNumbers)
}

func TestLoadConfig_FlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeConfig(t, dir, "output: yaml\n")
	t.Setenv("LEAPMATH_OUTPUT", "json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "output format")
	flags.Int("max-depth", 0, "nesting bound")
	flags.String("config", "", "config file")
	require.NoError(t, flags.Set("output", "text"))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.OutputFormat)
	// Unset flags leave lower layers alone.
	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeConfig(t, dir, "output: markdown\n")

	_, err := LoadConfig("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output must be one of")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		errSubstr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "zero depth", mutate: func(c *Config) { c.MaxDepth = 0 }, errSubstr: "max_depth"},
		{name: "bad output", mutate: func(c *Config) { c.OutputFormat = "xml" }, errSubstr: "output"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, errSubstr: "log level"},
		{name: "empty addr", mutate: func(c *Config) { c.Server.Addr = "" }, errSubstr: "server.addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestConfig_ParserOptions(t *testing.T) {
	cfg := Default()
	cfg.MixedNumbers = true
	cfg.MaxDepth = 4

	opts := parser.New(cfg.ParserOptions()...).Options()
	assert.True(t, opts.MixedNumbers)
	assert.False(t, opts.Singletons)
	assert.Equal(t, 4, opts.MaxDepth)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()

	NewLogger(&buf, cfg).Debug("hidden")
	assert.Empty(t, buf.String())

	cfg.Verbose = true
	NewLogger(&buf, cfg).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))

	logger := slog.New(slog.DiscardHandler)
	ctx := context.WithValue(context.Background(), LoggerKey(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "max_depth", envKey("LEAPMATH_MAX_DEPTH"))
	assert.Equal(t, "server.addr", envKey("LEAPMATH_SERVER_ADDR"))
	assert.Equal(t, "repl.history_file", envKey("LEAPMATH_REPL_HISTORY_FILE"))
}
