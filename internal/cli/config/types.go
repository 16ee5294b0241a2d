// Package config provides configuration management for the leapmath CLI.
package config

import "github.com/leapstack-labs/leapmath/pkg/parser"

// Config holds all CLI configuration options.
type Config struct {
	MixedNumbers bool          `koanf:"mixed_numbers"`
	Singletons   bool          `koanf:"singletons"`
	MaxDepth     int           `koanf:"max_depth"`
	OutputFormat string        `koanf:"output"`
	LogLevel     string        `koanf:"log_level"`
	Verbose      bool          `koanf:"verbose"`
	Server       *ServerConfig `koanf:"server"`
	REPL         *REPLConfig   `koanf:"repl"`
}

// ServerConfig holds configuration for the HTTP API.
type ServerConfig struct {
	Addr string `koanf:"addr"`
}

// REPLConfig holds configuration for the interactive prompt.
type REPLConfig struct {
	HistoryFile string `koanf:"history_file"`
}

// Default configuration values.
const (
	DefaultMaxDepth   = parser.DefaultMaxDepth
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=text without color
	DefaultLogLevel   = "info"
	DefaultServerAddr = "127.0.0.1:8787"
	DefaultConfigName = "leapmath.yaml"
	EnvPrefix         = "LEAPMATH_"
)

// Default returns a Config with every default applied.
func Default() *Config {
	return &Config{
		MaxDepth:     DefaultMaxDepth,
		OutputFormat: DefaultOutput,
		LogLevel:     DefaultLogLevel,
		Server:       &ServerConfig{Addr: DefaultServerAddr},
		REPL:         &REPLConfig{},
	}
}

// ParserOptions converts the parse settings into parser options.
func (c *Config) ParserOptions() []parser.Option {
	return []parser.Option{
		parser.WithMixedNumbers(c.MixedNumbers),
		parser.WithSingletons(c.Singletons),
		parser.WithMaxDepth(c.MaxDepth),
	}
}

// GetServerConfig returns the server config with defaults applied for any unset values.
func (c *Config) GetServerConfig() *ServerConfig {
	if c.Server == nil {
		return &ServerConfig{Addr: DefaultServerAddr}
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
	return c.Server
}

// GetREPLConfig returns the REPL config, never nil.
func (c *Config) GetREPLConfig() *REPLConfig {
	if c.REPL == nil {
		return &REPLConfig{}
	}
	return c.REPL
}
