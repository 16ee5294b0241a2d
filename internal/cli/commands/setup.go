package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/leapmath/internal/cli/config"
	"github.com/leapstack-labs/leapmath/internal/cli/output"
	"github.com/leapstack-labs/leapmath/pkg/core"
	"github.com/leapstack-labs/leapmath/pkg/parser"
	"github.com/leapstack-labs/leapmath/pkg/token"
	"github.com/spf13/cobra"
)

// errInvalidExpression is returned after the diagnostic has been printed.
var errInvalidExpression = errors.New("invalid expression")

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
	Parser   *parser.Parser
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
		Parser:   parser.New(cfg.ParserOptions()...),
	}
}

// getConfig returns the current configuration, or defaults when the root
// command did not load one (e.g. a subcommand executed on its own in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// readInput joins the arguments into one expression. With no arguments, or
// a single "-", the expression is read from stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}
	return strings.Join(args, " "), nil
}

// parsed is one successfully parsed input.
type parsed struct {
	tokens []token.Token
	expr   core.Expr
}

// parseInput parses input, printing a diagnostic on failure. In JSON and
// YAML modes the failure is encoded on stdout instead.
func (c *CommandContext) parseInput(input string) (*parsed, error) {
	tokens, err := parser.Tokenize(input)
	if err != nil {
		return nil, c.fail(input, err)
	}
	expr, err := c.Parser.Parse(tokens)
	if err != nil {
		return nil, c.fail(input, err)
	}
	nodes := 0
	core.Walk(expr, func(core.Expr) bool {
		nodes++
		return true
	})
	c.Logger.Debug("parsed expression", "tokens", len(tokens), "nodes", nodes, "depth", core.Depth(expr))
	return &parsed{tokens: tokens, expr: expr}, nil
}

func (c *CommandContext) fail(input string, err error) error {
	c.Logger.Debug("parse failed", "input", input, "error", err)
	c.reportError(input, err)
	return errInvalidExpression
}

func (c *CommandContext) reportError(input string, err error) {
	if handled, encErr := c.Renderer.Encode(map[string]output.ErrorInfo{"error": output.NewErrorInfo(err)}); handled {
		if encErr != nil {
			c.Logger.Error("failed to encode error", "error", encErr)
		}
		return
	}
	c.Renderer.Diagnostic(input, err)
}
