package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/leapmath/pkg/format"
	"github.com/spf13/cobra"
)

const replPrompt = "leapmath> "

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse expressions interactively",
		Long: `Start an interactive prompt. Each line is parsed and echoed in canonical
form, or rejected with a diagnostic. Dot-commands show tokens and trees.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, NewCommandContext(cmd))
		},
	}
}

func runREPL(cmd *cobra.Command, c *CommandContext) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile(c),
		AutoComplete:    newDotCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "leapmath REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	return replLoop(rl, c)
}

// lineReader is the part of readline the loop needs.
type lineReader interface {
	Readline() (string, error)
}

func replLoop(rl lineReader, c *CommandContext) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if quit := evalLine(c, line); quit {
			return nil
		}
	}
}

// evalLine handles one line of input and reports whether the loop should end.
func evalLine(c *CommandContext, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if !strings.HasPrefix(line, ".") {
		if p, err := c.parseInput(line); err == nil {
			c.Renderer.Println(format.Format(p.expr))
		}
		return false
	}
	return handleDotCommand(c, line)
}

func handleDotCommand(c *CommandContext, line string) bool {
	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(command) {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(c.Renderer.Writer())

	case ".tokens":
		if arg == "" {
			c.Renderer.Errorf("Usage: .tokens <expression>\n")
			return false
		}
		_ = runTokens(c, arg)

	case ".tree":
		if arg == "" {
			c.Renderer.Errorf("Usage: .tree <expression>\n")
			return false
		}
		_ = runParse(c, arg)

	default:
		c.Renderer.Errorf("Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .tokens <expr>  Show the tokens of an expression
  .tree <expr>    Show the tree of an expression
  .quit / .exit   Exit the REPL

Any other line is parsed and printed in canonical form.
`
	_, _ = fmt.Fprintln(w, help)
}

// historyFile returns the configured history path, defaulting to a file in
// the user's home directory. Empty disables history.
func historyFile(c *CommandContext) string {
	if path := c.Cfg.GetREPLConfig().HistoryFile; path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".leapmath_history")
}

func newDotCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".tokens"),
		readline.PcItem(".tree"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
