package commands

import (
	"github.com/leapstack-labs/leapmath/internal/cli/output"
	"github.com/leapstack-labs/leapmath/pkg/parser"
	"github.com/spf13/cobra"
)

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [expression]",
		Short: "Show the tokens of an expression",
		Long: `Run the lexer on an expression and list the tokens with their positions.
The input does not have to parse, only to lex.`,
		Example: `  leapmath tokens "3x^2 + [1/2]"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return runTokens(NewCommandContext(cmd), input)
		},
	}
}

func runTokens(c *CommandContext, input string) error {
	tokens, err := parser.Tokenize(input)
	if err != nil {
		return c.fail(input, err)
	}
	if handled, err := c.Renderer.Encode(output.TokenRows(tokens)); handled {
		return err
	}
	c.Renderer.Tokens(tokens)
	return nil
}
