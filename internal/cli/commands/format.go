package commands

import (
	"github.com/leapstack-labs/leapmath/pkg/format"
	"github.com/spf13/cobra"
)

// FormatResult is the encodable output of the format command.
type FormatResult struct {
	Input string `json:"input" yaml:"input"`
	Text  string `json:"text" yaml:"text"`
}

// NewFormatCommand creates the format command.
func NewFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "format [expression]",
		Aliases: []string{"fmt"},
		Short:   "Print an expression in canonical form",
		Long: `Parse an expression and print it back with canonical spacing and the
fewest parentheses that keep its meaning.`,
		Example: `  leapmath format "2 x^( a+1 ) -[ 1/2 ]"
  # 2x^(a + 1) - [1/2]`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return runFormat(NewCommandContext(cmd), input)
		},
	}
}

func runFormat(c *CommandContext, input string) error {
	p, err := c.parseInput(input)
	if err != nil {
		return err
	}

	text := format.Format(p.expr)
	if handled, err := c.Renderer.Encode(FormatResult{Input: input, Text: text}); handled {
		return err
	}
	c.Renderer.Println(text)
	return nil
}
