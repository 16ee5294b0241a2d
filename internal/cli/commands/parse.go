package commands

import (
	"github.com/leapstack-labs/leapmath/pkg/format"
	"github.com/spf13/cobra"
)

// ParseResult is the encodable output of the parse command.
type ParseResult struct {
	Input string       `json:"input" yaml:"input"`
	Text  string       `json:"text" yaml:"text"`
	Tree  *format.Node `json:"tree" yaml:"tree"`
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [expression]",
		Short: "Parse an expression and show its tree",
		Long: `Parse an expression and print the resulting expression tree.

The expression is taken from the arguments, or read from stdin when none are
given. Output follows --output: an indented tree for text, or the encoded
tree for json and yaml.`,
		Example: `  # Show the tree of an implicit product
  leapmath parse 2x^2

  # Keep single-term sums and single-factor products
  leapmath parse --singletons "x + 1"

  # Machine-readable output
  echo "[a/b] - 3" | leapmath parse -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return runParse(NewCommandContext(cmd), input)
		},
	}
}

func runParse(c *CommandContext, input string) error {
	p, err := c.parseInput(input)
	if err != nil {
		return err
	}

	tree := format.Tree(p.expr)
	result := ParseResult{Input: input, Text: format.Format(p.expr), Tree: tree}
	if handled, err := c.Renderer.Encode(result); handled {
		return err
	}
	c.Renderer.Tree(tree)
	return nil
}
