package format_test

import (
	"encoding/json"
	"testing"

	"github.com/leapstack-labs/leapmath/pkg/core"
	"github.com/leapstack-labs/leapmath/pkg/format"
	"github.com/leapstack-labs/leapmath/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFormat_Parsed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "implicit product", input: "2 x", expected: "2x"},
		{name: "explicit product", input: "2 * 3", expected: "2*3"},
		{name: "fraction", input: "[ a / b ]", expected: "[a/b]"},
		{name: "sum spacing", input: "x^2+1-y", expected: "x^2 + 1 - y"},
		{name: "leading minus", input: "-x+1", expected: "-x + 1"},
		{name: "leading plus kept", input: "+x", expected: "+x"},
		{name: "group kept", input: "x^(2+1)", expected: "x^(2 + 1)"},
		{name: "fraction with sums", input: "[x+1/x-1]", expected: "[x + 1/x - 1]"},
		{name: "power after coefficient", input: "3x^2y", expected: "3x^2y"},
		{name: "leading zeros", input: "007x", expected: "007x"},
		{name: "nested", input: "2x*(y-1)[1/2]", expected: "2x*(y - 1)[1/2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := parser.ParseString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format.Format(expr))
		})
	}
}

func TestFormat_MixedNumber(t *testing.T) {
	expr, err := parser.ParseString("[1 2/3]x", parser.WithMixedNumbers(true))
	require.NoError(t, err)
	assert.Equal(t, "[1 2/3]x", format.Format(expr))
}

func TestFormat_AddsParentheses(t *testing.T) {
	x, y, two := core.Var("x"), core.Var("y"), core.Num("2")

	tests := []struct {
		name     string
		expr     core.Expr
		expected string
	}{
		{name: "sum as exponent", expr: core.PowerOf(x, core.SumOf(two, y)), expected: "x^(2 + y)"},
		{name: "product as base", expr: core.PowerOf(core.ImplicitProductOf(two, x), two), expected: "(2x)^2"},
		{name: "power as base", expr: core.PowerOf(core.PowerOf(x, two), y), expected: "(x^2)^y"},
		{name: "sum inside product", expr: core.ProductOf(core.SumOf(x, y), two), expected: "(x + y)*2"},
		{name: "explicit inside implicit", expr: core.ImplicitProductOf(x, core.ProductOf(y, two)), expected: "x(y*2)"},
		{name: "number after factor", expr: core.ImplicitProductOf(x, two), expected: "x(2)"},
		{name: "numeric power after factor", expr: core.ImplicitProductOf(x, core.PowerOf(two, y)), expected: "x(2^y)"},
		{name: "signed sum as term", expr: core.SumOf(x, core.SumOfTerms(core.Sub(y))), expected: "x + (-y)"},
		{name: "nil", expr: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, format.Format(tt.expr))
		})
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	inputs := []string{
		"2x",
		"2*3",
		"[a/b]",
		"x^2+1",
		"x^(2+1)",
		"-3x^2 + [x+1/x-1] - (a*b)",
		"2^x y",
		"a*b*c - x y z",
		"[[1/2]/[3/4]]^[1/2]",
		"((x))",
	}

	for _, mode := range []bool{false, true} {
		p := parser.New(parser.WithSingletons(mode))
		for _, input := range inputs {
			first, err := p.ParseString(input)
			require.NoError(t, err, input)

			printed := format.Format(first)
			second, err := p.ParseString(printed)
			require.NoError(t, err, printed)
			assert.True(t, core.Equal(first, second), "%q printed as %q", input, printed)
		}
	}
}

func TestPrecedenceOf(t *testing.T) {
	x := core.Var("x")
	assert.Equal(t, format.SumPrecedence, format.PrecedenceOf(core.SumOf(x, x)))
	assert.Equal(t, format.AtomicPrecedence, format.PrecedenceOf(core.SumOf(x)))
	assert.Equal(t, format.SumPrecedence, format.PrecedenceOf(core.SumOfTerms(core.Sub(x))))
	assert.Equal(t, format.ExplicitProductPrecedence, format.PrecedenceOf(core.ProductOf(x, x)))
	assert.Equal(t, format.ImplicitProductPrecedence, format.PrecedenceOf(core.ImplicitProductOf(x, x)))
	assert.Equal(t, format.PowerPrecedence, format.PrecedenceOf(core.PowerOf(x, x)))
	assert.Equal(t, format.AtomicPrecedence, format.PrecedenceOf(core.GroupOf(core.SumOf(x, x))))
}

func TestTree(t *testing.T) {
	expr, err := parser.ParseString("x^2 - 1")
	require.NoError(t, err)

	want := &format.Node{
		Kind: "Sum",
		Children: []*format.Node{
			{Kind: "Term", Sign: "+", Implicit: true, Children: []*format.Node{
				{Kind: "Power", Children: []*format.Node{
					{Kind: "Variable", Value: "x"},
					{Kind: "NaturalNumber", Value: "2"},
				}},
			}},
			{Kind: "Term", Sign: "-", Children: []*format.Node{
				{Kind: "NaturalNumber", Value: "1"},
			}},
		},
	}
	assert.Equal(t, want, format.Tree(expr))
	assert.Nil(t, format.Tree(nil))
}

func TestTree_Serialization(t *testing.T) {
	expr, err := parser.ParseString("2*x")
	require.NoError(t, err)
	tree := format.Tree(expr)

	data, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Product","explicit":true,"children":[{"kind":"NaturalNumber","value":"2"},{"kind":"Variable","value":"x"}]}`, string(data))

	out, err := yaml.Marshal(tree)
	require.NoError(t, err)
	assert.YAMLEq(t, "kind: Product\nexplicit: true\nchildren:\n  - kind: NaturalNumber\n    value: \"2\"\n  - kind: Variable\n    value: x\n", string(out))
}

func TestNodeLabel(t *testing.T) {
	assert.Equal(t, "NaturalNumber 2", (&format.Node{Kind: "NaturalNumber", Value: "2"}).Label())
	assert.Equal(t, "Term -", (&format.Node{Kind: "Term", Sign: "-"}).Label())
	assert.Equal(t, "Term (+)", (&format.Node{Kind: "Term", Sign: "+", Implicit: true}).Label())
	assert.Equal(t, "Product *", (&format.Node{Kind: "Product", Explicit: true}).Label())
	assert.Equal(t, "Group", (&format.Node{Kind: "Group"}).Label())
}
