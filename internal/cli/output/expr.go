package output

import (
	"errors"
	"strings"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/leapmath/pkg/format"
	"github.com/leapstack-labs/leapmath/pkg/parser"
	"github.com/leapstack-labs/leapmath/pkg/token"
)

// Tree prints an expression tree as an indented list.
func (r *Renderer) Tree(n *format.Node) {
	if n == nil {
		return
	}
	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedLight)
	appendNode(l, n)
	r.Println(l.Render())
}

func appendNode(l list.Writer, n *format.Node) {
	l.AppendItem(n.Label())
	if len(n.Children) == 0 {
		return
	}
	l.Indent()
	for _, child := range n.Children {
		appendNode(l, child)
	}
	l.UnIndent()
}

// TokenRow is the encodable form of a token.
type TokenRow struct {
	Type    string `json:"type" yaml:"type"`
	Literal string `json:"literal" yaml:"literal"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
}

// TokenRows converts tokens to their encodable form.
func TokenRows(tokens []token.Token) []TokenRow {
	rows := make([]TokenRow, len(tokens))
	for i, tok := range tokens {
		rows[i] = TokenRow{
			Type:    token.DisplayName(tok.Type),
			Literal: tok.Literal,
			Line:    tok.Pos.Line,
			Column:  tok.Pos.Column,
		}
	}
	return rows
}

// Tokens prints a token table.
func (r *Renderer) Tokens(tokens []token.Token) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Type", "Literal", "Position"})
	for i, tok := range tokens {
		t.AppendRow(table.Row{i + 1, token.DisplayName(tok.Type), tok.Literal, tok.Pos.String()})
	}
	t.Render()
}

// ErrorInfo is the encodable form of a parse or lex failure.
type ErrorInfo struct {
	Kind     string   `json:"kind" yaml:"kind"`
	Rule     string   `json:"rule,omitempty" yaml:"rule,omitempty"`
	Line     int      `json:"line" yaml:"line"`
	Column   int      `json:"column" yaml:"column"`
	Expected []string `json:"expected,omitempty" yaml:"expected,omitempty"`
	Message  string   `json:"message" yaml:"message"`
}

// NewErrorInfo classifies err. Errors other than syntax and lex errors
// get kind "error" and no position.
func NewErrorInfo(err error) ErrorInfo {
	var se *parser.SyntaxError
	if errors.As(err, &se) {
		info := ErrorInfo{
			Kind:    se.Kind.String(),
			Rule:    se.Rule.String(),
			Line:    se.Pos.Line,
			Column:  se.Pos.Column,
			Message: se.Message,
		}
		for _, t := range se.Expected {
			info.Expected = append(info.Expected, t.Describe())
		}
		return info
	}
	var le *parser.LexError
	if errors.As(err, &le) {
		return ErrorInfo{Kind: "illegal_character", Line: le.Pos.Line, Column: le.Pos.Column, Message: le.Message}
	}
	return ErrorInfo{Kind: "error", Message: err.Error()}
}

// Diagnostic prints err with the offending source line and a caret under
// the failing column.
func (r *Renderer) Diagnostic(input string, err error) {
	info := NewErrorInfo(err)
	r.Errorf("%s %s\n", r.styles.Error.Render("error:"), err.Error())
	if info.Line <= 0 {
		return
	}
	lines := strings.Split(input, "\n")
	if info.Line > len(lines) {
		return
	}
	src := strings.TrimRight(lines[info.Line-1], "\r")
	r.Errorf("  %s\n", src)
	pad := max(info.Column-1, 0)
	r.Errorf("  %s%s\n", strings.Repeat(" ", pad), r.styles.Caret.Render("^"))
}
