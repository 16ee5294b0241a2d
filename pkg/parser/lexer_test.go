package parser_test

import (
	"testing"

	"github.com/leapstack-labs/leapmath/pkg/parser"
	"github.com/leapstack-labs/leapmath/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer_Operators(t *testing.T) {
	input := "+-*[/]^()"
	expected := []token.TokenType{
		token.PLUS, token.MINUS, token.STAR, token.LBRACKET, token.SLASH,
		token.RBRACKET, token.CARET, token.LPAREN, token.RPAREN, token.EOF,
	}

	l := parser.NewLexer(input)
	for i, want := range expected {
		tok := l.NextToken()
		assert.Equal(t, want, tok.Type, "token %d", i)
		assert.Equal(t, i+1, tok.Pos.Column, "token %d", i)
	}
}

func TestLexer_Literals(t *testing.T) {
	tokens, err := parser.Tokenize("12ab 007")
	require.NoError(t, err)

	want := []token.Token{
		{Type: token.NATNUM, Literal: "12", Pos: token.Position{Line: 1, Column: 1, Offset: 0}},
		{Type: token.VARIABLE, Literal: "a", Pos: token.Position{Line: 1, Column: 3, Offset: 2}},
		{Type: token.VARIABLE, Literal: "b", Pos: token.Position{Line: 1, Column: 4, Offset: 3}},
		{Type: token.NATNUM, Literal: "007", Pos: token.Position{Line: 1, Column: 6, Offset: 5}},
	}
	assert.Equal(t, want, tokens)
}

func TestLexer_Positions(t *testing.T) {
	tokens, err := parser.Tokenize("x\n\t+ 1")
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	assert.Equal(t, token.Position{Line: 1, Column: 1, Offset: 0}, tokens[0].Pos)
	assert.Equal(t, token.Position{Line: 2, Column: 2, Offset: 3}, tokens[1].Pos)
	assert.Equal(t, token.Position{Line: 2, Column: 4, Offset: 5}, tokens[2].Pos)
}

func TestLexer_EOFRepeats(t *testing.T) {
	l := parser.NewLexer("x")
	assert.Equal(t, token.VARIABLE, l.NextToken().Type)
	assert.Equal(t, token.EOF, l.NextToken().Type)
	assert.Equal(t, token.EOF, l.NextToken().Type)
}

func TestLexer_Illegal(t *testing.T) {
	l := parser.NewLexer("x?y")
	assert.Equal(t, token.VARIABLE, l.NextToken().Type)

	tok := l.NextToken()
	assert.Equal(t, token.ILLEGAL, tok.Type)
	assert.Equal(t, "?", tok.Literal)
	assert.Equal(t, 2, tok.Pos.Column)

	next := l.NextToken()
	assert.Equal(t, token.VARIABLE, next.Type)
	assert.Equal(t, 3, next.Pos.Column)
}

func TestTokenize_Empty(t *testing.T) {
	tokens, err := parser.Tokenize("  \n ")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenize_LexError(t *testing.T) {
	_, err := parser.Tokenize("1 + €")
	var le *parser.LexError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "€", le.Char)
	assert.Equal(t, token.Position{Line: 1, Column: 5, Offset: 4}, le.Pos)
	assert.Equal(t, `lexer error at line 1, column 5: illegal character "€"`, err.Error())
}

func TestTokenize_UnicodeLetters(t *testing.T) {
	tokens, err := parser.Tokenize("2αβ+x")
	require.NoError(t, err)

	want := []token.Token{
		{Type: token.NATNUM, Literal: "2", Pos: token.Position{Line: 1, Column: 1, Offset: 0}},
		{Type: token.VARIABLE, Literal: "α", Pos: token.Position{Line: 1, Column: 2, Offset: 1}},
		{Type: token.VARIABLE, Literal: "β", Pos: token.Position{Line: 1, Column: 3, Offset: 3}},
		{Type: token.PLUS, Literal: "+", Pos: token.Position{Line: 1, Column: 4, Offset: 5}},
		{Type: token.VARIABLE, Literal: "x", Pos: token.Position{Line: 1, Column: 5, Offset: 6}},
	}
	assert.Equal(t, want, tokens)
}
