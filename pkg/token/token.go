// Package token defines the terminal symbols of the expression grammar.
//
// The set of token types is closed: nine operator characters, natural
// numbers, variables, plus the EOF and ILLEGAL markers used by the cursor and
// the lexer.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	NATNUM   // 0, 42, 007
	VARIABLE // x

	// Operators
	PLUS     // +
	MINUS    // -
	STAR     // *
	LBRACKET // [
	SLASH    // /
	RBRACKET // ]
	CARET    // ^
	LPAREN   // (
	RPAREN   // )
)

// String returns the literal for operators and the symbolic name otherwise.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// Describe returns the form used in diagnostics, e.g. '+' or natural number.
func (t TokenType) Describe() string {
	switch t {
	case EOF:
		return "end of input"
	case ILLEGAL:
		return "illegal character"
	case NATNUM:
		return "natural number"
	case VARIABLE:
		return "variable"
	}
	if IsOperator(t) {
		return "'" + t.String() + "'"
	}
	return t.String()
}

// tokenNames maps token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	NATNUM:   "NATNUM",
	VARIABLE: "VARIABLE",

	PLUS:     "+",
	MINUS:    "-",
	STAR:     "*",
	LBRACKET: "[",
	SLASH:    "/",
	RBRACKET: "]",
	CARET:    "^",
	LPAREN:   "(",
	RPAREN:   ")",
}

// operators maps operator characters to their token types.
var operators = map[byte]TokenType{
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'[': LBRACKET,
	'/': SLASH,
	']': RBRACKET,
	'^': CARET,
	'(': LPAREN,
	')': RPAREN,
}

// LookupOperator returns the token type for a single operator character.
func LookupOperator(ch byte) (TokenType, bool) {
	t, ok := operators[ch]
	return t, ok
}

// IsOperator returns true if the token type is one of the fixed operator characters.
func IsOperator(t TokenType) bool {
	return t >= PLUS && t <= RPAREN
}

// IsSign returns true for the additive signs.
func IsSign(t TokenType) bool {
	return t == PLUS || t == MINUS
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// End returns the position just past the token's literal.
func (t Token) End() Position {
	return Position{
		Line:   t.Pos.Line,
		Column: t.Pos.Column + len([]rune(t.Literal)),
		Offset: t.Pos.Offset + len(t.Literal),
	}
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Type == NATNUM || t.Type == VARIABLE {
		return fmt.Sprintf("%s(%s)@%d:%d", t.Type, t.Literal, t.Pos.Line, t.Pos.Column)
	}
	return fmt.Sprintf("%s@%d:%d", t.Type, t.Pos.Line, t.Pos.Column)
}
