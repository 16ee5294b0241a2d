package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapmath/pkg/token"
)

// ErrorKind classifies a syntax error.
type ErrorKind int

// Syntax error kinds.
const (
	// UnexpectedToken: the current token cannot start or continue the active production.
	UnexpectedToken ErrorKind = iota
	// UnexpectedEOF: a production needed another token but the input ended.
	UnexpectedEOF
	// TrailingInput: a complete expression was read but tokens remain.
	TrailingInput
	// TooDeep: groups and fractions are nested beyond the configured limit.
	TooDeep
)

// String returns a snake_case name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected_token"
	case UnexpectedEOF:
		return "unexpected_eof"
	case TrailingInput:
		return "trailing_input"
	case TooDeep:
		return "too_deep"
	}
	return "unknown"
}

// Sentinel errors, matched with errors.Is against a *SyntaxError.
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrTrailingInput   = errors.New("unexpected token after complete expression")
	ErrTooDeep         = errors.New("expression nested too deeply")
)

// SyntaxError describes the first point at which a parse failed.
type SyntaxError struct {
	Kind     ErrorKind
	Token    token.Token // offending token, EOF at end of input
	Pos      token.Position
	Rule     Rule // production active at the failure
	Expected []token.TokenType
	Message  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Unwrap returns the sentinel for the error's kind.
func (e *SyntaxError) Unwrap() error {
	switch e.Kind {
	case UnexpectedEOF:
		return ErrUnexpectedEOF
	case TrailingInput:
		return ErrTrailingInput
	case TooDeep:
		return ErrTooDeep
	default:
		return ErrUnexpectedToken
	}
}

// LexError represents a character the lexer cannot classify.
type LexError struct {
	Pos     token.Position
	Char    string
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages
const (
	ErrMsgUnexpected       = "unexpected %s in %s, expected %s"
	ErrMsgTrailing         = "unexpected %s after complete expression"
	ErrMsgAdjacentNumbers  = "unexpected %s in %s: adjacent numbers must be joined by '*'"
	ErrMsgTooDeep          = "nesting exceeds maximum depth of %d"
	ErrMsgIllegalCharacter = "illegal character %q"
)

// describeTokens renders a lookahead set as "a, b or c".
func describeTokens(types []token.TokenType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Describe()
	}
	switch len(names) {
	case 0:
		return "nothing"
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
