package parser

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/leapmath/pkg/token"
)

// Lexer tokenizes expression input. Each letter, ASCII or not, becomes its
// own variable, so "xy" is two tokens.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.col++
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token. Characters outside the alphabet come
// back as ILLEGAL and the end of input as EOF, repeatedly.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	pos := l.currentPos()
	if l.pos >= len(l.input) {
		return token.Token{Type: token.EOF, Pos: pos}
	}

	if t, ok := token.LookupOperator(l.ch); ok {
		tok := token.Token{Type: t, Literal: string(l.ch), Pos: pos}
		l.readChar()
		return tok
	}

	if isDigit(l.ch) {
		return token.Token{Type: token.NATNUM, Literal: l.readNumber(), Pos: pos}
	}

	r, lit := l.readRune()
	if unicode.IsLetter(r) {
		return token.Token{Type: token.VARIABLE, Literal: lit, Pos: pos}
	}
	return token.Token{Type: token.ILLEGAL, Literal: lit, Pos: pos}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readRune consumes one whole rune. A multi-byte character counts as a
// single column. Invalid UTF-8 comes back as the raw byte.
func (l *Lexer) readRune() (rune, string) {
	start := l.pos
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	col := l.col
	for range size {
		l.readChar()
	}
	l.col = col + 1
	return r, l.input[start : start+size]
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// Tokenize lexes the whole input. The returned slice does not include the
// EOF token. The first character outside the alphabet fails with a *LexError.
func Tokenize(input string) ([]token.Token, error) {
	l := NewLexer(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		switch tok.Type {
		case token.EOF:
			return tokens, nil
		case token.ILLEGAL:
			return nil, &LexError{
				Pos:     tok.Pos,
				Char:    tok.Literal,
				Message: fmt.Sprintf(ErrMsgIllegalCharacter, tok.Literal),
			}
		}
		tokens = append(tokens, tok)
	}
}
