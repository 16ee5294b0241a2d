package parser

import "github.com/leapstack-labs/leapmath/pkg/token"

// cursor is a read-only view over an already-tokenized input. Peeking past
// the end yields the EOF marker rather than failing.
type cursor struct {
	tokens []token.Token
	pos    int
	eof    token.Token
}

func newCursor(tokens []token.Token) cursor {
	c := cursor{tokens: tokens}
	if n := len(tokens); n > 0 && tokens[n-1].Type == token.EOF {
		c.tokens = tokens[:n-1]
		c.eof = tokens[n-1]
		return c
	}
	c.eof = token.Token{Type: token.EOF, Pos: token.Position{Line: 1, Column: 1}}
	if n := len(tokens); n > 0 {
		c.eof.Pos = tokens[n-1].End()
	}
	return c
}

// peek returns the type of the token k positions ahead of the current one.
func (c *cursor) peek(k int) token.TokenType {
	return c.at(c.pos + k).Type
}

// current returns the token under the cursor.
func (c *cursor) current() token.Token {
	return c.at(c.pos)
}

// advance consumes the current token and returns it. At the end of input it
// keeps returning EOF without moving.
func (c *cursor) advance() token.Token {
	tok := c.current()
	if c.pos < len(c.tokens) {
		c.pos++
	}
	return tok
}

// atEnd returns true once every token has been consumed.
func (c *cursor) atEnd() bool {
	return c.pos >= len(c.tokens)
}

func (c *cursor) at(i int) token.Token {
	if i < 0 || i >= len(c.tokens) {
		return c.eof
	}
	return c.tokens[i]
}
