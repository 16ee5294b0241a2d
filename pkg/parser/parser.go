// Package parser turns a token stream of the restricted math notation into
// an expression tree.
//
// # Usage
//
//	expr, err := parser.ParseString("2x^2 - [1/2]y")
//	if err != nil {
//	    var se *parser.SyntaxError
//	    if errors.As(err, &se) {
//	        // se.Pos, se.Rule, se.Expected
//	    }
//	}
//
// Callers that lex on their own pass the tokens directly:
//
//	expr, err := parser.Parse(tokens, parser.WithMixedNumbers(true))
//
// # Grammar Overview
//
// The parser is a recursive descent parser; every choice is made from a
// fixed lookahead set and no production ever backtracks:
//
//	expr            → sum EOF
//	sum             → [sign] product (sign product)*
//	product         → implicitProduct ('*' implicitProduct)*
//	implicitProduct → firstFactor otherFactor*
//	firstFactor     → atom ['^' atom]
//	otherFactor     → nonNumericAtom ['^' atom]
//	atom            → NATNUM | nonNumericAtom
//	nonNumericAtom  → VARIABLE | bracket | fraction
//	bracket         → '(' sum ')'
//	fraction        → '[' sum '/' sum ']' | mixedNumber
//	mixedNumber     → '[' NATNUM NATNUM '/' NATNUM ']'
//
// A natural number may only lead an implicit product, so "2 3" is rejected
// instead of being read as 2·3.
//
// See each file for the productions of that level.
package parser

import (
	"fmt"

	"github.com/leapstack-labs/leapmath/pkg/core"
	"github.com/leapstack-labs/leapmath/pkg/token"
)

// DefaultMaxDepth bounds the nesting of groups and fractions.
const DefaultMaxDepth = 256

// Options configures parsing.
type Options struct {
	// MixedNumbers accepts the [whole numerator/denominator] form.
	MixedNumbers bool
	// Singletons keeps single-term sums and single-factor implicit products
	// as wrapper nodes instead of collapsing them to their only child.
	Singletons bool
	// MaxDepth bounds bracket and fraction nesting. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Option configures a Parser.
type Option func(*Options)

// WithMixedNumbers enables or disables mixed-number brackets.
func WithMixedNumbers(on bool) Option {
	return func(o *Options) { o.MixedNumbers = on }
}

// WithSingletons enables or disables singleton wrapper nodes.
func WithSingletons(on bool) Option {
	return func(o *Options) { o.Singletons = on }
}

// WithMaxDepth sets the nesting bound.
func WithMaxDepth(n int) Option {
	return func(o *Options) { o.MaxDepth = n }
}

// WithOptions replaces all settings at once.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

// Parser holds parse settings. It is immutable after New and safe for
// concurrent use; every call gets its own cursor.
type Parser struct {
	opts Options
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(&p.opts)
	}
	if p.opts.MaxDepth <= 0 {
		p.opts.MaxDepth = DefaultMaxDepth
	}
	return p
}

// Options returns the effective settings.
func (p *Parser) Options() Options {
	return p.opts
}

// Parse parses a complete token stream. A trailing EOF token is optional.
func (p *Parser) Parse(tokens []token.Token) (core.Expr, error) {
	s := &parser{cur: newCursor(tokens), opts: p.opts}
	return s.parseExpr()
}

// ParseString tokenizes input with the bundled lexer and parses it.
func (p *Parser) ParseString(input string) (core.Expr, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return p.Parse(tokens)
}

// Parse parses tokens with the given options.
func Parse(tokens []token.Token, opts ...Option) (core.Expr, error) {
	return New(opts...).Parse(tokens)
}

// ParseString tokenizes and parses input with the given options.
func ParseString(input string, opts ...Option) (core.Expr, error) {
	return New(opts...).ParseString(input)
}

// parser is the state of a single parse: the cursor and the current nesting.
type parser struct {
	cur   cursor
	opts  Options
	depth int
}

// ---------- Token Helpers ----------

// check returns true if the current token is of the given type.
func (p *parser) check(t token.TokenType) bool {
	return p.cur.peek(0) == t
}

// expect consumes the current token if it matches, otherwise returns an error.
func (p *parser) expect(t token.TokenType, rule Rule) error {
	if p.check(t) {
		p.cur.advance()
		return nil
	}
	return p.unexpected(rule, t)
}

// unexpected builds the error for a token that the rule cannot accept.
func (p *parser) unexpected(rule Rule, expected ...token.TokenType) *SyntaxError {
	tok := p.cur.current()
	kind := UnexpectedToken
	if tok.Type == token.EOF {
		kind = UnexpectedEOF
	}
	return &SyntaxError{
		Kind:     kind,
		Token:    tok,
		Pos:      tok.Pos,
		Rule:     rule,
		Expected: expected,
		Message:  fmt.Sprintf(ErrMsgUnexpected, describe(tok), rule, describeTokens(expected)),
	}
}

// enter records one more level of bracket nesting.
func (p *parser) enter(rule Rule) error {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		tok := p.cur.current()
		return &SyntaxError{
			Kind:    TooDeep,
			Token:   tok,
			Pos:     tok.Pos,
			Rule:    rule,
			Message: fmt.Sprintf(ErrMsgTooDeep, p.opts.MaxDepth),
		}
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// describe renders a token for a message, including its text for literals.
func describe(tok token.Token) string {
	switch tok.Type {
	case token.NATNUM, token.VARIABLE:
		return fmt.Sprintf("%s %q", tok.Type.Describe(), tok.Literal)
	case token.ILLEGAL:
		return fmt.Sprintf("illegal token %q", tok.Literal)
	}
	return tok.Type.Describe()
}

// ---------- Entry Point ----------

// parseExpr parses the whole input and rejects anything left over.
func (p *parser) parseExpr() (core.Expr, error) {
	expr, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if !p.cur.atEnd() {
		tok := p.cur.current()
		return nil, &SyntaxError{
			Kind:     TrailingInput,
			Token:    tok,
			Pos:      tok.Pos,
			Rule:     RuleExpr,
			Expected: []token.TokenType{token.EOF},
			Message:  fmt.Sprintf(ErrMsgTrailing, describe(tok)),
		}
	}
	return expr, nil
}
