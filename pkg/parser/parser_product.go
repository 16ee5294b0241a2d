package parser

import (
	"fmt"

	"github.com/leapstack-labs/leapmath/pkg/core"
	"github.com/leapstack-labs/leapmath/pkg/token"
)

// ---------- Products ----------

// parseProduct parses: implicitProduct ('*' implicitProduct)*
// rule names the production that asked for the product, for error reporting
// when no factor can start.
func (p *parser) parseProduct(rule Rule) (core.Expr, error) {
	first, err := p.parseImplicitProduct(rule)
	if err != nil {
		return nil, err
	}
	if !p.check(token.STAR) {
		return first, nil
	}

	factors := []core.Expr{first}
	for p.check(token.STAR) {
		p.cur.advance()
		next, err := p.parseImplicitProduct(RuleExplicitProduct)
		if err != nil {
			return nil, err
		}
		factors = append(factors, next)
	}
	return &core.Product{Factors: factors, Explicit: true}, nil
}

// parseImplicitProduct parses: firstFactor otherFactor*
//
// Only the first factor may be a natural number. A number in any later
// position is an error rather than the end of the product, since nothing
// else in the grammar could follow with one.
func (p *parser) parseImplicitProduct(rule Rule) (core.Expr, error) {
	if !isAtomStart(p.cur.peek(0)) {
		return nil, p.unexpected(rule, atomStart...)
	}
	first, err := p.parseFirstFactor()
	if err != nil {
		return nil, err
	}
	factors := []core.Expr{first}

	for {
		next := p.cur.peek(0)
		if next == token.NATNUM {
			return nil, p.adjacentNumber()
		}
		if !startsNonNumericAtom(next) {
			break
		}
		factor, err := p.parseOtherFactor()
		if err != nil {
			return nil, err
		}
		factors = append(factors, factor)
	}

	if len(factors) == 1 && !p.opts.Singletons {
		return first, nil
	}
	return &core.Product{Factors: factors}, nil
}

// adjacentNumber reports a natural number that directly follows a factor.
func (p *parser) adjacentNumber() *SyntaxError {
	tok := p.cur.current()
	return &SyntaxError{
		Kind:     UnexpectedToken,
		Token:    tok,
		Pos:      tok.Pos,
		Rule:     RuleImplicitProduct,
		Expected: []token.TokenType{token.STAR},
		Message:  fmt.Sprintf(ErrMsgAdjacentNumbers, describe(tok), RuleImplicitProduct),
	}
}

// parseFirstFactor parses: atom ['^' atom]
func (p *parser) parseFirstFactor() (core.Expr, error) {
	base, err := p.parseAtom(RuleFirstFactor)
	if err != nil {
		return nil, err
	}
	return p.parsePowerTail(base)
}

// parseOtherFactor parses: nonNumericAtom ['^' atom]
func (p *parser) parseOtherFactor() (core.Expr, error) {
	base, err := p.parseNonNumericAtom(RuleOtherFactor)
	if err != nil {
		return nil, err
	}
	return p.parsePowerTail(base)
}

// parsePowerTail wraps base in a Power when a '^' follows. The exponent is a
// single atom, so "x^2^3" stops after the first exponent.
func (p *parser) parsePowerTail(base core.Expr) (core.Expr, error) {
	if !p.check(token.CARET) {
		return base, nil
	}
	p.cur.advance()
	exponent, err := p.parseAtom(RulePower)
	if err != nil {
		return nil, err
	}
	return &core.Power{Base: base, Exponent: exponent}, nil
}
