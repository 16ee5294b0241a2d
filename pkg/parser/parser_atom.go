package parser

import (
	"github.com/leapstack-labs/leapmath/pkg/core"
	"github.com/leapstack-labs/leapmath/pkg/token"
)

// ---------- Atoms ----------

func isAtomStart(t token.TokenType) bool {
	return t == token.NATNUM || startsNonNumericAtom(t)
}

// parseAtom parses: NATNUM | nonNumericAtom
func (p *parser) parseAtom(rule Rule) (core.Expr, error) {
	switch p.cur.peek(0) {
	case token.NATNUM:
		return p.parseNaturalNumber(), nil
	case token.VARIABLE, token.LPAREN, token.LBRACKET:
		return p.parseNonNumericAtom(rule)
	}
	return nil, p.unexpected(rule, atomStart...)
}

// parseNonNumericAtom parses: VARIABLE | bracket | fraction
func (p *parser) parseNonNumericAtom(rule Rule) (core.Expr, error) {
	switch p.cur.peek(0) {
	case token.VARIABLE:
		return p.parseVariable(), nil
	case token.LPAREN:
		return p.parseBracket()
	case token.LBRACKET:
		return p.parseFraction()
	}
	return nil, p.unexpected(rule, nonNumericAtomStart...)
}

// parseBracket parses: '(' sum ')'
func (p *parser) parseBracket() (core.Expr, error) {
	if err := p.enter(RuleBracket); err != nil {
		return nil, err
	}
	defer p.leave()

	if err := p.expect(token.LPAREN, RuleBracket); err != nil {
		return nil, err
	}
	inner, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN, RuleBracket); err != nil {
		return nil, err
	}
	return &core.Group{Inner: inner}, nil
}

// parseFraction parses: '[' sum '/' sum ']' | mixedNumber
func (p *parser) parseFraction() (core.Expr, error) {
	if p.opts.MixedNumbers && p.cur.peek(1) == token.NATNUM && p.cur.peek(2) == token.NATNUM {
		return p.parseMixedNumber()
	}

	if err := p.enter(RuleFraction); err != nil {
		return nil, err
	}
	defer p.leave()

	if err := p.expect(token.LBRACKET, RuleFraction); err != nil {
		return nil, err
	}
	numerator, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.SLASH, RuleFraction); err != nil {
		return nil, err
	}
	denominator, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RBRACKET, RuleFraction); err != nil {
		return nil, err
	}
	return &core.Fraction{Numerator: numerator, Denominator: denominator}, nil
}

// parseMixedNumber parses: '[' NATNUM NATNUM '/' NATNUM ']'
func (p *parser) parseMixedNumber() (core.Expr, error) {
	if err := p.expect(token.LBRACKET, RuleMixedNumber); err != nil {
		return nil, err
	}
	whole, err := p.digits()
	if err != nil {
		return nil, err
	}
	numerator, err := p.digits()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.SLASH, RuleMixedNumber); err != nil {
		return nil, err
	}
	denominator, err := p.digits()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RBRACKET, RuleMixedNumber); err != nil {
		return nil, err
	}
	return &core.MixedNumber{Whole: whole, Numerator: numerator, Denominator: denominator}, nil
}

func (p *parser) digits() (string, error) {
	if !p.check(token.NATNUM) {
		return "", p.unexpected(RuleMixedNumber, token.NATNUM)
	}
	return p.cur.advance().Literal, nil
}

// parseNaturalNumber consumes a NATNUM. The caller has checked the lookahead.
func (p *parser) parseNaturalNumber() core.Expr {
	return &core.NaturalNumber{Digits: p.cur.advance().Literal}
}

// parseVariable consumes a VARIABLE. The caller has checked the lookahead.
func (p *parser) parseVariable() core.Expr {
	return &core.Variable{Name: p.cur.advance().Literal}
}
