package parser

import (
	"github.com/leapstack-labs/leapmath/pkg/core"
	"github.com/leapstack-labs/leapmath/pkg/token"
)

// ---------- Sums ----------

// parseSum parses: [sign] product (sign product)*
//
// Signs are only accepted here, so "--2" and "3*-4" fail at the second sign.
func (p *parser) parseSum() (core.Expr, error) {
	first := core.Term{Sign: core.Plus, Implicit: true}
	switch p.cur.peek(0) {
	case token.PLUS:
		p.cur.advance()
		first.Implicit = false
	case token.MINUS:
		p.cur.advance()
		first = core.Term{Sign: core.Minus}
	}

	expr, err := p.parseProduct(RuleSum)
	if err != nil {
		return nil, err
	}
	first.Expr = expr
	terms := []core.Term{first}

	for {
		term, ok, err := p.parseOtherTerm()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		terms = append(terms, term)
	}

	if len(terms) == 1 && first.Implicit && !p.opts.Singletons {
		return first.Expr, nil
	}
	return &core.Sum{Terms: terms}, nil
}

// parseOtherTerm parses: sign product
// It reports false without consuming anything when no sign follows.
func (p *parser) parseOtherTerm() (core.Term, bool, error) {
	var sign core.Sign
	switch p.cur.peek(0) {
	case token.PLUS:
		sign = core.Plus
	case token.MINUS:
		sign = core.Minus
	default:
		return core.Term{}, false, nil
	}
	p.cur.advance()

	expr, err := p.parseProduct(RuleOtherTerm)
	if err != nil {
		return core.Term{}, false, err
	}
	return core.Term{Sign: sign, Expr: expr}, true, nil
}
