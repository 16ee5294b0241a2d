// Package format renders expression trees as source text and as generic
// node trees for the CLI and the HTTP API.
package format

import (
	"bytes"

	"github.com/leapstack-labs/leapmath/pkg/core"
)

// Precedence describes how tightly an expression holds together when printed
// without brackets. A child whose precedence is below what its position
// requires gets parentheses.
type Precedence int

// Precedence levels, loosest first.
const (
	SumPrecedence Precedence = iota
	ExplicitProductPrecedence
	ImplicitProductPrecedence
	PowerPrecedence
	AtomicPrecedence
)

// PrecedenceOf returns the precedence of e. Pass-through wrappers (a sum with
// one unsigned term, a product with one factor) take their child's level.
func PrecedenceOf(e core.Expr) Precedence {
	switch n := e.(type) {
	case *core.Sum:
		if len(n.Terms) == 1 && n.Terms[0].Implicit {
			return PrecedenceOf(n.Terms[0].Expr)
		}
		return SumPrecedence
	case *core.Product:
		if len(n.Factors) == 1 {
			return PrecedenceOf(n.Factors[0])
		}
		if n.Explicit {
			return ExplicitProductPrecedence
		}
		return ImplicitProductPrecedence
	case *core.Power:
		return PowerPrecedence
	}
	return AtomicPrecedence
}

// startsWithNumber reports whether the printed form of e begins with digits.
// Such an expression cannot follow another factor by juxtaposition.
func startsWithNumber(e core.Expr) bool {
	switch n := e.(type) {
	case *core.NaturalNumber:
		return true
	case *core.Power:
		return startsWithNumber(n.Base)
	case *core.Product:
		return len(n.Factors) > 0 && startsWithNumber(n.Factors[0])
	case *core.Sum:
		return len(n.Terms) > 0 && n.Terms[0].Implicit && startsWithNumber(n.Terms[0].Expr)
	}
	return false
}

// Printer writes expressions with the fewest parentheses that keep the
// printed text parsing back to the same tree.
type Printer struct {
	output *bytes.Buffer
}

func newPrinter() *Printer {
	return &Printer{output: &bytes.Buffer{}}
}

// String returns the formatted output.
func (p *Printer) String() string {
	return p.output.String()
}

func (p *Printer) write(s string) {
	p.output.WriteString(s)
}

// formatList prints count items with sep between them.
func (p *Printer) formatList(count int, format func(i int), sep string) {
	for i := 0; i < count; i++ {
		if i > 0 {
			p.write(sep)
		}
		format(i)
	}
}

func (p *Printer) formatExpr(e core.Expr) {
	switch n := e.(type) {
	case *core.Sum:
		p.formatSum(n)
	case *core.Product:
		p.formatProduct(n)
	case *core.Power:
		p.formatOperand(n.Base, AtomicPrecedence)
		p.write("^")
		p.formatOperand(n.Exponent, AtomicPrecedence)
	case *core.Fraction:
		p.write("[")
		p.formatExpr(n.Numerator)
		p.write("/")
		p.formatExpr(n.Denominator)
		p.write("]")
	case *core.MixedNumber:
		p.write("[" + n.Whole + " " + n.Numerator + "/" + n.Denominator + "]")
	case *core.Group:
		p.write("(")
		p.formatExpr(n.Inner)
		p.write(")")
	case *core.NaturalNumber:
		p.write(n.Digits)
	case *core.Variable:
		p.write(n.Name)
	}
}

// formatOperand prints e, parenthesized when it binds looser than minimum.
func (p *Printer) formatOperand(e core.Expr, minimum Precedence) {
	if PrecedenceOf(e) < minimum {
		p.write("(")
		p.formatExpr(e)
		p.write(")")
		return
	}
	p.formatExpr(e)
}

func (p *Printer) formatSum(s *core.Sum) {
	for i, term := range s.Terms {
		switch {
		case i == 0 && term.Implicit:
		case i == 0:
			p.write(term.Sign.String())
		default:
			p.write(" " + term.Sign.String() + " ")
		}
		p.formatOperand(term.Expr, ExplicitProductPrecedence)
	}
}

func (p *Printer) formatProduct(prod *core.Product) {
	if prod.Explicit {
		p.formatList(len(prod.Factors), func(i int) {
			p.formatOperand(prod.Factors[i], ImplicitProductPrecedence)
		}, "*")
		return
	}
	for i, f := range prod.Factors {
		if i > 0 && startsWithNumber(f) {
			p.write("(")
			p.formatExpr(f)
			p.write(")")
			continue
		}
		p.formatOperand(f, PowerPrecedence)
	}
}
