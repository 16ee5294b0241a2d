package core

// Num returns a NaturalNumber with the given digits.
func Num(digits string) *NaturalNumber { return &NaturalNumber{Digits: digits} }

// Var returns a Variable.
func Var(name string) *Variable { return &Variable{Name: name} }

// SumOf returns a Sum whose first term has an implicit plus and whose
// remaining terms are added.
func SumOf(first Expr, rest ...Expr) *Sum {
	s := &Sum{Terms: []Term{{Sign: Plus, Implicit: true, Expr: first}}}
	for _, e := range rest {
		s.Terms = append(s.Terms, Term{Sign: Plus, Expr: e})
	}
	return s
}

// SumOfTerms returns a Sum over explicit terms.
func SumOfTerms(terms ...Term) *Sum { return &Sum{Terms: terms} }

// Add returns a term with an explicit plus sign.
func Add(e Expr) Term { return Term{Sign: Plus, Expr: e} }

// Sub returns a term with a minus sign.
func Sub(e Expr) Term { return Term{Sign: Minus, Expr: e} }

// Neg returns the one-term sum -e.
func Neg(e Expr) *Sum { return &Sum{Terms: []Term{Sub(e)}} }

// Lead returns a leading term with an implicit plus sign.
func Lead(e Expr) Term { return Term{Sign: Plus, Implicit: true, Expr: e} }

// ImplicitProductOf returns a juxtaposition product.
func ImplicitProductOf(factors ...Expr) *Product { return &Product{Factors: factors} }

// ProductOf returns a '*' product.
func ProductOf(factors ...Expr) *Product { return &Product{Factors: factors, Explicit: true} }

// PowerOf returns base^exponent.
func PowerOf(base, exponent Expr) *Power { return &Power{Base: base, Exponent: exponent} }

// FractionOf returns [numerator/denominator].
func FractionOf(numerator, denominator Expr) *Fraction {
	return &Fraction{Numerator: numerator, Denominator: denominator}
}

// MixedOf returns [whole numerator/denominator].
func MixedOf(whole, numerator, denominator string) *MixedNumber {
	return &MixedNumber{Whole: whole, Numerator: numerator, Denominator: denominator}
}

// GroupOf returns (inner).
func GroupOf(inner Expr) *Group { return &Group{Inner: inner} }
