package core

// ---------- Additive ----------

// Term is one signed operand of a Sum.
type Term struct {
	Sign Sign
	// Implicit is set on a leading term whose plus sign was not written.
	Implicit bool
	Expr     Expr
}

// Sum is an n-ary sum of signed terms. The terms are siblings in source
// order, never a binary chain.
type Sum struct {
	Terms []Term
}

func (*Sum) exprNode() {}

// Kind implements Node.
func (*Sum) Kind() string { return "Sum" }

// ---------- Multiplicative ----------

// Product is an n-ary product. Explicit products were joined by '*',
// implicit ones by juxtaposition.
type Product struct {
	Factors  []Expr
	Explicit bool
}

func (*Product) exprNode() {}

// Kind implements Node.
func (*Product) Kind() string { return "Product" }

// Power is base^exponent. Both operands are atomic in parsed trees.
type Power struct {
	Base     Expr
	Exponent Expr
}

func (*Power) exprNode() {}

// Kind implements Node.
func (*Power) Kind() string { return "Power" }

// ---------- Atomic ----------

// Fraction is the bracketed [numerator/denominator] form.
type Fraction struct {
	Numerator   Expr
	Denominator Expr
}

func (*Fraction) exprNode() {}

// Kind implements Node.
func (*Fraction) Kind() string { return "Fraction" }

// MixedNumber is the bracketed [whole numerator/denominator] form. All parts
// are decimal digit strings.
type MixedNumber struct {
	Whole       string
	Numerator   string
	Denominator string
}

func (*MixedNumber) exprNode() {}

// Kind implements Node.
func (*MixedNumber) Kind() string { return "MixedNumber" }

// Group preserves a parenthesized sub-expression.
type Group struct {
	Inner Expr
}

func (*Group) exprNode() {}

// Kind implements Node.
func (*Group) Kind() string { return "Group" }

// NaturalNumber is a run of decimal digits kept as text, so leading zeros
// and magnitude survive untouched.
type NaturalNumber struct {
	Digits string
}

func (*NaturalNumber) exprNode() {}

// Kind implements Node.
func (*NaturalNumber) Kind() string { return "NaturalNumber" }

// Variable is a named unknown.
type Variable struct {
	Name string
}

func (*Variable) exprNode() {}

// Kind implements Node.
func (*Variable) Kind() string { return "Variable" }

// IsAtomic reports whether e may stand as a power's base or exponent
// without additional grouping.
func IsAtomic(e Expr) bool {
	switch e.(type) {
	case *NaturalNumber, *Variable, *Group, *Fraction, *MixedNumber:
		return true
	}
	return false
}
