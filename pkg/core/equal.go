package core

// Equal reports whether a and b are structurally identical: same variant,
// same payload, equal children in the same order.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Sum:
		y, ok := b.(*Sum)
		if !ok || len(x.Terms) != len(y.Terms) {
			return false
		}
		for i := range x.Terms {
			tx, ty := x.Terms[i], y.Terms[i]
			if tx.Sign != ty.Sign || tx.Implicit != ty.Implicit || !Equal(tx.Expr, ty.Expr) {
				return false
			}
		}
		return true
	case *Product:
		y, ok := b.(*Product)
		if !ok || x.Explicit != y.Explicit || len(x.Factors) != len(y.Factors) {
			return false
		}
		for i := range x.Factors {
			if !Equal(x.Factors[i], y.Factors[i]) {
				return false
			}
		}
		return true
	case *Power:
		y, ok := b.(*Power)
		return ok && Equal(x.Base, y.Base) && Equal(x.Exponent, y.Exponent)
	case *Fraction:
		y, ok := b.(*Fraction)
		return ok && Equal(x.Numerator, y.Numerator) && Equal(x.Denominator, y.Denominator)
	case *MixedNumber:
		y, ok := b.(*MixedNumber)
		return ok && *x == *y
	case *Group:
		y, ok := b.(*Group)
		return ok && Equal(x.Inner, y.Inner)
	case *NaturalNumber:
		y, ok := b.(*NaturalNumber)
		return ok && x.Digits == y.Digits
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Name == y.Name
	}
	return false
}
