package core

// Children returns the direct sub-expressions of e in source order.
func Children(e Expr) []Expr {
	switch n := e.(type) {
	case *Sum:
		out := make([]Expr, len(n.Terms))
		for i, t := range n.Terms {
			out[i] = t.Expr
		}
		return out
	case *Product:
		return append([]Expr(nil), n.Factors...)
	case *Power:
		return []Expr{n.Base, n.Exponent}
	case *Fraction:
		return []Expr{n.Numerator, n.Denominator}
	case *Group:
		return []Expr{n.Inner}
	}
	return nil
}

// Walk traverses an expression depth-first and calls fn for each node.
// If fn returns false, the node's children are skipped.
func Walk(e Expr, fn func(e Expr) bool) {
	if e == nil {
		return
	}
	if !fn(e) {
		return
	}
	for _, c := range Children(e) {
		Walk(c, fn)
	}
}

// Depth returns the height of the tree rooted at e; a leaf has depth 1.
func Depth(e Expr) int {
	if e == nil {
		return 0
	}
	deepest := 0
	for _, c := range Children(e) {
		if d := Depth(c); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}
