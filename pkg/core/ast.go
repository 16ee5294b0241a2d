package core

// Node is the base interface for all AST nodes.
type Node interface {
	// Kind returns the variant name, e.g. "Sum" or "Power".
	Kind() string
}

// Expr is the closed set of expression nodes. The marker method is
// unexported so no package outside core can add a variant; consumers switch
// over the concrete types listed in this package.
type Expr interface {
	Node
	exprNode() // Marker method to seal the interface
}

// Sign is the sign carried by a term of a Sum.
type Sign int

// Sign constants.
const (
	Plus Sign = iota
	Minus
)

// String returns "+" or "-".
func (s Sign) String() string {
	if s == Minus {
		return "-"
	}
	return "+"
}
