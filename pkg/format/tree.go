package format

import "github.com/leapstack-labs/leapmath/pkg/core"

// Node is a serializable view of an expression. Sums contain one "Term" node
// per operand, carrying the sign.
type Node struct {
	Kind     string  `json:"kind" yaml:"kind"`
	Value    string  `json:"value,omitempty" yaml:"value,omitempty"`
	Sign     string  `json:"sign,omitempty" yaml:"sign,omitempty"`
	Implicit bool    `json:"implicit,omitempty" yaml:"implicit,omitempty"`
	Explicit bool    `json:"explicit,omitempty" yaml:"explicit,omitempty"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Label returns a one-line description, e.g. "NaturalNumber 2" or "Term -".
func (n *Node) Label() string {
	switch {
	case n.Value != "":
		return n.Kind + " " + n.Value
	case n.Kind == "Term" && n.Implicit:
		return "Term (+)"
	case n.Sign != "":
		return n.Kind + " " + n.Sign
	case n.Kind == "Product" && n.Explicit:
		return "Product *"
	}
	return n.Kind
}

// Tree converts an expression to its Node form.
func Tree(e core.Expr) *Node {
	if e == nil {
		return nil
	}
	n := &Node{Kind: e.Kind()}
	switch v := e.(type) {
	case *core.Sum:
		for _, term := range v.Terms {
			n.Children = append(n.Children, &Node{
				Kind:     "Term",
				Sign:     term.Sign.String(),
				Implicit: term.Implicit,
				Children: []*Node{Tree(term.Expr)},
			})
		}
		return n
	case *core.Product:
		n.Explicit = v.Explicit
	case *core.MixedNumber:
		n.Value = v.Whole + " " + v.Numerator + "/" + v.Denominator
	case *core.NaturalNumber:
		n.Value = v.Digits
	case *core.Variable:
		n.Value = v.Name
	}
	for _, child := range core.Children(e) {
		n.Children = append(n.Children, Tree(child))
	}
	return n
}
