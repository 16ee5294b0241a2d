package format

import "github.com/leapstack-labs/leapmath/pkg/core"

// Format prints an expression in source notation. Trees produced by the
// parser print back to text that parses to an equal tree.
func Format(e core.Expr) string {
	if e == nil {
		return ""
	}
	p := newPrinter()
	p.formatExpr(e)
	return p.String()
}
