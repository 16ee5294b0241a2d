// Package core defines the expression tree shared by the parser, the
// printer and the solver.
//
// This package contains:
//   - The sealed Expr interface and its eight variants
//   - Structural equality (Equal) and traversal (Walk, Children)
//   - Builders used by callers that assemble trees by hand
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
