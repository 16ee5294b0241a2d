package parser

import "github.com/leapstack-labs/leapmath/pkg/token"

// Rule identifies a grammar production. It is carried by syntax errors so
// callers can tell which construct was being read.
type Rule int

// Grammar productions.
const (
	RuleExpr Rule = iota
	RuleSum
	RuleOtherTerm
	RuleExplicitProduct
	RuleImplicitProduct
	RuleFirstFactor
	RuleOtherFactor
	RuleFraction
	RulePower
	RuleBracket
	RuleAtom
	RuleNonNumericAtom
	RuleMixedNumber
	RuleNaturalNumber
	RuleVariable
)

// RuleNames lists the production names indexed by Rule.
var RuleNames = [...]string{
	RuleExpr:            "expr",
	RuleSum:             "sum",
	RuleOtherTerm:       "otherTerm",
	RuleExplicitProduct: "explicitProduct",
	RuleImplicitProduct: "implicitProduct",
	RuleFirstFactor:     "firstFactor",
	RuleOtherFactor:     "otherFactor",
	RuleFraction:        "fraction",
	RulePower:           "power",
	RuleBracket:         "bracket",
	RuleAtom:            "atom",
	RuleNonNumericAtom:  "nonNumericAtom",
	RuleMixedNumber:     "mixedNumber",
	RuleNaturalNumber:   "naturalNumber",
	RuleVariable:        "variable",
}

// String returns the production name.
func (r Rule) String() string {
	if r < 0 || int(r) >= len(RuleNames) {
		return "unknown"
	}
	return RuleNames[r]
}

// Lookahead sets. Every choice point in the grammar is decided by checking
// the next token against one of these.
var (
	nonNumericAtomStart = []token.TokenType{token.VARIABLE, token.LPAREN, token.LBRACKET}
	atomStart           = []token.TokenType{token.NATNUM, token.VARIABLE, token.LPAREN, token.LBRACKET}
)

// startsNonNumericAtom returns true if t can begin a non-leading implicit factor.
func startsNonNumericAtom(t token.TokenType) bool {
	return t == token.VARIABLE || t == token.LPAREN || t == token.LBRACKET
}
