package token

// LiteralNames lists the fixed operator spellings indexed by TokenType.
// Entries without a literal spelling are empty.
var LiteralNames = [...]string{
	EOF:      "",
	ILLEGAL:  "",
	NATNUM:   "",
	VARIABLE: "",
	PLUS:     "'+'",
	MINUS:    "'-'",
	STAR:     "'*'",
	LBRACKET: "'['",
	SLASH:    "'/'",
	RBRACKET: "']'",
	CARET:    "'^'",
	LPAREN:   "'('",
	RPAREN:   "')'",
}

// SymbolicNames lists the symbolic names indexed by TokenType.
var SymbolicNames = [...]string{
	EOF:      "EOF",
	ILLEGAL:  "ILLEGAL",
	NATNUM:   "NATNUM",
	VARIABLE: "VARIABLE",
	PLUS:     "PLUS",
	MINUS:    "MINUS",
	STAR:     "STAR",
	LBRACKET: "LBRACKET",
	SLASH:    "SLASH",
	RBRACKET: "RBRACKET",
	CARET:    "CARET",
	LPAREN:   "LPAREN",
	RPAREN:   "RPAREN",
}

// DisplayName returns the literal name if there is one, else the symbolic name.
func DisplayName(t TokenType) string {
	if int(t) < 0 || int(t) >= len(SymbolicNames) {
		return "<INVALID>"
	}
	if lit := LiteralNames[t]; lit != "" {
		return lit
	}
	return SymbolicNames[t]
}
