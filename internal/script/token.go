package script

import "fmt"

// TokenType represents the type of a token.
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Literals
	NUMBER // 12*#

	// Operators
	REDIRECT // >
	QUERY    // ?

	// Keywords
	DEL
	REV
	RULES
	CLEAR
)

var tokenNames = map[TokenType]string{
	ILLEGAL:  "ILLEGAL",
	EOF:      "EOF",
	NUMBER:   "NUMBER",
	REDIRECT: ">",
	QUERY:    "?",
	DEL:      "DEL",
	REV:      "REV",
	RULES:    "RULES",
	CLEAR:    "CLEAR",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

var keywords = map[string]TokenType{
	"DEL":   DEL,
	"REV":   REV,
	"RULES": RULES,
	"CLEAR": CLEAR,
}

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Position represents the position of a token in the input.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// LookupIdent returns the keyword token for ident, or ILLEGAL. Keywords are
// case sensitive.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return ILLEGAL
}
