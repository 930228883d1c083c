package script

import (
	"github.com/kumarlokesh/sysd/exercises/phone-forward/internal/phnum"
)

// Lexer holds the state of the scanner.
type Lexer struct {
	input    string
	position int      // current position in the input (points to current char)
	ch       byte     // current char under examination, 0 at end of input
	pos      Position // position of ch
}

// NewLexer creates a new lexer.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:    input,
		position: -1,
		pos:      Position{Line: 1, Column: 0},
	}
	l.readChar()
	return l
}

// NextToken returns the next token from the input. Comments are skipped; an
// unterminated comment is returned as ILLEGAL at its opening marker.
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()
		if l.ch != '$' || l.peekChar() != '$' {
			break
		}
		start := l.pos
		if !l.skipComment() {
			return Token{Type: ILLEGAL, Literal: "$$", Pos: start}
		}
	}

	startPos := l.pos
	switch {
	case l.ch == 0:
		return Token{Type: EOF, Pos: startPos}
	case l.ch == '>':
		l.readChar()
		return Token{Type: REDIRECT, Literal: ">", Pos: startPos}
	case l.ch == '?':
		l.readChar()
		return Token{Type: QUERY, Literal: "?", Pos: startPos}
	case isSymbol(l.ch):
		return Token{Type: NUMBER, Literal: l.readWhile(isSymbol), Pos: startPos}
	case isLetter(l.ch):
		lit := l.readWhile(isLetter)
		return Token{Type: LookupIdent(lit), Literal: lit, Pos: startPos}
	default:
		tok := Token{Type: ILLEGAL, Literal: string(l.ch), Pos: startPos}
		l.readChar()
		return tok
	}
}

// readChar advances to the next character, tracking line and column.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.pos.Line++
		l.pos.Column = 0
	}
	l.position++
	if l.position >= len(l.input) {
		l.position = len(l.input)
		l.ch = 0
	} else {
		l.ch = l.input[l.position]
	}
	l.pos.Column++
}

func (l *Lexer) peekChar() byte {
	if l.position+1 >= len(l.input) {
		return 0
	}
	return l.input[l.position+1]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// skipComment consumes a "$$ ... $$" comment starting at the current
// character. It reports false when the closing marker is missing.
func (l *Lexer) skipComment() bool {
	l.readChar()
	l.readChar()
	for l.ch != 0 {
		if l.ch == '$' && l.peekChar() == '$' {
			l.readChar()
			l.readChar()
			return true
		}
		l.readChar()
	}
	return false
}

func (l *Lexer) readWhile(accept func(byte) bool) string {
	start := l.position
	for l.ch != 0 && accept(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isSymbol(ch byte) bool {
	_, ok := phnum.Slot(ch)
	return ok
}

func isLetter(ch byte) bool {
	return 'A' <= ch && ch <= 'Z' || 'a' <= ch && ch <= 'z'
}
