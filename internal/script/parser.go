package script

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("syntax error")

// Parser turns a token stream into commands, one at a time.
type Parser struct {
	l *Lexer

	currentToken Token
	peekToken    Token
}

// NewParser creates a new Parser.
func NewParser(l *Lexer) *Parser {
	p := &Parser{l: l}

	// Read two tokens, so currentToken and peekToken are both set
	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) nextToken() {
	p.currentToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// Next parses the next command. It returns io.EOF at the end of input and an
// *Error wrapping ErrSyntax on malformed input.
func (p *Parser) Next() (Command, error) {
	tok := p.currentToken
	cmd := Command{Pos: tok.Pos}

	switch tok.Type {
	case EOF:
		return Command{}, io.EOF
	case NUMBER:
		switch {
		case p.peekTokenIs(QUERY):
			p.nextToken()
			cmd.Op, cmd.Args = OpGet, []string{tok.Literal}
		case p.peekTokenIs(REDIRECT):
			p.nextToken()
			if !p.expectPeek(NUMBER) {
				return Command{}, p.peekError(NUMBER)
			}
			cmd.Op, cmd.Args = OpAdd, []string{tok.Literal, p.currentToken.Literal}
		default:
			return Command{}, p.peekError(QUERY, REDIRECT)
		}
	case QUERY, REV, DEL:
		if !p.expectPeek(NUMBER) {
			return Command{}, p.peekError(NUMBER)
		}
		cmd.Args = []string{p.currentToken.Literal}
		switch tok.Type {
		case QUERY:
			cmd.Op = OpGetReverse
		case REV:
			cmd.Op = OpReverse
		default:
			cmd.Op = OpRemove
		}
	case RULES:
		cmd.Op = OpRules
	case CLEAR:
		cmd.Op = OpClear
	default:
		return Command{}, &Error{
			Pos: tok.Pos,
			Err: fmt.Errorf("%w: unexpected %s", ErrSyntax, describe(tok)),
		}
	}

	p.nextToken()
	return cmd, nil
}

// ParseAll parses the whole input, stopping at the first error.
func ParseAll(input string) ([]Command, error) {
	p := NewParser(NewLexer(input))
	var cmds []Command
	for {
		cmd, err := p.Next()
		if errors.Is(err, io.EOF) {
			return cmds, nil
		}
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
}

func (p *Parser) peekTokenIs(t TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek checks if the next token is of the given type and advances if it is.
func (p *Parser) expectPeek(t TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	return false
}

// peekError reports what was expected at the next token and what was found.
func (p *Parser) peekError(expected ...TokenType) error {
	names := make([]string, len(expected))
	for i, t := range expected {
		names[i] = t.String()
	}
	return &Error{
		Pos: p.peekToken.Pos,
		Err: fmt.Errorf("%w: expected %s, got %s",
			ErrSyntax, strings.Join(names, " or "), describe(p.peekToken)),
	}
}

func describe(tok Token) string {
	switch tok.Type {
	case EOF:
		return "end of input"
	case ILLEGAL:
		return fmt.Sprintf("%q", tok.Literal)
	default:
		return tok.Type.String()
	}
}
