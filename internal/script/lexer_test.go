package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "add and get",
			input: "12 > 3*#\n12?",
			expected: []Token{
				{Type: NUMBER, Literal: "12", Pos: Position{Line: 1, Column: 1}},
				{Type: REDIRECT, Literal: ">", Pos: Position{Line: 1, Column: 4}},
				{Type: NUMBER, Literal: "3*#", Pos: Position{Line: 1, Column: 6}},
				{Type: NUMBER, Literal: "12", Pos: Position{Line: 2, Column: 1}},
				{Type: QUERY, Literal: "?", Pos: Position{Line: 2, Column: 3}},
				{Type: EOF, Literal: "", Pos: Position{Line: 2, Column: 4}},
			},
		},
		{
			name:  "keywords and comments",
			input: "$$ setup $$DEL 1\n  $$ a\nb $$ REV#",
			expected: []Token{
				{Type: DEL, Literal: "DEL", Pos: Position{Line: 1, Column: 12}},
				{Type: NUMBER, Literal: "1", Pos: Position{Line: 1, Column: 16}},
				{Type: REV, Literal: "REV", Pos: Position{Line: 3, Column: 6}},
				{Type: NUMBER, Literal: "#", Pos: Position{Line: 3, Column: 9}},
				{Type: EOF, Literal: "", Pos: Position{Line: 3, Column: 10}},
			},
		},
		{
			name:  "illegal characters",
			input: "1a $ del",
			expected: []Token{
				{Type: NUMBER, Literal: "1", Pos: Position{Line: 1, Column: 1}},
				{Type: ILLEGAL, Literal: "a", Pos: Position{Line: 1, Column: 2}},
				{Type: ILLEGAL, Literal: "$", Pos: Position{Line: 1, Column: 4}},
				{Type: ILLEGAL, Literal: "del", Pos: Position{Line: 1, Column: 6}},
				{Type: EOF, Literal: "", Pos: Position{Line: 1, Column: 9}},
			},
		},
		{
			name:  "unterminated comment",
			input: "RULES $$ never closed",
			expected: []Token{
				{Type: RULES, Literal: "RULES", Pos: Position{Line: 1, Column: 1}},
				{Type: ILLEGAL, Literal: "$$", Pos: Position{Line: 1, Column: 7}},
				{Type: EOF, Literal: "", Pos: Position{Line: 1, Column: 22}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLexer(tt.input)
			for i, want := range tt.expected {
				assert.Equal(t, want, l.NextToken(), "token %d", i)
			}
		})
	}
}
