package script

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAll(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Command
		wantErr string
	}{
		{
			name:  "every command",
			input: "1 > 2\n1?\n?2 REV 2 DEL 1 RULES CLEAR",
			want: []Command{
				{Op: OpAdd, Args: []string{"1", "2"}, Pos: Position{Line: 1, Column: 1}},
				{Op: OpGet, Args: []string{"1"}, Pos: Position{Line: 2, Column: 1}},
				{Op: OpGetReverse, Args: []string{"2"}, Pos: Position{Line: 3, Column: 1}},
				{Op: OpReverse, Args: []string{"2"}, Pos: Position{Line: 3, Column: 4}},
				{Op: OpRemove, Args: []string{"1"}, Pos: Position{Line: 3, Column: 10}},
				{Op: OpRules, Pos: Position{Line: 3, Column: 16}},
				{Op: OpClear, Pos: Position{Line: 3, Column: 22}},
			},
		},
		{
			name:  "empty",
			input: "  $$ nothing $$\n",
			want:  nil,
		},
		{
			name:    "missing replacement",
			input:   "1 >",
			wantErr: "1:4: syntax error: expected NUMBER, got end of input",
		},
		{
			name:    "bare number",
			input:   "12 34",
			wantErr: "1:4: syntax error: expected ? or >, got NUMBER",
		},
		{
			name:    "keyword without argument",
			input:   "DEL RULES",
			wantErr: "1:5: syntax error: expected NUMBER, got RULES",
		},
		{
			name:    "illegal token",
			input:   "RULES\n  x",
			wantErr: `2:3: syntax error: unexpected "x"`,
		},
		{
			name:    "unterminated comment",
			input:   "1 ? $$",
			wantErr: `1:5: syntax error: unexpected "$$"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAll(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
				assert.True(t, errors.Is(err, ErrSyntax))
				var serr *Error
				assert.True(t, errors.As(err, &serr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "getreverse", OpGetReverse.String())
	assert.Equal(t, "Op(42)", Op(42).String())
}
