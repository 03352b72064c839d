package token_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ameerthehacker/rslox/pkg/token"
)

func TestTokenString(t *testing.T) {
	tests := []struct {
		name string
		tok  token.Token
		want string
	}{
		{
			"operator",
			token.Token{Type: token.TokOperator, Pos: token.Position{Row: 1, Col: 1}, Op: token.OpIncrement},
			"Operator(Increment) 1:1",
		},
		{
			"open brace",
			token.Token{Type: token.TokOpenBrace, Pos: token.Position{Row: 2, Col: 7}},
			"OpenBrace 2:7",
		},
		{
			"string literal",
			token.Token{
				Type: token.TokLiteral,
				Pos:  token.Position{Row: 1, Col: 5},
				Lit:  token.Literal{Kind: token.LitString, Bytes: []byte("abc")},
			},
			`Literal("abc") 1:5`,
		},
		{
			"number literal",
			token.Token{
				Type: token.TokLiteral,
				Pos:  token.Position{Row: 1, Col: 1},
				Lit:  token.Literal{Kind: token.LitNumber, Bytes: []byte("123.258")},
			},
			"Literal(123.258) 1:1",
		},
		{
			"eof",
			token.Token{Type: token.TokEOF, Pos: token.Position{Row: 3, Col: 1}},
			"EOF 3:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTokenMarshalJSON(t *testing.T) {
	tok := token.Token{
		Type: token.TokLiteral,
		Pos:  token.Position{Row: 2, Col: 9},
		Lit:  token.Literal{Kind: token.LitNumber, Bytes: []byte("0.2")},
	}
	out, err := json.Marshal(tok)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	for _, want := range []string{`"type":"Literal"`, `"kind":"Number"`, `"value":"0.2"`, `"row":2`, `"col":9`} {
		if !strings.Contains(string(out), want) {
			t.Errorf("expected %s in output, got %s", want, out)
		}
	}

	op, err := json.Marshal(token.Token{Type: token.TokOperator, Pos: token.Position{Row: 1, Col: 1}, Op: token.OpStar})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(op), "value") {
		t.Errorf("operator token should not carry a value field: %s", op)
	}
	if !strings.Contains(string(op), `"op":"Star"`) {
		t.Errorf("expected op field, got %s", op)
	}
}
