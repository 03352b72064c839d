// Package token defines the token, position, and literal types produced by the lexer.
package token

import (
	"encoding/json"
	"fmt"
)

// Position is a 1-indexed row/column location in the source buffer.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Operator identifies an operator token's payload.
type Operator int

const (
	OpPlus Operator = iota
	OpMinus
	OpStar
	OpAssign
	OpIncrement
	OpDecrement
)

var operatorNames = map[Operator]string{
	OpPlus:      "Plus",
	OpMinus:     "Minus",
	OpStar:      "Star",
	OpAssign:    "Assign",
	OpIncrement: "Increment",
	OpDecrement: "Decrement",
}

func (op Operator) String() string {
	if name, ok := operatorNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// LiteralKind distinguishes string and number literals.
type LiteralKind int

const (
	LitString LiteralKind = iota
	LitNumber
)

func (k LiteralKind) String() string {
	if k == LitString {
		return "String"
	}
	return "Number"
}

// Literal carries the raw bytes of a literal lexeme. Bytes is a sub-slice of
// the source buffer, not a copy; it must not outlive the buffer it was lexed
// from. String payloads exclude the surrounding quotes, number payloads
// include any decimal point.
type Literal struct {
	Kind  LiteralKind
	Bytes []byte
}

func (l Literal) String() string {
	if l.Kind == LitString {
		return fmt.Sprintf("%q", l.Bytes)
	}
	return string(l.Bytes)
}

// TokenType identifies the type of a lexer token.
type TokenType int

const (
	TokOperator TokenType = iota
	TokOpenBrace
	TokCloseBrace
	TokOpenParen
	TokCloseParen
	TokLiteral
	TokEOF
)

var tokenTypeNames = map[TokenType]string{
	TokOperator:   "Operator",
	TokOpenBrace:  "OpenBrace",
	TokCloseBrace: "CloseBrace",
	TokOpenParen:  "OpenParen",
	TokCloseParen: "CloseParen",
	TokLiteral:    "Literal",
	TokEOF:        "EOF",
}

func (tt TokenType) String() string {
	if name, ok := tokenTypeNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token represents a single lexer token. Op is meaningful only for
// TokOperator, Lit only for TokLiteral.
type Token struct {
	Type TokenType
	Pos  Position
	Op   Operator
	Lit  Literal
}

// String renders a token as "<kind>[(payload)] <row>:<col>", the form printed
// by the CLI and matched by the conformance scenarios.
func (t Token) String() string {
	switch t.Type {
	case TokOperator:
		return fmt.Sprintf("Operator(%s) %s", t.Op, t.Pos)
	case TokLiteral:
		return fmt.Sprintf("Literal(%s) %s", t.Lit, t.Pos)
	default:
		return fmt.Sprintf("%s %s", t.Type, t.Pos)
	}
}

// tokenJSON is the wire shape for Token used by the CLI's --json output.
type tokenJSON struct {
	Type  string   `json:"type"`
	Pos   Position `json:"pos"`
	Op    string   `json:"op,omitempty"`
	Kind  string   `json:"kind,omitempty"`
	Value string   `json:"value,omitempty"`
}

// MarshalJSON emits the token with payload fields only where they apply.
func (t Token) MarshalJSON() ([]byte, error) {
	out := tokenJSON{Type: t.Type.String(), Pos: t.Pos}
	switch t.Type {
	case TokOperator:
		out.Op = t.Op.String()
	case TokLiteral:
		out.Kind = t.Lit.Kind.String()
		out.Value = string(t.Lit.Bytes)
	}
	return json.Marshal(out)
}
