// Package lexer implements the rslox source tokenizer.
package lexer

import (
	"fmt"

	"github.com/ameerthehacker/rslox/pkg/diagnostics"
	"github.com/ameerthehacker/rslox/pkg/token"
)

const (
	newLine  = '\n'
	lineFeed = '\r'
)

// Scanner converts source text into tokens. A Scanner is reusable: each call
// to Lex rebinds the source buffer and produces a fresh token sequence. It
// must not be used concurrently; the cursor and position fields are mutated
// in place during a scan.
type Scanner struct {
	row    int
	col    int
	cursor int
	src    []byte
	tokens []token.Token
}

// New creates a Scanner positioned at the start of an empty source.
func New() *Scanner {
	return &Scanner{row: 1, col: 1}
}

// InvalidCharacterError reports an input byte that matches no lexeme start.
type InvalidCharacterError struct {
	Char byte
	Pos  token.Position
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at %s", e.Char, e.Pos)
}

// Diagnostic returns the coded diagnostic for this error.
func (e *InvalidCharacterError) Diagnostic() diagnostics.Diagnostic {
	pos := e.Pos
	return diagnostics.MakeDiag(
		diagnostics.EInvalidChar,
		fmt.Sprintf("invalid character %q", e.Char),
		&pos,
		"",
	)
}

// UnterminatedStringError reports a string literal whose opening quote is
// never matched before a line break or end of input. Pos is the opening
// quote's position, not the failure point.
type UnterminatedStringError struct {
	Pos token.Position
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("unterminated string at %s", e.Pos)
}

// Diagnostic returns the coded diagnostic for this error.
func (e *UnterminatedStringError) Diagnostic() diagnostics.Diagnostic {
	pos := e.Pos
	return diagnostics.MakeDiag(
		diagnostics.EUnterminatedString,
		"unterminated string",
		&pos,
		"add a closing '\"' before the end of the line",
	)
}

func (s *Scanner) atEnd(offset int) bool {
	return s.cursor+offset >= len(s.src)
}

func (s *Scanner) current() byte {
	return s.src[s.cursor]
}

func (s *Scanner) peek() byte {
	return s.src[s.cursor+1]
}

// atLineBreak reports whether the cursor sits on a byte that terminates a
// line. A '\r' directly followed by '\n' does not count as a break of its
// own, so "\r\n" advances the row once.
func (s *Scanner) atLineBreak() bool {
	if s.atEnd(0) {
		return false
	}
	switch s.current() {
	case newLine:
		return true
	case lineFeed:
		return s.atEnd(1) || s.peek() != newLine
	}
	return false
}

// advance moves the cursor one byte forward, updating row/col. Crossing a
// line-terminating byte increments the row and resets the column.
func (s *Scanner) advance() {
	if s.atLineBreak() {
		s.row++
		s.col = 1
	} else {
		s.col++
	}
	s.cursor++
}

// lookahead checks whether the byte after the cursor equals want and, if so,
// consumes the current byte so the cursor lands on the matched one.
func (s *Scanner) lookahead(want byte) bool {
	if s.atEnd(1) {
		return false
	}
	if s.peek() != want {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) position() token.Position {
	return token.Position{Row: s.row, Col: s.col}
}

func (s *Scanner) emit(tok token.Token) {
	s.tokens = append(s.tokens, tok)
}

func (s *Scanner) emitOperator(op token.Operator) {
	s.emit(token.Token{Type: token.TokOperator, Pos: s.position(), Op: op})
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// scanString consumes a string literal. On entry the cursor sits on the
// opening quote; on success it is left on the closing quote, which the main
// loop's trailing advance steps past. The emitted token's position is the
// scanner's position at the closing quote, while an unterminated string is
// reported at the opening quote.
func (s *Scanner) scanString() error {
	startPos := s.position()
	s.advance()
	start := s.cursor

	for !s.atEnd(0) && s.current() != '"' && !s.atLineBreak() {
		s.advance()
	}

	if s.atEnd(0) || s.current() != '"' {
		return &UnterminatedStringError{Pos: startPos}
	}

	s.emit(token.Token{
		Type: token.TokLiteral,
		Pos:  s.position(),
		Lit:  token.Literal{Kind: token.LitString, Bytes: s.src[start:s.cursor]},
	})
	return nil
}

// scanNumber consumes a number literal. The loop advances only while the byte
// after the cursor continues the lexeme (a digit, or the first '.'), so the
// final matching byte is left under the cursor for the main loop's trailing
// advance. The payload therefore spans start..cursor+1.
func (s *Scanner) scanNumber() {
	startPos := s.position()
	start := s.cursor
	dotSeen := false

	for !s.atEnd(1) {
		next := s.peek()
		if next != '.' && !isDigit(next) {
			break
		}
		if next == '.' {
			if dotSeen {
				break
			}
			dotSeen = true
		}
		s.advance()
	}

	s.emit(token.Token{
		Type: token.TokLiteral,
		Pos:  startPos,
		Lit:  token.Literal{Kind: token.LitNumber, Bytes: s.src[start : s.cursor+1]},
	})
}

// scanComment consumes a '#' comment up to, but not including, the line
// break; the main loop's trailing advance consumes the break itself.
func (s *Scanner) scanComment() {
	for !s.atEnd(0) && !s.atLineBreak() {
		s.advance()
	}
}

// Lex scans src into an ordered token sequence terminated by a single EOF
// token. Literal payloads sub-slice src, so src must outlive the returned
// tokens. On malformed input it returns a nil slice and either an
// *InvalidCharacterError or an *UnterminatedStringError.
func (s *Scanner) Lex(src []byte) ([]token.Token, error) {
	s.row = 1
	s.col = 1
	s.cursor = 0
	s.src = src
	s.tokens = nil

	for !s.atEnd(0) {
		switch ch := s.current(); {
		case ch == ' ' || ch == newLine || ch == lineFeed:
			// Skipped; the trailing advance updates row/col.
		case ch == '+':
			if s.lookahead('+') {
				s.emitOperator(token.OpIncrement)
			} else {
				s.emitOperator(token.OpPlus)
			}
		case ch == '-':
			if s.lookahead('-') {
				s.emitOperator(token.OpDecrement)
			} else {
				s.emitOperator(token.OpMinus)
			}
		case ch == '*':
			s.emitOperator(token.OpStar)
		case ch == '=':
			s.emitOperator(token.OpAssign)
		case ch == '{':
			s.emit(token.Token{Type: token.TokOpenBrace, Pos: s.position()})
		case ch == '}':
			s.emit(token.Token{Type: token.TokCloseBrace, Pos: s.position()})
		case ch == '(':
			s.emit(token.Token{Type: token.TokOpenParen, Pos: s.position()})
		case ch == ')':
			s.emit(token.Token{Type: token.TokCloseParen, Pos: s.position()})
		case ch == '"':
			if err := s.scanString(); err != nil {
				return nil, err
			}
		case ch == '#':
			s.scanComment()
		case isDigit(ch):
			s.scanNumber()
		default:
			return nil, &InvalidCharacterError{Char: ch, Pos: s.position()}
		}
		s.advance()
	}

	s.emit(token.Token{Type: token.TokEOF, Pos: s.position()})
	return s.tokens, nil
}

// LexString is a convenience wrapper around Lex for string sources.
func (s *Scanner) LexString(src string) ([]token.Token, error) {
	return s.Lex([]byte(src))
}
