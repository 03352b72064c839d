// Package diagnostics defines coded diagnostics for lexical errors.
package diagnostics

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ameerthehacker/rslox/pkg/token"
)

// Diagnostic code constants.
const (
	EInvalidChar        = "E_INVALID_CHAR"
	EUnterminatedString = "E_UNTERMINATED_STRING"
)

// Diagnostic represents a single lexical diagnostic.
type Diagnostic struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Pos     *token.Position `json:"pos,omitempty"`
	Hint    string          `json:"hint,omitempty"`
}

// MakeDiag creates a new Diagnostic.
func MakeDiag(code, message string, pos *token.Position, hint string) Diagnostic {
	return Diagnostic{
		Code:    code,
		Message: message,
		Pos:     pos,
		Hint:    hint,
	}
}

// Source is implemented by errors that carry their own diagnostic.
type Source interface {
	Diagnostic() Diagnostic
}

// FromError extracts a Diagnostic from any error produced by the lexer.
// The second return is false when the error carries no diagnostic.
func FromError(err error) (Diagnostic, bool) {
	var src Source
	if errors.As(err, &src) {
		return src.Diagnostic(), true
	}
	return Diagnostic{}, false
}

// FormatDiagnostic formats a single diagnostic for display.
func FormatDiagnostic(d Diagnostic, pretty bool) string {
	if !pretty {
		b, _ := json.Marshal(d)
		return string(b)
	}
	loc := "<unknown>"
	if d.Pos != nil {
		loc = d.Pos.String()
	}
	out := fmt.Sprintf("error[%s]: %s\n  --> %s", d.Code, d.Message, loc)
	if d.Hint != "" {
		out += fmt.Sprintf("\n  hint: %s", d.Hint)
	}
	return out
}

// FormatDiagnostics formats a slice of diagnostics for display.
func FormatDiagnostics(diags []Diagnostic, pretty bool) string {
	if !pretty {
		b, _ := json.Marshal(diags)
		return string(b)
	}
	parts := make([]string, len(diags))
	for i, d := range diags {
		parts[i] = FormatDiagnostic(d, true)
	}
	return strings.Join(parts, "\n\n")
}
