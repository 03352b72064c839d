package main

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ameerthehacker/rslox/internal/testutil"
	"github.com/ameerthehacker/rslox/pkg/diagnostics"
	"github.com/ameerthehacker/rslox/pkg/lexer"
)

func TestConformance(t *testing.T) {
	dirs, err := testutil.ListScenarios(testutil.ScenariosDir)
	if err != nil {
		t.Fatalf("failed to list scenarios: %v", err)
	}
	if len(dirs) == 0 {
		t.Fatal("no scenarios found")
	}

	for _, dir := range dirs {
		dir := dir
		t.Run(filepath.Base(dir), func(t *testing.T) {
			scenario, err := testutil.LoadScenario(dir)
			if err != nil {
				t.Fatalf("failed to load scenario: %v", err)
			}
			source, err := scenario.ReadSource(dir)
			if err != nil {
				t.Fatalf("failed to read source: %v", err)
			}

			tokens, lexErr := lexer.New().LexString(source)

			if want := scenario.Expect.Error; want != nil {
				if lexErr == nil {
					t.Fatalf("expected lex error %s, got tokens %v", want.Code, tokens)
				}
				diag, ok := diagnostics.FromError(lexErr)
				if !ok {
					t.Fatalf("lex error carries no diagnostic: %v", lexErr)
				}
				if diag.Code != want.Code {
					t.Errorf("expected code %s, got %s", want.Code, diag.Code)
				}
				if diag.Pos == nil || diag.Pos.Row != want.Row || diag.Pos.Col != want.Col {
					t.Errorf("expected error at %d:%d, got %v", want.Row, want.Col, diag.Pos)
				}
				return
			}

			if lexErr != nil {
				t.Fatalf("unexpected lex error: %v", lexErr)
			}
			rendered := make([]string, len(tokens))
			for i, tok := range tokens {
				rendered[i] = tok.String()
			}
			if !reflect.DeepEqual(rendered, scenario.Expect.Tokens) {
				t.Errorf("token mismatch\nwant: %v\ngot:  %v", scenario.Expect.Tokens, rendered)
			}
		})
	}
}
