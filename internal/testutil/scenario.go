// Package testutil provides shared test helpers for rslox tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ScenariosDir is the relative path from the repo root to the lex scenarios.
const ScenariosDir = "testdata/scenarios"

// Scenario represents a conformance case loaded from a scenario.json file.
// Source holds the input inline; SourceFile, when set, names a file in the
// scenario directory to read instead.
type Scenario struct {
	Source     string         `json:"source,omitempty"`
	SourceFile string         `json:"sourceFile,omitempty"`
	Expect     ExpectedResult `json:"expect"`
}

// ExpectedResult describes the expected outcome of lexing the source.
// Exactly one of Tokens or Error is set.
type ExpectedResult struct {
	Tokens []string       `json:"tokens,omitempty"`
	Error  *ExpectedError `json:"error,omitempty"`
}

// ExpectedError describes an expected lex failure.
type ExpectedError struct {
	Code string `json:"code"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

// LoadScenario loads a scenario from a directory containing scenario.json.
func LoadScenario(dir string) (*Scenario, error) {
	data, err := os.ReadFile(filepath.Join(dir, "scenario.json"))
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListScenarios returns all scenario directories under the given root.
func ListScenarios(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			scenarioPath := filepath.Join(root, e.Name(), "scenario.json")
			if _, err := os.Stat(scenarioPath); err == nil {
				dirs = append(dirs, filepath.Join(root, e.Name()))
			}
		}
	}
	return dirs, nil
}

// ReadSource returns the scenario's input, reading SourceFile from the
// scenario directory when it is set.
func (s *Scenario) ReadSource(dir string) (string, error) {
	if s.SourceFile == "" {
		return s.Source, nil
	}
	data, err := os.ReadFile(filepath.Join(dir, s.SourceFile))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
