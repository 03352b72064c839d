// Command rslox is the native rslox CLI entry point.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/peterh/liner"

	"github.com/ameerthehacker/rslox/pkg/diagnostics"
	"github.com/ameerthehacker/rslox/pkg/lexer"
)

const (
	appName     = "rslox"
	version     = "0.1.0"
	historyFile = ".rslox_history"
	prompt      = ">> "
)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "lex":
		os.Exit(cmdLex(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(version)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: %s <command> [options]

commands:
  lex <file>   Tokenize a file ("-" reads stdin) and print the tokens
               [--json|--pretty|--debug]
  repl         Tokenize lines interactively
  version      Print the version
`, appName)
}

func cmdLex(args []string) int {
	var file string
	jsonOut := false
	pretty := false
	debug := false

	for _, arg := range args {
		switch arg {
		case "--json":
			jsonOut = true
		case "--pretty":
			pretty = true
		case "--debug":
			debug = true
		default:
			if !strings.HasPrefix(arg, "-") || arg == "-" {
				file = arg
			}
		}
	}

	if file == "" {
		fmt.Fprintf(os.Stderr, "usage: %s lex <file> [--json] [--pretty] [--debug]\n", appName)
		return 1
	}

	source, err := readSource(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %s\n", file, err)
		return 1
	}

	tokens, lexErr := lexer.New().Lex(source)
	if lexErr != nil {
		if diag, ok := diagnostics.FromError(lexErr); ok {
			fmt.Fprintln(os.Stderr, diagnostics.FormatDiagnostic(diag, pretty))
		} else {
			fmt.Fprintln(os.Stderr, lexErr.Error())
		}
		return 2
	}

	if debug {
		fmt.Print(spew.Sdump(tokens))
		return 0
	}

	if jsonOut {
		out, err := json.MarshalIndent(tokens, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error serializing tokens: %s\n", err)
			return 4
		}
		fmt.Println(string(out))
		return 0
	}

	for _, tok := range tokens {
		fmt.Println(tok)
	}
	return 0
}

func readSource(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}

func cmdRepl(_ []string) int {
	fmt.Printf("rslox %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.\n", version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	scanner := lexer.New()

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue
			}
			fmt.Println()
			break
		}

		if strings.HasPrefix(strings.TrimSpace(line), ":") {
			switch strings.TrimSpace(strings.ToLower(line)) {
			case ":quit":
				return 0
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		tokens, lexErr := scanner.LexString(line)
		if lexErr != nil {
			if diag, ok := diagnostics.FromError(lexErr); ok {
				fmt.Fprintln(os.Stderr, red(diagnostics.FormatDiagnostic(diag, true)))
			} else {
				fmt.Fprintln(os.Stderr, red(lexErr.Error()))
			}
			continue
		}
		for _, tok := range tokens {
			fmt.Println(blue(tok.String()))
		}
		ln.AppendHistory(line)
	}

	return 0
}
