// Package cli implements the behavior behind the nala command: loading
// source files, reporting errors with color when the terminal supports it,
// and mapping outcomes to exit codes.
package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/nala-lang/nala/internal/config"
	"github.com/nala-lang/nala/internal/evaluator"
	"github.com/nala-lang/nala/internal/lexer"
	"github.com/nala-lang/nala/internal/parser"
	"github.com/nala-lang/nala/internal/token"
)

// RunFile executes a script file and returns the process exit code.
func RunFile(path string, verbose bool) int {
	source, code := readSource(path)
	if code != config.ExitOK {
		return code
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Parsing file %s\n", path)
	}

	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()
	program.File = path

	if errs := p.Errors(); len(errs) > 0 {
		reportParseErrors(path, errs)
		return config.ExitParseError
	}

	eval := evaluator.New(evaluator.NewStandardContext())
	if err := eval.Interpret(program); err != nil {
		reportRuntimeError(path, err)
		return config.ExitRuntimeError
	}

	return config.ExitOK
}

// ParseFile parses a script file without running it and reports the result.
func ParseFile(path string) int {
	source, code := readSource(path)
	if code != config.ExitOK {
		return code
	}

	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		reportParseErrors(path, errs)
		return config.ExitParseError
	}

	fmt.Printf("%s: parsed %d statement(s)\n", path, len(program.Statements))
	return config.ExitOK
}

// LexFile tokenizes a script file and prints the token stream.
func LexFile(path string) int {
	source, code := readSource(path)
	if code != config.ExitOK {
		return code
	}

	l := lexer.New(source)
	for {
		tok := l.NextToken()
		fmt.Printf("%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Type, tok.Lexeme)
		if tok.Type == token.EOF {
			break
		}
	}
	return config.ExitOK
}

func readSource(path string) (string, int) {
	if !config.HasSourceExt(path) {
		fmt.Fprintf(os.Stderr, "%s: not a Nala source file (expected %s)\n", path, config.SourceFileExt)
		return "", config.ExitUsageError
	}

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", path, err)
		return "", config.ExitUsageError
	}

	return string(content), config.ExitOK
}

func reportParseErrors(path string, errs []parser.ParseError) {
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "%s%s:%d:%d:%s %s\n",
			colorStart(), path, err.Line, err.Column, colorEnd(), err.Message)
	}
}

func reportRuntimeError(path string, err *evaluator.RuntimeError) {
	fmt.Fprintf(os.Stderr, "%s%s:%s %s\n", colorStart(), path, colorEnd(), err.Inspect())
}

func useColor() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

func colorStart() string {
	if useColor() {
		return "\033[1;31m"
	}
	return ""
}

func colorEnd() string {
	if useColor() {
		return "\033[0m"
	}
	return ""
}
