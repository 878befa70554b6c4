// Package embed is the embedding surface for hosting Nala inside another
// Go program: parse source text, register host builtins, interpret.
package embed

import (
	"fmt"
	"strings"

	"github.com/nala-lang/nala/internal/ast"
	"github.com/nala-lang/nala/internal/evaluator"
	"github.com/nala-lang/nala/internal/lexer"
	"github.com/nala-lang/nala/internal/parser"
	"github.com/nala-lang/nala/internal/typesystem"
)

// ParseErrors aggregates the syntax errors of one parse.
type ParseErrors []parser.ParseError

func (e ParseErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("%d parse error(s): %s", len(e), strings.Join(messages, "; "))
}

// Parse turns source text into a Program, or returns ParseErrors.
func Parse(code string) (*ast.Program, error) {
	l := lexer.New(code)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, ParseErrors(errs)
	}
	return program, nil
}

// Runtime is one interpreter instance: a root scope with the default
// builtin library, plus any host-registered builtins.
type Runtime struct {
	eval *evaluator.Evaluator
}

// NewRuntime creates a runtime writing through the given I/O context.
func NewRuntime(ctx evaluator.IoContext) *Runtime {
	return &Runtime{eval: evaluator.New(ctx)}
}

// RegisterBuiltin installs a host function into the root scope. Must be
// called before Interpret.
func (r *Runtime) RegisterBuiltin(ident string, params []evaluator.Param, returnType typesystem.Type, body evaluator.BuiltinFunc) error {
	return r.eval.RegisterBuiltin(ident, params, returnType, body)
}

// Interpret runs the program; the first runtime error aborts it.
func (r *Runtime) Interpret(program *ast.Program) error {
	if err := r.eval.Interpret(program); err != nil {
		return err
	}
	return nil
}

// Run parses and interprets code in one step.
func Run(code string, ctx evaluator.IoContext) error {
	program, err := Parse(code)
	if err != nil {
		return err
	}
	return NewRuntime(ctx).Interpret(program)
}
