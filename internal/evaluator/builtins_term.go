package evaluator

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/nala-lang/nala/internal/typesystem"
)

func registerTermBuiltins(e *Evaluator) error {
	return e.RegisterBuiltin(
		"isTerm",
		[]Param{},
		primitive(typesystem.Bool),
		builtinIsTerm,
	)
}

// builtinIsTerm reports whether stdout is attached to a terminal. Scripts
// use it to decide whether decorated output is appropriate.
func builtinIsTerm(args map[string]Value, ctx IoContext) (Value, *RuntimeError) {
	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return nativeBoolToBooleanValue(isTTY), nil
}
