package evaluator

import (
	"github.com/nala-lang/nala/internal/typesystem"
)

// RegisterBuiltin installs a host-supplied function into the root scope.
// Must be called before Interpret. Calling a builtin bypasses user-scope
// creation: arguments are assembled into a map keyed by parameter ident and
// the body is invoked directly; its result is subject to the same
// return-type check as a user function.
func (e *Evaluator) RegisterBuiltin(ident string, params []Param, returnType typesystem.Type, body BuiltinFunc) error {
	fn := &Function{
		Ident:        ident,
		Parameters:   params,
		ReturnType:   returnType,
		Builtin:      body,
		ClosureScope: e.rootScope,
	}
	if err := e.scopes.AddBinding(ident, e.rootScope, fn, fn.FuncType(), false); err != nil {
		return err
	}
	return nil
}

func (e *Evaluator) registerDefaultBuiltins() {
	registrations := []func(*Evaluator) error{
		registerIoBuiltins,
		registerStdBuiltins,
		registerYamlBuiltins,
		registerTermBuiltins,
	}
	for _, register := range registrations {
		if err := register(e); err != nil {
			// Default builtins are registered into a fresh root scope, so a
			// collision here is a programming error, not a user error.
			panic(err)
		}
	}
}

func primitive(name string) typesystem.Type {
	return typesystem.TPrimitive{Name: name}
}

func arrayOf(elem typesystem.Type) typesystem.Type {
	return typesystem.TComposite{
		Base: typesystem.TPrimitive{Name: typesystem.Array},
		Args: []typesystem.Type{elem},
	}
}
