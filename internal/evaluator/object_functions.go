package evaluator

import (
	"strings"

	"github.com/nala-lang/nala/internal/ast"
	"github.com/nala-lang/nala/internal/typesystem"
)

// Param is a function parameter with its resolved type.
type Param struct {
	Ident string
	Type  typesystem.Type
}

// BuiltinFunc is the body contract for host-supplied functions: arguments
// keyed by parameter ident, plus the I/O capability.
type BuiltinFunc func(args map[string]Value, ctx IoContext) (Value, *RuntimeError)

// Function is a closure: parameters and return type resolved at declaration
// time, a body, and the id of the captured scope. Exactly one of Body and
// Builtin is set.
type Function struct {
	Ident        string
	TypeParam    string // Optional single type parameter name
	Parameters   []Param
	ReturnType   typesystem.Type
	Body         *ast.BlockStatement
	Builtin      BuiltinFunc
	ClosureScope int
}

func (f *Function) Kind() ValueKind { return FUNC_VALUE }
func (f *Function) Inspect() string {
	parts := make([]string, 0, len(f.Parameters)+1)
	for _, p := range f.Parameters {
		parts = append(parts, p.Type.String())
	}
	parts = append(parts, f.ReturnType.String())
	return "Func<" + strings.Join(parts, ", ") + ">"
}

// FuncType returns the function's resolved type, Func<T1, ..., Tn, R>.
func (f *Function) FuncType() typesystem.Type {
	args := make([]typesystem.Type, 0, len(f.Parameters)+1)
	for _, p := range f.Parameters {
		args = append(args, p.Type)
	}
	args = append(args, f.ReturnType)
	return typesystem.TComposite{Base: typesystem.TPrimitive{Name: typesystem.Func}, Args: args}
}
