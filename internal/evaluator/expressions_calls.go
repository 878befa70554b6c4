package evaluator

import (
	"github.com/nala-lang/nala/internal/ast"
	"github.com/nala-lang/nala/internal/typesystem"
)

func (e *Evaluator) evalCallExpression(node *ast.CallExpression, scope int) Value {
	callee := e.evalExpression(node.Function, scope)
	if isError(callee) {
		return callee
	}

	fn, ok := callee.(*Function)
	if !ok {
		return e.located(node, newError(NotCallable,
			"cannot call a value of type %s", kindName(callee)))
	}

	args := make([]Value, 0, len(node.Arguments))
	for _, argExpr := range node.Arguments {
		arg := e.evalExpression(argExpr, scope)
		if isError(arg) {
			return arg
		}
		args = append(args, arg)
	}

	if len(args) != len(fn.Parameters) {
		return e.located(node, newError(ArityMismatch,
			"`%s` expects %d argument(s) but got %d", fn.Ident, len(fn.Parameters), len(args)))
	}

	argTypes := make([]typesystem.Type, len(args))
	for i, arg := range args {
		inferred, err := e.inferType(arg, scope)
		if err != nil {
			return e.located(node, err)
		}
		argTypes[i] = inferred
	}

	concrete, err := e.instantiateTypeParam(fn, argTypes)
	if err != nil {
		return e.located(node, err)
	}

	for i, param := range fn.Parameters {
		expected := param.Type
		if fn.TypeParam != "" && concrete != nil {
			expected = typesystem.MakeConcrete(expected, fn.TypeParam, concrete)
		}
		if !typesystem.AssignableTo(argTypes[i], expected) {
			return e.located(node, newError(TypeMismatch,
				"argument `%s` of `%s` expects %s but got %s",
				param.Ident, fn.Ident, expected.String(), argTypes[i].String()))
		}
	}

	var result Value
	if fn.Builtin != nil {
		argMap := make(map[string]Value, len(args))
		for i, param := range fn.Parameters {
			argMap[param.Ident] = args[i]
		}
		v, rerr := fn.Builtin(argMap, e.ctx)
		if rerr != nil {
			return e.located(node, rerr)
		}
		result = v
	} else {
		frame := e.scopes.NewScope(fn.ClosureScope)
		for i, param := range fn.Parameters {
			if err := e.scopes.AddBinding(param.Ident, frame, args[i], argTypes[i], false); err != nil {
				return e.located(node, err)
			}
		}
		result = e.evalBlock(fn.Body, frame)
		if isError(result) {
			return result
		}
	}

	returnType := fn.ReturnType
	if fn.TypeParam != "" {
		substitute := concrete
		if substitute == nil {
			substitute = typesystem.TPrimitive{Name: typesystem.Any}
		}
		returnType = typesystem.MakeConcrete(returnType, fn.TypeParam, substitute)
	}

	resultType, rerr := e.inferType(result, scope)
	if rerr != nil {
		return e.located(node, rerr)
	}
	if !typesystem.AssignableTo(resultType, returnType) {
		return e.located(node, newError(ReturnTypeMismatch,
			"`%s` declares return type %s but returned %s",
			fn.Ident, returnType.String(), resultType.String()))
	}

	return result
}

// instantiateTypeParam binds a function's type parameter against the first
// argument whose declared type mentions it. The argument must pin the
// variable to a concrete type; an element type still unknown (an empty
// array, a payload-less variant) cannot instantiate it.
func (e *Evaluator) instantiateTypeParam(fn *Function, argTypes []typesystem.Type) (typesystem.Type, *RuntimeError) {
	if fn.TypeParam == "" {
		return nil, nil
	}

	for i, param := range fn.Parameters {
		bound, ok := typesystem.Unify(param.Type, argTypes[i], fn.TypeParam)
		if !ok {
			continue
		}
		if typesystem.ContainsAny(bound) {
			return nil, newError(TypeUnknown,
				"cannot determine a concrete type for `%s` from an argument of type %s",
				fn.TypeParam, argTypes[i].String())
		}
		return bound, nil
	}

	return nil, nil
}
