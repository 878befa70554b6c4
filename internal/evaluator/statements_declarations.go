package evaluator

import (
	"github.com/nala-lang/nala/internal/ast"
	"github.com/nala-lang/nala/internal/typesystem"
)

func (e *Evaluator) evalDeclareStatement(node *ast.DeclareStatement, scope int) Value {
	v := e.evalExpression(node.Value, scope)
	if isError(v) {
		return v
	}

	if v.Kind() == VOID_VALUE {
		return e.located(node, newError(VoidAssignment,
			"cannot declare a variable with a value of type Void"))
	}

	inferred, err := e.inferType(v, scope)
	if err != nil {
		return e.located(node, err)
	}

	declared := inferred
	if node.TypeAnnotation != nil {
		annotated, err := e.resolveTypeLiteral(node.TypeAnnotation, scope)
		if err != nil {
			return e.located(node, err)
		}
		if !typesystem.AssignableTo(inferred, annotated) {
			return e.located(node, newError(TypeMismatch,
				"cannot declare `%s` of type %s with a value of type %s",
				node.Name.Value, annotated.String(), inferred.String()))
		}
		declared = annotated
	}

	if err := e.scopes.AddBinding(node.Name.Value, scope, v, declared, node.Mutable); err != nil {
		return e.located(node, err)
	}
	return VOID
}

func (e *Evaluator) evalAssignStatement(node *ast.AssignStatement, scope int) Value {
	v := e.evalExpression(node.Value, scope)
	if isError(v) {
		return v
	}

	if v.Kind() == VOID_VALUE {
		return e.located(node, newError(VoidAssignment, "cannot assign a value of type Void"))
	}

	switch target := node.Target.(type) {
	case *ast.Identifier:
		inferred, err := e.inferType(v, scope)
		if err != nil {
			return e.located(node, err)
		}
		if _, err := e.scopes.MutateValue(target.Value, scope, v, inferred); err != nil {
			return e.located(node, err)
		}
		return VOID

	case *ast.IndexExpression:
		return e.evalIndexAssign(target, v, scope)

	case *ast.MemberAccessExpression:
		return e.evalMemberAssign(target, v, scope)

	default:
		return e.located(node, newError(OperationUnsupported, "cannot assign to this expression"))
	}
}

func (e *Evaluator) evalIndexAssign(target *ast.IndexExpression, v Value, scope int) Value {
	container := e.evalExpression(target.Left, scope)
	if isError(container) {
		return container
	}

	index := e.evalExpression(target.Index, scope)
	if isError(index) {
		return index
	}

	switch c := container.(type) {
	case *Array:
		num, ok := index.(*Num)
		if !ok || !num.IsInteger() {
			return e.located(target, newError(TypeMismatch,
				"array index does not resolve to an integer Number"))
		}
		i := int(num.Value)
		if i < 0 || i >= c.Len() {
			return e.located(target, newError(IndexOutOfRange,
				"index %d is out of range for array of length %d", i, c.Len()))
		}
		c.Set(i, v)
		return VOID

	case *Object:
		key, ok := index.(*String)
		if !ok {
			return e.located(target, newError(TypeMismatch,
				"object index does not resolve to a String"))
		}
		c.Set(key.Value, v)
		return VOID

	default:
		return e.located(target, newError(NotIndexable,
			"cannot index into a value of type %s", kindName(container)))
	}
}

func (e *Evaluator) evalMemberAssign(target *ast.MemberAccessExpression, v Value, scope int) Value {
	parent := e.evalExpression(target.Object, scope)
	if isError(parent) {
		return parent
	}

	object, ok := parent.(*Object)
	if !ok {
		return e.located(target, newError(TypeMismatch,
			"cannot access member `%s` of a value of type %s", target.Member.Value, kindName(parent)))
	}

	object.Set(target.Member.Value, v)
	return VOID
}

func (e *Evaluator) evalFunctionStatement(node *ast.FunctionStatement, scope int) Value {
	resolutionScope := scope
	typeParam := ""
	if node.TypeParam != nil {
		typeParam = node.TypeParam.Value
		resolutionScope = e.scopes.NewScope(scope)
		if err := e.scopes.AddTypeBinding(typeParam, resolutionScope, typesystem.GenericBinding{Ident: typeParam}); err != nil {
			return e.located(node, err)
		}
	}

	params := make([]Param, 0, len(node.Parameters))
	for _, p := range node.Parameters {
		paramType, err := e.resolveTypeLiteral(p.Type, resolutionScope)
		if err != nil {
			return e.located(node, err)
		}
		params = append(params, Param{Ident: p.Name.Value, Type: paramType})
	}

	returnType := typesystem.Type(typesystem.TPrimitive{Name: typesystem.Void})
	if node.ReturnType != nil {
		resolved, err := e.resolveTypeLiteral(node.ReturnType, resolutionScope)
		if err != nil {
			return e.located(node, err)
		}
		returnType = resolved
	}

	fn := &Function{
		Ident:        node.Name.Value,
		TypeParam:    typeParam,
		Parameters:   params,
		ReturnType:   returnType,
		Body:         node.Body,
		ClosureScope: scope,
	}

	if err := e.scopes.AddBinding(node.Name.Value, scope, fn, fn.FuncType(), false); err != nil {
		return e.located(node, err)
	}
	return VOID
}

func (e *Evaluator) evalEnumStatement(node *ast.EnumStatement, scope int) Value {
	resolutionScope := scope
	typeParam := ""
	if node.TypeParam != nil {
		typeParam = node.TypeParam.Value
		resolutionScope = e.scopes.NewScope(scope)
		if err := e.scopes.AddTypeBinding(typeParam, resolutionScope, typesystem.GenericBinding{Ident: typeParam}); err != nil {
			return e.located(node, err)
		}
	}

	variants := make([]typesystem.EnumVariant, 0, len(node.Variants))
	for _, v := range node.Variants {
		variant := typesystem.EnumVariant{Ident: v.Name.Value}
		if v.DataType != nil {
			dataType, err := e.resolveTypeLiteral(v.DataType, resolutionScope)
			if err != nil {
				return e.located(node, err)
			}
			variant.Data = dataType
		}
		variants = append(variants, variant)
	}

	binding := typesystem.EnumBinding{Variants: variants, TypeParam: typeParam}
	if err := e.scopes.AddTypeBinding(node.Name.Value, scope, binding); err != nil {
		return e.located(node, err)
	}
	return VOID
}

func (e *Evaluator) evalStructStatement(node *ast.StructStatement, scope int) Value {
	resolutionScope := scope
	typeParam := ""
	if node.TypeParam != nil {
		typeParam = node.TypeParam.Value
		resolutionScope = e.scopes.NewScope(scope)
		if err := e.scopes.AddTypeBinding(typeParam, resolutionScope, typesystem.GenericBinding{Ident: typeParam}); err != nil {
			return e.located(node, err)
		}
	}

	fields := make([]typesystem.StructField, 0, len(node.Fields))
	for _, f := range node.Fields {
		fieldType, err := e.resolveTypeLiteral(f.Type, resolutionScope)
		if err != nil {
			return e.located(node, err)
		}
		fields = append(fields, typesystem.StructField{Ident: f.Name.Value, Type: fieldType})
	}

	binding := typesystem.StructBinding{Fields: fields, TypeParam: typeParam}
	if err := e.scopes.AddTypeBinding(node.Name.Value, scope, binding); err != nil {
		return e.located(node, err)
	}
	return VOID
}

// located stamps an error with the statement's source position if it does
// not already carry one.
func (e *Evaluator) located(node ast.Node, err *RuntimeError) *RuntimeError {
	if err.Line == 0 {
		tok := node.GetToken()
		err.Line = tok.Line
		err.Column = tok.Column
	}
	return err
}

func kindName(v Value) string {
	return string(v.Kind())
}
