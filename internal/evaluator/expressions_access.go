package evaluator

import (
	"github.com/nala-lang/nala/internal/ast"
)

func (e *Evaluator) evalIndexExpression(node *ast.IndexExpression, scope int) Value {
	left := e.evalExpression(node.Left, scope)
	if isError(left) {
		return left
	}

	index := e.evalExpression(node.Index, scope)
	if isError(index) {
		return index
	}

	switch container := left.(type) {
	case *Array:
		num, ok := index.(*Num)
		if !ok || !num.IsInteger() {
			return e.located(node, newError(TypeMismatch,
				"array index does not resolve to an integer Number"))
		}
		i := int(num.Value)
		if i < 0 || i >= container.Len() {
			return e.located(node, newError(IndexOutOfRange,
				"index %d is out of range for array of length %d", i, container.Len()))
		}
		return container.Get(i)

	case *Object:
		key, ok := index.(*String)
		if !ok {
			return e.located(node, newError(TypeMismatch,
				"object index does not resolve to a String"))
		}
		v, found := container.Get(key.Value)
		if !found {
			return e.located(node, newError(UnknownMember,
				"object has no member `%s`", key.Value))
		}
		return v

	default:
		return e.located(node, newError(NotIndexable,
			"cannot index into a value of type %s", kindName(left)))
	}
}

func (e *Evaluator) evalMemberAccessExpression(node *ast.MemberAccessExpression, scope int) Value {
	parent := e.evalExpression(node.Object, scope)
	if isError(parent) {
		return parent
	}

	object, ok := parent.(*Object)
	if !ok {
		return e.located(node, newError(TypeMismatch,
			"cannot access member `%s` of a value of type %s", node.Member.Value, kindName(parent)))
	}

	v, found := object.Get(node.Member.Value)
	if !found {
		return e.located(node, newError(UnknownMember,
			"object has no member `%s`", node.Member.Value))
	}
	return v
}
