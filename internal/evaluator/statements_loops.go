package evaluator

import (
	"github.com/nala-lang/nala/internal/ast"
)

// evalForStatement iterates an array. The length is snapshotted at loop
// entry while elements are read through the shared reference, so mutations
// through aliases during the loop are visible to later iterations.
func (e *Evaluator) evalForStatement(node *ast.ForStatement, scope int) Value {
	iterable := e.evalExpression(node.Iterable, scope)
	if isError(iterable) {
		return iterable
	}

	array, ok := iterable.(*Array)
	if !ok {
		return e.located(node, newError(TypeMismatch,
			"for loop iterable does not resolve to an Array"))
	}

	length := array.Len()
	for i := 0; i < length; i++ {
		if i >= array.Len() {
			break
		}
		elem := array.Get(i)

		elemType, err := e.inferType(elem, scope)
		if err != nil {
			return e.located(node, err)
		}

		iterScope := e.scopes.NewScope(scope)
		if err := e.scopes.AddBinding(node.ItemName.Value, iterScope, elem, elemType, false); err != nil {
			return e.located(node, err)
		}

		result := e.evalBlock(node.Body, iterScope)
		if isError(result) {
			return result
		}
		if breakValue, ok := result.(*BreakValue); ok {
			return breakValue.Value
		}
	}

	return VOID
}

func (e *Evaluator) evalWilesStatement(node *ast.WilesStatement, scope int) Value {
	for {
		condition := e.evalExpression(node.Condition, scope)
		if isError(condition) {
			return condition
		}

		boolean, ok := condition.(*Boolean)
		if !ok {
			return e.located(node, newError(TypeMismatch,
				"wiles condition does not resolve to a Bool"))
		}
		if !boolean.Value {
			return VOID
		}

		iterScope := e.scopes.NewScope(scope)
		result := e.evalBlock(node.Body, iterScope)
		if isError(result) {
			return result
		}
		if breakValue, ok := result.(*BreakValue); ok {
			return breakValue.Value
		}
	}
}

func (e *Evaluator) evalBreakStatement(node *ast.BreakStatement, scope int) Value {
	v := e.evalExpression(node.Value, scope)
	if isError(v) {
		return v
	}
	return &BreakValue{Value: v}
}
