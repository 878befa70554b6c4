package evaluator

import (
	"github.com/nala-lang/nala/internal/ast"
)

func (e *Evaluator) evalIfStatement(node *ast.IfStatement, scope int) Value {
	condition := e.evalExpression(node.Condition, scope)
	if isError(condition) {
		return condition
	}

	boolean, ok := condition.(*Boolean)
	if !ok {
		return e.located(node, newError(TypeMismatch,
			"if condition does not resolve to a Bool"))
	}

	if boolean.Value {
		branchScope := e.scopes.NewScope(scope)
		return e.evalBlock(node.Consequence, branchScope)
	}

	switch alt := node.Alternative.(type) {
	case *ast.IfStatement:
		return e.evalIfStatement(alt, scope)
	case *ast.BlockStatement:
		branchScope := e.scopes.NewScope(scope)
		return e.evalBlock(alt, branchScope)
	default:
		return VOID
	}
}

func (e *Evaluator) evalMatchStatement(node *ast.MatchStatement, scope int) Value {
	v := e.evalExpression(node.Expression, scope)
	if isError(v) {
		return v
	}

	for _, arm := range node.Arms {
		matched, bindings := matchPattern(arm.Pattern, v)
		if !matched {
			continue
		}

		armScope := e.scopes.NewScope(scope)
		for ident, bound := range bindings {
			inferred, err := e.inferType(bound, scope)
			if err != nil {
				return e.located(node, err)
			}
			if err := e.scopes.AddBinding(ident, armScope, bound, inferred, false); err != nil {
				return e.located(node, err)
			}
		}

		if block, ok := arm.Body.(*ast.BlockStatement); ok {
			return e.evalBlock(block, armScope)
		}
		return e.evalStatement(arm.Body, armScope)
	}

	return e.located(node, newError(MatchNoArm,
		"no pattern matched value %s", v.Inspect()))
}

// matchPattern tests a pattern against a value. On success it returns the
// bindings the pattern introduces for the arm's scope. Arms are tested in
// declaration order; the first success is taken.
func matchPattern(pattern ast.Pattern, v Value) (bool, map[string]Value) {
	bindings := make(map[string]Value)

	switch p := pattern.(type) {
	case *ast.WildcardPattern:
		return true, bindings

	case *ast.IdentifierPattern:
		bindings[p.Value] = v
		return true, bindings

	case *ast.EnumPattern:
		variant, ok := v.(*Variant)
		if !ok {
			return false, bindings
		}
		if variant.EnumIdent != p.Enum.Value || variant.VariantIdent != p.Variant.Value {
			return false, bindings
		}
		if p.Binding == nil {
			return variant.Data == nil, bindings
		}
		if variant.Data == nil {
			return false, bindings
		}
		bindings[p.Binding.Value] = variant.Data
		return true, bindings

	default:
		return false, bindings
	}
}
