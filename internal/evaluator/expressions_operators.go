package evaluator

import (
	"github.com/nala-lang/nala/internal/ast"
	"github.com/nala-lang/nala/internal/typesystem"
)

func (e *Evaluator) evalInfixExpression(node *ast.InfixExpression, scope int) Value {
	left := e.evalExpression(node.Left, scope)
	if isError(left) {
		return left
	}
	right := e.evalExpression(node.Right, scope)
	if isError(right) {
		return right
	}

	var result Value
	switch node.Operator {
	case "==":
		result = e.evalEquals(left, right, scope)
	case "<", ">":
		result = e.evalComparison(node.Operator, left, right, scope)
	case "+":
		result = e.evalAdd(left, right)
	case "-", "*", "/":
		result = e.evalArithmetic(node.Operator, left, right)
	default:
		result = newError(OperationUnsupported, "unknown operator `%s`", node.Operator)
	}

	if err, ok := result.(*RuntimeError); ok {
		return e.located(node, err)
	}
	return result
}

// evalEquals requires both operands to have the same inferred type, then
// compares content. Equality is defined for Num, Bool, String and Variant;
// shared containers and functions have no equality.
func (e *Evaluator) evalEquals(left, right Value, scope int) Value {
	if err := e.checkOperandTypes("==", left, right, scope); err != nil {
		return err
	}

	equal, err := valuesEqual(left, right)
	if err != nil {
		return err
	}
	return nativeBoolToBooleanValue(equal)
}

func valuesEqual(left, right Value) (bool, *RuntimeError) {
	switch l := left.(type) {
	case *Num:
		r, ok := right.(*Num)
		return ok && l.Value == r.Value, nil
	case *Boolean:
		r, ok := right.(*Boolean)
		return ok && l.Value == r.Value, nil
	case *String:
		r, ok := right.(*String)
		return ok && l.Value == r.Value, nil
	case *Variant:
		r, ok := right.(*Variant)
		if !ok {
			return false, nil
		}
		return variantsEqual(l, r)
	default:
		return false, newError(OperationUnsupported,
			"`==` is not supported for values of type %s", kindName(left))
	}
}

func variantsEqual(left, right *Variant) (bool, *RuntimeError) {
	if left.EnumIdent != right.EnumIdent || left.VariantIdent != right.VariantIdent {
		return false, nil
	}
	if (left.Data == nil) != (right.Data == nil) {
		return false, nil
	}
	if left.Data == nil {
		return true, nil
	}
	return valuesEqual(left.Data, right.Data)
}

func (e *Evaluator) evalComparison(operator string, left, right Value, scope int) Value {
	if err := e.checkOperandTypes(operator, left, right, scope); err != nil {
		return err
	}

	var less, equal bool
	switch l := left.(type) {
	case *Num:
		r := right.(*Num)
		less, equal = l.Value < r.Value, l.Value == r.Value
	case *String:
		r := right.(*String)
		less, equal = l.Value < r.Value, l.Value == r.Value
	case *Boolean:
		// false < true
		r := right.(*Boolean)
		less, equal = !l.Value && r.Value, l.Value == r.Value
	default:
		return newError(OperationUnsupported,
			"`%s` is not supported for values of type %s", operator, kindName(left))
	}

	if operator == "<" {
		return nativeBoolToBooleanValue(less)
	}
	return nativeBoolToBooleanValue(!less && !equal)
}

// checkOperandTypes enforces that both comparison operands share one
// resolved type.
func (e *Evaluator) checkOperandTypes(operator string, left, right Value, scope int) *RuntimeError {
	leftType, err := e.inferType(left, scope)
	if err != nil {
		return err
	}
	rightType, err := e.inferType(right, scope)
	if err != nil {
		return err
	}
	if !typesystem.Equal(leftType, rightType) {
		return newError(OperationUnsupported,
			"`%s` is not supported between %s and %s",
			operator, leftType.String(), rightType.String())
	}
	return nil
}

// evalAdd adds numbers; when either operand is a String the other is
// coerced through its display form and the result is a concatenation.
func (e *Evaluator) evalAdd(left, right Value) Value {
	if l, ok := left.(*Num); ok {
		if r, ok := right.(*Num); ok {
			return &Num{Value: l.Value + r.Value}
		}
	}

	if l, ok := left.(*String); ok {
		return &String{Value: l.Value + right.Inspect()}
	}
	if r, ok := right.(*String); ok {
		return &String{Value: left.Inspect() + r.Value}
	}

	return newError(OperationUnsupported,
		"`+` is not supported between %s and %s", kindName(left), kindName(right))
}

func (e *Evaluator) evalArithmetic(operator string, left, right Value) Value {
	l, ok := left.(*Num)
	if !ok {
		return newError(OperationUnsupported,
			"`%s` is not supported for values of type %s", operator, kindName(left))
	}
	r, ok := right.(*Num)
	if !ok {
		return newError(OperationUnsupported,
			"`%s` is not supported for values of type %s", operator, kindName(right))
	}

	switch operator {
	case "-":
		return &Num{Value: l.Value - r.Value}
	case "*":
		return &Num{Value: l.Value * r.Value}
	case "/":
		if r.Value == 0 {
			return newError(DivideByZero, "cannot divide by zero")
		}
		return &Num{Value: l.Value / r.Value}
	default:
		return newError(OperationUnsupported, "unknown operator `%s`", operator)
	}
}
