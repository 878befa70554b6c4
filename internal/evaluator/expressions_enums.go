package evaluator

import (
	"github.com/nala-lang/nala/internal/ast"
	"github.com/nala-lang/nala/internal/typesystem"
)

// evalEnumVariantExpression constructs a Variant value. For data variants
// the payload's inferred type is checked against the variant's declared
// data type; a data type that is the enum's type parameter accepts any
// payload, which then fixes the enum's type argument.
func (e *Evaluator) evalEnumVariantExpression(node *ast.EnumVariantExpression, scope int) Value {
	binding, err := e.scopes.GetType(node.Enum.Value, scope)
	if err != nil {
		return e.located(node, err)
	}

	enumBinding, ok := binding.(typesystem.EnumBinding)
	if !ok {
		return e.located(node, newError(NotAnEnum, "`%s` is not an enum", node.Enum.Value))
	}

	declared, found := enumBinding.FindVariant(node.Variant.Value)
	if !found {
		return e.located(node, newError(UnknownMember,
			"enum `%s` has no variant `%s`", node.Enum.Value, node.Variant.Value))
	}

	if node.Data == nil {
		return &Variant{EnumIdent: node.Enum.Value, VariantIdent: node.Variant.Value}
	}

	if declared.Data == nil {
		return e.located(node, newError(TypeMismatch,
			"variant `%s::%s` does not carry data", node.Enum.Value, node.Variant.Value))
	}

	data := e.evalExpression(node.Data, scope)
	if isError(data) {
		return data
	}

	dataType, rerr := e.inferType(data, scope)
	if rerr != nil {
		return e.located(node, rerr)
	}

	expected := declared.Data
	if enumBinding.TypeParam != "" {
		expected = typesystem.MakeConcrete(expected, enumBinding.TypeParam, dataType)
	}
	if !typesystem.AssignableTo(dataType, expected) {
		return e.located(node, newError(TypeMismatch,
			"variant `%s::%s` expects data of type %s but got %s",
			node.Enum.Value, node.Variant.Value, expected.String(), dataType.String()))
	}

	return &Variant{
		EnumIdent:    node.Enum.Value,
		VariantIdent: node.Variant.Value,
		Data:         data,
	}
}
