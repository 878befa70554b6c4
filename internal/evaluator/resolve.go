package evaluator

import (
	"github.com/nala-lang/nala/internal/ast"
	"github.com/nala-lang/nala/internal/typesystem"
)

// resolveTypeLiteral resolves a syntactic type annotation against the type
// namespace of the given scope. Primitive names resolve directly; other
// names must have a type binding in scope.
func (e *Evaluator) resolveTypeLiteral(lit *ast.TypeLiteral, scope int) (typesystem.Type, *RuntimeError) {
	base, err := e.resolveTypeName(lit, scope)
	if err != nil {
		return nil, err
	}

	if len(lit.Args) == 0 {
		return base, nil
	}

	args := make([]typesystem.Type, 0, len(lit.Args))
	for _, argLit := range lit.Args {
		arg, err := e.resolveTypeLiteral(argLit, scope)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	return typesystem.TComposite{Base: base, Args: args}, nil
}

func (e *Evaluator) resolveTypeName(lit *ast.TypeLiteral, scope int) (typesystem.Type, *RuntimeError) {
	if typesystem.IsPrimitiveName(lit.Name) {
		return typesystem.TPrimitive{Name: lit.Name}, nil
	}

	binding, err := e.scopes.GetType(lit.Name, scope)
	if err != nil {
		err.Line = lit.Token.Line
		err.Column = lit.Token.Column
		return nil, err
	}

	switch b := binding.(type) {
	case typesystem.EnumBinding:
		return typesystem.TEnum{Ident: lit.Name, Variants: b.Variants, TypeParam: b.TypeParam}, nil
	case typesystem.StructBinding:
		return typesystem.TStruct{Fields: b.Fields, TypeParam: b.TypeParam}, nil
	case typesystem.GenericBinding:
		return typesystem.TGeneric{Ident: b.Ident}, nil
	case typesystem.PrimitiveBinding:
		return typesystem.TPrimitive{Name: b.Name}, nil
	default:
		return nil, newError(UnknownIdent, "unknown type `%s`", lit.Name)
	}
}
