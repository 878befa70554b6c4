package evaluator

import (
	"sort"

	"github.com/nala-lang/nala/internal/typesystem"
)

// inferType computes the runtime type of a value. Scope access is needed
// for variants, whose enum declaration determines whether the result is
// generic. Empty arrays are typed Array<Any>; the deferred check fires at
// the first operation that demands a concrete element type.
func (e *Evaluator) inferType(v Value, scope int) (typesystem.Type, *RuntimeError) {
	switch val := v.(type) {
	case *Num:
		return typesystem.TPrimitive{Name: typesystem.Number}, nil
	case *Boolean:
		return typesystem.TPrimitive{Name: typesystem.Bool}, nil
	case *String:
		return typesystem.TPrimitive{Name: typesystem.String}, nil
	case *Void:
		return typesystem.TPrimitive{Name: typesystem.Void}, nil

	case *BreakValue:
		inner, err := e.inferType(val.Value, scope)
		if err != nil {
			return nil, err
		}
		return typesystem.TComposite{
			Base: typesystem.TPrimitive{Name: typesystem.Break},
			Args: []typesystem.Type{inner},
		}, nil

	case *Array:
		elem := typesystem.Type(typesystem.TPrimitive{Name: typesystem.Any})
		if val.Len() > 0 {
			inferred, err := e.inferType(val.Get(0), scope)
			if err != nil {
				return nil, err
			}
			elem = inferred
		}
		return typesystem.TComposite{
			Base: typesystem.TPrimitive{Name: typesystem.Array},
			Args: []typesystem.Type{elem},
		}, nil

	case *Object:
		keys := make([]string, 0, len(val.Fields))
		for k := range val.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fields := make([]typesystem.StructField, 0, len(keys))
		for _, k := range keys {
			fieldType, err := e.inferType(val.Fields[k], scope)
			if err != nil {
				return nil, err
			}
			fields = append(fields, typesystem.StructField{Ident: k, Type: fieldType})
		}
		return typesystem.TStruct{Fields: fields}, nil

	case *Function:
		return val.FuncType(), nil

	case *Variant:
		return e.inferVariantType(val, scope)

	case *TypeValue:
		return typesystem.TPrimitive{Name: typesystem.Any}, nil

	default:
		return nil, newError(TypeUnknown, "cannot determine the type of %s", v.Inspect())
	}
}

// inferVariantType looks up the variant's enum declaration. For a generic
// enum the single type argument is inferred from the payload when the
// matched variant's declared data type is the type parameter itself;
// otherwise it stays Any.
func (e *Evaluator) inferVariantType(v *Variant, scope int) (typesystem.Type, *RuntimeError) {
	binding, err := e.scopes.GetType(v.EnumIdent, scope)
	if err != nil {
		return nil, err
	}

	enumBinding, ok := binding.(typesystem.EnumBinding)
	if !ok {
		return nil, newError(NotAnEnum, "`%s` is not an enum", v.EnumIdent)
	}

	enumType := typesystem.TEnum{
		Ident:     v.EnumIdent,
		Variants:  enumBinding.Variants,
		TypeParam: enumBinding.TypeParam,
	}

	if enumBinding.TypeParam == "" {
		return enumType, nil
	}

	arg := typesystem.Type(typesystem.TPrimitive{Name: typesystem.Any})
	if v.Data != nil {
		if declared, found := enumBinding.FindVariant(v.VariantIdent); found {
			if generic, ok := declared.Data.(typesystem.TGeneric); ok && generic.Ident == enumBinding.TypeParam {
				inferred, err := e.inferType(v.Data, scope)
				if err != nil {
					return nil, err
				}
				arg = inferred
			}
		}
	}

	return typesystem.TComposite{Base: enumType, Args: []typesystem.Type{arg}}, nil
}
