package typesystem

// MakeConcrete replaces every occurrence of the type variable ident inside
// t with concrete. User-defined types carry at most one type parameter, so
// substitution is always of a single variable; nested composites, enum data
// types and struct field types are traversed.
func MakeConcrete(t Type, ident string, concrete Type) Type {
	switch typ := t.(type) {
	case TGeneric:
		if typ.Ident == ident {
			return concrete
		}
		return typ

	case TComposite:
		args := make([]Type, len(typ.Args))
		for i, arg := range typ.Args {
			args[i] = MakeConcrete(arg, ident, concrete)
		}
		return TComposite{Base: MakeConcrete(typ.Base, ident, concrete), Args: args}

	case TEnum:
		variants := make([]EnumVariant, len(typ.Variants))
		for i, v := range typ.Variants {
			data := v.Data
			if data != nil {
				data = MakeConcrete(data, ident, concrete)
			}
			variants[i] = EnumVariant{Ident: v.Ident, Data: data}
		}
		return TEnum{Ident: typ.Ident, Variants: variants, TypeParam: typ.TypeParam}

	case TStruct:
		fields := make([]StructField, len(typ.Fields))
		for i, f := range typ.Fields {
			fields[i] = StructField{Ident: f.Ident, Type: MakeConcrete(f.Type, ident, concrete)}
		}
		return TStruct{Fields: fields, TypeParam: typ.TypeParam}

	default:
		return typ
	}
}

// Unify matches actual against pattern and returns the concrete type bound
// to the type variable ident at the position where pattern mentions it.
// Used to instantiate a function's type parameter from the first argument
// whose declared type mentions the variable.
func Unify(pattern, actual Type, ident string) (Type, bool) {
	switch p := pattern.(type) {
	case TGeneric:
		if p.Ident == ident {
			return actual, true
		}
		return nil, false

	case TComposite:
		a, ok := actual.(TComposite)
		if !ok || len(a.Args) != len(p.Args) {
			return nil, false
		}
		if bound, ok := Unify(p.Base, a.Base, ident); ok {
			return bound, true
		}
		for i, arg := range p.Args {
			if bound, ok := Unify(arg, a.Args[i], ident); ok {
				return bound, true
			}
		}
		return nil, false

	default:
		return nil, false
	}
}
