package typesystem

import (
	"fmt"
	"strings"
)

// Type is the interface for all resolved types in the system.
type Type interface {
	String() string
}

// Primitive type names.
const (
	Number = "Number"
	Bool   = "Bool"
	String = "String"
	Void   = "Void"
	Break  = "Break"
	Array  = "Array"
	Func   = "Func"
	Any    = "Any"
)

// TPrimitive represents a built-in type (e.g. Number, Bool, Any).
type TPrimitive struct {
	Name string
}

func (t TPrimitive) String() string { return t.Name }

// IsPrimitiveName reports whether name denotes a built-in type.
func IsPrimitiveName(name string) bool {
	switch name {
	case Number, Bool, String, Void, Break, Array, Func, Any:
		return true
	default:
		return false
	}
}

// EnumVariant is a resolved variant of an enum type. Data is nil for
// variants that carry no payload.
type EnumVariant struct {
	Ident string
	Data  Type
}

// TEnum represents a user-defined sum type. TypeParam is the name of the
// single type parameter, or empty.
type TEnum struct {
	Ident     string
	Variants  []EnumVariant
	TypeParam string
}

func (t TEnum) String() string { return t.Ident }

// FindVariant returns the declared variant with the given name.
func (t TEnum) FindVariant(name string) (EnumVariant, bool) {
	for _, v := range t.Variants {
		if v.Ident == name {
			return v, true
		}
	}
	return EnumVariant{}, false
}

// StructField is a resolved field of a struct type.
type StructField struct {
	Ident string
	Type  Type
}

// TStruct represents a user-defined product type. Fields preserve
// declaration order. TypeParam is the name of the single type parameter,
// or empty.
type TStruct struct {
	Fields    []StructField
	TypeParam string
}

func (t TStruct) String() string {
	fields := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		fields = append(fields, fmt.Sprintf("%s: %s", f.Ident, f.Type.String()))
	}
	return fmt.Sprintf("{ %s }", strings.Join(fields, ", "))
}

// Field returns the field with the given name.
func (t TStruct) Field(name string) (StructField, bool) {
	for _, f := range t.Fields {
		if f.Ident == name {
			return f, true
		}
	}
	return StructField{}, false
}

// TGeneric represents a bound type variable.
type TGeneric struct {
	Ident string
}

func (t TGeneric) String() string { return t.Ident }

// TComposite represents the application of a type constructor to type
// arguments, e.g. Array<Number>, Func<Number, String>, Option<Number>.
type TComposite struct {
	Base Type
	Args []Type
}

func (t TComposite) String() string {
	args := make([]string, 0, len(t.Args))
	for _, arg := range t.Args {
		args = append(args, arg.String())
	}
	return fmt.Sprintf("%s<%s>", t.Base.String(), strings.Join(args, ", "))
}

// IsAny reports whether t is the Any primitive.
func IsAny(t Type) bool {
	p, ok := t.(TPrimitive)
	return ok && p.Name == Any
}

// ContainsAny reports whether t contains Any anywhere in its structure.
// Used to detect types inferred from empty arrays or payload-less variants,
// which cannot instantiate a type parameter.
func ContainsAny(t Type) bool {
	switch typ := t.(type) {
	case TPrimitive:
		return typ.Name == Any
	case TComposite:
		if ContainsAny(typ.Base) {
			return true
		}
		for _, arg := range typ.Args {
			if ContainsAny(arg) {
				return true
			}
		}
		return false
	case TEnum:
		for _, v := range typ.Variants {
			if v.Data != nil && ContainsAny(v.Data) {
				return true
			}
		}
		return false
	case TStruct:
		for _, f := range typ.Fields {
			if ContainsAny(f.Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
