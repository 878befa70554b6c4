package typesystem

// TypeBinding is the scope-resident form of a declared type. The value and
// type namespaces of a scope are disjoint; these bindings live in the type
// namespace.
type TypeBinding interface {
	typeBinding()
}

// EnumBinding is an installed enum declaration.
type EnumBinding struct {
	Variants  []EnumVariant
	TypeParam string
}

func (EnumBinding) typeBinding() {}

// FindVariant returns the declared variant with the given name.
func (b EnumBinding) FindVariant(name string) (EnumVariant, bool) {
	for _, v := range b.Variants {
		if v.Ident == name {
			return v, true
		}
	}
	return EnumVariant{}, false
}

// StructBinding is an installed struct declaration.
type StructBinding struct {
	Fields    []StructField
	TypeParam string
}

func (StructBinding) typeBinding() {}

// GenericBinding marks an ident as a bound type variable for the duration
// of a declaration that carries a type parameter.
type GenericBinding struct {
	Ident string
}

func (GenericBinding) typeBinding() {}

// PrimitiveBinding aliases a built-in type under another name. Built-in type
// names resolve before any binding is consulted, so they cannot be shadowed.
type PrimitiveBinding struct {
	Name string
}

func (PrimitiveBinding) typeBinding() {}
