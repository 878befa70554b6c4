package typesystem

import "testing"

func num() Type                { return TPrimitive{Name: Number} }
func str() Type                { return TPrimitive{Name: String} }
func anyT() Type               { return TPrimitive{Name: Any} }
func boolT() Type              { return TPrimitive{Name: Bool} }
func generic(name string) Type { return TGeneric{Ident: name} }

func arrayOf(elem Type) Type {
	return TComposite{Base: TPrimitive{Name: Array}, Args: []Type{elem}}
}

func optEnum() TEnum {
	return TEnum{
		Ident: "Opt",
		Variants: []EnumVariant{
			{Ident: "Some", Data: TGeneric{Ident: "A"}},
			{Ident: "None"},
		},
		TypeParam: "A",
	}
}

func TestPrimitiveAssignability(t *testing.T) {
	tests := []struct {
		name string
		from Type
		to   Type
		want bool
	}{
		{"same primitive", num(), num(), true},
		{"different primitives", num(), str(), false},
		{"any absorbs on the right", num(), anyT(), true},
		{"any absorbs on the left", anyT(), num(), true},
		{"bool to bool", boolT(), boolT(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AssignableTo(tt.from, tt.to); got != tt.want {
				t.Errorf("AssignableTo(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCompositeAssignability(t *testing.T) {
	tests := []struct {
		name string
		from Type
		to   Type
		want bool
	}{
		{"same element type", arrayOf(num()), arrayOf(num()), true},
		{"different element types", arrayOf(num()), arrayOf(str()), false},
		{"empty array against concrete", arrayOf(anyT()), arrayOf(num()), true},
		{"arity mismatch", arrayOf(num()), TComposite{Base: TPrimitive{Name: Array}, Args: []Type{num(), num()}}, false},
		{"nested composites", arrayOf(arrayOf(num())), arrayOf(arrayOf(num())), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AssignableTo(tt.from, tt.to); got != tt.want {
				t.Errorf("AssignableTo(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestStructWidthSubtyping(t *testing.T) {
	point := TStruct{Fields: []StructField{
		{Ident: "x", Type: num()},
		{Ident: "y", Type: num()},
	}}
	point3 := TStruct{Fields: []StructField{
		{Ident: "x", Type: num()},
		{Ident: "y", Type: num()},
		{Ident: "z", Type: num()},
	}}

	if !AssignableTo(point3, point) {
		t.Error("supplier with extra fields should be assignable")
	}
	if AssignableTo(point, point3) {
		t.Error("supplier missing a field should not be assignable")
	}
}

func TestEnumAssignability(t *testing.T) {
	opt := optEnum()
	other := TEnum{Ident: "Other", Variants: opt.Variants, TypeParam: "A"}

	if !AssignableTo(opt, opt) {
		t.Error("an enum should be assignable to itself")
	}
	if AssignableTo(opt, other) {
		t.Error("enums with different idents should not be assignable")
	}

	renamed := optEnum()
	renamed.Variants = []EnumVariant{
		{Ident: "Just", Data: TGeneric{Ident: "A"}},
		{Ident: "None"},
	}
	if AssignableTo(opt, renamed) {
		t.Error("enums with different variant names should not be assignable")
	}
}

func TestGenericIdentity(t *testing.T) {
	if !AssignableTo(generic("A"), generic("A")) {
		t.Error("a type variable should be assignable to itself")
	}
	if AssignableTo(generic("A"), generic("B")) {
		t.Error("distinct type variables should not be assignable")
	}
}

func TestEquality(t *testing.T) {
	if !Equal(num(), num()) {
		t.Error("Number should equal Number")
	}
	if Equal(anyT(), num()) {
		t.Error("Any should not equal a concrete primitive")
	}
	if !Equal(anyT(), anyT()) {
		t.Error("Any should equal Any")
	}
	if !Equal(arrayOf(num()), arrayOf(num())) {
		t.Error("Array<Number> should equal Array<Number>")
	}
}

func TestAssignabilityIsReflexive(t *testing.T) {
	types := []Type{
		num(), str(), boolT(),
		arrayOf(num()),
		optEnum(),
		TComposite{Base: optEnum(), Args: []Type{num()}},
		TStruct{Fields: []StructField{{Ident: "x", Type: num()}}},
	}
	for _, typ := range types {
		if !AssignableTo(typ, typ) {
			t.Errorf("expected %s to be assignable to itself", typ)
		}
	}
}

func TestMakeConcrete(t *testing.T) {
	substituted := MakeConcrete(generic("A"), "A", num())
	if !Equal(substituted, num()) {
		t.Fatalf("expected Number, got %s", substituted)
	}

	nested := MakeConcrete(arrayOf(generic("A")), "A", str())
	if !Equal(nested, arrayOf(str())) {
		t.Fatalf("expected Array<String>, got %s", nested)
	}

	untouched := MakeConcrete(arrayOf(generic("B")), "A", num())
	if !AssignableTo(untouched, arrayOf(generic("B"))) {
		t.Fatalf("substitution should not touch other variables, got %s", untouched)
	}

	enum := MakeConcrete(optEnum(), "A", num()).(TEnum)
	some, _ := enum.FindVariant("Some")
	if !Equal(some.Data, num()) {
		t.Fatalf("expected enum data type Number, got %s", some.Data)
	}
}

func TestUnify(t *testing.T) {
	bound, ok := Unify(generic("T"), num(), "T")
	if !ok || !Equal(bound, num()) {
		t.Fatalf("expected T bound to Number, got %v (%v)", bound, ok)
	}

	bound, ok = Unify(arrayOf(generic("T")), arrayOf(str()), "T")
	if !ok || !Equal(bound, str()) {
		t.Fatalf("expected T bound to String, got %v (%v)", bound, ok)
	}

	if _, ok := Unify(arrayOf(generic("T")), num(), "T"); ok {
		t.Error("unifying a composite pattern against a primitive should fail")
	}
}

func TestContainsAny(t *testing.T) {
	if !ContainsAny(arrayOf(anyT())) {
		t.Error("Array<Any> contains Any")
	}
	if ContainsAny(arrayOf(num())) {
		t.Error("Array<Number> does not contain Any")
	}
}
