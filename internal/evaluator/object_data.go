package evaluator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nala-lang/nala/internal/typesystem"
)

// Array is a shared, mutable ordered sequence. Multiple bindings may hold
// the same *Array; mutation through one alias is observed by all holders.
type Array struct {
	Elements []Value
}

func (a *Array) Kind() ValueKind { return ARRAY_VALUE }
func (a *Array) Inspect() string {
	return fmt.Sprintf("<Array[%d]>", len(a.Elements))
}

func (a *Array) Len() int {
	return len(a.Elements)
}

func (a *Array) Get(i int) Value {
	return a.Elements[i]
}

func (a *Array) Set(i int, v Value) {
	a.Elements[i] = v
}

// Object is a shared, mutable mapping from string keys to values. Insertion
// order is not observable; display sorts keys for determinism.
type Object struct {
	Fields map[string]Value
}

func NewObject() *Object {
	return &Object{Fields: make(map[string]Value)}
}

func (o *Object) Kind() ValueKind { return OBJECT_VALUE }
func (o *Object) Inspect() string {
	keys := make([]string, 0, len(o.Fields))
	for k := range o.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("{ ")
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("%s: %s, ", k, o.Fields[k].Inspect()))
	}
	sb.WriteString("}")
	return sb.String()
}

func (o *Object) Get(name string) (Value, bool) {
	v, ok := o.Fields[name]
	return v, ok
}

func (o *Object) Set(name string, v Value) {
	o.Fields[name] = v
}

// Variant is a tagged value of a user-defined enum type. Data is nil for
// payload-less variants.
type Variant struct {
	EnumIdent    string
	VariantIdent string
	Data         Value
}

func (v *Variant) Kind() ValueKind { return VARIANT_VALUE }
func (v *Variant) Inspect() string {
	if v.Data == nil {
		return fmt.Sprintf("%s::%s", v.EnumIdent, v.VariantIdent)
	}
	return fmt.Sprintf("%s::%s(%s)", v.EnumIdent, v.VariantIdent, v.Data.Inspect())
}

// TypeValue is a first-class type value, used only transiently while a
// declaration is being installed.
type TypeValue struct {
	Type typesystem.Type
}

func (t *TypeValue) Kind() ValueKind { return TYPE_VALUE }
func (t *TypeValue) Inspect() string { return t.Type.String() }

// BreakValue carries a value out of the innermost enclosing loop. It is a
// value, not an error, and unwinds blocks until a loop consumes it.
type BreakValue struct {
	Value Value
}

func (b *BreakValue) Kind() ValueKind { return BREAK_VALUE }
func (b *BreakValue) Inspect() string { return "<Break>" }
