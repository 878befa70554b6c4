package evaluator

import (
	"github.com/nala-lang/nala/internal/typesystem"
)

// Binding is a value-namespace entry: the bound value, the type it was
// declared with (annotated or inferred), and whether it may be mutated.
type Binding struct {
	Value        Value
	DeclaredType typesystem.Type
	Mutable      bool
}

// Scope holds a value namespace and a disjoint type namespace. Scopes form
// a forest addressed by integer ids; every scope except a root has a
// parent. Closures capture a scope id, which keeps the scope and its
// ancestors alive in the arena for as long as the closure value lives.
type Scope struct {
	parent int // -1 for a root scope
	values map[string]Binding
	types  map[string]typesystem.TypeBinding
}

// Scopes is the scope arena. Ids are dense indexes and are never reused.
type Scopes struct {
	scopes []*Scope
}

func NewScopes() *Scopes {
	return &Scopes{}
}

// NewScope allocates a fresh scope. Pass -1 for a root scope.
func (s *Scopes) NewScope(parent int) int {
	s.scopes = append(s.scopes, &Scope{
		parent: parent,
		values: make(map[string]Binding),
		types:  make(map[string]typesystem.TypeBinding),
	})
	return len(s.scopes) - 1
}

// AddBinding installs a value binding in the given scope. Shadowing an
// outer binding is allowed; rebinding a local one is not.
func (s *Scopes) AddBinding(ident string, id int, v Value, declared typesystem.Type, mutable bool) *RuntimeError {
	scope := s.scopes[id]
	if _, exists := scope.values[ident]; exists {
		return newError(AlreadyBound, "binding for `%s` already exists in local scope", ident)
	}
	scope.values[ident] = Binding{Value: v, DeclaredType: declared, Mutable: mutable}
	return nil
}

// AddTypeBinding installs a type binding in the given scope.
func (s *Scopes) AddTypeBinding(ident string, id int, binding typesystem.TypeBinding) *RuntimeError {
	scope := s.scopes[id]
	if _, exists := scope.types[ident]; exists {
		return newError(AlreadyBound, "type binding for `%s` already exists in local scope", ident)
	}
	scope.types[ident] = binding
	return nil
}

// GetValue walks the parent chain and returns the first binding for ident.
func (s *Scopes) GetValue(ident string, id int) (Value, *RuntimeError) {
	for id >= 0 {
		scope := s.scopes[id]
		if binding, ok := scope.values[ident]; ok {
			return binding.Value, nil
		}
		id = scope.parent
	}
	return nil, newError(UnknownIdent, "unknown identifier `%s`", ident)
}

// GetType walks the parent chain in the type namespace.
func (s *Scopes) GetType(ident string, id int) (typesystem.TypeBinding, *RuntimeError) {
	for id >= 0 {
		scope := s.scopes[id]
		if binding, ok := scope.types[ident]; ok {
			return binding, nil
		}
		id = scope.parent
	}
	return nil, newError(UnknownIdent, "unknown type `%s`", ident)
}

// MutateValue updates the binding for ident in the scope where it was
// declared. newType is the runtime type of the new value; it must be
// assignable to the binding's declared type.
func (s *Scopes) MutateValue(ident string, id int, v Value, newType typesystem.Type) (Value, *RuntimeError) {
	for id >= 0 {
		scope := s.scopes[id]
		if binding, ok := scope.values[ident]; ok {
			if !binding.Mutable {
				return nil, newError(Immutable, "cannot re-assign immutable binding `%s`", ident)
			}
			if !typesystem.AssignableTo(newType, binding.DeclaredType) {
				return nil, newError(TypeMismatch,
					"cannot assign a value of type %s where %s is expected",
					newType.String(), binding.DeclaredType.String())
			}
			binding.Value = v
			scope.values[ident] = binding
			return v, nil
		}
		id = scope.parent
	}
	return nil, newError(UnknownIdent, "unknown identifier `%s`", ident)
}

// BindingExistsLocal reports whether ident is bound in the scope itself.
func (s *Scopes) BindingExistsLocal(ident string, id int) bool {
	_, ok := s.scopes[id].values[ident]
	return ok
}

// BindingExists reports whether ident is bound in the scope or any ancestor.
func (s *Scopes) BindingExists(ident string, id int) bool {
	for id >= 0 {
		scope := s.scopes[id]
		if _, ok := scope.values[ident]; ok {
			return true
		}
		id = scope.parent
	}
	return false
}
