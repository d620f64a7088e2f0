package model

import (
	"strings"

	"github.com/apilens/javamodel/types"
)

// ParameterItem is one formal parameter of a method
type ParameterItem struct {
	Name string
	Type types.Type
}

// MethodItem is a single method or constructor declaration. Methods are
// immutable once the model is constructed; the super-method set and the
// override-requirement answer are computed lazily on first access and cached
// for the lifetime of the model. Neither cache is thread-safe: resolution is
// meant to run on the single thread that built the model, or behind a
// one-time-initialization guard supplied by the caller.
type MethodItem struct {
	Name        string
	Constructor bool
	Modifiers   Modifiers

	TypeParameters types.TypeParameterList
	ReturnType     types.Type
	Parameters     []*ParameterItem

	ContainingClass *ClassItem
	// inheritedFrom points at the declaration this method was duplicated
	// from when it is hosted by an heir class; nil for originals
	inheritedFrom *MethodItem

	superMethods         []*MethodItem
	superMethodsComputed bool

	requiresOverride         bool
	requiresOverrideComputed bool
}

// Origin returns the declaration this method was first declared as,
// unwinding any chain of inherited duplicates
func (m *MethodItem) Origin() *MethodItem {
	origin := m
	for origin.inheritedFrom != nil {
		origin = origin.inheritedFrom
	}
	return origin
}

// OriginatingClass returns the class the method was first declared in, not a
// later inherited-duplicate host
func (m *MethodItem) OriginatingClass() *ClassItem {
	return m.Origin().ContainingClass
}

// InheritedFrom returns the method this one was duplicated from, or nil for
// an original declaration
func (m *MethodItem) InheritedFrom() *MethodItem {
	return m.inheritedFrom
}

// DuplicateFor returns this method as viewed through cls, an heir of the
// declaring class: return and parameter types are substituted through the
// type-variable bindings between the two classes, so `List.get(int): E`
// viewed through `StringList` returns `java.lang.String`.
func (m *MethodItem) DuplicateFor(cls *ClassItem) *MethodItem {
	bindings := cls.MapTypeVariables(m.ContainingClass)
	parameters := make([]*ParameterItem, len(m.Parameters))
	for ind, param := range m.Parameters {
		parameters[ind] = &ParameterItem{
			Name: param.Name,
			Type: types.Substitute(param.Type, bindings),
		}
	}
	return &MethodItem{
		Name:            m.Name,
		Constructor:     m.Constructor,
		Modifiers:       m.Modifiers,
		TypeParameters:  m.TypeParameters,
		ReturnType:      types.Substitute(m.ReturnType, bindings),
		Parameters:      parameters,
		ContainingClass: cls,
		inheritedFrom:   m,
	}
}

// TypeParameterScope returns the scope in which this method's own types
// resolve: the containing class's scope with the method's parameters
// shadowing it
func (m *MethodItem) TypeParameterScope() *types.TypeParameterScope {
	scope := types.EmptyScope
	if m.ContainingClass != nil {
		scope = m.ContainingClass.TypeParameterScope()
	}
	return scope.NestedScope(m.TypeParameters)
}

// ErasedSignature renders the name and erased parameter types, the key used
// for override and duplicate matching
func (m *MethodItem) ErasedSignature() string {
	var out strings.Builder
	out.WriteString(m.Name)
	out.WriteByte('(')
	for ind, param := range m.Parameters {
		if ind > 0 {
			out.WriteString(", ")
		}
		out.WriteString(types.ErasedString(param.Type))
	}
	out.WriteByte(')')
	return out.String()
}

// matchesErased reports whether candidate, declared in an ancestor class and
// instantiated through bindings, has the same erased signature as m. The
// candidate's parameter types are substituted first so that `List.add(E)`
// matches `StringList.add(String)`; for parameter lists with no variables in
// them this degenerates to a plain erased comparison.
func (m *MethodItem) matchesErased(candidate *MethodItem, bindings types.Bindings) bool {
	if m.Name != candidate.Name || len(m.Parameters) != len(candidate.Parameters) {
		return false
	}
	for ind := range m.Parameters {
		want := types.ErasedString(m.Parameters[ind].Type)
		got := types.ErasedString(types.Substitute(candidate.Parameters[ind].Type, bindings))
		if want != got {
			return false
		}
	}
	return true
}

// overridable reports whether the method can participate in overriding at
// all: constructors, private methods and static methods cannot
func (m *MethodItem) overridable() bool {
	return !m.Constructor && !m.Modifiers.Static && m.Modifiers.Visibility != VisibilityPrivate
}
