package types

import (
	"fmt"
	"strings"
)

// TypeParameter is a single declared generic parameter (of a class or a
// method). It is compared by identity everywhere: two parameters with the
// same name declared in different scopes are different parameters.
//
// Construction is two-phase. The parameter first exists as a placeholder
// carrying only its name; its bounds are attached afterwards, once every
// sibling placeholder has been registered in a scope. That ordering is what
// lets a bound reference any sibling, including the parameter being defined
// (`Node<L extends Node<L, R>, R extends Node<L, R>>`), without recursing
// during construction.
type TypeParameter struct {
	Name string

	bounds      []Type
	boundsFixed bool
}

// Bounds returns the parameter's upper bounds, which may be empty (an
// implicit java.lang.Object bound)
func (p *TypeParameter) Bounds() []Type {
	return p.bounds
}

// SetBounds attaches the resolved bounds to a placeholder parameter. It may
// be called at most once; attaching bounds twice is a builder bug.
func (p *TypeParameter) SetBounds(bounds []Type) {
	if p.boundsFixed {
		panic(fmt.Errorf("bounds of type parameter %q attached twice", p.Name))
	}
	p.bounds = bounds
	p.boundsFixed = true
}

// ErasedBoundName returns the qualified name the parameter erases to: the
// erasure of its first bound, or java.lang.Object when unbounded.
func (p *TypeParameter) ErasedBoundName() string {
	if len(p.bounds) == 0 {
		return JavaLangObject
	}
	return ErasedString(p.bounds[0])
}

func (p *TypeParameter) String() string {
	if len(p.bounds) == 0 {
		return p.Name
	}
	boundStrings := make([]string, len(p.bounds))
	for ind, bound := range p.bounds {
		boundStrings[ind] = TypeString(bound)
	}
	return p.Name + " extends " + strings.Join(boundStrings, " & ")
}

// TypeParameterList is the ordered parameter list of one class or method
type TypeParameterList []*TypeParameter

// Find returns the parameter with the given name, or nil
func (l TypeParameterList) Find(name string) *TypeParameter {
	for _, param := range l {
		if param.Name == name {
			return param
		}
	}
	return nil
}

// Names returns the declared names in order
func (l TypeParameterList) Names() []string {
	if len(l) == 0 {
		return nil
	}
	names := make([]string, len(l))
	for ind, param := range l {
		names[ind] = param.Name
	}
	return names
}

// DeclareTypeParameters runs phase one of type-parameter construction: it
// creates a placeholder for every name and a scope, derived from enclosing,
// in which all of them resolve. The caller then parses each parameter's
// bounds against the returned scope and attaches them with SetBounds.
//
// No bound may be parsed before every sibling placeholder exists; resolving
// bounds eagerly while declaring is how self-referential parameter lists
// turn into unbounded recursion.
func DeclareTypeParameters(enclosing *TypeParameterScope, names []string) (TypeParameterList, *TypeParameterScope) {
	if len(names) == 0 {
		return nil, enclosing
	}
	params := make(TypeParameterList, len(names))
	for ind, name := range names {
		params[ind] = &TypeParameter{Name: name}
	}
	return params, enclosing.NestedScope(params)
}
