package types

// TypeParameterScope resolves a type-parameter name to its declaration,
// honoring lexical nesting: a method's parameters shadow its class's, which
// shadow the enclosing class's, and so on.
//
// A scope is a persistent, singly-linked chain with one link per non-trivial
// nesting level. Scopes are immutable once built; deriving a child scope
// never touches the parent.
type TypeParameterScope struct {
	parent *TypeParameterScope
	byName map[string]*TypeParameter
}

// EmptyScope is the root scope with no parameters in it
var EmptyScope = &TypeParameterScope{}

// IsEmpty reports whether no parameters are reachable from this scope
func (s *TypeParameterScope) IsEmpty() bool {
	for cur := s; cur != nil; cur = cur.parent {
		if len(cur.byName) > 0 {
			return false
		}
	}
	return true
}

// NestedScope returns a scope in which the given parameters shadow anything
// of the same name in this scope. An empty parameter list models no nesting
// at all, so the receiver is returned unchanged.
func (s *TypeParameterScope) NestedScope(params TypeParameterList) *TypeParameterScope {
	if len(params) == 0 {
		return s
	}
	byName := make(map[string]*TypeParameter, len(params))
	for _, param := range params {
		byName[param.Name] = param
	}
	return &TypeParameterScope{parent: s, byName: byName}
}

// Find resolves a name to the closest enclosing declaration of that name, or
// nil when no level of the chain declares it
func (s *TypeParameterScope) Find(name string) *TypeParameter {
	for cur := s; cur != nil; cur = cur.parent {
		if param, ok := cur.byName[name]; ok {
			return param
		}
	}
	return nil
}

// FindSignificantScope returns the closest scope along the chain that itself
// introduces at least one of the given names. A scope that merely inherits a
// name from its parent does not count. When no level introduces any of the
// names, EmptyScope is returned.
func (s *TypeParameterScope) FindSignificantScope(names map[string]struct{}) *TypeParameterScope {
	for cur := s; cur != nil; cur = cur.parent {
		for name := range cur.byName {
			if _, ok := names[name]; ok {
				return cur
			}
		}
	}
	return EmptyScope
}
