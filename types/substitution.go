package types

import "fmt"

// Substitute rewrites t by replacing every type-variable use bound in
// bindings with its bound type. Subtrees the bindings do not touch come back
// as the identical instances, so callers can detect "nothing changed" with a
// plain identity comparison; in particular, empty bindings always return t
// itself without recursing.
func Substitute(t Type, bindings Bindings) Type {
	if t == nil || len(bindings) == 0 {
		return t
	}
	return substitute(t, bindings)
}

func substitute(t Type, bindings Bindings) Type {
	switch t := t.(type) {
	case *PrimitiveType:
		// Primitives are never parameterized
		return t
	case *ArrayType:
		component := substitute(t.Component, bindings)
		if component == t.Component {
			return t
		}
		return &ArrayType{TypeModifiers: t.TypeModifiers, Component: component, Varargs: t.Varargs}
	case *ClassType:
		outer := t.Outer
		if outer != nil {
			// An outer qualification is itself a class type, so the
			// substitution cannot change its variant
			outer = substitute(outer, bindings).(*ClassType)
		}
		arguments := substituteAll(t.Arguments, bindings)
		if outer == t.Outer && argumentsUnchanged(arguments, t.Arguments) {
			return t
		}
		return &ClassType{
			TypeModifiers: t.TypeModifiers,
			QualifiedName: t.QualifiedName,
			Arguments:     arguments,
			Outer:         outer,
		}
	case *VariableType:
		replacement, bound := bindings[t.Parameter]
		if !bound {
			return t
		}
		return mergeUseSiteNullability(t.Nullability, replacement)
	case *WildcardType:
		// A wildcard is never itself replaced; only its bounds are rewritten
		extendsBound := substitute2(t.ExtendsBound, bindings)
		superBound := substitute2(t.SuperBound, bindings)
		if extendsBound == t.ExtendsBound && superBound == t.SuperBound {
			return t
		}
		return &WildcardType{TypeModifiers: t.TypeModifiers, ExtendsBound: extendsBound, SuperBound: superBound}
	}
	panic(fmt.Errorf("unknown type variant: %T", t))
}

// substitute2 is substitute for optional subtrees
func substitute2(t Type, bindings Bindings) Type {
	if t == nil {
		return nil
	}
	return substitute(t, bindings)
}

// substituteAll rewrites a slice of types, returning the original slice when
// nothing in it changed
func substituteAll(list []Type, bindings Bindings) []Type {
	var rewritten []Type
	for ind, entry := range list {
		sub := substitute(entry, bindings)
		if sub != entry && rewritten == nil {
			rewritten = make([]Type, len(list))
			copy(rewritten, list[:ind])
		}
		if rewritten != nil {
			rewritten[ind] = sub
		}
	}
	if rewritten == nil {
		return list
	}
	return rewritten
}

func argumentsUnchanged(rewritten, original []Type) bool {
	// substituteAll returns the original slice itself when untouched
	return len(rewritten) == len(original) && (len(original) == 0 || &rewritten[0] == &original[0])
}

// mergeUseSiteNullability combines the nullness written on a variable use
// with the nullness of the type replacing it. The use site can add
// information the generic declaration could not know about: a nullable use
// stays nullable no matter what replaces it, and a replacement with platform
// (unknown) nullness adopts whatever the use site says. Otherwise the
// replacement's own nullness wins.
func mergeUseSiteNullability(useSite Nullability, replacement Type) Type {
	switch {
	case useSite == NullabilityNullable:
		return withNullability(replacement, NullabilityNullable)
	case replacement.Modifiers().Nullability == NullabilityPlatform:
		return withNullability(replacement, useSite)
	default:
		return replacement
	}
}

// withNullability returns t with its top-level nullness replaced, sharing t
// itself when the nullness already matches
func withNullability(t Type, nullability Nullability) Type {
	if t.Modifiers().Nullability == nullability {
		return t
	}
	switch t := t.(type) {
	case *PrimitiveType:
		// A primitive is non-null by definition; there is nothing to merge
		return t
	case *ArrayType:
		clone := *t
		clone.Nullability = nullability
		return &clone
	case *ClassType:
		clone := *t
		clone.Nullability = nullability
		return &clone
	case *VariableType:
		clone := *t
		clone.Nullability = nullability
		return &clone
	case *WildcardType:
		clone := *t
		clone.Nullability = nullability
		return &clone
	}
	panic(fmt.Errorf("unknown type variant: %T", t))
}
