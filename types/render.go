package types

import (
	"fmt"
	"strings"
)

// JavaLangObject is the universal root reference type
const JavaLangObject = "java.lang.Object"

// ObjectType returns a fresh occurrence of java.lang.Object
func ObjectType() *ClassType {
	return &ClassType{QualifiedName: JavaLangObject}
}

// TypeString renders the full generic form of a type, without nullability
// markers: `java.util.Map<java.lang.String, ? extends java.lang.Number>`.
func TypeString(t Type) string {
	var out strings.Builder
	render(&out, t, renderOptions{})
	return out.String()
}

// NullableTypeString renders the full generic form with Kotlin-style
// nullability suffixes: `?` on nullable occurrences and `!` on platform
// ones, applied at every level of the type.
func NullableTypeString(t Type) string {
	var out strings.Builder
	render(&out, t, renderOptions{nullability: true})
	return out.String()
}

// ErasedString renders the erasure of a type: no type arguments, type
// variables collapsed to their first bound, wildcards to their upper bound.
// Erased strings are what override and duplicate matching compare.
func ErasedString(t Type) string {
	var out strings.Builder
	render(&out, t, renderOptions{erased: true})
	return out.String()
}

type renderOptions struct {
	nullability bool
	erased      bool
}

func render(out *strings.Builder, t Type, opts renderOptions) {
	switch t := t.(type) {
	case *PrimitiveType:
		out.WriteString(t.Kind.String())
	case *ArrayType:
		render(out, t.Component, opts)
		if opts.nullability {
			out.WriteString(t.Nullability.Suffix())
		}
		if t.Varargs && !opts.erased {
			out.WriteString("...")
		} else {
			// Erasure always renders `[]`: a trailing varargs parameter still
			// matches an array parameter for override purposes
			out.WriteString("[]")
		}
		// The suffix position already covers the array's own nullness
		return
	case *ClassType:
		if t.Outer != nil {
			render(out, t.Outer, opts)
			out.WriteByte('.')
			out.WriteString(t.SimpleName())
		} else {
			out.WriteString(t.QualifiedName)
		}
		if !opts.erased && len(t.Arguments) > 0 {
			out.WriteByte('<')
			for ind, argument := range t.Arguments {
				if ind > 0 {
					out.WriteString(", ")
				}
				render(out, argument, opts)
			}
			out.WriteByte('>')
		}
	case *VariableType:
		if opts.erased {
			out.WriteString(t.Parameter.ErasedBoundName())
		} else {
			out.WriteString(t.Name)
		}
	case *WildcardType:
		switch {
		case opts.erased && t.ExtendsBound != nil:
			render(out, t.ExtendsBound, opts)
			return
		case opts.erased:
			out.WriteString(JavaLangObject)
			return
		case t.SuperBound != nil:
			out.WriteString("? super ")
			render(out, t.SuperBound, opts)
		case t.ExtendsBound != nil:
			out.WriteString("? extends ")
			render(out, t.ExtendsBound, opts)
		default:
			out.WriteByte('?')
		}
	default:
		panic(fmt.Errorf("unknown type variant: %T", t))
	}
	if opts.nullability {
		out.WriteString(t.Modifiers().Nullability.Suffix())
	}
}
