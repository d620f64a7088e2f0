package types

import (
	"fmt"
	"strings"
)

// Type is the closed set of representations for a single type occurrence:
// a primitive, an array, a class type, a reference to a type parameter, or a
// wildcard. Values are immutable once constructed and are freely shared by
// reference between owners; code that needs a changed node builds a new one.
//
// Behavior that varies by variant (substitution, rendering, equality) lives
// in free functions that switch over the variants rather than in methods, so
// each algorithm reads as one exhaustive dispatch.
type Type interface {
	// Modifiers returns the nullability and type-use annotations of this
	// occurrence
	Modifiers() TypeModifiers
	typeNode()
}

// PrimitiveKind enumerates the Java primitive types plus void
type PrimitiveKind int

const (
	PrimitiveBoolean PrimitiveKind = iota
	PrimitiveByte
	PrimitiveChar
	PrimitiveDouble
	PrimitiveFloat
	PrimitiveInt
	PrimitiveLong
	PrimitiveShort
	PrimitiveVoid
)

var primitiveNames = map[PrimitiveKind]string{
	PrimitiveBoolean: "boolean",
	PrimitiveByte:    "byte",
	PrimitiveChar:    "char",
	PrimitiveDouble:  "double",
	PrimitiveFloat:   "float",
	PrimitiveInt:     "int",
	PrimitiveLong:    "long",
	PrimitiveShort:   "short",
	PrimitiveVoid:    "void",
}

func (k PrimitiveKind) String() string {
	if name, known := primitiveNames[k]; known {
		return name
	}
	panic(fmt.Errorf("unknown primitive kind: %d", int(k)))
}

// PrimitiveKindOf maps a Java keyword such as "int" back to its kind
func PrimitiveKindOf(keyword string) (PrimitiveKind, bool) {
	for kind, name := range primitiveNames {
		if name == keyword {
			return kind, true
		}
	}
	return 0, false
}

// PrimitiveType is a primitive occurrence. It is always non-null.
type PrimitiveType struct {
	TypeModifiers
	Kind PrimitiveKind
}

// NewPrimitiveType returns a primitive occurrence of the given kind
func NewPrimitiveType(kind PrimitiveKind) *PrimitiveType {
	return &PrimitiveType{TypeModifiers: NonNullModifiers(), Kind: kind}
}

// ArrayType is an array occurrence. It exclusively owns its component type.
type ArrayType struct {
	TypeModifiers
	Component Type
	// Varargs is set when this array is the trailing `...` parameter of a
	// method; it is still an array for every other purpose
	Varargs bool
}

// ClassType is an occurrence of a class or interface type, possibly
// parameterized, possibly qualified by an enclosing class occurrence
// (`Outer<T>.Inner`).
type ClassType struct {
	TypeModifiers
	QualifiedName string
	// Type arguments, which may themselves be wildcards. Empty for raw or
	// non-generic occurrences.
	Arguments []Type
	// Outer is the enclosing-class qualification, or nil when the occurrence
	// is not written through an enclosing class
	Outer *ClassType
}

// SimpleName returns the last dot-separated segment of the qualified name
func (t *ClassType) SimpleName() string {
	if ind := strings.LastIndexByte(t.QualifiedName, '.'); ind != -1 {
		return t.QualifiedName[ind+1:]
	}
	return t.QualifiedName
}

// VariableType is a use of a type parameter. It refers to its declaration by
// identity, never by name: once scopes shadow each other, two distinct
// parameters can share a name.
type VariableType struct {
	TypeModifiers
	Name      string
	Parameter *TypeParameter
}

// NewVariableType returns an occurrence of the given declared parameter
func NewVariableType(parameter *TypeParameter) *VariableType {
	return &VariableType{Name: parameter.Name, Parameter: parameter}
}

// WildcardType is a `?` occurrence with at most one meaningful bound. A nil
// ExtendsBound stands for the implicit java.lang.Object upper bound.
type WildcardType struct {
	TypeModifiers
	ExtendsBound Type
	SuperBound   Type
}

func (*PrimitiveType) typeNode() {}
func (*ArrayType) typeNode()     {}
func (*ClassType) typeNode()     {}
func (*VariableType) typeNode()  {}
func (*WildcardType) typeNode()  {}

func (t *PrimitiveType) String() string { return TypeString(t) }
func (t *ArrayType) String() string     { return TypeString(t) }
func (t *ClassType) String() string     { return TypeString(t) }
func (t *VariableType) String() string  { return TypeString(t) }
func (t *WildcardType) String() string  { return TypeString(t) }

// AsClassType returns t as a class type. Calling it on any other variant is
// a programming error and panics.
func AsClassType(t Type) *ClassType {
	cls, ok := t.(*ClassType)
	if !ok {
		panic(fmt.Errorf("expected a class type, got %T (%v)", t, t))
	}
	return cls
}

// AsVariableType returns t as a type-variable use. Calling it on any other
// variant is a programming error and panics.
func AsVariableType(t Type) *VariableType {
	variable, ok := t.(*VariableType)
	if !ok {
		panic(fmt.Errorf("expected a type variable, got %T (%v)", t, t))
	}
	return variable
}

// Equal reports whether two types are structurally identical, including
// their nullability. Type-variable uses compare by the identity of their
// declared parameter, and array varargs-ness is ignored (a `String...`
// parameter still overrides a `String[]` one).
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Modifiers().Nullability != b.Modifiers().Nullability {
		return false
	}
	switch a := a.(type) {
	case *PrimitiveType:
		b, ok := b.(*PrimitiveType)
		return ok && a.Kind == b.Kind
	case *ArrayType:
		b, ok := b.(*ArrayType)
		return ok && Equal(a.Component, b.Component)
	case *ClassType:
		b, ok := b.(*ClassType)
		if !ok || a.QualifiedName != b.QualifiedName || len(a.Arguments) != len(b.Arguments) {
			return false
		}
		for ind := range a.Arguments {
			if !Equal(a.Arguments[ind], b.Arguments[ind]) {
				return false
			}
		}
		if (a.Outer == nil) != (b.Outer == nil) {
			return false
		}
		return a.Outer == nil || Equal(a.Outer, b.Outer)
	case *VariableType:
		b, ok := b.(*VariableType)
		return ok && a.Parameter == b.Parameter
	case *WildcardType:
		b, ok := b.(*WildcardType)
		return ok && Equal(a.ExtendsBound, b.ExtendsBound) && Equal(a.SuperBound, b.SuperBound)
	}
	panic(fmt.Errorf("unknown type variant: %T", a))
}
