package model

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/apilens/javamodel/types"
)

// ClassKind distinguishes the declaration forms a ClassItem can model
type ClassKind int

const (
	KindClass ClassKind = iota
	KindInterface
	KindEnum
	KindAnnotation
)

func (k ClassKind) String() string {
	switch k {
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindAnnotation:
		return "@interface"
	default:
		return "class"
	}
}

// ClassItem is one class, interface, enum or annotation declaration. The
// subclassing graph it participates in is acyclic (the language forbids
// inheritance cycles), even though type-parameter bounds may reference each
// other cyclically.
type ClassItem struct {
	QualifiedName string
	Kind          ClassKind
	Modifiers     Modifiers

	TypeParameters types.TypeParameterList
	// SuperClassType is the (possibly parameterized) extends clause, or nil
	// for java.lang.Object, interfaces and annotations
	SuperClassType *types.ClassType
	// InterfaceTypes are the (possibly parameterized) implements/extends
	// interface clauses
	InterfaceTypes []*types.ClassType

	Methods      []*MethodItem
	Fields       []*FieldItem
	InnerClasses []*ClassItem

	ContainingClass *ClassItem
	codebase        *Codebase
}

// SimpleName returns the last dot-separated segment of the qualified name
func (c *ClassItem) SimpleName() string {
	if ind := strings.LastIndexByte(c.QualifiedName, '.'); ind != -1 {
		return c.QualifiedName[ind+1:]
	}
	return c.QualifiedName
}

// IsInterface reports whether this declaration is an interface or annotation
func (c *ClassItem) IsInterface() bool {
	return c.Kind == KindInterface || c.Kind == KindAnnotation
}

// Codebase returns the registry this class was registered into
func (c *ClassItem) Codebase() *Codebase {
	return c.codebase
}

// AddMethod appends a method and wires its containing class
func (c *ClassItem) AddMethod(method *MethodItem) {
	method.ContainingClass = c
	c.Methods = append(c.Methods, method)
}

// AddField appends a field and wires its containing class
func (c *ClassItem) AddField(field *FieldItem) {
	field.ContainingClass = c
	c.Fields = append(c.Fields, field)
}

// SuperClass resolves the extends clause to its class, or nil when there is
// none or it is not on the classpath (an unresolved ancestor is a dead end,
// not a failure).
func (c *ClassItem) SuperClass() *ClassItem {
	return c.resolveAncestor(c.SuperClassType)
}

// Interfaces resolves the directly declared interface clauses, skipping any
// that are not on the classpath
func (c *ClassItem) Interfaces() []*ClassItem {
	if len(c.InterfaceTypes) == 0 {
		return nil
	}
	resolved := make([]*ClassItem, 0, len(c.InterfaceTypes))
	for _, ifaceType := range c.InterfaceTypes {
		if iface := c.resolveAncestor(ifaceType); iface != nil {
			resolved = append(resolved, iface)
		}
	}
	return resolved
}

func (c *ClassItem) resolveAncestor(ancestorType *types.ClassType) *ClassItem {
	if ancestorType == nil {
		return nil
	}
	if c.codebase == nil {
		return nil
	}
	ancestor := c.codebase.FindClass(ancestorType.QualifiedName)
	if ancestor == nil {
		log.WithFields(log.Fields{
			"class":    c.QualifiedName,
			"ancestor": ancestorType.QualifiedName,
		}).Debug("Unresolved ancestor treated as a dead end")
	}
	return ancestor
}

// FindMethodByName returns the first declared method with the given name, or
// nil if the class declares none
func (c *ClassItem) FindMethodByName(name string) *MethodItem {
	for _, method := range c.Methods {
		if method.Name == name {
			return method
		}
	}
	return nil
}

// FindFieldByName returns the declared field with the given name, or nil
func (c *ClassItem) FindFieldByName(name string) *FieldItem {
	for _, field := range c.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

// TypeParameterScope returns the scope in which this class's members
// resolve type-parameter names: the containing-class chain outermost first,
// with this class's own parameters shadowing anything above them. Levels
// with no parameters add no link.
func (c *ClassItem) TypeParameterScope() *types.TypeParameterScope {
	scope := types.EmptyScope
	if c.ContainingClass != nil {
		scope = c.ContainingClass.TypeParameterScope()
	}
	return scope.NestedScope(c.TypeParameters)
}

// IsAncestorOf reports whether other inherits from this class through any
// chain of superclasses and interfaces. A class is its own ancestor.
func (c *ClassItem) IsAncestorOf(other *ClassItem) bool {
	if other == c {
		return true
	}
	for _, direct := range other.directAncestors() {
		if c.IsAncestorOf(direct) {
			return true
		}
	}
	return false
}

func (c *ClassItem) directAncestors() []*ClassItem {
	var ancestors []*ClassItem
	if super := c.SuperClass(); super != nil {
		ancestors = append(ancestors, super)
	}
	return append(ancestors, c.Interfaces()...)
}

func (c *ClassItem) directSuperTypes() []*types.ClassType {
	var supers []*types.ClassType
	if c.SuperClassType != nil {
		supers = append(supers, c.SuperClassType)
	}
	return append(supers, c.InterfaceTypes...)
}

// MapTypeVariables walks the ancestor chain from this class to target and
// returns the bindings from target's declared type parameters to the types
// this class instantiates them with. Given `class StringList implements
// List<String>`, mapping to List yields {E -> String}.
//
// target must be this class itself (yielding empty bindings, which
// substitution treats as a no-op) or one of its ancestors; anything else is
// a contract violation and panics.
func (c *ClassItem) MapTypeVariables(target *ClassItem) types.Bindings {
	if target == nil {
		panic(fmt.Errorf("MapTypeVariables(%s): nil target", c.QualifiedName))
	}
	if target == c {
		return types.Bindings{}
	}
	bindings := c.mapTypeVariables(target)
	if bindings == nil {
		panic(fmt.Errorf("MapTypeVariables: %s is not an ancestor of %s",
			target.QualifiedName, c.QualifiedName))
	}
	return bindings
}

// mapTypeVariables returns nil when target is unreachable from c
func (c *ClassItem) mapTypeVariables(target *ClassItem) types.Bindings {
	for _, superType := range c.directSuperTypes() {
		declared := c.resolveAncestor(superType)
		if declared == nil {
			continue
		}
		step := instantiationBindings(declared, superType)
		if declared == target {
			return step
		}
		rest := declared.mapTypeVariables(target)
		if rest == nil {
			continue
		}
		// rest maps target's parameters into declared's terms; push each
		// value through this step to express it in c's terms
		composed := make(types.Bindings, len(rest))
		for param, bound := range rest {
			composed[param] = types.Substitute(bound, step)
		}
		return composed
	}
	return nil
}

// instantiationBindings pairs a supertype's declared parameters with the
// arguments one extends/implements clause supplies. A raw clause (no
// arguments) binds nothing, leaving the ancestor's variables free.
func instantiationBindings(declared *ClassItem, superType *types.ClassType) types.Bindings {
	bindings := make(types.Bindings, len(superType.Arguments))
	for ind, param := range declared.TypeParameters {
		if ind >= len(superType.Arguments) {
			break
		}
		bindings[param] = superType.Arguments[ind]
	}
	return bindings
}
