package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apilens/javamodel/types"
)

func TestRequiresOverrideConcreteNever(t *testing.T) {
	cb := NewCodebase()

	iface := buildClass(t, cb, "pkg.Runnable", KindInterface)
	addMethod(t, iface, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	impl := buildClass(t, cb, "pkg.Impl", KindClass)
	impl.InterfaceTypes = []*types.ClassType{classType("pkg.Runnable")}
	concrete := addMethod(t, impl, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	assert.False(t, concrete.RequiresOverride())
}

func TestRequiresOverrideAbstractNoSupers(t *testing.T) {
	cb := NewCodebase()

	iface := buildClass(t, cb, "pkg.Callback", KindInterface)
	visible := addMethod(t, iface, "invoke", types.NewPrimitiveType(types.PrimitiveVoid))
	hidden := addMethod(t, iface, "internal", types.NewPrimitiveType(types.PrimitiveVoid))
	hidden.Modifiers.Visibility = VisibilityPackagePrivate

	assert.True(t, visible.RequiresOverride())
	assert.False(t, hidden.RequiresOverride())
}

// An abstract method inherited abstractly from two unrelated interfaces must
// be materialized in the surface of a class implementing both.
func TestRequiresOverrideTwoUnrelatedInterfaces(t *testing.T) {
	cb := NewCodebase()

	ifaceA := buildClass(t, cb, "pkg.A", KindInterface)
	addMethod(t, ifaceA, "run", types.NewPrimitiveType(types.PrimitiveVoid))
	ifaceB := buildClass(t, cb, "pkg.B", KindInterface)
	addMethod(t, ifaceB, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	impl := buildClass(t, cb, "pkg.Impl", KindClass)
	impl.Modifiers.Abstract = true
	impl.InterfaceTypes = []*types.ClassType{classType("pkg.A"), classType("pkg.B")}
	method := addMethod(t, impl, "run", types.NewPrimitiveType(types.PrimitiveVoid))
	method.Modifiers.Abstract = true

	assert.True(t, method.RequiresOverride())
	assert.True(t, method.HasOverrideEquivalentSignatures())
}

func TestRequiresOverrideHiddenWithSupers(t *testing.T) {
	cb := NewCodebase()

	iface := buildClass(t, cb, "pkg.Iface", KindInterface)
	superMethod := addMethod(t, iface, "run", types.NewPrimitiveType(types.PrimitiveVoid))
	superMethod.Modifiers.Visibility = VisibilityPackagePrivate

	impl := buildClass(t, cb, "pkg.Impl", KindClass)
	impl.Modifiers.Abstract = true
	impl.InterfaceTypes = []*types.ClassType{classType("pkg.Iface")}
	method := addMethod(t, impl, "run", types.NewPrimitiveType(types.PrimitiveVoid))
	method.Modifiers.Abstract = true
	method.Modifiers.Visibility = VisibilityPackagePrivate

	// Hidden, and its only super is hidden with no supers of its own, so the
	// super itself does not require an override either
	assert.False(t, method.RequiresOverride())
}

func TestRequiresOverrideObjectSupersIgnored(t *testing.T) {
	cb := NewCodebase()
	objectClass(t, cb)

	abstractBase := buildClass(t, cb, "pkg.Base", KindClass)
	abstractBase.Modifiers.Abstract = true
	abstractBase.SuperClassType = classType(types.JavaLangObject)
	method := addMethod(t, abstractBase, "toString", classType("java.lang.String"))
	method.Modifiers.Abstract = true
	method.Modifiers.Visibility = VisibilityPackagePrivate

	// The only super is java.lang.Object's, which never counts against the
	// all-supers-require rule
	assert.True(t, method.RequiresOverride())
}

func TestRequiresOverrideMemoized(t *testing.T) {
	cb := NewCodebase()

	iface := buildClass(t, cb, "pkg.Iface", KindInterface)
	method := addMethod(t, iface, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	assert.True(t, method.RequiresOverride())
	// Flip visibility after the first query: the memoized answer must hold
	method.Modifiers.Visibility = VisibilityPrivate
	assert.True(t, method.RequiresOverride())
}

func TestHasOverrideEquivalentSignaturesSingleSource(t *testing.T) {
	cb := NewCodebase()

	iface := buildClass(t, cb, "pkg.Runnable", KindInterface)
	addMethod(t, iface, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	impl := buildClass(t, cb, "pkg.Impl", KindClass)
	impl.InterfaceTypes = []*types.ClassType{classType("pkg.Runnable")}
	method := addMethod(t, impl, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	// One matching interface method is not ambiguous
	assert.False(t, method.HasOverrideEquivalentSignatures())
}

func TestHasOverrideEquivalentSignaturesThroughSuperclass(t *testing.T) {
	cb := NewCodebase()

	ifaceA := buildClass(t, cb, "pkg.A", KindInterface)
	addMethod(t, ifaceA, "run", types.NewPrimitiveType(types.PrimitiveVoid))
	ifaceB := buildClass(t, cb, "pkg.B", KindInterface)
	defaultMethod := addMethod(t, ifaceB, "run", types.NewPrimitiveType(types.PrimitiveVoid))
	defaultMethod.Modifiers.Abstract = false
	defaultMethod.Modifiers.Default = true

	base := buildClass(t, cb, "pkg.Base", KindClass)
	base.InterfaceTypes = []*types.ClassType{classType("pkg.A")}

	impl := buildClass(t, cb, "pkg.Impl", KindClass)
	impl.SuperClassType = classType("pkg.Base")
	impl.InterfaceTypes = []*types.ClassType{classType("pkg.B")}
	method := addMethod(t, impl, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	// One abstract via the superclass's interface, one default directly
	assert.True(t, method.HasOverrideEquivalentSignatures())
}
