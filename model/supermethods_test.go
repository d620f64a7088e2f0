package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apilens/javamodel/types"
)

func TestSuperMethodsShortCircuits(t *testing.T) {
	cb := NewCodebase()
	objectClass(t, cb)

	base := buildClass(t, cb, "pkg.Base", KindClass)
	addMethod(t, base, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	sub := buildClass(t, cb, "pkg.Sub", KindClass)
	sub.SuperClassType = classType("pkg.Base")

	ctor := addMethod(t, sub, "Sub", types.NewPrimitiveType(types.PrimitiveVoid))
	ctor.Constructor = true
	static := addMethod(t, sub, "run", types.NewPrimitiveType(types.PrimitiveVoid))
	static.Modifiers.Static = true
	private := addMethod(t, sub, "run", types.NewPrimitiveType(types.PrimitiveVoid))
	private.Modifiers.Static = false
	private.Modifiers.Visibility = VisibilityPrivate

	assert.Empty(t, ctor.SuperMethods())
	assert.Empty(t, static.SuperMethods())
	assert.Empty(t, private.SuperMethods())
}

func TestSuperMethodsFirstSuperclassMatchWins(t *testing.T) {
	cb := NewCodebase()

	grandparent := buildClass(t, cb, "pkg.Grandparent", KindClass)
	grandMethod := addMethod(t, grandparent, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	parent := buildClass(t, cb, "pkg.Parent", KindClass)
	parent.SuperClassType = classType("pkg.Grandparent")
	parentMethod := addMethod(t, parent, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	sub := buildClass(t, cb, "pkg.Sub", KindClass)
	sub.SuperClassType = classType("pkg.Parent")
	method := addMethod(t, sub, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	supers := method.SuperMethods()
	require.Len(t, supers, 1)
	// The walk stops at the first match; the grandparent's method is shadowed
	assert.Same(t, parentMethod, supers[0])
	assert.NotContains(t, supers, grandMethod)
}

func TestSuperMethodsMatchThroughTypeVariables(t *testing.T) {
	cb := NewCodebase()
	list, stringList, _ := listFixture(t, cb)

	add := addMethod(t, stringList, "add",
		types.NewPrimitiveType(types.PrimitiveBoolean), classType("java.lang.String"))
	unrelated := addMethod(t, stringList, "add",
		types.NewPrimitiveType(types.PrimitiveBoolean), types.NewPrimitiveType(types.PrimitiveInt))

	supers := add.SuperMethods()
	require.Len(t, supers, 1)
	// List.add(E) instantiated at String matches add(String)
	assert.Same(t, list.FindMethodByName("add"), supers[0])

	// add(int) matches nothing: absence is an empty set, not a failure
	assert.Empty(t, unrelated.SuperMethods())
}

func TestSuperMethodsDiamondDedup(t *testing.T) {
	cb := NewCodebase()

	ifaceA := buildClass(t, cb, "pkg.A", KindInterface)
	methodA := addMethod(t, ifaceA, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	ifaceB := buildClass(t, cb, "pkg.B", KindInterface)
	ifaceB.InterfaceTypes = []*types.ClassType{classType("pkg.A")}
	methodB := addMethod(t, ifaceB, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	impl := buildClass(t, cb, "pkg.Impl", KindClass)
	impl.InterfaceTypes = []*types.ClassType{classType("pkg.A"), classType("pkg.B")}
	method := addMethod(t, impl, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	supers := method.SuperMethods()
	require.Len(t, supers, 1)
	// Only the leaf of the diamond survives
	assert.Same(t, methodB, supers[0])
	assert.NotContains(t, supers, methodA)
}

func TestSuperMethodsIndependentBranchesBothKept(t *testing.T) {
	cb := NewCodebase()

	ifaceA := buildClass(t, cb, "pkg.A", KindInterface)
	methodA := addMethod(t, ifaceA, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	ifaceB := buildClass(t, cb, "pkg.B", KindInterface)
	methodB := addMethod(t, ifaceB, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	impl := buildClass(t, cb, "pkg.Impl", KindClass)
	impl.InterfaceTypes = []*types.ClassType{classType("pkg.A"), classType("pkg.B")}
	method := addMethod(t, impl, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	supers := method.SuperMethods()
	require.Len(t, supers, 2)
	assert.Same(t, methodA, supers[0])
	assert.Same(t, methodB, supers[1])
}

func TestSuperMethodsShallowestPerBranch(t *testing.T) {
	cb := NewCodebase()

	deep := buildClass(t, cb, "pkg.Deep", KindInterface)
	deepMethod := addMethod(t, deep, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	shallow := buildClass(t, cb, "pkg.Shallow", KindInterface)
	shallow.InterfaceTypes = []*types.ClassType{classType("pkg.Deep")}
	shallowMethod := addMethod(t, shallow, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	impl := buildClass(t, cb, "pkg.Impl", KindClass)
	impl.InterfaceTypes = []*types.ClassType{classType("pkg.Shallow")}
	method := addMethod(t, impl, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	supers := method.SuperMethods()
	require.Len(t, supers, 1)
	assert.Same(t, shallowMethod, supers[0])
	assert.NotContains(t, supers, deepMethod)
}

func TestSuperMethodsNoMatchRecursesIntoSuperInterfaces(t *testing.T) {
	cb := NewCodebase()

	root := buildClass(t, cb, "pkg.Root", KindInterface)
	rootMethod := addMethod(t, root, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	middle := buildClass(t, cb, "pkg.Middle", KindInterface)
	middle.InterfaceTypes = []*types.ClassType{classType("pkg.Root")}
	addMethod(t, middle, "other", types.NewPrimitiveType(types.PrimitiveVoid))

	impl := buildClass(t, cb, "pkg.Impl", KindClass)
	impl.InterfaceTypes = []*types.ClassType{classType("pkg.Middle")}
	method := addMethod(t, impl, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	supers := method.SuperMethods()
	require.Len(t, supers, 1)
	assert.Same(t, rootMethod, supers[0])
}

func TestSuperMethodsSuperclassBeforeInterfaces(t *testing.T) {
	cb := NewCodebase()

	base := buildClass(t, cb, "pkg.Base", KindClass)
	baseMethod := addMethod(t, base, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	iface := buildClass(t, cb, "pkg.Runnable", KindInterface)
	ifaceMethod := addMethod(t, iface, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	sub := buildClass(t, cb, "pkg.Sub", KindClass)
	sub.SuperClassType = classType("pkg.Base")
	sub.InterfaceTypes = []*types.ClassType{classType("pkg.Runnable")}
	method := addMethod(t, sub, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	supers := method.SuperMethods()
	require.Len(t, supers, 2)
	assert.Same(t, baseMethod, supers[0])
	assert.Same(t, ifaceMethod, supers[1])
}

func TestSuperMethodsUnresolvedAncestorDeadEnd(t *testing.T) {
	cb := NewCodebase()

	sub := buildClass(t, cb, "pkg.Sub", KindClass)
	sub.SuperClassType = classType("missing.Base")
	sub.InterfaceTypes = []*types.ClassType{classType("missing.Iface")}
	method := addMethod(t, sub, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	// Under-report rather than crash
	assert.Empty(t, method.SuperMethods())
}

func TestSuperMethodsMemoized(t *testing.T) {
	cb := NewCodebase()

	base := buildClass(t, cb, "pkg.Base", KindClass)
	addMethod(t, base, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	sub := buildClass(t, cb, "pkg.Sub", KindClass)
	sub.SuperClassType = classType("pkg.Base")
	method := addMethod(t, sub, "run", types.NewPrimitiveType(types.PrimitiveVoid))

	first := method.SuperMethods()
	second := method.SuperMethods()
	require.NotEmpty(t, first)
	assert.Same(t, first[0], second[0])
	if len(first) != len(second) {
		t.Errorf("Expected the memoized set to be stable, got %d then %d", len(first), len(second))
	}
}

func TestSuperMethodsOfDuplicateDelegates(t *testing.T) {
	cb := NewCodebase()
	list, stringList, _ := listFixture(t, cb)

	get := list.FindMethodByName("get")
	viewed := get.DuplicateFor(stringList)
	assert.Equal(t, get.SuperMethods(), viewed.SuperMethods())
}

func TestErasedSignature(t *testing.T) {
	cb := NewCodebase()
	list, _, _ := listFixture(t, cb)

	assert.Equal(t, "get(int)", list.FindMethodByName("get").ErasedSignature())
	assert.Equal(t, "add(java.lang.Object)", list.FindMethodByName("add").ErasedSignature())
}
