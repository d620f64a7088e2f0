package model

import (
	"testing"

	"github.com/apilens/javamodel/types"
)

// Fixture builders for hand-constructed class graphs. Tests that want graphs
// built from real Java source use the javasrc front end instead.

func classType(qualifiedName string, arguments ...types.Type) *types.ClassType {
	return &types.ClassType{QualifiedName: qualifiedName, Arguments: arguments}
}

func buildClass(t *testing.T, cb *Codebase, qualifiedName string, kind ClassKind) *ClassItem {
	t.Helper()
	cls := &ClassItem{
		QualifiedName: qualifiedName,
		Kind:          kind,
		Modifiers:     Modifiers{Visibility: VisibilityPublic},
	}
	return cb.RegisterClass(cls)
}

// declareParams declares unbounded type parameters on a class
func declareParams(t *testing.T, cls *ClassItem, names ...string) types.TypeParameterList {
	t.Helper()
	params, _ := types.DeclareTypeParameters(types.EmptyScope, names)
	for _, param := range params {
		param.SetBounds(nil)
	}
	cls.TypeParameters = params
	return params
}

func addMethod(t *testing.T, cls *ClassItem, name string, returnType types.Type, parameterTypes ...types.Type) *MethodItem {
	t.Helper()
	method := &MethodItem{
		Name:       name,
		Modifiers:  Modifiers{Visibility: VisibilityPublic},
		ReturnType: returnType,
	}
	if cls.IsInterface() {
		method.Modifiers.Abstract = true
	}
	for ind, parameterType := range parameterTypes {
		method.Parameters = append(method.Parameters, &ParameterItem{
			Name: "arg" + string(rune('0'+ind)),
			Type: parameterType,
		})
	}
	cls.AddMethod(method)
	return method
}

// objectClass registers java.lang.Object with its overridable methods
func objectClass(t *testing.T, cb *Codebase) *ClassItem {
	t.Helper()
	object := buildClass(t, cb, types.JavaLangObject, KindClass)
	addMethod(t, object, "toString", classType("java.lang.String"))
	addMethod(t, object, "hashCode", types.NewPrimitiveType(types.PrimitiveInt))
	addMethod(t, object, "equals", types.NewPrimitiveType(types.PrimitiveBoolean), classType(types.JavaLangObject))
	return object
}

// listFixture registers `interface List<E> { E get(int); boolean add(E); }`
// and `class StringList implements List<String>`
func listFixture(t *testing.T, cb *Codebase) (list, stringList *ClassItem, elementParam *types.TypeParameter) {
	t.Helper()
	list = buildClass(t, cb, "java.util.List", KindInterface)
	params := declareParams(t, list, "E")
	elementParam = params[0]
	addMethod(t, list, "get", types.NewVariableType(elementParam), types.NewPrimitiveType(types.PrimitiveInt))
	addMethod(t, list, "add", types.NewPrimitiveType(types.PrimitiveBoolean), types.NewVariableType(elementParam))

	stringList = buildClass(t, cb, "pkg.StringList", KindClass)
	stringList.InterfaceTypes = []*types.ClassType{
		classType("java.util.List", classType("java.lang.String")),
	}
	return list, stringList, elementParam
}
